package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"madrasa/config"
	"madrasa/database"
	"madrasa/models"
	authRoutes "madrasa/routers/authRoutes"
	courseRoutes "madrasa/routers/courseRoutes"
	"madrasa/store"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: 4,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	s := store.New(db)

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, s)
	courseRoutes.SetupCourseRoutes(app, s)

	return app, s
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func registerAndLogin(t *testing.T, app *fiber.App, openID, role string) string {
	t.Helper()

	resp, _ := doRequest(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"openId":     openID,
		"externalId": "ext-" + openID,
		"password":   "password123",
		"firstName":  "Test",
		"lastName":   "User",
		"email":      openID + "@example.com",
		"role":       role,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doRequest(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"externalId": "ext-" + openID,
		"password":   "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.AccessToken)
	return login.AccessToken
}

// authorLecture builds course -> unit -> lecture owned by the token's caller.
func authorLecture(t *testing.T, app *fiber.App, token string) models.Lecture {
	t.Helper()

	resp, env := doRequest(t, app, http.MethodPost, "/course/create", token, fiber.Map{
		"title": "Course", "description": "d", "visibility": models.VisibilityPublic,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var course models.Course
	require.NoError(t, json.Unmarshal(env.Data, &course))

	resp, env = doRequest(t, app, http.MethodPost, "/unit/create", token, fiber.Map{
		"courseId": course.ID, "title": "Unit 1", "order": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var unit models.Unit
	require.NoError(t, json.Unmarshal(env.Data, &unit))

	resp, env = doRequest(t, app, http.MethodPost, "/lecture/create", token, fiber.Map{
		"unitId": unit.ID, "title": "Lecture 1", "order": 1, "durationSec": 600,
		"videoUrl": "https://cdn.example.com/v.mp4",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var lecture models.Lecture
	require.NoError(t, json.Unmarshal(env.Data, &lecture))
	return lecture
}

func TestAttachmentDeleteRequiresOwnership(t *testing.T) {
	app, s := newTestApp(t)

	ownerToken := registerAndLogin(t, app, "owner-teacher", models.RoleTeacher)
	rivalToken := registerAndLogin(t, app, "rival-teacher", models.RoleTeacher)

	lecture := authorLecture(t, app, ownerToken)

	resp, env := doRequest(t, app, http.MethodPost, "/attachment/create", ownerToken, fiber.Map{
		"lectureId": lecture.ID,
		"title":     "Worksheet",
		"fileUrl":   "https://cdn.example.com/worksheet.pdf",
		"fileType":  "application/pdf",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var attachment models.Attachment
	require.NoError(t, json.Unmarshal(env.Data, &attachment))

	// A teacher who does not own the course cannot delete its attachments.
	resp, _ = doRequest(t, app, http.MethodDelete,
		fmt.Sprintf("/attachment/%d", attachment.ID), rivalToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	remaining, err := s.ListAttachmentsByLecture(lecture.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)

	// The owner can.
	resp, _ = doRequest(t, app, http.MethodDelete,
		fmt.Sprintf("/attachment/%d", attachment.ID), ownerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	remaining, err = s.ListAttachmentsByLecture(lecture.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 0)

	// A missing attachment is a 404, not a silent success.
	resp, _ = doRequest(t, app, http.MethodDelete,
		fmt.Sprintf("/attachment/%d", attachment.ID), ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLectureDeleteRequiresOwnership(t *testing.T) {
	app, _ := newTestApp(t)

	ownerToken := registerAndLogin(t, app, "owner-teacher", models.RoleTeacher)
	rivalToken := registerAndLogin(t, app, "rival-teacher", models.RoleTeacher)

	lecture := authorLecture(t, app, ownerToken)

	resp, _ := doRequest(t, app, http.MethodDelete,
		fmt.Sprintf("/lecture/%d", lecture.ID), rivalToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodDelete,
		fmt.Sprintf("/lecture/%d", lecture.ID), ownerToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
