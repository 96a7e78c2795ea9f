package learningController_test

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
	learningRoutes "madrasa/routers/learningRoutes"
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
	learningRoutes.SetupLearningRoutes(app, s)

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

func TestEnrollAndWatchFlow(t *testing.T) {
	app, s := newTestApp(t)

	teacherToken := registerAndLogin(t, app, "teacher-1", models.RoleTeacher)
	studentToken := registerAndLogin(t, app, "student-1", models.RoleStudent)

	// Teacher authors a public course with one unit and one lecture.
	resp, env := doRequest(t, app, http.MethodPost, "/course/create", teacherToken, fiber.Map{
		"title":       "Algebra Basics",
		"titleAr":     "أساسيات الجبر",
		"description": "Linear equations",
		"visibility":  models.VisibilityPublic,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var course models.Course
	require.NoError(t, json.Unmarshal(env.Data, &course))

	resp, env = doRequest(t, app, http.MethodPost, "/unit/create", teacherToken, fiber.Map{
		"courseId": course.ID,
		"title":    "Unit 1",
		"order":    1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var unit models.Unit
	require.NoError(t, json.Unmarshal(env.Data, &unit))

	resp, env = doRequest(t, app, http.MethodPost, "/lecture/create", teacherToken, fiber.Map{
		"unitId":      unit.ID,
		"title":       "Solving for x",
		"order":       1,
		"videoUrl":    "https://cdn.example.com/lec1.mp4",
		"durationSec": 600,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var lecture models.Lecture
	require.NoError(t, json.Unmarshal(env.Data, &lecture))

	// Student enrolls; a second attempt conflicts.
	resp, _ = doRequest(t, app, http.MethodPost, "/enrollment/enroll", studentToken, fiber.Map{
		"courseId": course.ID,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env = doRequest(t, app, http.MethodPost, "/enrollment/enroll", studentToken, fiber.Map{
		"courseId": course.ID,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, env.Status)

	// Playback report at 580/600 with the client-computed completed flag.
	resp, env = doRequest(t, app, http.MethodPost, "/progress/update", studentToken, fiber.Map{
		"lectureId":       lecture.ID,
		"positionSec":     580,
		"completed":       true,
		"watchedLanguage": models.LangAr,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var progress models.Progress
	require.NoError(t, json.Unmarshal(env.Data, &progress))
	assert.Equal(t, 580, progress.PositionSec)
	assert.True(t, progress.Completed)
	assert.Equal(t, models.LangAr, progress.WatchedLanguage)

	// A later report on the same lecture overwrites in place.
	resp, env = doRequest(t, app, http.MethodPost, "/progress/update", studentToken, fiber.Map{
		"lectureId":       lecture.ID,
		"positionSec":     600,
		"completed":       true,
		"watchedLanguage": models.LangAr,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var second models.Progress
	require.NoError(t, json.Unmarshal(env.Data, &second))
	assert.Equal(t, progress.ID, second.ID)

	// Exactly one lecture_completed event despite two completed reports.
	events, err := s.ListAnalyticsEvents(store.AnalyticsEventFilters{
		EventType: models.EventLectureCompleted,
	})
	require.NoError(t, err)
	assert.Len(t, events, 1)

	enrolled, err := s.ListAnalyticsEvents(store.AnalyticsEventFilters{
		EventType: models.EventCourseEnrolled,
	})
	require.NoError(t, err)
	assert.Len(t, enrolled, 1)
}

func TestStudentCourseListForcesPublic(t *testing.T) {
	app, _ := newTestApp(t)

	teacherToken := registerAndLogin(t, app, "teacher-1", models.RoleTeacher)
	studentToken := registerAndLogin(t, app, "student-1", models.RoleStudent)

	for _, c := range []fiber.Map{
		{"title": "Open Course", "description": "d", "visibility": models.VisibilityPublic},
		{"title": "Hidden Course", "description": "d", "visibility": models.VisibilityPrivate},
	} {
		resp, _ := doRequest(t, app, http.MethodPost, "/course/create", teacherToken, c)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	// The student asks for private courses and gets public ones anyway.
	resp, env := doRequest(t, app, http.MethodGet,
		fmt.Sprintf("/course/list?visibility=%s", models.VisibilityPrivate), studentToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var courses []models.Course
	require.NoError(t, json.Unmarshal(env.Data, &courses))
	require.Len(t, courses, 1)
	assert.Equal(t, "Open Course", courses[0].Title)

	// The teacher sees everything.
	resp, env = doRequest(t, app, http.MethodGet, "/course/list", teacherToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &courses))
	assert.Len(t, courses, 2)
}

func TestEnrollRequiresStudentRole(t *testing.T) {
	app, _ := newTestApp(t)

	teacherToken := registerAndLogin(t, app, "teacher-1", models.RoleTeacher)

	resp, env := doRequest(t, app, http.MethodPost, "/course/create", teacherToken, fiber.Map{
		"title":       "Course",
		"description": "d",
		"visibility":  models.VisibilityPublic,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var course models.Course
	require.NoError(t, json.Unmarshal(env.Data, &course))

	// TEACHER is not in the allowed set for enrollment.
	resp, _ = doRequest(t, app, http.MethodPost, "/enrollment/enroll", teacherToken, fiber.Map{
		"courseId": course.ID,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPrivateCourseEnrollmentRejected(t *testing.T) {
	app, _ := newTestApp(t)

	teacherToken := registerAndLogin(t, app, "teacher-1", models.RoleTeacher)
	studentToken := registerAndLogin(t, app, "student-1", models.RoleStudent)

	resp, env := doRequest(t, app, http.MethodPost, "/course/create", teacherToken, fiber.Map{
		"title":       "Hidden",
		"description": "d",
		"visibility":  models.VisibilityPrivate,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var course models.Course
	require.NoError(t, json.Unmarshal(env.Data, &course))

	resp, _ = doRequest(t, app, http.MethodPost, "/enrollment/enroll", studentToken, fiber.Map{
		"courseId": course.ID,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCompleteCourseRequiresEnrollment(t *testing.T) {
	app, _ := newTestApp(t)

	teacherToken := registerAndLogin(t, app, "teacher-1", models.RoleTeacher)
	studentToken := registerAndLogin(t, app, "student-1", models.RoleStudent)

	resp, env := doRequest(t, app, http.MethodPost, "/course/create", teacherToken, fiber.Map{
		"title": "Course", "description": "d", "visibility": models.VisibilityPublic,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var course models.Course
	require.NoError(t, json.Unmarshal(env.Data, &course))

	// No enrollment yet: nothing to complete.
	resp, _ = doRequest(t, app, http.MethodPost,
		fmt.Sprintf("/enrollment/complete?courseId=%d", course.ID), studentToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/enrollment/enroll", studentToken, fiber.Map{
		"courseId": course.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost,
		fmt.Sprintf("/enrollment/complete?courseId=%d", course.ID), studentToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGameSessionLifecycle(t *testing.T) {
	app, s := newTestApp(t)

	teacherToken := registerAndLogin(t, app, "teacher-1", models.RoleTeacher)
	studentToken := registerAndLogin(t, app, "student-1", models.RoleStudent)

	resp, env := doRequest(t, app, http.MethodPost, "/course/create", teacherToken, fiber.Map{
		"title": "Course", "description": "d", "visibility": models.VisibilityPublic,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var course models.Course
	require.NoError(t, json.Unmarshal(env.Data, &course))

	resp, env = doRequest(t, app, http.MethodPost, "/unit/create", teacherToken, fiber.Map{
		"courseId": course.ID, "title": "Unit 1", "order": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var unit models.Unit
	require.NoError(t, json.Unmarshal(env.Data, &unit))

	resp, env = doRequest(t, app, http.MethodPost, "/game/create", teacherToken, fiber.Map{
		"title": "Fraction Frenzy", "type": models.GameTypeHTML5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var game models.InteractiveGame
	require.NoError(t, json.Unmarshal(env.Data, &game))

	resp, env = doRequest(t, app, http.MethodPost, "/game-session/start", studentToken, fiber.Map{
		"gameId": game.ID, "unitId": unit.ID, "playedLanguage": models.LangHe,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var session models.GameSession
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.False(t, session.Completed)

	resp, env = doRequest(t, app, http.MethodPatch, "/game-session/update", studentToken, fiber.Map{
		"sessionId": session.ID, "score": 87.5, "completed": true, "durationSec": 300,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.GameSession
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.Score)
	assert.EqualValues(t, 87.5, *updated.Score)
	assert.NotNil(t, updated.CompletedAt)

	started, err := s.ListAnalyticsEvents(store.AnalyticsEventFilters{EventType: models.EventGameStarted})
	require.NoError(t, err)
	assert.Len(t, started, 1)
	completed, err := s.ListAnalyticsEvents(store.AnalyticsEventFilters{EventType: models.EventGameCompleted})
	require.NoError(t, err)
	assert.Len(t, completed, 1)
}
