package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"madrasa/config"
	"madrasa/database"
	"madrasa/models"
	authRoutes "madrasa/routers/authRoutes"
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
		JWTKey:      "test-secret",
		SaltRound:   4,
		OwnerOpenID: "owner-open-id",
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

func registerBody(openID string) fiber.Map {
	return fiber.Map{
		"openId":     openID,
		"externalId": "ext-" + openID,
		"password":   "password123",
		"firstName":  "Test",
		"lastName":   "User",
	}
}

func TestRegisterIsAnUpsert(t *testing.T) {
	app, s := newTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/auth/register", "", registerBody("open-1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := registerBody("open-1")
	body["firstName"] = "Renamed"
	resp, _ = doRequest(t, app, http.MethodPost, "/auth/register", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	user, err := s.GetUserByOpenID("open-1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Renamed", user.FirstName)

	var count int64
	require.NoError(t, s.DB().Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestReRegisterChangesPassword(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/auth/register", "", registerBody("open-1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := registerBody("open-1")
	body["password"] = "rotated-password"
	resp, _ = doRequest(t, app, http.MethodPost, "/auth/register", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// The old password no longer works, the new one does.
	resp, _ = doRequest(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"externalId": "ext-open-1",
		"password":   "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"externalId": "ext-open-1",
		"password":   "rotated-password",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOwnerOpenIDPromotedToAdmin(t *testing.T) {
	app, s := newTestApp(t)

	body := registerBody("owner-open-id")
	body["role"] = models.RoleStudent
	resp, _ := doRequest(t, app, http.MethodPost, "/auth/register", "", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	user, err := s.GetUserByOpenID("owner-open-id")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestLoginLockoutAfterRepeatedFailures(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/auth/register", "", registerBody("open-1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	for i := 0; i < 5; i++ {
		resp, _ = doRequest(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
			"externalId": "ext-open-1",
			"password":   "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}

	// Even the right password is rejected while the account is locked.
	resp, _ = doRequest(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"externalId": "ext-open-1",
		"password":   "password123",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRefreshRotation(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/auth/register", "", registerBody("open-1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doRequest(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"externalId": "ext-open-1",
		"password":   "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.RefreshToken)

	resp, env = doRequest(t, app, http.MethodPost, "/auth/refresh", "", fiber.Map{
		"refreshToken": login.RefreshToken,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rotated struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rotated))
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEqual(t, login.RefreshToken, rotated.RefreshToken)

	// The old token is single-use.
	resp, _ = doRequest(t, app, http.MethodPost, "/auth/refresh", "", fiber.Map{
		"refreshToken": login.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMeAndLanguageSwitch(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doRequest(t, app, http.MethodPost, "/auth/register", "", registerBody("open-1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doRequest(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"externalId": "ext-open-1",
		"password":   "password123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))

	resp, env = doRequest(t, app, http.MethodGet, "/user/me", login.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var me models.User
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "open-1", me.OpenID)
	assert.Equal(t, models.LangEn, me.PreferredLanguage)

	resp, _ = doRequest(t, app, http.MethodPatch, "/user/language", login.AccessToken, fiber.Map{
		"language": models.LangHe,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = doRequest(t, app, http.MethodGet, "/user/me", login.AccessToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, models.LangHe, me.PreferredLanguage)

	// Unknown language is rejected by validation.
	resp, _ = doRequest(t, app, http.MethodPatch, "/user/language", login.AccessToken, fiber.Map{
		"language": "fr",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
