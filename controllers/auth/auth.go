package authController

import (
	"log"
	"time"

	"madrasa/config"
	"madrasa/middleware"
	"madrasa/models"
	"madrasa/store"
	authValidator "madrasa/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxFailedLogins = 5
	lockDuration    = 15 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

type Controller struct {
	Store *store.Store
}

func New(s *store.Store) *Controller {
	return &Controller{Store: s}
}

// Register creates or refreshes a user on sign-in. Upsert semantics keyed by
// open id: insert if absent, else update the mutable fields. The configured
// platform owner is always promoted to ADMIN.
func (ctl *Controller) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user := models.User{
		OpenID:       reqData.OpenID,
		ExternalID:   reqData.ExternalID,
		Email:        reqData.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    reqData.FirstName,
		LastName:     reqData.LastName,
		SchoolID:     reqData.SchoolID,
		LastSignedIn: time.Now(),
	}
	if reqData.Role != nil {
		user.Role = *reqData.Role
	}
	if config.AppConfig.OwnerOpenID != "" && reqData.OpenID == config.AppConfig.OwnerOpenID {
		user.Role = models.RoleAdmin
	}
	if reqData.PreferredLanguage != nil {
		user.PreferredLanguage = *reqData.PreferredLanguage
	}

	if err := ctl.Store.UpsertUser(&user); err != nil {
		log.Printf("Error upserting user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	saved, err := ctl.Store.GetUserByOpenID(reqData.OpenID)
	if err != nil || saved == nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", saved)
}

// Login authenticates by external id and issues an access + refresh token
// pair. Repeated failures lock the account for a short window.
func (ctl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ctl.Store.GetUserByExternalID(reqData.ExternalID)
	if err != nil {
		log.Printf("Error fetching user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if user.LockedUntil != nil && user.LockedUntil.After(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account temporarily locked. Try again later!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(reqData.Password)); err != nil {
		fields := map[string]interface{}{"failed_login_attempts": user.FailedLoginAttempts + 1}
		if user.FailedLoginAttempts+1 >= maxFailedLogins {
			fields["locked_until"] = time.Now().Add(lockDuration)
			fields["failed_login_attempts"] = 0
		}
		if err := ctl.Store.UpdateUser(user.ID, fields); err != nil {
			log.Printf("Error recording failed login: %v", err)
		}
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	now := time.Now()
	if err := ctl.Store.UpdateUser(user.ID, map[string]interface{}{
		"failed_login_attempts": 0,
		"locked_until":          nil,
		"last_login_at":         now,
		"last_signed_in":        now,
	}); err != nil {
		log.Printf("Error updating login timestamps: %v", err)
	}

	accessToken, err := middleware.GenerateJWT(user.ID, user.Role, user.PreferredLanguage)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	refresh := models.RefreshToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(refreshTokenTTL),
	}
	if err := ctl.Store.CreateRefreshToken(&refresh); err != nil {
		log.Printf("Error creating refresh token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"accessToken":  accessToken,
		"refreshToken": refresh.Token,
		"user":         user,
	})
}

// Refresh rotates a refresh token and issues a new access token.
func (ctl *Controller) Refresh(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRefresh").(*authValidator.RefreshRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	token, err := ctl.Store.GetRefreshToken(reqData.RefreshToken)
	if err != nil {
		log.Printf("Error fetching refresh token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
	if token == nil || token.ExpiresAt.Before(time.Now()) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired refresh token!", nil)
	}

	user, err := ctl.Store.GetUserByID(token.UserID)
	if err != nil || user == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired refresh token!", nil)
	}

	// Rotate: the old token is single-use.
	if err := ctl.Store.DeleteRefreshToken(token.Token); err != nil {
		log.Printf("Error deleting used refresh token: %v", err)
	}

	accessToken, err := middleware.GenerateJWT(user.ID, user.Role, user.PreferredLanguage)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	next := models.RefreshToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := ctl.Store.CreateRefreshToken(&next); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Token refreshed!", fiber.Map{
		"accessToken":  accessToken,
		"refreshToken": next.Token,
	})
}

// Logout revokes the supplied refresh token.
func (ctl *Controller) Logout(c *fiber.Ctx) error {
	reqData := new(authValidator.RefreshRequest)
	if err := c.BodyParser(reqData); err == nil && reqData.RefreshToken != "" {
		if err := ctl.Store.DeleteRefreshToken(reqData.RefreshToken); err != nil {
			log.Printf("Error revoking refresh token: %v", err)
		}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully!", nil)
}

// Me returns the authenticated caller.
func (ctl *Controller) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := ctl.Store.GetUserByID(userID)
	if err != nil {
		log.Printf("Error fetching user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// UpdateLanguage switches the caller's preferred display language.
func (ctl *Controller) UpdateLanguage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedLanguage").(*authValidator.UpdateLanguageRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctl.Store.UpdateUserLanguage(userID, reqData.Language); err != nil {
		log.Printf("Error updating language: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update language!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Language updated successfully!", nil)
}

// UpdateProfile updates the caller's own mutable fields.
func (ctl *Controller) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*authValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	fields := make(map[string]interface{})
	if reqData.FirstName != nil {
		fields["first_name"] = *reqData.FirstName
	}
	if reqData.LastName != nil {
		fields["last_name"] = *reqData.LastName
	}
	if reqData.Email != nil {
		fields["email"] = *reqData.Email
	}
	if reqData.PreferredLanguage != nil {
		fields["preferred_language"] = *reqData.PreferredLanguage
	}

	if err := ctl.Store.UpdateUser(userID, fields); err != nil {
		log.Printf("Error updating profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	user, err := ctl.Store.GetUserByID(userID)
	if err != nil || user == nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch updated profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}
