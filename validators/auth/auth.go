package authValidator

import (
	"madrasa/middleware"
	"madrasa/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RegisterRequest is the validated shape for sign-up / first-sign-in upsert.
type RegisterRequest struct {
	OpenID            string  `json:"openId"`
	ExternalID        string  `json:"externalId"`
	Email             *string `json:"email"`
	Password          string  `json:"password"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	Role              *string `json:"role"`
	SchoolID          *uint   `json:"schoolId"`
	PreferredLanguage *string `json:"preferredLanguage"`
}

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.OpenID == "" {
			errors["openId"] = "Open id is required!"
		}
		if reqData.ExternalID == "" {
			errors["externalId"] = "External id is required!"
		}
		if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters!"
		}
		if reqData.FirstName == "" {
			errors["firstName"] = "First name is required!"
		}
		if reqData.LastName == "" {
			errors["lastName"] = "Last name is required!"
		}
		if reqData.Email != nil && validate.Var(*reqData.Email, "email") != nil {
			errors["email"] = "Invalid email address!"
		}
		if reqData.Role != nil && !models.ValidRole(*reqData.Role) {
			errors["role"] = "Role must be STUDENT, TEACHER or ADMIN!"
		}
		if reqData.PreferredLanguage != nil && !models.ValidLanguage(*reqData.PreferredLanguage) {
			errors["preferredLanguage"] = "Language must be en, ar or he!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// LoginRequest authenticates by external identifier.
type LoginRequest struct {
	ExternalID string `json:"externalId"`
	Password   string `json:"password"`
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ExternalID == "" {
			errors["externalId"] = "External id is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// RefreshRequest rotates a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func Refresh() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RefreshRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.RefreshToken == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"refreshToken": "Refresh token is required!",
			})
		}

		c.Locals("validatedRefresh", reqData)
		return c.Next()
	}
}

// UpdateLanguageRequest switches the caller's preferred display language.
type UpdateLanguageRequest struct {
	Language string `json:"language"`
}

func UpdateLanguage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateLanguageRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !models.ValidLanguage(reqData.Language) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"language": "Language must be en, ar or he!",
			})
		}

		c.Locals("validatedLanguage", reqData)
		return c.Next()
	}
}

// UpdateProfileRequest updates the caller's own mutable fields.
type UpdateProfileRequest struct {
	FirstName         *string `json:"firstName"`
	LastName          *string `json:"lastName"`
	Email             *string `json:"email"`
	PreferredLanguage *string `json:"preferredLanguage"`
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Email != nil && validate.Var(*reqData.Email, "email") != nil {
			errors["email"] = "Invalid email address!"
		}
		if reqData.PreferredLanguage != nil && !models.ValidLanguage(*reqData.PreferredLanguage) {
			errors["preferredLanguage"] = "Language must be en, ar or he!"
		}
		if reqData.FirstName != nil && *reqData.FirstName == "" {
			errors["firstName"] = "First name cannot be empty!"
		}
		if reqData.LastName != nil && *reqData.LastName == "" {
			errors["lastName"] = "Last name cannot be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
