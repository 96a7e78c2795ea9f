package schoolValidator

import (
	"strconv"

	"madrasa/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// IDParam parses and validates the :id path parameter.
func IDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil || id < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"id": "Id must be a positive number!",
			})
		}
		c.Locals("schoolID", uint(id))
		return c.Next()
	}
}

// CreateSchoolRequest is the validated shape for school creation.
type CreateSchoolRequest struct {
	Name         string                 `json:"name"`
	NameAr       *string                `json:"nameAr"`
	NameHe       *string                `json:"nameHe"`
	Region       *string                `json:"region"`
	ContactEmail *string                `json:"contactEmail"`
	Meta         map[string]interface{} `json:"meta"`
}

func CreateSchool() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSchoolRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.ContactEmail != nil && validate.Var(*reqData.ContactEmail, "email") != nil {
			errors["contactEmail"] = "Invalid email address!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSchool", reqData)
		return c.Next()
	}
}

// UpdateSchoolRequest carries only the fields to overwrite.
type UpdateSchoolRequest struct {
	Name         *string `json:"name"`
	NameAr       *string `json:"nameAr"`
	NameHe       *string `json:"nameHe"`
	Region       *string `json:"region"`
	ContactEmail *string `json:"contactEmail"`
}

func UpdateSchool() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateSchoolRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && *reqData.Name == "" {
			errors["name"] = "Name cannot be empty!"
		}
		if reqData.ContactEmail != nil && validate.Var(*reqData.ContactEmail, "email") != nil {
			errors["contactEmail"] = "Invalid email address!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSchoolUpdate", reqData)
		return c.Next()
	}
}
