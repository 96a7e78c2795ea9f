package courseValidator

import (
	"strconv"

	"madrasa/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseIDQuery parses and validates the courseId query parameter.
func CourseIDQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Query("courseId"))
		if err != nil || id < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"courseId": "Course id must be a positive number!",
			})
		}
		c.Locals("courseID", uint(id))
		return c.Next()
	}
}

// CreateUnitRequest is the validated shape for unit creation.
type CreateUnitRequest struct {
	CourseID      uint    `json:"courseId"`
	Title         string  `json:"title"`
	TitleAr       *string `json:"titleAr"`
	TitleHe       *string `json:"titleHe"`
	Description   *string `json:"description"`
	DescriptionAr *string `json:"descriptionAr"`
	DescriptionHe *string `json:"descriptionHe"`
	Order         int     `json:"order"`
}

func CreateUnit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateUnitRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course id is required!"
		}
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUnit", reqData)
		return c.Next()
	}
}

// UpdateUnitRequest carries only the fields to overwrite.
type UpdateUnitRequest struct {
	Title         *string `json:"title"`
	TitleAr       *string `json:"titleAr"`
	TitleHe       *string `json:"titleHe"`
	Description   *string `json:"description"`
	DescriptionAr *string `json:"descriptionAr"`
	DescriptionHe *string `json:"descriptionHe"`
	Order         *int    `json:"order"`
}

func UpdateUnit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateUnitRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Title != nil && *reqData.Title == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"title": "Title cannot be empty!",
			})
		}

		c.Locals("validatedUnitUpdate", reqData)
		return c.Next()
	}
}
