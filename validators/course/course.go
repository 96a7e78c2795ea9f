package courseValidator

import (
	"strconv"

	"madrasa/middleware"
	"madrasa/models"

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
		c.Locals("entityID", uint(id))
		return c.Next()
	}
}

// CourseListRequest narrows the course listing. Visibility supplied by a
// student caller is overridden at the controller.
type CourseListRequest struct {
	Visibility *string `query:"visibility" json:"visibility"`
	Search     *string `query:"search" json:"search"`
	Limit      *int    `query:"limit" json:"limit"`
	Offset     *int    `query:"offset" json:"offset"`
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseListRequest)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request query!", nil)
		}

		errors := make(map[string]string)

		if reqData.Visibility != nil && !models.ValidVisibility(*reqData.Visibility) {
			errors["visibility"] = "Visibility must be PUBLIC or PRIVATE!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}
		if reqData.Offset != nil && *reqData.Offset < 0 {
			errors["offset"] = "Offset cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

// CreateCourseRequest is the validated shape for course creation. Base
// (English) title and description are mandatory; the Ar/He overrides are
// optional and resolve by fallback.
type CreateCourseRequest struct {
	Title              string   `json:"title"`
	TitleAr            *string  `json:"titleAr"`
	TitleHe            *string  `json:"titleHe"`
	Description        string   `json:"description"`
	DescriptionAr      *string  `json:"descriptionAr"`
	DescriptionHe      *string  `json:"descriptionHe"`
	ThumbnailURL       *string  `json:"thumbnailUrl"`
	Tags               []string `json:"tags"`
	TagsAr             []string `json:"tagsAr"`
	TagsHe             []string `json:"tagsHe"`
	Visibility         string   `json:"visibility"`
	Prerequisites      *string  `json:"prerequisites"`
	PrerequisitesAr    *string  `json:"prerequisitesAr"`
	PrerequisitesHe    *string  `json:"prerequisitesHe"`
	LearningOutcomes   *string  `json:"learningOutcomes"`
	LearningOutcomesAr *string  `json:"learningOutcomesAr"`
	LearningOutcomesHe *string  `json:"learningOutcomesHe"`
	EstimatedDuration  *int     `json:"estimatedDuration"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}
		if !models.ValidVisibility(reqData.Visibility) {
			errors["visibility"] = "Visibility must be PUBLIC or PRIVATE!"
		}
		if reqData.ThumbnailURL != nil && validate.Var(*reqData.ThumbnailURL, "url") != nil {
			errors["thumbnailUrl"] = "Invalid thumbnail URL!"
		}
		if reqData.EstimatedDuration != nil && *reqData.EstimatedDuration < 0 {
			errors["estimatedDuration"] = "Estimated duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourseRequest carries only the fields to overwrite. CreatedBy is not
// accepted here; ownership is immutable.
type UpdateCourseRequest struct {
	Title              *string  `json:"title"`
	TitleAr            *string  `json:"titleAr"`
	TitleHe            *string  `json:"titleHe"`
	Description        *string  `json:"description"`
	DescriptionAr      *string  `json:"descriptionAr"`
	DescriptionHe      *string  `json:"descriptionHe"`
	ThumbnailURL       *string  `json:"thumbnailUrl"`
	Tags               []string `json:"tags"`
	TagsAr             []string `json:"tagsAr"`
	TagsHe             []string `json:"tagsHe"`
	Visibility         *string  `json:"visibility"`
	Prerequisites      *string  `json:"prerequisites"`
	PrerequisitesAr    *string  `json:"prerequisitesAr"`
	PrerequisitesHe    *string  `json:"prerequisitesHe"`
	LearningOutcomes   *string  `json:"learningOutcomes"`
	LearningOutcomesAr *string  `json:"learningOutcomesAr"`
	LearningOutcomesHe *string  `json:"learningOutcomesHe"`
	EstimatedDuration  *int     `json:"estimatedDuration"`
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && *reqData.Title == "" {
			errors["title"] = "Title cannot be empty!"
		}
		if reqData.Description != nil && *reqData.Description == "" {
			errors["description"] = "Description cannot be empty!"
		}
		if reqData.Visibility != nil && !models.ValidVisibility(*reqData.Visibility) {
			errors["visibility"] = "Visibility must be PUBLIC or PRIVATE!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// TranslateRequest asks the translation service for one string.
type TranslateRequest struct {
	Text       string  `json:"text"`
	SourceLang string  `json:"sourceLang"`
	TargetLang string  `json:"targetLang"`
	Context    *string `json:"context"`
}

func Translate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TranslateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Text == "" {
			errors["text"] = "Text is required!"
		}
		if !models.ValidLanguage(reqData.SourceLang) {
			errors["sourceLang"] = "Source language must be en, ar or he!"
		}
		if !models.ValidLanguage(reqData.TargetLang) {
			errors["targetLang"] = "Target language must be en, ar or he!"
		}
		if reqData.SourceLang == reqData.TargetLang {
			errors["targetLang"] = "Target language must differ from source language!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTranslate", reqData)
		return c.Next()
	}
}
