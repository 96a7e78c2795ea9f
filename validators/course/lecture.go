package courseValidator

import (
	"strconv"
	"time"

	"madrasa/middleware"

	"github.com/gofiber/fiber/v2"
)

// UnitIDQuery parses and validates the unitId query parameter.
func UnitIDQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Query("unitId"))
		if err != nil || id < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"unitId": "Unit id must be a positive number!",
			})
		}
		c.Locals("unitID", uint(id))
		return c.Next()
	}
}

// CreateLectureRequest is the validated shape for lecture creation. The base
// video URL and duration are mandatory; everything per-language is optional.
type CreateLectureRequest struct {
	UnitID            uint        `json:"unitId"`
	Title             string      `json:"title"`
	TitleAr           *string     `json:"titleAr"`
	TitleHe           *string     `json:"titleHe"`
	Description       *string     `json:"description"`
	DescriptionAr     *string     `json:"descriptionAr"`
	DescriptionHe     *string     `json:"descriptionHe"`
	Order             int         `json:"order"`
	VideoURL          string      `json:"videoUrl"`
	VideoURLAr        *string     `json:"videoUrlAr"`
	VideoURLHe        *string     `json:"videoUrlHe"`
	DurationSec       int         `json:"durationSec"`
	CaptionsURL       *string     `json:"captionsUrl"`
	CaptionsURLAr     *string     `json:"captionsUrlAr"`
	CaptionsURLHe     *string     `json:"captionsUrlHe"`
	SummaryMarkdown   *string     `json:"summaryMarkdown"`
	SummaryMarkdownAr *string     `json:"summaryMarkdownAr"`
	SummaryMarkdownHe *string     `json:"summaryMarkdownHe"`
	References        interface{} `json:"references"`
	AvailableFrom     *time.Time  `json:"availableFrom"`
	AvailableUntil    *time.Time  `json:"availableUntil"`
}

func CreateLecture() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLectureRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UnitID == 0 {
			errors["unitId"] = "Unit id is required!"
		}
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.VideoURL == "" {
			errors["videoUrl"] = "Video URL is required!"
		}
		if reqData.DurationSec < 1 {
			errors["durationSec"] = "Duration must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLecture", reqData)
		return c.Next()
	}
}

// UpdateLectureRequest carries only the fields to overwrite.
type UpdateLectureRequest struct {
	Title             *string     `json:"title"`
	TitleAr           *string     `json:"titleAr"`
	TitleHe           *string     `json:"titleHe"`
	Description       *string     `json:"description"`
	DescriptionAr     *string     `json:"descriptionAr"`
	DescriptionHe     *string     `json:"descriptionHe"`
	Order             *int        `json:"order"`
	VideoURL          *string     `json:"videoUrl"`
	VideoURLAr        *string     `json:"videoUrlAr"`
	VideoURLHe        *string     `json:"videoUrlHe"`
	DurationSec       *int        `json:"durationSec"`
	CaptionsURL       *string     `json:"captionsUrl"`
	CaptionsURLAr     *string     `json:"captionsUrlAr"`
	CaptionsURLHe     *string     `json:"captionsUrlHe"`
	SummaryMarkdown   *string     `json:"summaryMarkdown"`
	SummaryMarkdownAr *string     `json:"summaryMarkdownAr"`
	SummaryMarkdownHe *string     `json:"summaryMarkdownHe"`
	References        interface{} `json:"references"`
}

func UpdateLecture() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateLectureRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && *reqData.Title == "" {
			errors["title"] = "Title cannot be empty!"
		}
		if reqData.VideoURL != nil && *reqData.VideoURL == "" {
			errors["videoUrl"] = "Video URL cannot be empty!"
		}
		if reqData.DurationSec != nil && *reqData.DurationSec < 1 {
			errors["durationSec"] = "Duration must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLectureUpdate", reqData)
		return c.Next()
	}
}

// UploadURLRequest asks for an upload slot for a lecture video.
type UploadURLRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

func UploadURL() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UploadURLRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.FileName == "" {
			errors["fileName"] = "File name is required!"
		}
		if reqData.FileType == "" {
			errors["fileType"] = "File type is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUploadURL", reqData)
		return c.Next()
	}
}

// CreateAttachmentRequest is the validated shape for attachment creation.
type CreateAttachmentRequest struct {
	LectureID uint    `json:"lectureId"`
	Title     string  `json:"title"`
	TitleAr   *string `json:"titleAr"`
	TitleHe   *string `json:"titleHe"`
	FileURL   string  `json:"fileUrl"`
	FileURLAr *string `json:"fileUrlAr"`
	FileURLHe *string `json:"fileUrlHe"`
	FileType  string  `json:"fileType"`
	FileSize  *int    `json:"fileSize"`
}

func CreateAttachment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateAttachmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LectureID == 0 {
			errors["lectureId"] = "Lecture id is required!"
		}
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.FileURL == "" {
			errors["fileUrl"] = "File URL is required!"
		}
		if reqData.FileType == "" {
			errors["fileType"] = "File type is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAttachment", reqData)
		return c.Next()
	}
}
