package learningValidator

import (
	"strconv"

	"madrasa/middleware"
	"madrasa/models"

	"github.com/gofiber/fiber/v2"
)

// EnrollRequest registers the caller into a course.
type EnrollRequest struct {
	CourseID uint `json:"courseId"`
}

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"courseId": "Course id is required!",
			})
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

// ProgressUpdateRequest is the periodic playback report. The completed flag
// is computed client-side (position/duration >= 0.95) and stored as-is.
type ProgressUpdateRequest struct {
	LectureID       uint   `json:"lectureId"`
	PositionSec     int    `json:"positionSec"`
	Completed       bool   `json:"completed"`
	WatchedLanguage string `json:"watchedLanguage"`
}

func ProgressUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressUpdateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LectureID == 0 {
			errors["lectureId"] = "Lecture id is required!"
		}
		if reqData.PositionSec < 0 {
			errors["positionSec"] = "Position cannot be negative!"
		}
		if !models.ValidLanguage(reqData.WatchedLanguage) {
			errors["watchedLanguage"] = "Language must be en, ar or he!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// LectureIDQuery parses and validates the lectureId query parameter.
func LectureIDQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Query("lectureId"))
		if err != nil || id < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"lectureId": "Lecture id must be a positive number!",
			})
		}
		c.Locals("lectureID", uint(id))
		return c.Next()
	}
}

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

// CreateGameSessionRequest opens a play-through log.
type CreateGameSessionRequest struct {
	GameID         uint   `json:"gameId"`
	UnitID         uint   `json:"unitId"`
	PlayedLanguage string `json:"playedLanguage"`
}

func CreateGameSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateGameSessionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.GameID == 0 {
			errors["gameId"] = "Game id is required!"
		}
		if reqData.UnitID == 0 {
			errors["unitId"] = "Unit id is required!"
		}
		if !models.ValidLanguage(reqData.PlayedLanguage) {
			errors["playedLanguage"] = "Language must be en, ar or he!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGameSession", reqData)
		return c.Next()
	}
}

// UpdateGameSessionRequest closes or updates a play-through log.
type UpdateGameSessionRequest struct {
	SessionID   uint        `json:"sessionId"`
	Score       *float64    `json:"score"`
	Completed   *bool       `json:"completed"`
	DurationSec *int        `json:"durationSec"`
	RawEvents   interface{} `json:"rawEvents"`
}

func UpdateGameSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateGameSessionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SessionID == 0 {
			errors["sessionId"] = "Session id is required!"
		}
		if reqData.DurationSec != nil && *reqData.DurationSec < 0 {
			errors["durationSec"] = "Duration cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGameSessionUpdate", reqData)
		return c.Next()
	}
}

// StudentListRequest narrows the teacher-facing student listing.
type StudentListRequest struct {
	SchoolID *uint   `query:"schoolId" json:"schoolId"`
	Search   *string `query:"search" json:"search"`
	Limit    *int    `query:"limit" json:"limit"`
	Offset   *int    `query:"offset" json:"offset"`
}

func StudentList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StudentListRequest)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request query!", nil)
		}

		if reqData.Limit != nil && *reqData.Limit < 1 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"limit": "Limit must be greater than 0!",
			})
		}

		c.Locals("validatedStudentList", reqData)
		return c.Next()
	}
}

// AnalyticsEventsRequest narrows the analytics event listing.
type AnalyticsEventsRequest struct {
	UserID    *uint   `query:"userId" json:"userId"`
	EventType *string `query:"eventType" json:"eventType"`
	Limit     *int    `query:"limit" json:"limit"`
}

func AnalyticsEvents() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AnalyticsEventsRequest)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request query!", nil)
		}

		c.Locals("validatedAnalyticsEvents", reqData)
		return c.Next()
	}
}

// AuditLogListRequest narrows the admin audit trail listing.
type AuditLogListRequest struct {
	ActorUserID *uint   `query:"actorUserId" json:"actorUserId"`
	EntityType  *string `query:"entityType" json:"entityType"`
	Limit       *int    `query:"limit" json:"limit"`
	Offset      *int    `query:"offset" json:"offset"`
}

func AuditLogList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AuditLogListRequest)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request query!", nil)
		}

		c.Locals("validatedAuditLogList", reqData)
		return c.Next()
	}
}
