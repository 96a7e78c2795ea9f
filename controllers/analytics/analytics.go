package analyticsController

import (
	"log"

	"madrasa/middleware"
	"madrasa/store"
	learningValidator "madrasa/validators/learning"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Store *store.Store
}

func New(s *store.Store) *Controller {
	return &Controller{Store: s}
}

// Overview returns the dashboard counters. Aggregation over the event log is
// not implemented yet; every counter is zero. TODO: aggregate from
// analytics_events once the dashboard design settles.
func (ctl *Controller) Overview(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Overview fetched successfully!", fiber.Map{
		"totalUsers":       0,
		"activeUsers":      0,
		"totalEnrollments": 0,
		"lecturesWatched":  0,
		"gamesPlayed":      0,
	})
}

// Course returns enrollment counts for one course.
func (ctl *Controller) Course(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	total, completed, err := ctl.Store.CountEnrollmentsByCourse(courseID)
	if err != nil {
		log.Printf("Error counting enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course analytics!", nil)
	}

	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course analytics fetched successfully!", fiber.Map{
		"courseId":             courseID,
		"totalEnrollments":     total,
		"completedEnrollments": completed,
		"completionRate":       rate,
	})
}

// Events returns raw analytics events, newest first.
func (ctl *Controller) Events(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAnalyticsEvents").(*learningValidator.AnalyticsEventsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	filters := store.AnalyticsEventFilters{Limit: 100}
	if reqData.UserID != nil {
		filters.UserID = *reqData.UserID
	}
	if reqData.EventType != nil {
		filters.EventType = *reqData.EventType
	}
	if reqData.Limit != nil {
		filters.Limit = *reqData.Limit
	}

	events, err := ctl.Store.ListAnalyticsEvents(filters)
	if err != nil {
		log.Printf("Error listing analytics events: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch events!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Events fetched successfully!", events)
}

// AuditLogs returns the admin audit trail, newest first.
func (ctl *Controller) AuditLogs(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAuditLogList").(*learningValidator.AuditLogListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	filters := store.AuditLogFilters{Limit: 100}
	if reqData.ActorUserID != nil {
		filters.ActorUserID = *reqData.ActorUserID
	}
	if reqData.EntityType != nil {
		filters.EntityType = *reqData.EntityType
	}
	if reqData.Limit != nil {
		filters.Limit = *reqData.Limit
	}
	if reqData.Offset != nil {
		filters.Offset = *reqData.Offset
	}

	logs, err := ctl.Store.ListAuditLogs(filters)
	if err != nil {
		log.Printf("Error listing audit logs: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch audit logs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Audit logs fetched successfully!", logs)
}
