package learningController

import (
	"errors"
	"log"
	"time"

	"madrasa/middleware"
	"madrasa/models"
	"madrasa/store"
	"madrasa/utils"
	learningValidator "madrasa/validators/learning"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	Store *store.Store
}

func New(s *store.Store) *Controller {
	return &Controller{Store: s}
}

func (ctl *Controller) emitEvent(userID uint, eventType string, props interface{}) {
	event := &models.AnalyticsEvent{
		UserID:    &userID,
		EventType: eventType,
		Props:     utils.ToJSON(props),
	}
	if err := ctl.Store.CreateAnalyticsEvent(event); err != nil {
		log.Printf("Error writing analytics event: %v", err)
	}
}

// Enroll registers the caller into a public course. A second attempt on the
// same course hits the unique constraint and maps to 409.
func (ctl *Controller) Enroll(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnroll").(*learningValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	userID := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	course, err := ctl.Store.GetCourseByID(reqData.CourseID)
	if err != nil {
		log.Printf("Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if course.Visibility == models.VisibilityPrivate && role == models.RoleStudent {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This course is not open for enrollment!", nil)
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: reqData.CourseID,
		Status:   models.EnrollmentActive,
	}

	if err := ctl.Store.CreateEnrollment(&enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
		}
		log.Printf("Error creating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll!", nil)
	}

	ctl.emitEvent(userID, models.EventCourseEnrolled, fiber.Map{"courseId": reqData.CourseID})

	// Confirmation mail is best-effort and must not block the response.
	go func(uid uint, title string) {
		user, err := ctl.Store.GetUserByID(uid)
		if err != nil || user == nil || user.Email == nil {
			return
		}
		subject, body := utils.EnrollmentEmail(user.FirstName, title)
		if err := utils.SendEmail([]string{*user.Email}, subject, body); err != nil {
			log.Printf("Error sending enrollment email: %v", err)
		}
	}(userID, course.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully!", enrollment)
}

// MyEnrollments returns the caller's enrollments with their courses.
func (ctl *Controller) MyEnrollments(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	enrollments, err := ctl.Store.ListEnrollmentsByUser(userID)
	if err != nil {
		log.Printf("Error listing enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

// CourseEnrollments returns everyone enrolled in a course. Teacher only.
func (ctl *Controller) CourseEnrollments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	enrollments, err := ctl.Store.ListEnrollmentsByCourse(courseID)
	if err != nil {
		log.Printf("Error listing enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

// CompleteCourse marks the caller's enrollment as completed.
func (ctl *Controller) CompleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	userID := c.Locals("userId").(uint)

	now := time.Now()
	affected, err := ctl.Store.UpdateEnrollmentStatus(userID, courseID, models.EnrollmentCompleted, &now)
	if err != nil {
		log.Printf("Error completing enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}
	if affected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course marked as completed!", nil)
}
