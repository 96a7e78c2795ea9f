package studentController

import (
	"log"

	"madrasa/middleware"
	"madrasa/models"
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

// List returns students matching the filters. Teacher only.
func (ctl *Controller) List(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStudentList").(*learningValidator.StudentListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	filters := store.StudentFilters{}
	if reqData.SchoolID != nil {
		filters.SchoolID = *reqData.SchoolID
	}
	if reqData.Search != nil {
		filters.Search = *reqData.Search
	}
	if reqData.Limit != nil {
		filters.Limit = *reqData.Limit
	}
	if reqData.Offset != nil {
		filters.Offset = *reqData.Offset
	}

	students, err := ctl.Store.ListStudents(filters)
	if err != nil {
		log.Printf("Error listing students: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", students)
}

// Get returns one student with their enrollments and progress. A user id that
// resolves to a non-student is a 404, not a 403.
func (ctl *Controller) Get(c *fiber.Ctx) error {
	studentID := c.Locals("entityID").(uint)

	user, err := ctl.Store.GetUserByID(studentID)
	if err != nil {
		log.Printf("Error fetching student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch student!", nil)
	}
	if user == nil || user.Role != models.RoleStudent {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	enrollments, err := ctl.Store.ListEnrollmentsByUser(studentID)
	if err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch student!", nil)
	}

	progress, err := ctl.Store.ListProgressByUser(studentID)
	if err != nil {
		log.Printf("Error fetching progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch student!", nil)
	}

	sessions, err := ctl.Store.ListGameSessionsByUser(studentID)
	if err != nil {
		log.Printf("Error fetching game sessions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student fetched successfully!", fiber.Map{
		"student":      user,
		"enrollments":  enrollments,
		"progress":     progress,
		"gameSessions": sessions,
	})
}
