package courseController

import (
	"log"

	"madrasa/middleware"
	"madrasa/models"
	courseValidator "madrasa/validators/course"

	"github.com/gofiber/fiber/v2"
)

// courseForUnit loads the parent course of a unit so ownership checks can run.
func (ctl *Controller) courseForUnit(unitID uint) (*models.Course, *models.Unit, error) {
	unit, err := ctl.Store.GetUnitByID(unitID)
	if err != nil || unit == nil {
		return nil, unit, err
	}
	course, err := ctl.Store.GetCourseByID(unit.CourseID)
	return course, unit, err
}

// ListUnits returns a course's units in display order.
func (ctl *Controller) ListUnits(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	units, err := ctl.Store.ListUnitsByCourse(courseID)
	if err != nil {
		log.Printf("Error listing units: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch units!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Units fetched successfully!", units)
}

// GetUnit returns one unit with its lectures and games.
func (ctl *Controller) GetUnit(c *fiber.Ctx) error {
	unitID := c.Locals("entityID").(uint)

	unit, err := ctl.Store.GetUnitByID(unitID)
	if err != nil {
		log.Printf("Error fetching unit: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch unit!", nil)
	}
	if unit == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Unit not found!", nil)
	}

	lectures, err := ctl.Store.ListLecturesByUnit(unitID)
	if err != nil {
		log.Printf("Error fetching lectures: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch unit!", nil)
	}
	games, err := ctl.Store.ListGamesByUnit(unitID)
	if err != nil {
		log.Printf("Error fetching unit games: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch unit!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unit fetched successfully!", fiber.Map{
		"unit":     unit,
		"lectures": lectures,
		"games":    games,
	})
}

// CreateUnit adds a unit to a course the caller owns.
func (ctl *Controller) CreateUnit(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUnit").(*courseValidator.CreateUnitRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	userID := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	course, err := ctl.Store.GetCourseByID(reqData.CourseID)
	if err != nil {
		log.Printf("Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create unit!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if !canManageCourse(course, userID, role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	unit := models.Unit{
		CourseID:      reqData.CourseID,
		Title:         reqData.Title,
		TitleAr:       reqData.TitleAr,
		TitleHe:       reqData.TitleHe,
		Description:   reqData.Description,
		DescriptionAr: reqData.DescriptionAr,
		DescriptionHe: reqData.DescriptionHe,
		Order:         reqData.Order,
	}

	if err := ctl.Store.CreateUnit(&unit); err != nil {
		log.Printf("Error creating unit: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create unit!", nil)
	}

	ctl.audit(userID, models.AuditCreate, "unit", &unit.ID, fiber.Map{"title": unit.Title, "courseId": unit.CourseID})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Unit created successfully!", unit)
}

// UpdateUnit overwrites the supplied unit fields.
func (ctl *Controller) UpdateUnit(c *fiber.Ctx) error {
	unitID := c.Locals("entityID").(uint)
	reqData, ok := c.Locals("validatedUnitUpdate").(*courseValidator.UpdateUnitRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	userID := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	course, unit, err := ctl.courseForUnit(unitID)
	if err != nil {
		log.Printf("Error fetching unit: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update unit!", nil)
	}
	if unit == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Unit not found!", nil)
	}
	if course != nil && !canManageCourse(course, userID, role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	fields := make(map[string]interface{})
	if reqData.Title != nil {
		fields["title"] = *reqData.Title
	}
	if reqData.TitleAr != nil {
		fields["title_ar"] = *reqData.TitleAr
	}
	if reqData.TitleHe != nil {
		fields["title_he"] = *reqData.TitleHe
	}
	if reqData.Description != nil {
		fields["description"] = *reqData.Description
	}
	if reqData.DescriptionAr != nil {
		fields["description_ar"] = *reqData.DescriptionAr
	}
	if reqData.DescriptionHe != nil {
		fields["description_he"] = *reqData.DescriptionHe
	}
	if reqData.Order != nil {
		fields["display_order"] = *reqData.Order
	}

	if err := ctl.Store.UpdateUnit(unitID, fields); err != nil {
		log.Printf("Error updating unit: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update unit!", nil)
	}

	ctl.audit(userID, models.AuditUpdate, "unit", &unitID, fields)

	updated, err := ctl.Store.GetUnitByID(unitID)
	if err != nil || updated == nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch updated unit!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unit updated successfully!", updated)
}

// DeleteUnit hard-deletes a unit. Lectures are not cascaded.
func (ctl *Controller) DeleteUnit(c *fiber.Ctx) error {
	unitID := c.Locals("entityID").(uint)
	userID := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	course, unit, err := ctl.courseForUnit(unitID)
	if err != nil {
		log.Printf("Error fetching unit: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete unit!", nil)
	}
	if unit == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Unit not found!", nil)
	}
	if course != nil && !canManageCourse(course, userID, role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	if err := ctl.Store.DeleteUnit(unitID); err != nil {
		log.Printf("Error deleting unit: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete unit!", nil)
	}

	ctl.audit(userID, models.AuditDelete, "unit", &unitID, fiber.Map{"title": unit.Title})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unit deleted successfully!", nil)
}
