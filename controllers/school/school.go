package schoolController

import (
	"log"

	"madrasa/middleware"
	"madrasa/models"
	"madrasa/store"
	"madrasa/utils"
	schoolValidator "madrasa/validators/school"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Store *store.Store
}

func New(s *store.Store) *Controller {
	return &Controller{Store: s}
}

func (ctl *Controller) audit(actorID uint, action, entityType string, entityID *uint, meta interface{}) {
	entry := &models.AuditLog{
		ActorUserID: actorID,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Meta:        utils.ToJSON(meta),
	}
	if err := ctl.Store.CreateAuditLog(entry); err != nil {
		log.Printf("Error writing audit log: %v", err)
	}
}

// List returns all schools ordered by name.
func (ctl *Controller) List(c *fiber.Ctx) error {
	schools, err := ctl.Store.ListSchools()
	if err != nil {
		log.Printf("Error listing schools: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch schools!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Schools fetched successfully!", schools)
}

// Get returns one school by id.
func (ctl *Controller) Get(c *fiber.Ctx) error {
	schoolID := c.Locals("schoolID").(uint)

	school, err := ctl.Store.GetSchoolByID(schoolID)
	if err != nil {
		log.Printf("Error fetching school: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch school!", nil)
	}
	if school == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "School not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "School fetched successfully!", school)
}

// Create registers a new school.
func (ctl *Controller) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSchool").(*schoolValidator.CreateSchoolRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	actorID := c.Locals("userId").(uint)

	school := models.School{
		Name:         reqData.Name,
		NameAr:       reqData.NameAr,
		NameHe:       reqData.NameHe,
		Region:       reqData.Region,
		ContactEmail: reqData.ContactEmail,
		Meta:         utils.ToJSON(reqData.Meta),
	}

	if err := ctl.Store.CreateSchool(&school); err != nil {
		log.Printf("Error creating school: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create school!", nil)
	}

	ctl.audit(actorID, models.AuditCreate, "school", &school.ID, fiber.Map{"name": school.Name})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "School created successfully!", school)
}

// Update overwrites the supplied school fields.
func (ctl *Controller) Update(c *fiber.Ctx) error {
	schoolID := c.Locals("schoolID").(uint)
	reqData, ok := c.Locals("validatedSchoolUpdate").(*schoolValidator.UpdateSchoolRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	actorID := c.Locals("userId").(uint)

	existing, err := ctl.Store.GetSchoolByID(schoolID)
	if err != nil {
		log.Printf("Error fetching school: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update school!", nil)
	}
	if existing == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "School not found!", nil)
	}

	fields := make(map[string]interface{})
	if reqData.Name != nil {
		fields["name"] = *reqData.Name
	}
	if reqData.NameAr != nil {
		fields["name_ar"] = *reqData.NameAr
	}
	if reqData.NameHe != nil {
		fields["name_he"] = *reqData.NameHe
	}
	if reqData.Region != nil {
		fields["region"] = *reqData.Region
	}
	if reqData.ContactEmail != nil {
		fields["contact_email"] = *reqData.ContactEmail
	}

	if err := ctl.Store.UpdateSchool(schoolID, fields); err != nil {
		log.Printf("Error updating school: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update school!", nil)
	}

	ctl.audit(actorID, models.AuditUpdate, "school", &schoolID, fields)

	school, err := ctl.Store.GetSchoolByID(schoolID)
	if err != nil || school == nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch updated school!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "School updated successfully!", school)
}

// Delete removes a school. Users keep their dangling school id.
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	schoolID := c.Locals("schoolID").(uint)
	actorID := c.Locals("userId").(uint)

	existing, err := ctl.Store.GetSchoolByID(schoolID)
	if err != nil {
		log.Printf("Error fetching school: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete school!", nil)
	}
	if existing == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "School not found!", nil)
	}

	if err := ctl.Store.DeleteSchool(schoolID); err != nil {
		log.Printf("Error deleting school: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete school!", nil)
	}

	ctl.audit(actorID, models.AuditDelete, "school", &schoolID, fiber.Map{"name": existing.Name})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "School deleted successfully!", nil)
}
