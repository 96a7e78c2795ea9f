package courseController

import (
	"log"
	"time"

	"madrasa/middleware"
	"madrasa/models"
	"madrasa/store"
	"madrasa/utils"
	courseValidator "madrasa/validators/course"

	"github.com/gofiber/fiber/v2"
)

type Controller struct {
	Store      *store.Store
	Translator *utils.Translator
}

func New(s *store.Store) *Controller {
	return &Controller{Store: s, Translator: utils.NewTranslator(s)}
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

// canManageCourse reports whether the caller may modify the course. Teachers
// manage only their own courses; admins manage everything.
func canManageCourse(course *models.Course, userID uint, role string) bool {
	return role == models.RoleAdmin || course.CreatedBy == userID
}

// List returns courses visible to the caller. A student's visibility filter is
// forced to PUBLIC regardless of what the request asked for.
func (ctl *Controller) List(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseList").(*courseValidator.CourseListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	role, _ := c.Locals("role").(string)

	filters := store.CourseFilters{}
	if reqData.Visibility != nil {
		filters.Visibility = *reqData.Visibility
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

	// Students never see private courses, whatever they asked for.
	if role == models.RoleStudent {
		filters.Visibility = models.VisibilityPublic
	}

	courses, err := ctl.Store.ListCourses(filters)
	if err != nil {
		log.Printf("Error listing courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// Mine returns the caller's own courses. Teacher only.
func (ctl *Controller) Mine(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	courses, err := ctl.Store.ListCourses(store.CourseFilters{CreatedBy: userID})
	if err != nil {
		log.Printf("Error listing courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

type lectureNode struct {
	models.Lecture
	Attachments []models.Attachment `json:"attachments"`
}

type unitNode struct {
	models.Unit
	Lectures []lectureNode         `json:"lectures"`
	Games    []store.UnitGameEntry `json:"games"`
}

type courseTree struct {
	models.Course
	Units []unitNode `json:"units"`
}

// Get returns the full course tree: units in order, each with its lectures,
// attachments and linked games.
func (ctl *Controller) Get(c *fiber.Ctx) error {
	courseID := c.Locals("entityID").(uint)
	userID, _ := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	course, err := ctl.Store.GetCourseByID(courseID)
	if err != nil {
		log.Printf("Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if course.Visibility == models.VisibilityPrivate && !canManageCourse(course, userID, role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this course!", nil)
	}

	units, err := ctl.Store.ListUnitsByCourse(courseID)
	if err != nil {
		log.Printf("Error fetching units: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	tree := courseTree{Course: *course, Units: make([]unitNode, 0, len(units))}
	for _, unit := range units {
		lectures, err := ctl.Store.ListLecturesByUnit(unit.ID)
		if err != nil {
			log.Printf("Error fetching lectures: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
		}

		nodes := make([]lectureNode, 0, len(lectures))
		for _, lecture := range lectures {
			attachments, err := ctl.Store.ListAttachmentsByLecture(lecture.ID)
			if err != nil {
				log.Printf("Error fetching attachments: %v", err)
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
			}
			nodes = append(nodes, lectureNode{Lecture: lecture, Attachments: attachments})
		}

		games, err := ctl.Store.ListGamesByUnit(unit.ID)
		if err != nil {
			log.Printf("Error fetching unit games: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
		}

		tree.Units = append(tree.Units, unitNode{Unit: unit, Lectures: nodes, Games: games})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", tree)
}

type lecturePreview struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	TitleAr     *string `json:"titleAr"`
	TitleHe     *string `json:"titleHe"`
	DurationSec int     `json:"durationSec"`
	Order       int     `json:"order"`
}

type unitPreview struct {
	models.Unit
	Lectures []lecturePreview `json:"lectures"`
}

type coursePreview struct {
	models.Course
	Units []unitPreview `json:"units"`
}

// Preview returns the public outline of a course without video URLs or
// attachments, for unauthenticated browsing.
func (ctl *Controller) Preview(c *fiber.Ctx) error {
	courseID := c.Locals("entityID").(uint)

	course, err := ctl.Store.GetCourseByID(courseID)
	if err != nil {
		log.Printf("Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}
	if course == nil || course.Visibility != models.VisibilityPublic {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	units, err := ctl.Store.ListUnitsByCourse(courseID)
	if err != nil {
		log.Printf("Error fetching units: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	preview := coursePreview{Course: *course, Units: make([]unitPreview, 0, len(units))}
	for _, unit := range units {
		lectures, err := ctl.Store.ListLecturesByUnit(unit.ID)
		if err != nil {
			log.Printf("Error fetching lectures: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
		}

		previews := make([]lecturePreview, 0, len(lectures))
		for _, lecture := range lectures {
			previews = append(previews, lecturePreview{
				ID:          lecture.ID,
				Title:       lecture.Title,
				TitleAr:     lecture.TitleAr,
				TitleHe:     lecture.TitleHe,
				DurationSec: lecture.DurationSec,
				Order:       lecture.Order,
			})
		}
		preview.Units = append(preview.Units, unitPreview{Unit: unit, Lectures: previews})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course preview fetched successfully!", preview)
}

// Create adds a course owned by the caller. Teacher only.
func (ctl *Controller) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	userID := c.Locals("userId").(uint)

	course := models.Course{
		Title:              reqData.Title,
		TitleAr:            reqData.TitleAr,
		TitleHe:            reqData.TitleHe,
		Description:        reqData.Description,
		DescriptionAr:      reqData.DescriptionAr,
		DescriptionHe:      reqData.DescriptionHe,
		ThumbnailURL:       reqData.ThumbnailURL,
		Tags:               utils.StringsToJSON(reqData.Tags),
		TagsAr:             utils.StringsToJSON(reqData.TagsAr),
		TagsHe:             utils.StringsToJSON(reqData.TagsHe),
		Visibility:         reqData.Visibility,
		Prerequisites:      reqData.Prerequisites,
		PrerequisitesAr:    reqData.PrerequisitesAr,
		PrerequisitesHe:    reqData.PrerequisitesHe,
		LearningOutcomes:   reqData.LearningOutcomes,
		LearningOutcomesAr: reqData.LearningOutcomesAr,
		LearningOutcomesHe: reqData.LearningOutcomesHe,
		EstimatedDuration:  reqData.EstimatedDuration,
		CreatedBy:          userID,
	}

	if err := ctl.Store.CreateCourse(&course); err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	ctl.audit(userID, models.AuditCreate, "course", &course.ID, fiber.Map{"title": course.Title})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// Update overwrites the supplied course fields. Ownership is immutable and the
// caller must own the course or be an admin.
func (ctl *Controller) Update(c *fiber.Ctx) error {
	courseID := c.Locals("entityID").(uint)
	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	userID := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	course, err := ctl.Store.GetCourseByID(courseID)
	if err != nil {
		log.Printf("Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if !canManageCourse(course, userID, role) {
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
	if reqData.ThumbnailURL != nil {
		fields["thumbnail_url"] = *reqData.ThumbnailURL
	}
	if reqData.Tags != nil {
		fields["tags"] = utils.StringsToJSON(reqData.Tags)
	}
	if reqData.TagsAr != nil {
		fields["tags_ar"] = utils.StringsToJSON(reqData.TagsAr)
	}
	if reqData.TagsHe != nil {
		fields["tags_he"] = utils.StringsToJSON(reqData.TagsHe)
	}
	if reqData.Visibility != nil {
		fields["visibility"] = *reqData.Visibility
	}
	if reqData.Prerequisites != nil {
		fields["prerequisites"] = *reqData.Prerequisites
	}
	if reqData.PrerequisitesAr != nil {
		fields["prerequisites_ar"] = *reqData.PrerequisitesAr
	}
	if reqData.PrerequisitesHe != nil {
		fields["prerequisites_he"] = *reqData.PrerequisitesHe
	}
	if reqData.LearningOutcomes != nil {
		fields["learning_outcomes"] = *reqData.LearningOutcomes
	}
	if reqData.LearningOutcomesAr != nil {
		fields["learning_outcomes_ar"] = *reqData.LearningOutcomesAr
	}
	if reqData.LearningOutcomesHe != nil {
		fields["learning_outcomes_he"] = *reqData.LearningOutcomesHe
	}
	if reqData.EstimatedDuration != nil {
		fields["estimated_duration"] = *reqData.EstimatedDuration
	}

	if err := ctl.Store.UpdateCourse(courseID, fields); err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	ctl.audit(userID, models.AuditUpdate, "course", &courseID, fields)

	updated, err := ctl.Store.GetCourseByID(courseID)
	if err != nil || updated == nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch updated course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", updated)
}

// Delete hard-deletes a course. Units, lectures and enrollments are left in
// place by design of the data layer.
func (ctl *Controller) Delete(c *fiber.Ctx) error {
	courseID := c.Locals("entityID").(uint)
	userID := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	course, err := ctl.Store.GetCourseByID(courseID)
	if err != nil {
		log.Printf("Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if !canManageCourse(course, userID, role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	if err := ctl.Store.DeleteCourse(courseID); err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	ctl.audit(userID, models.AuditDelete, "course", &courseID, fiber.Map{"title": course.Title})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// Publish stamps the course as published.
func (ctl *Controller) Publish(c *fiber.Ctx) error {
	courseID := c.Locals("entityID").(uint)
	userID := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	course, err := ctl.Store.GetCourseByID(courseID)
	if err != nil {
		log.Printf("Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}
	if course == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if !canManageCourse(course, userID, role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	now := time.Now()
	if err := ctl.Store.PublishCourse(courseID, now); err != nil {
		log.Printf("Error publishing course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to publish course!", nil)
	}

	ctl.audit(userID, models.AuditPublish, "course", &courseID, fiber.Map{"publishedAt": now})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course published successfully!", nil)
}

// Translate runs one string through the machine-translation service, used by
// the authoring UI to prefill Arabic/Hebrew override fields.
func (ctl *Controller) Translate(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTranslate").(*courseValidator.TranslateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	translated, err := ctl.Translator.Translate(reqData.Text, reqData.SourceLang, reqData.TargetLang, reqData.Context)
	if err != nil {
		log.Printf("Error translating text: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Translation failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Text translated successfully!", fiber.Map{
		"translatedText": translated,
	})
}
