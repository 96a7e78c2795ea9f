package courseController

import (
	"log"
	"strings"

	"madrasa/config"
	"madrasa/middleware"
	"madrasa/models"
	"madrasa/utils"
	courseValidator "madrasa/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// courseForLecture walks lecture -> unit -> course for ownership checks.
func (ctl *Controller) courseForLecture(lectureID uint) (*models.Course, *models.Lecture, error) {
	lecture, err := ctl.Store.GetLectureByID(lectureID)
	if err != nil || lecture == nil {
		return nil, lecture, err
	}
	unit, err := ctl.Store.GetUnitByID(lecture.UnitID)
	if err != nil || unit == nil {
		return nil, lecture, err
	}
	course, err := ctl.Store.GetCourseByID(unit.CourseID)
	return course, lecture, err
}

// ListLectures returns a unit's lectures in display order.
func (ctl *Controller) ListLectures(c *fiber.Ctx) error {
	unitID := c.Locals("unitID").(uint)

	lectures, err := ctl.Store.ListLecturesByUnit(unitID)
	if err != nil {
		log.Printf("Error listing lectures: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lectures!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lectures fetched successfully!", lectures)
}

// GetLecture returns one lecture with its attachments.
func (ctl *Controller) GetLecture(c *fiber.Ctx) error {
	lectureID := c.Locals("entityID").(uint)

	lecture, err := ctl.Store.GetLectureByID(lectureID)
	if err != nil {
		log.Printf("Error fetching lecture: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lecture!", nil)
	}
	if lecture == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	attachments, err := ctl.Store.ListAttachmentsByLecture(lectureID)
	if err != nil {
		log.Printf("Error fetching attachments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lecture!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture fetched successfully!", fiber.Map{
		"lecture":     lecture,
		"attachments": attachments,
	})
}

// CreateLecture adds a lecture to a unit in a course the caller owns.
func (ctl *Controller) CreateLecture(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLecture").(*courseValidator.CreateLectureRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	userID := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	unit, err := ctl.Store.GetUnitByID(reqData.UnitID)
	if err != nil {
		log.Printf("Error fetching unit: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lecture!", nil)
	}
	if unit == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Unit not found!", nil)
	}

	course, err := ctl.Store.GetCourseByID(unit.CourseID)
	if err != nil {
		log.Printf("Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lecture!", nil)
	}
	if course != nil && !canManageCourse(course, userID, role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	lecture := models.Lecture{
		UnitID:            reqData.UnitID,
		Title:             reqData.Title,
		TitleAr:           reqData.TitleAr,
		TitleHe:           reqData.TitleHe,
		Description:       reqData.Description,
		DescriptionAr:     reqData.DescriptionAr,
		DescriptionHe:     reqData.DescriptionHe,
		Order:             reqData.Order,
		VideoURL:          reqData.VideoURL,
		VideoURLAr:        reqData.VideoURLAr,
		VideoURLHe:        reqData.VideoURLHe,
		DurationSec:       reqData.DurationSec,
		CaptionsURL:       reqData.CaptionsURL,
		CaptionsURLAr:     reqData.CaptionsURLAr,
		CaptionsURLHe:     reqData.CaptionsURLHe,
		SummaryMarkdown:   reqData.SummaryMarkdown,
		SummaryMarkdownAr: reqData.SummaryMarkdownAr,
		SummaryMarkdownHe: reqData.SummaryMarkdownHe,
		References:        utils.ToJSON(reqData.References),
		AvailableFrom:     reqData.AvailableFrom,
		AvailableUntil:    reqData.AvailableUntil,
	}

	if err := ctl.Store.CreateLecture(&lecture); err != nil {
		log.Printf("Error creating lecture: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lecture!", nil)
	}

	ctl.audit(userID, models.AuditCreate, "lecture", &lecture.ID, fiber.Map{"title": lecture.Title, "unitId": lecture.UnitID})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lecture created successfully!", lecture)
}

// UpdateLecture overwrites the supplied lecture fields.
func (ctl *Controller) UpdateLecture(c *fiber.Ctx) error {
	lectureID := c.Locals("entityID").(uint)
	reqData, ok := c.Locals("validatedLectureUpdate").(*courseValidator.UpdateLectureRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	userID := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	course, lecture, err := ctl.courseForLecture(lectureID)
	if err != nil {
		log.Printf("Error fetching lecture: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lecture!", nil)
	}
	if lecture == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
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
	if reqData.VideoURL != nil {
		fields["video_url"] = *reqData.VideoURL
	}
	if reqData.VideoURLAr != nil {
		fields["video_url_ar"] = *reqData.VideoURLAr
	}
	if reqData.VideoURLHe != nil {
		fields["video_url_he"] = *reqData.VideoURLHe
	}
	if reqData.DurationSec != nil {
		fields["duration_sec"] = *reqData.DurationSec
	}
	if reqData.CaptionsURL != nil {
		fields["captions_url"] = *reqData.CaptionsURL
	}
	if reqData.CaptionsURLAr != nil {
		fields["captions_url_ar"] = *reqData.CaptionsURLAr
	}
	if reqData.CaptionsURLHe != nil {
		fields["captions_url_he"] = *reqData.CaptionsURLHe
	}
	if reqData.SummaryMarkdown != nil {
		fields["summary_markdown"] = *reqData.SummaryMarkdown
	}
	if reqData.SummaryMarkdownAr != nil {
		fields["summary_markdown_ar"] = *reqData.SummaryMarkdownAr
	}
	if reqData.SummaryMarkdownHe != nil {
		fields["summary_markdown_he"] = *reqData.SummaryMarkdownHe
	}
	if reqData.References != nil {
		fields["references"] = utils.ToJSON(reqData.References)
	}

	if err := ctl.Store.UpdateLecture(lectureID, fields); err != nil {
		log.Printf("Error updating lecture: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lecture!", nil)
	}

	ctl.audit(userID, models.AuditUpdate, "lecture", &lectureID, fields)

	updated, err := ctl.Store.GetLectureByID(lectureID)
	if err != nil || updated == nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch updated lecture!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture updated successfully!", updated)
}

// DeleteLecture hard-deletes a lecture. Attachments and progress rows are not
// cascaded.
func (ctl *Controller) DeleteLecture(c *fiber.Ctx) error {
	lectureID := c.Locals("entityID").(uint)
	userID := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	course, lecture, err := ctl.courseForLecture(lectureID)
	if err != nil {
		log.Printf("Error fetching lecture: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lecture!", nil)
	}
	if lecture == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}
	if course != nil && !canManageCourse(course, userID, role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	if err := ctl.Store.DeleteLecture(lectureID); err != nil {
		log.Printf("Error deleting lecture: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lecture!", nil)
	}

	ctl.audit(userID, models.AuditDelete, "lecture", &lectureID, fiber.Map{"title": lecture.Title})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture deleted successfully!", nil)
}

// UploadURL hands out a direct-to-storage upload slot for a video file and the
// public URL it will be served from.
func (ctl *Controller) UploadURL(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUploadURL").(*courseValidator.UploadURLRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	name := strings.ReplaceAll(reqData.FileName, " ", "-")
	key := "videos/" + uuid.NewString() + "-" + name

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Upload URL generated successfully!", fiber.Map{
		"key":       key,
		"uploadUrl": config.AppConfig.MediaUploadURL + "/" + key,
		"fileUrl":   config.AppConfig.MediaPublicURL + "/" + key,
		"fileType":  reqData.FileType,
	})
}

// CreateAttachment adds a downloadable file to a lecture.
func (ctl *Controller) CreateAttachment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedAttachment").(*courseValidator.CreateAttachmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	userID := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	course, lecture, err := ctl.courseForLecture(reqData.LectureID)
	if err != nil {
		log.Printf("Error fetching lecture: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create attachment!", nil)
	}
	if lecture == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}
	if course != nil && !canManageCourse(course, userID, role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	attachment := models.Attachment{
		LectureID: reqData.LectureID,
		Title:     reqData.Title,
		TitleAr:   reqData.TitleAr,
		TitleHe:   reqData.TitleHe,
		FileURL:   reqData.FileURL,
		FileURLAr: reqData.FileURLAr,
		FileURLHe: reqData.FileURLHe,
		FileType:  reqData.FileType,
		FileSize:  reqData.FileSize,
	}

	if err := ctl.Store.CreateAttachment(&attachment); err != nil {
		log.Printf("Error creating attachment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create attachment!", nil)
	}

	ctl.audit(userID, models.AuditCreate, "attachment", &attachment.ID, fiber.Map{"title": attachment.Title, "lectureId": attachment.LectureID})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Attachment created successfully!", attachment)
}

// DeleteAttachment removes an attachment row. The stored file is untouched.
func (ctl *Controller) DeleteAttachment(c *fiber.Ctx) error {
	attachmentID := c.Locals("entityID").(uint)
	userID := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	attachment, err := ctl.Store.GetAttachmentByID(attachmentID)
	if err != nil {
		log.Printf("Error fetching attachment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete attachment!", nil)
	}
	if attachment == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Attachment not found!", nil)
	}

	course, _, err := ctl.courseForLecture(attachment.LectureID)
	if err != nil {
		log.Printf("Error fetching lecture: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete attachment!", nil)
	}
	if course != nil && !canManageCourse(course, userID, role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	if err := ctl.Store.DeleteAttachment(attachmentID); err != nil {
		log.Printf("Error deleting attachment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete attachment!", nil)
	}

	ctl.audit(userID, models.AuditDelete, "attachment", &attachmentID, fiber.Map{"title": attachment.Title})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attachment deleted successfully!", nil)
}
