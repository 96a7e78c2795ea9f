package learningController

import (
	"log"
	"time"

	"madrasa/middleware"
	"madrasa/models"
	learningValidator "madrasa/validators/learning"

	"github.com/gofiber/fiber/v2"
)

// UpdateProgress records a periodic playback report. One row per
// (user, lecture) pair; repeated reports overwrite position, completed and
// watched language in place. The completed flag arrives computed client-side
// and is stored as reported. The first report that flips completed emits a
// lecture_completed event.
func (ctl *Controller) UpdateProgress(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProgress").(*learningValidator.ProgressUpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	userID := c.Locals("userId").(uint)

	lecture, err := ctl.Store.GetLectureByID(reqData.LectureID)
	if err != nil {
		log.Printf("Error fetching lecture: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}
	if lecture == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lecture not found!", nil)
	}

	previous, err := ctl.Store.GetProgress(userID, reqData.LectureID)
	if err != nil {
		log.Printf("Error fetching progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	progress := models.Progress{
		UserID:          userID,
		LectureID:       reqData.LectureID,
		PositionSec:     reqData.PositionSec,
		Completed:       reqData.Completed,
		WatchedLanguage: reqData.WatchedLanguage,
	}

	if err := ctl.Store.UpsertProgress(&progress); err != nil {
		log.Printf("Error upserting progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	if reqData.Completed && (previous == nil || !previous.Completed) {
		ctl.emitEvent(userID, models.EventLectureCompleted, fiber.Map{
			"lectureId":       reqData.LectureID,
			"watchedLanguage": reqData.WatchedLanguage,
		})
	}

	// Keep the enrollment's last-accessed timestamp fresh. The lecture may
	// belong to an orphaned unit, in which case there is no enrollment to
	// touch and the update matches zero rows.
	if unit, err := ctl.Store.GetUnitByID(lecture.UnitID); err == nil && unit != nil {
		if err := ctl.Store.TouchEnrollment(userID, unit.CourseID, time.Now()); err != nil {
			log.Printf("Error touching enrollment: %v", err)
		}
	}

	saved, err := ctl.Store.GetProgress(userID, reqData.LectureID)
	if err != nil || saved == nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch saved progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress saved successfully!", saved)
}

// GetProgress returns the caller's progress on one lecture, or null when no
// report was ever made.
func (ctl *Controller) GetProgress(c *fiber.Ctx) error {
	lectureID := c.Locals("lectureID").(uint)
	userID := c.Locals("userId").(uint)

	progress, err := ctl.Store.GetProgress(userID, lectureID)
	if err != nil {
		log.Printf("Error fetching progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", progress)
}

// MyProgress returns every progress row the caller has.
func (ctl *Controller) MyProgress(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	rows, err := ctl.Store.ListProgressByUser(userID)
	if err != nil {
		log.Printf("Error listing progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", rows)
}

// CourseProgress returns the caller's progress across one course: every
// lecture in the course paired with its progress row, plus completion counts.
func (ctl *Controller) CourseProgress(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	userID := c.Locals("userId").(uint)

	units, err := ctl.Store.ListUnitsByCourse(courseID)
	if err != nil {
		log.Printf("Error fetching units: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	lectureIDs := make([]uint, 0)
	for _, unit := range units {
		lectures, err := ctl.Store.ListLecturesByUnit(unit.ID)
		if err != nil {
			log.Printf("Error fetching lectures: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
		}
		for _, lecture := range lectures {
			lectureIDs = append(lectureIDs, lecture.ID)
		}
	}

	rows, err := ctl.Store.ListProgressByUserAndLectures(userID, lectureIDs)
	if err != nil {
		log.Printf("Error listing progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	completed := 0
	for _, row := range rows {
		if row.Completed {
			completed++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"totalLectures":     len(lectureIDs),
		"completedLectures": completed,
		"progress":          rows,
	})
}
