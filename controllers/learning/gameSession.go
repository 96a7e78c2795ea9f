package learningController

import (
	"log"
	"time"

	"madrasa/middleware"
	"madrasa/models"
	"madrasa/utils"
	learningValidator "madrasa/validators/learning"

	"github.com/gofiber/fiber/v2"
)

// StartGameSession opens a play-through log and emits a game_started event.
func (ctl *Controller) StartGameSession(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGameSession").(*learningValidator.CreateGameSessionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	userID := c.Locals("userId").(uint)

	game, err := ctl.Store.GetGameByID(reqData.GameID)
	if err != nil {
		log.Printf("Error fetching game: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start game session!", nil)
	}
	if game == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Game not found!", nil)
	}

	session := models.GameSession{
		UserID:         userID,
		GameID:         reqData.GameID,
		UnitID:         reqData.UnitID,
		PlayedLanguage: reqData.PlayedLanguage,
	}

	if err := ctl.Store.CreateGameSession(&session); err != nil {
		log.Printf("Error creating game session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start game session!", nil)
	}

	ctl.emitEvent(userID, models.EventGameStarted, fiber.Map{
		"gameId":    reqData.GameID,
		"unitId":    reqData.UnitID,
		"sessionId": session.ID,
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Game session started!", session)
}

// UpdateGameSession records score, duration and raw events for an open
// session. Completion is flagged once and emits a game_completed event.
func (ctl *Controller) UpdateGameSession(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGameSessionUpdate").(*learningValidator.UpdateGameSessionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	userID := c.Locals("userId").(uint)

	session, err := ctl.Store.GetGameSessionByID(reqData.SessionID)
	if err != nil {
		log.Printf("Error fetching game session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update game session!", nil)
	}
	if session == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Game session not found!", nil)
	}
	if session.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This is not your game session!", nil)
	}

	fields := make(map[string]interface{})
	if reqData.Score != nil {
		fields["score"] = *reqData.Score
	}
	if reqData.DurationSec != nil {
		fields["duration_sec"] = *reqData.DurationSec
	}
	if reqData.RawEvents != nil {
		fields["raw_events"] = utils.ToJSON(reqData.RawEvents)
	}

	justCompleted := reqData.Completed != nil && *reqData.Completed && !session.Completed
	if reqData.Completed != nil {
		fields["completed"] = *reqData.Completed
		if justCompleted {
			fields["completed_at"] = time.Now()
		}
	}

	if err := ctl.Store.UpdateGameSession(reqData.SessionID, fields); err != nil {
		log.Printf("Error updating game session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update game session!", nil)
	}

	if justCompleted {
		ctl.emitEvent(userID, models.EventGameCompleted, fiber.Map{
			"gameId":    session.GameID,
			"unitId":    session.UnitID,
			"sessionId": session.ID,
			"score":     reqData.Score,
		})
	}

	updated, err := ctl.Store.GetGameSessionByID(reqData.SessionID)
	if err != nil || updated == nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch updated session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Game session updated!", updated)
}

// MyGameSessions returns the caller's play-throughs, newest first.
func (ctl *Controller) MyGameSessions(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	sessions, err := ctl.Store.ListGameSessionsByUser(userID)
	if err != nil {
		log.Printf("Error listing game sessions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch game sessions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Game sessions fetched successfully!", sessions)
}
