package courseController

import (
	"log"

	"madrasa/middleware"
	"madrasa/models"
	"madrasa/utils"
	courseValidator "madrasa/validators/course"

	"github.com/gofiber/fiber/v2"
)

// ListGames returns the interactive game catalog.
func (ctl *Controller) ListGames(c *fiber.Ctx) error {
	games, err := ctl.Store.ListGames()
	if err != nil {
		log.Printf("Error listing games: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch games!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Games fetched successfully!", games)
}

// GetGame returns one catalog game by id.
func (ctl *Controller) GetGame(c *fiber.Ctx) error {
	gameID := c.Locals("entityID").(uint)

	game, err := ctl.Store.GetGameByID(gameID)
	if err != nil {
		log.Printf("Error fetching game: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch game!", nil)
	}
	if game == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Game not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Game fetched successfully!", game)
}

// CreateGame adds a game to the catalog. Teacher only.
func (ctl *Controller) CreateGame(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGame").(*courseValidator.CreateGameRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	userID := c.Locals("userId").(uint)

	game := models.InteractiveGame{
		Title:       reqData.Title,
		TitleAr:     reqData.TitleAr,
		TitleHe:     reqData.TitleHe,
		Type:        reqData.Type,
		LaunchURL:   reqData.LaunchURL,
		LaunchURLAr: reqData.LaunchURLAr,
		LaunchURLHe: reqData.LaunchURLHe,
		Config:      utils.ToJSON(reqData.Config),
		CreatedBy:   userID,
	}

	if err := ctl.Store.CreateGame(&game); err != nil {
		log.Printf("Error creating game: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create game!", nil)
	}

	ctl.audit(userID, models.AuditCreate, "game", &game.ID, fiber.Map{"title": game.Title, "type": game.Type})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Game created successfully!", game)
}

// LinkGame attaches a catalog game to a unit in a course the caller owns.
func (ctl *Controller) LinkGame(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLinkGame").(*courseValidator.LinkGameRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	userID := c.Locals("userId").(uint)
	role, _ := c.Locals("role").(string)

	course, unit, err := ctl.courseForUnit(reqData.UnitID)
	if err != nil {
		log.Printf("Error fetching unit: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to link game!", nil)
	}
	if unit == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Unit not found!", nil)
	}
	if course != nil && !canManageCourse(course, userID, role) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
	}

	game, err := ctl.Store.GetGameByID(reqData.GameID)
	if err != nil {
		log.Printf("Error fetching game: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to link game!", nil)
	}
	if game == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Game not found!", nil)
	}

	link := models.UnitGame{
		UnitID:             reqData.UnitID,
		GameID:             reqData.GameID,
		RequiredToComplete: reqData.RequiredToComplete,
		ScoringRules:       utils.ToJSON(reqData.ScoringRules),
		Order:              reqData.Order,
	}

	if err := ctl.Store.LinkGameToUnit(&link); err != nil {
		log.Printf("Error linking game: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to link game!", nil)
	}

	ctl.audit(userID, models.AuditLinkGame, "unit_game", &link.ID, fiber.Map{"unitId": link.UnitID, "gameId": link.GameID})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Game linked successfully!", link)
}
