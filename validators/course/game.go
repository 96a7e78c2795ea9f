package courseValidator

import (
	"madrasa/middleware"
	"madrasa/models"

	"github.com/gofiber/fiber/v2"
)

// CreateGameRequest is the validated shape for game catalog creation.
type CreateGameRequest struct {
	Title       string      `json:"title"`
	TitleAr     *string     `json:"titleAr"`
	TitleHe     *string     `json:"titleHe"`
	Type        string      `json:"type"`
	LaunchURL   *string     `json:"launchUrl"`
	LaunchURLAr *string     `json:"launchUrlAr"`
	LaunchURLHe *string     `json:"launchUrlHe"`
	Config      interface{} `json:"config"`
}

func CreateGame() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateGameRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if !models.ValidGameType(reqData.Type) {
			errors["type"] = "Type must be LTI, SCORM, XAPI or HTML5!"
		}
		if reqData.LaunchURL != nil && validate.Var(*reqData.LaunchURL, "url") != nil {
			errors["launchUrl"] = "Invalid launch URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGame", reqData)
		return c.Next()
	}
}

// LinkGameRequest attaches a catalog game to a unit.
type LinkGameRequest struct {
	UnitID             uint        `json:"unitId"`
	GameID             uint        `json:"gameId"`
	RequiredToComplete bool        `json:"requiredToComplete"`
	ScoringRules       interface{} `json:"scoringRules"`
	Order              int         `json:"order"`
}

func LinkGame() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LinkGameRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UnitID == 0 {
			errors["unitId"] = "Unit id is required!"
		}
		if reqData.GameID == 0 {
			errors["gameId"] = "Game id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLinkGame", reqData)
		return c.Next()
	}
}
