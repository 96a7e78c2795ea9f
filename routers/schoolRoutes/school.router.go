package schoolRoutes

import (
	schoolController "madrasa/controllers/school"
	"madrasa/middleware"
	"madrasa/store"
	schoolValidator "madrasa/validators/school"

	"github.com/gofiber/fiber/v2"
)

func SetupSchoolRoutes(app *fiber.App, s *store.Store) {
	ctl := schoolController.New(s)

	schoolGroup := app.Group("/school")

	schoolGroup.Get("/list", middleware.JWTMiddleware, middleware.TeacherOnly(), ctl.List)
	schoolGroup.Get("/:id", middleware.JWTMiddleware, middleware.TeacherOnly(), schoolValidator.IDParam(), ctl.Get)
	schoolGroup.Post("/create", middleware.JWTMiddleware, middleware.TeacherOnly(), schoolValidator.CreateSchool(), ctl.Create)
	schoolGroup.Put("/:id", middleware.JWTMiddleware, middleware.TeacherOnly(), schoolValidator.IDParam(), schoolValidator.UpdateSchool(), ctl.Update)
	schoolGroup.Delete("/:id", middleware.JWTMiddleware, middleware.TeacherOnly(), schoolValidator.IDParam(), ctl.Delete)
}
