package courseRoutes

import (
	courseController "madrasa/controllers/course"
	"madrasa/middleware"
	"madrasa/store"
	courseValidator "madrasa/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes wires course, unit, lecture, attachment and game routes.
func SetupCourseRoutes(app *fiber.App, s *store.Store) {
	ctl := courseController.New(s)

	courseGroup := app.Group("/course")

	// Catalog
	courseGroup.Get("/list", middleware.JWTMiddleware, courseValidator.CourseList(), ctl.List)
	courseGroup.Get("/mine", middleware.JWTMiddleware, middleware.TeacherOnly(), ctl.Mine)
	courseGroup.Get("/:id/preview", courseValidator.IDParam(), ctl.Preview)
	courseGroup.Get("/:id", middleware.JWTMiddleware, courseValidator.IDParam(), ctl.Get)

	// Authoring
	courseGroup.Post("/create", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.CreateCourse(), ctl.Create)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.IDParam(), courseValidator.UpdateCourse(), ctl.Update)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.IDParam(), ctl.Delete)
	courseGroup.Post("/:id/publish", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.IDParam(), ctl.Publish)

	// Units
	unitGroup := app.Group("/unit")
	unitGroup.Get("/list", middleware.JWTMiddleware, courseValidator.CourseIDQuery(), ctl.ListUnits)
	unitGroup.Get("/:id", middleware.JWTMiddleware, courseValidator.IDParam(), ctl.GetUnit)
	unitGroup.Post("/create", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.CreateUnit(), ctl.CreateUnit)
	unitGroup.Put("/:id", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.IDParam(), courseValidator.UpdateUnit(), ctl.UpdateUnit)
	unitGroup.Delete("/:id", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.IDParam(), ctl.DeleteUnit)

	// Lectures
	lectureGroup := app.Group("/lecture")
	lectureGroup.Get("/list", middleware.JWTMiddleware, courseValidator.UnitIDQuery(), ctl.ListLectures)
	lectureGroup.Get("/:id", middleware.JWTMiddleware, courseValidator.IDParam(), ctl.GetLecture)
	lectureGroup.Post("/create", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.CreateLecture(), ctl.CreateLecture)
	lectureGroup.Put("/:id", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.IDParam(), courseValidator.UpdateLecture(), ctl.UpdateLecture)
	lectureGroup.Delete("/:id", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.IDParam(), ctl.DeleteLecture)
	lectureGroup.Post("/upload-url", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.UploadURL(), ctl.UploadURL)

	// Attachments
	attachmentGroup := app.Group("/attachment")
	attachmentGroup.Post("/create", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.CreateAttachment(), ctl.CreateAttachment)
	attachmentGroup.Delete("/:id", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.IDParam(), ctl.DeleteAttachment)

	// Game catalog and unit links
	gameGroup := app.Group("/game")
	gameGroup.Get("/list", middleware.JWTMiddleware, middleware.TeacherOnly(), ctl.ListGames)
	gameGroup.Get("/:id", middleware.JWTMiddleware, courseValidator.IDParam(), ctl.GetGame)
	gameGroup.Post("/create", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.CreateGame(), ctl.CreateGame)
	gameGroup.Post("/link", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.LinkGame(), ctl.LinkGame)

	// Authoring-side machine translation
	courseGroup.Post("/translate", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.Translate(), ctl.Translate)
}
