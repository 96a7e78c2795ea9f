package learningRoutes

import (
	learningController "madrasa/controllers/learning"
	"madrasa/middleware"
	"madrasa/store"
	learningValidator "madrasa/validators/learning"

	"github.com/gofiber/fiber/v2"
)

// SetupLearningRoutes wires enrollment, progress and game-session routes.
func SetupLearningRoutes(app *fiber.App, s *store.Store) {
	ctl := learningController.New(s)

	enrollGroup := app.Group("/enrollment")
	enrollGroup.Post("/enroll", middleware.JWTMiddleware, middleware.StudentOnly(), learningValidator.Enroll(), ctl.Enroll)
	enrollGroup.Get("/mine", middleware.JWTMiddleware, middleware.StudentOnly(), ctl.MyEnrollments)
	enrollGroup.Get("/course", middleware.JWTMiddleware, middleware.TeacherOnly(), learningValidator.CourseIDQuery(), ctl.CourseEnrollments)
	enrollGroup.Post("/complete", middleware.JWTMiddleware, middleware.StudentOnly(), learningValidator.CourseIDQuery(), ctl.CompleteCourse)

	progressGroup := app.Group("/progress")
	progressGroup.Post("/update", middleware.JWTMiddleware, middleware.StudentOnly(), learningValidator.ProgressUpdate(), ctl.UpdateProgress)
	progressGroup.Get("/lecture", middleware.JWTMiddleware, middleware.StudentOnly(), learningValidator.LectureIDQuery(), ctl.GetProgress)
	progressGroup.Get("/mine", middleware.JWTMiddleware, middleware.StudentOnly(), ctl.MyProgress)
	progressGroup.Get("/course", middleware.JWTMiddleware, middleware.StudentOnly(), learningValidator.CourseIDQuery(), ctl.CourseProgress)

	sessionGroup := app.Group("/game-session")
	sessionGroup.Post("/start", middleware.JWTMiddleware, middleware.StudentOnly(), learningValidator.CreateGameSession(), ctl.StartGameSession)
	sessionGroup.Patch("/update", middleware.JWTMiddleware, middleware.StudentOnly(), learningValidator.UpdateGameSession(), ctl.UpdateGameSession)
	sessionGroup.Get("/mine", middleware.JWTMiddleware, middleware.StudentOnly(), ctl.MyGameSessions)
}
