package adminRoutes

import (
	analyticsController "madrasa/controllers/analytics"
	studentController "madrasa/controllers/student"
	"madrasa/middleware"
	"madrasa/store"
	courseValidator "madrasa/validators/course"
	learningValidator "madrasa/validators/learning"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes wires the teacher-facing student roster and the
// analytics/audit surface.
func SetupAdminRoutes(app *fiber.App, s *store.Store) {
	studentCtl := studentController.New(s)
	analyticsCtl := analyticsController.New(s)

	studentGroup := app.Group("/student")
	studentGroup.Get("/list", middleware.JWTMiddleware, middleware.TeacherOnly(), learningValidator.StudentList(), studentCtl.List)
	studentGroup.Get("/:id", middleware.JWTMiddleware, middleware.TeacherOnly(), courseValidator.IDParam(), studentCtl.Get)

	analyticsGroup := app.Group("/analytics")
	analyticsGroup.Get("/overview", middleware.JWTMiddleware, middleware.TeacherOnly(), analyticsCtl.Overview)
	analyticsGroup.Get("/course", middleware.JWTMiddleware, middleware.TeacherOnly(), learningValidator.CourseIDQuery(), analyticsCtl.Course)
	analyticsGroup.Get("/events", middleware.JWTMiddleware, middleware.TeacherOnly(), learningValidator.AnalyticsEvents(), analyticsCtl.Events)

	auditGroup := app.Group("/audit-log")
	auditGroup.Get("/list", middleware.JWTMiddleware, middleware.AdminOnly(), learningValidator.AuditLogList(), analyticsCtl.AuditLogs)
}
