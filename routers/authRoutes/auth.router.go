package authRoutes

import (
	authController "madrasa/controllers/auth"
	"madrasa/middleware"
	"madrasa/store"
	authValidator "madrasa/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, s *store.Store) {
	ctl := authController.New(s)

	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), ctl.Register)
	authGroup.Post("/login", authValidator.Login(), ctl.Login)
	authGroup.Post("/refresh", authValidator.Refresh(), ctl.Refresh)
	authGroup.Post("/logout", middleware.JWTMiddleware, ctl.Logout)

	userGroup := app.Group("/user")
	userGroup.Get("/me", middleware.JWTMiddleware, ctl.Me)
	userGroup.Patch("/language", middleware.JWTMiddleware, authValidator.UpdateLanguage(), ctl.UpdateLanguage)
	userGroup.Patch("/profile", middleware.JWTMiddleware, authValidator.UpdateProfile(), ctl.UpdateProfile)
}
