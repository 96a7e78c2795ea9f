package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"madrasa/config"
	"madrasa/database"
	adminRoutes "madrasa/routers/adminRoutes"
	authRoutes "madrasa/routers/authRoutes"
	courseRoutes "madrasa/routers/courseRoutes"
	learningRoutes "madrasa/routers/learningRoutes"
	schoolRoutes "madrasa/routers/schoolRoutes"
	"madrasa/store"
	"madrasa/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer database.Close(db)

	s := store.New(db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, s)
	schoolRoutes.SetupSchoolRoutes(app, s)
	courseRoutes.SetupCourseRoutes(app, s)
	learningRoutes.SetupLearningRoutes(app, s)
	adminRoutes.SetupAdminRoutes(app, s)

	cleanup := utils.InitializeTokenCleanup(s)
	defer cleanup.Stop()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down...")
		_ = app.Shutdown()
	}()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
