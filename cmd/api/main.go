package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/edupulse/edupulse_server/configs"
	"github.com/edupulse/edupulse_server/database"
	"github.com/edupulse/edupulse_server/handlers"
	"github.com/edupulse/edupulse_server/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	db, err := database.Connect(database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database connected and migrated")

	app := fiber.New(fiber.Config{
		AppName:      "EduPulse Server",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{"message": err.Error()})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello learners! Backend is running...")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.UserRoutes(app, handlers.NewUserHandler(db))
	routes.SessionRoutes(app, handlers.NewSessionHandler(db), handlers.NewReviewHandler(db))
	routes.MaterialRoutes(app, handlers.NewMaterialHandler(db))
	routes.BookedSessionRoutes(app, handlers.NewBookedSessionHandler(db))
	routes.NoteRoutes(app, handlers.NewNoteHandler(db))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	port := config.ConfigOr("PORT", "3000")
	log.Printf("Server listening on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}

	if err := database.Close(db); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}
