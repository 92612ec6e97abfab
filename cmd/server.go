package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/Sandeep-456/Deepkalrity-assignment/internal/config"
	"github.com/Sandeep-456/Deepkalrity-assignment/pkg/errx"
	"github.com/Sandeep-456/Deepkalrity-assignment/pkg/logx"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logx.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize Logger
	logx.Setup(cfg.IsDevelopment())
	logx.Info("Starting Resume Analyzer API Server...")

	// 3. Initialize Dependency Container
	container := NewContainer(cfg)
	defer container.DB.Close()

	// 4. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "Resume Analyzer API",
		DisableStartupMessage: true,
		BodyLimit:             12 * 1024 * 1024,
		ErrorHandler:          newGlobalErrorHandler(cfg.IsDevelopment()),
	})

	// 5. Global Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 6. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "OK"
		if container.DB.PingContext(c.Context()) != nil {
			status = "DEGRADED"
		}
		return c.JSON(fiber.Map{
			"status":    status,
			"message":   "Resume Analyzer API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// 7. Register Routes
	container.ResumeHandlers.RegisterRoutes(app)

	// 8. Static UI
	app.Static("/", cfg.Server.WebDir)

	// 9. Unmatched Routes
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Route not found",
			"message": fmt.Sprintf("Cannot %s %s", c.Method(), c.Path()),
		})
	})

	// 10. Start Server with Graceful Shutdown
	go func() {
		logx.Infof("Server listening on port %s", cfg.Server.Port)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// newGlobalErrorHandler converts internal errors to standard HTTP responses.
// Development mode keeps error details in the body; production replaces
// internal failure details with a generic message.
func newGlobalErrorHandler(development bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Our custom errx.Error
		var appErr *errx.Error
		if errors.As(err, &appErr) {
			if appErr.HTTPStatus >= fiber.StatusInternalServerError {
				logx.Errorf("Request failed: %v", err)
				if !development {
					resp := appErr.ToHTTPResponse()
					resp.Details = nil
					return c.Status(appErr.HTTPStatus).JSON(resp)
				}
			}
			return c.Status(appErr.HTTPStatus).JSON(appErr.ToHTTPResponse())
		}

		// Fiber errors (method not allowed, oversized body, ...)
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			if fiberErr.Code == fiber.StatusRequestEntityTooLarge {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error":   "File too large",
					"message": "Maximum file size is 10MB",
				})
			}
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"error": fiberErr.Message,
				"code":  fiberErr.Code,
			})
		}

		// Default unknown error
		logx.Errorf("Internal Server Error: %v", err)
		body := fiber.Map{
			"error":   "Internal Server Error",
			"type":    "INTERNAL",
			"code":    "INTERNAL_ERROR",
			"message": "An unexpected error occurred",
		}
		if development {
			body["details"] = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
}
