package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"workassist/cv-analyzer/internal/config"
	"workassist/cv-analyzer/internal/handlers"
	"workassist/cv-analyzer/internal/logger"
	"workassist/cv-analyzer/internal/models"
)

// multipartOverhead leaves room for boundaries and the form fields around
// the file part.
const multipartOverhead = 1 << 20

// New builds the fiber app with middleware and routes.
func New(cfg *config.Config, analyzeHandler *handlers.AnalyzeHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "CV Analyzer API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + multipartOverhead,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(requestContext)
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigin,
		AllowCredentials: true,
		AllowMethods:     "GET,POST,HEAD,PUT,PATCH,DELETE,OPTIONS",
		// Empty AllowHeaders reflects the preflight's requested headers.
		AllowHeaders:  "",
		ExposeHeaders: "X-Request-ID, " + handlers.HeaderAnalysisStatus + ", " + handlers.HeaderDegradedReason,
	}))

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CV Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /analyze_cv",
				"GET /health",
			},
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Status: "healthy",
			Time:   time.Now().UTC().Format(time.RFC3339),
		})
	})

	app.Post("/analyze_cv", analyzeHandler.HandleAnalyzeCV)

	return app
}

// requestContext attaches a logger tagged with the request id to the user
// context so services log with it.
func requestContext(c *fiber.Ctx) error {
	requestID, _ := c.Locals("requestid").(string)
	c.SetUserContext(logger.WithRequestID(c.UserContext(), requestID))
	return c.Next()
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if code >= fiber.StatusInternalServerError {
		logger.FromContext(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("❌ Request failed")
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Detail: err.Error(),
	})
}
