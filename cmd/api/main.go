package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"workassist/cv-analyzer/internal/config"
	"workassist/cv-analyzer/internal/handlers"
	"workassist/cv-analyzer/internal/logger"
	"workassist/cv-analyzer/internal/server"
	"workassist/cv-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	logger.Info().Str("env", cfg.Server.Env).Msg("✅ Config loaded successfully")

	// Initialize services
	uploadService := services.NewUploadService(cfg.Storage.MaxFileSize)
	documentParser := services.NewDocumentParserService()

	// Initialize Gemini AI. A missing key is not fatal: analyses degrade.
	var geminiService services.GeminiService
	if cfg.Gemini.APIKey == "" {
		logger.Warn().Msg("⚠️ GEMINI_API_KEY is not set, every analysis will return the fallback payload")
	} else {
		var err error
		geminiService, err = services.NewGeminiService(context.Background(), cfg.Gemini)
		if err != nil {
			logger.Fatal().Err(err).Msg("❌ Failed to initialize Gemini AI")
		}
		logger.Info().Str("model", cfg.Gemini.Model).Msg("✅ Gemini AI initialized successfully")
	}

	analyzerService := services.NewAnalyzerService(geminiService, cfg.Gemini.Temperature)
	logger.Info().Msg("✅ Services initialized successfully")

	// Initialize Handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		uploadService,
		documentParser,
		analyzerService,
	)

	app := server.New(cfg, analyzeHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info().Msg("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("❌ Server forced to shutdown")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Str("cors_origin", cfg.CORS.AllowedOrigin).Msg("🚀 Server starting")

	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}
