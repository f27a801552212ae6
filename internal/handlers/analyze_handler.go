package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"workassist/cv-analyzer/internal/logger"
	"workassist/cv-analyzer/internal/models"
	"workassist/cv-analyzer/internal/services"
)

const (
	HeaderAnalysisStatus = "X-Analysis-Status"
	HeaderDegradedReason = "X-Degraded-Reason"

	detailUnreadableDocument = "PDF vide ou non lisible"
	detailMissingJobTitle    = "Le champ 'poste_vise' est requis"
	detailMissingFile        = "Le fichier 'file' est requis"
)

type AnalyzeHandler struct {
	uploadService   services.UploadService
	documentParser  services.DocumentParserService
	analyzerService services.AnalyzerService
}

func NewAnalyzeHandler(
	uploadService services.UploadService,
	documentParser services.DocumentParserService,
	analyzerService services.AnalyzerService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		uploadService:   uploadService,
		documentParser:  documentParser,
		analyzerService: analyzerService,
	}
}

// HandleAnalyzeCV handles POST /analyze_cv.
//
// An empty or unreadable document is rejected with 400. Once text has been
// extracted every failure degrades to 200 with the fallback payload; the
// reason is only reported in headers and logs.
func (h *AnalyzeHandler) HandleAnalyzeCV(c *fiber.Ctx) error {
	ctx := c.UserContext()
	log := logger.FromContext(ctx)

	jobTitle := strings.TrimSpace(c.FormValue("poste_vise"))
	if jobTitle == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{
			Detail: detailMissingJobTitle,
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{
			Detail: detailMissingFile,
		})
	}

	src, err := h.uploadService.Open(fileHeader)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(models.ErrorResponse{
				Detail: fmt.Sprintf("Fichier trop volumineux. Taille max : %d octets", h.uploadService.MaxFileSize()),
			})
		}

		log.Warn().Err(err).Str("filename", fileHeader.Filename).Msg("⚠️ Failed to open upload")
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: detailUnreadableDocument,
		})
	}
	defer src.Close()

	content := h.documentParser.ExtractText(ctx, src, fileHeader.Filename)
	if content == "" {
		log.Info().Str("filename", fileHeader.Filename).Msg("📄 No text extracted, rejecting document")
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: detailUnreadableDocument,
		})
	}

	log.Info().
		Str("filename", fileHeader.Filename).
		Int("text_length", len(content)).
		Str("poste_vise", jobTitle).
		Msg("📄 CV text extracted")

	outcome := h.analyze(ctx, content, jobTitle)

	if outcome.Degraded() {
		c.Set(HeaderAnalysisStatus, "degraded")
		c.Set(HeaderDegradedReason, string(outcome.Reason))
		log.Warn().Str("reason", string(outcome.Reason)).Msg("⚠️ Serving fallback analysis")
	} else {
		c.Set(HeaderAnalysisStatus, "ok")
	}

	return c.Status(fiber.StatusOK).JSON(outcome.Body())
}

// analyze turns a panic anywhere in the analysis into a degraded outcome.
func (h *AnalyzeHandler) analyze(ctx context.Context, content, jobTitle string) (outcome services.AnalysisOutcome) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error().Interface("panic", r).Msg("❌ Analysis panicked")
			outcome = services.DegradedOutcome(services.ReasonInternalError)
		}
	}()

	return h.analyzerService.Analyze(ctx, content, jobTitle)
}
