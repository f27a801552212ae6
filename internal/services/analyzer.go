package services

import (
	"context"
	"errors"
	"strings"

	"workassist/cv-analyzer/internal/logger"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, cvText, jobTitle string) AnalysisOutcome
}

type analyzerService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
	temperature   float32
}

// NewAnalyzerService builds the analysis client. A nil geminiService means no
// credential was configured; every analysis then degrades without calling out.
func NewAnalyzerService(geminiService GeminiService, temperature float32) AnalyzerService {
	return &analyzerService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		temperature:   temperature,
	}
}

// Analyze runs prompt, provider call and JSON parsing once. It never returns
// an error: every failure maps to a degraded outcome.
func (a *analyzerService) Analyze(ctx context.Context, cvText, jobTitle string) AnalysisOutcome {
	log := logger.FromContext(ctx)

	if a.geminiService == nil {
		log.Error().Msg("❌ Gemini API key missing, serving fallback")
		return DegradedOutcome(ReasonMissingCredential)
	}

	prompt := a.promptBuilder.BuildCVAnalysisPrompt(cvText, jobTitle)
	log.Debug().Int("prompt_length", len(prompt)).Msg("📝 CV analysis prompt built")

	response, err := a.geminiService.GenerateText(ctx, prompt, a.temperature)
	if err != nil {
		reason := classifyProviderError(err)
		log.Warn().Err(err).Str("reason", string(reason)).Msg("⚠️ Gemini call failed")
		return DegradedOutcome(reason)
	}

	if strings.TrimSpace(response) == "" {
		log.Warn().Msg("⚠️ Empty Gemini response")
		return DegradedOutcome(ReasonEmptyResponse)
	}

	payload, err := ParseJSONObject(response)
	if err != nil {
		log.Warn().Err(err).Int("response_length", len(response)).Msg("⚠️ Invalid JSON from Gemini")
		return DegradedOutcome(ReasonInvalidJSON)
	}

	log.Info().Int("response_length", len(response)).Msg("✅ CV analysis received")
	return SuccessOutcome(payload)
}

func classifyProviderError(err error) DegradedReason {
	switch {
	case IsQuotaExceeded(err):
		return ReasonQuotaExceeded
	case errors.Is(err, ErrEmptyResponse):
		return ReasonEmptyResponse
	case errors.Is(err, ErrMissingAPIKey):
		return ReasonMissingCredential
	default:
		return ReasonProviderError
	}
}
