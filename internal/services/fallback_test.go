package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fallbackJSON = `{
  "name": "Candidat - Mode Hors-ligne",
  "summary": "Le service IA est temporairement indisponible. Réessayez plus tard.",
  "contacts": {"email": "", "phone": [], "birth_date": ""},
  "skills": [],
  "experience": [],
  "languages": [],
  "score_match": 0,
  "missing_skills": [],
  "recommendations": ["Veuillez réessayer dans quelques minutes."],
  "qcm_cards": []
}`

func TestFallbackResultSerialization(t *testing.T) {
	data, err := json.Marshal(FallbackResult())
	require.NoError(t, err)

	assert.JSONEq(t, fallbackJSON, string(data))
}

func TestFallbackResultIsFreshEachCall(t *testing.T) {
	first := FallbackResult()
	first.Recommendations[0] = "changed"
	first.Languages = append(first.Languages, "Français")

	second := FallbackResult()
	assert.Equal(t, "Veuillez réessayer dans quelques minutes.", second.Recommendations[0])
	assert.Empty(t, second.Languages)
}

func TestAnalysisOutcomeBody(t *testing.T) {
	success := SuccessOutcome(json.RawMessage(`{"name":"X"}`))
	assert.False(t, success.Degraded())
	assert.Equal(t, json.RawMessage(`{"name":"X"}`), success.Body())

	degraded := DegradedOutcome(ReasonQuotaExceeded)
	assert.True(t, degraded.Degraded())
	assert.Equal(t, FallbackResult(), degraded.Body())

	assert.Equal(t, FallbackResult(), AnalysisOutcome{}.Body(), "an empty success still serializes the fallback")
}
