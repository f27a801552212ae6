package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCVAnalysisPromptIsDeterministic(t *testing.T) {
	pb := NewPromptBuilder()

	first := pb.BuildCVAnalysisPrompt("Jean Dupont\nGo, Kubernetes", "Développeur")
	second := NewPromptBuilder().BuildCVAnalysisPrompt("Jean Dupont\nGo, Kubernetes", "Développeur")

	assert.Equal(t, first, second)
}

func TestBuildCVAnalysisPromptInterpolatesInputs(t *testing.T) {
	prompt := NewPromptBuilder().BuildCVAnalysisPrompt("Jean Dupont\nGo, Kubernetes", "Développeur Backend")

	assert.Contains(t, prompt, "Voici un CV :\n\nJean Dupont\nGo, Kubernetes\n")
	assert.Contains(t, prompt, `Le candidat souhaite postuler au poste : "Développeur Backend"`)
	assert.Equal(t, 2, strings.Count(prompt, `"Développeur Backend"`))
	assert.NotContains(t, prompt, "%!", "no formatting verbs may leak into the prompt")
}

func TestBuildCVAnalysisPromptContainsSections(t *testing.T) {
	prompt := NewPromptBuilder().BuildCVAnalysisPrompt("cv", "poste")

	for _, section := range []string{"SYSTEM:", "USER:", "TASK:", "Important :"} {
		assert.Contains(t, prompt, section)
	}
	for _, field := range []string{
		`"name"`, `"summary"`, `"contacts"`, `"birth_date"`, `"skills"`, `"experience"`,
		`"languages"`, `"score_match"`, `"missing_skills"`, `"recommendations"`,
		`"qcm_cards"`, `"correct_answer"`, `"explanation"`,
	} {
		assert.Contains(t, prompt, field)
	}
	assert.Contains(t, prompt, "Répond uniquement en JSON strictement valide.")
}

func TestBuildCVAnalysisPromptKeepsPercentSignsLiteral(t *testing.T) {
	prompt := NewPromptBuilder().BuildCVAnalysisPrompt("Taux de réussite 100% sur les livraisons", "Chef de projet")

	assert.Contains(t, prompt, "100% sur les livraisons")
}
