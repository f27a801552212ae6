package services

import "workassist/cv-analyzer/internal/models"

// FallbackResult returns the offline payload served whenever the live
// analysis cannot produce a result. Every call returns a fresh value.
func FallbackResult() models.AnalysisResult {
	return models.AnalysisResult{
		Name:    "Candidat - Mode Hors-ligne",
		Summary: "Le service IA est temporairement indisponible. Réessayez plus tard.",
		Contacts: models.Contacts{
			Email:     "",
			Phone:     []string{},
			BirthDate: "",
		},
		Skills:          []models.Skill{},
		Experience:      []models.Experience{},
		Languages:       []string{},
		ScoreMatch:      0,
		MissingSkills:   []string{},
		Recommendations: []string{"Veuillez réessayer dans quelques minutes."},
		QCMCards:        []models.QCMCard{},
	}
}
