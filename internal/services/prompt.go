package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCVAnalysisPrompt creates the prompt asking the model to extract the CV,
// score it against the target job and generate interview QCM cards as strict JSON.
func (pb *PromptBuilder) BuildCVAnalysisPrompt(cvText, jobTitle string) string {
	return fmt.Sprintf(`SYSTEM:
Tu es un assistant IA expert en recrutement.
Tu analyses les CV pour extraire uniquement les informations essentielles utilisables pour un front-end et pour préparer le candidat à un entretien.

USER:
Voici un CV :

%[1]s

Le candidat souhaite postuler au poste : "%[2]s"

TASK:

1. Extrait du CV les informations suivantes :
  - "name": Nom complet
  - "summary": résumé synthétique du profil
  - "contacts": emails, téléphones, date de naissance (format ISO YYYY-MM-DD)
  - "skills": compétences avec description simple
  - "experience": titre, entreprise, durée (format YYYY-MM ou YYYY-MM-DD si possible), description
  - "languages": langues parlées

2. En fonction du poste "%[2]s" :
  - Calculer un "score_match" (0-100) basé sur l'adéquation entre les compétences et expériences du candidat et le poste
  - Identifier les "missing_skills" : compétences importantes manquantes pour ce poste
  - Fournir des "recommendations" concrètes pour améliorer CV et préparation à l'entretien

3. Générer des questions de préparation à l'entretien :
  - "qcm_cards": 3-5 questions techniques ou situationnelles pour le poste, chaque question doit avoir :
      - "question"
      - "options": 3 mauvaises réponses + 1 correcte (dans l'ordre que tu veux)
      - "correct_answer": index de la bonne réponse (0-3)
      - "explanation": courte explication pédagogique

4. Sortie JSON strict et exploitable pour le front-end :

{
  "name": "",
  "summary": "",
  "contacts": {"email": "", "phone": [], "birth_date": ""},
  "skills": [{"name": "", "description": ""}],
  "experience": [
    {"title": "", "company": "", "duration": "", "description": ""}
  ],
  "languages": [],
  "score_match": 0,
  "missing_skills": [],
  "recommendations": [],
  "qcm_cards": [
    {"question": "", "options": [], "correct_answer": 0, "explanation": ""}
  ]
}

Important :
- Répond uniquement en JSON strictement valide.
- Formate les dates de manière officielle (ISO YYYY-MM ou YYYY-MM-DD).
- Priorise la clarté et la précision.`,
		cvText, jobTitle)
}
