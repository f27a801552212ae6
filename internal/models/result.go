package models

// AnalysisResult is the JSON document returned to the front-end. Provider
// output is passed through without type checks; this struct describes the
// expected shape and backs the fallback payload.
type AnalysisResult struct {
	Name            string       `json:"name"`
	Summary         string       `json:"summary"`
	Contacts        Contacts     `json:"contacts"`
	Skills          []Skill      `json:"skills"`
	Experience      []Experience `json:"experience"`
	Languages       []string     `json:"languages"`
	ScoreMatch      int          `json:"score_match"`
	MissingSkills   []string     `json:"missing_skills"`
	Recommendations []string     `json:"recommendations"`
	QCMCards        []QCMCard    `json:"qcm_cards"`
}

type Contacts struct {
	Email     string   `json:"email"`
	Phone     []string `json:"phone"`
	BirthDate string   `json:"birth_date"`
}

type Skill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// QCMCard is one multiple-choice interview question. CorrectAnswer indexes
// Options (0-3).
type QCMCard struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// ErrorResponse is the body of every 4xx reply.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}
