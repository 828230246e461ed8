// Package ai defines the generative capabilities the engine can use and
// provides deterministic template fallbacks for running without an API key.
package ai

import (
	"context"

	"github.com/personato/talentlens/internal/catalog"
	"github.com/personato/talentlens/internal/feature"
)

// Languages understood by narrators and templates.
const (
	LangEnglish = "en"
	LangDutch   = "nl"
)

// NarrativeRequest asks for an executive narrative of a scored candidate.
type NarrativeRequest struct {
	Lang        string
	Role        string
	Probability float64
	Features    feature.Vector
	Vacancy     catalog.Profile
	// Corpus is the combined vacancy, CV and cover letter text the
	// narrative must be grounded in.
	Corpus string
}

// AnswerRequest asks a grounded question about a candidate. Snippets are
// the retrieved corpus chunks the answer must stay within.
type AnswerRequest struct {
	Lang     string
	Role     string
	Question string
	Snippets []string
}

// QuestionsRequest asks for assessment questions tailored to a vacancy.
type QuestionsRequest struct {
	Lang        string
	Role        string
	VacancyText string
}

// Narrator produces recruiter-facing prose: candidate narratives, grounded
// answers and assessment questions.
type Narrator interface {
	Narrative(ctx context.Context, req NarrativeRequest) (string, error)
	Answer(ctx context.Context, req AnswerRequest) (string, error)
	Questions(ctx context.Context, req QuestionsRequest) ([]string, error)
}
