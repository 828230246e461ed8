package scoring

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/personato/talentlens/internal/ai"
	"github.com/personato/talentlens/internal/catalog"
	"github.com/personato/talentlens/internal/feature"
	"github.com/personato/talentlens/internal/logger"
	"github.com/personato/talentlens/internal/model"
	"github.com/personato/talentlens/internal/textindex"
	"go.uber.org/zap"
)

// Engine evaluates candidates against the vacancy catalog. All fields are
// set at construction; evaluation itself keeps no mutable state.
type Engine struct {
	model      *model.TrainedModel
	catalog    *catalog.Catalog
	classifier *catalog.Classifier
	extractor  *feature.Extractor
	narrator   ai.Narrator
	logger     *zap.Logger
}

// NewEngine wires an engine. The narrator may be nil; narratives then come
// from the offline template.
func NewEngine(m *model.TrainedModel, cat *catalog.Catalog, extractor *feature.Extractor, narrator ai.Narrator, log *zap.Logger) *Engine {
	if narrator == nil {
		narrator = ai.NewTemplateNarrator()
	}
	return &Engine{
		model:      m,
		catalog:    cat,
		classifier: catalog.NewClassifier(cat),
		extractor:  extractor,
		narrator:   narrator,
		logger:     logger.WithFields(log),
	}
}

// Request describes one candidate evaluation. Either Sector and Role are
// set explicitly, or VacancyText is provided for auto-detection.
type Request struct {
	Sector      string
	Role        string
	VacancyText string

	CVName      string
	CVText      string
	CoverLetter string

	Lang        string
	Weights     Weights
	BlendFactor float64
	SalaryPct   float64
	RemoteDays  int

	// WithNarrative asks for recruiter-facing prose in the result.
	WithNarrative bool
}

// Result carries every score of an evaluation.
type Result struct {
	Sector     string
	Role       string
	Vacancy    catalog.Profile
	Similarity float64
	AutoMatch  bool

	Features feature.Vector
	Corpus   string

	BaseProbability       float64
	AdjustedProbability   float64
	OfferProbability      float64
	AcceptanceProbability float64

	Narrative string
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// collapse normalizes all whitespace runs to single spaces.
func collapse(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// BuildCorpus assembles the combined document the features and narratives
// are grounded in: vacancy context, the CV and an optional cover letter.
func BuildCorpus(vacancyText, cvName, cvText, coverLetter string) string {
	var sb strings.Builder
	if strings.TrimSpace(vacancyText) != "" {
		sb.WriteString("### VACANCY MATCHED CONTEXT\n")
		sb.WriteString(vacancyText)
		sb.WriteString("\n")
	}
	if strings.TrimSpace(cvText) != "" {
		if cvName == "" {
			cvName = "candidate"
		}
		sb.WriteString(fmt.Sprintf("### FILE: %s\n", cvName))
		sb.WriteString(cvText)
		sb.WriteString("\n")
	}
	if strings.TrimSpace(coverLetter) != "" {
		sb.WriteString("### COVER LETTER\n")
		sb.WriteString(coverLetter)
		sb.WriteString("\n")
	}
	return collapse(sb.String())
}

// resolveVacancy picks the vacancy profile: explicit sector and role win,
// otherwise the vacancy text is classified.
func (e *Engine) resolveVacancy(req Request) (catalog.Profile, float64, bool, error) {
	if req.Sector != "" && req.Role != "" {
		profile, ok := e.catalog.Find(req.Sector, req.Role)
		if !ok {
			return catalog.Profile{}, 0, false, fmt.Errorf("vacancy %q in sector %q not found in catalog", req.Role, req.Sector)
		}
		return profile, 0, false, nil
	}

	match, ok := e.classifier.Classify(req.VacancyText)
	if !ok {
		return catalog.Profile{}, 0, false, fmt.Errorf("either sector and role or a vacancy text is required")
	}
	return match.Profile, match.Similarity, true, nil
}

// Evaluate scores one candidate end to end: vacancy resolution, feature
// extraction, model prediction, weight blending and offer simulation.
func (e *Engine) Evaluate(ctx context.Context, req Request) (*Result, error) {
	profile, similarity, auto, err := e.resolveVacancy(req)
	if err != nil {
		return nil, err
	}

	log := logger.WithFields(e.logger, logger.VacancyFields(profile.Sector, profile.JobTitle)...)
	if auto {
		log.Info("vacancy matched", zap.Float64("similarity", similarity))
	}

	corpus := BuildCorpus(req.VacancyText, req.CVName, req.CVText, req.CoverLetter)
	features := e.extractor.Extract(ctx, corpus, profile)

	base := e.model.Predict(features, profile.Sector)
	adjusted := Blend(base, features, req.Weights, req.BlendFactor)
	offer := OfferUplift(adjusted, req.SalaryPct, req.RemoteDays)
	acceptance := AcceptanceProbability(adjusted, features, req.SalaryPct, req.RemoteDays)

	log.Debug("candidate scored",
		zap.Float64("base_probability", base),
		zap.Float64("adjusted_probability", adjusted),
		zap.Float64("acceptance_probability", acceptance),
		zap.Int("experience_years", features.ExperienceYears),
		zap.Float64("skill_match", features.SkillMatch),
	)

	result := &Result{
		Sector:                profile.Sector,
		Role:                  profile.JobTitle,
		Vacancy:               profile,
		Similarity:            similarity,
		AutoMatch:             auto,
		Features:              features,
		Corpus:                corpus,
		BaseProbability:       base,
		AdjustedProbability:   adjusted,
		OfferProbability:      offer,
		AcceptanceProbability: acceptance,
	}

	if req.WithNarrative {
		result.Narrative = e.narrative(ctx, req.Lang, profile, adjusted, features, corpus)
	}

	return result, nil
}

// narrative asks the configured narrator and falls back to the offline
// template when the provider fails.
func (e *Engine) narrative(ctx context.Context, lang string, profile catalog.Profile, prob float64, features feature.Vector, corpus string) string {
	req := ai.NarrativeRequest{
		Lang:        lang,
		Role:        profile.JobTitle,
		Probability: prob,
		Features:    features,
		Vacancy:     profile,
		Corpus:      corpus,
	}

	text, err := e.narrator.Narrative(ctx, req)
	if err != nil {
		e.logger.Warn("narrative generation failed, using template", zap.Error(err))
		text, _ = ai.NewTemplateNarrator().Narrative(ctx, req)
	}
	return strings.TrimSpace(text)
}

// Answer retrieves the corpus chunks most relevant to the question and
// lets the narrator answer strictly from them.
func (e *Engine) Answer(ctx context.Context, lang, role, question, corpus string) (string, error) {
	ix := textindex.Build(corpus)
	hits := ix.Retrieve(question, textindex.DefaultTopK)
	snippets := make([]string, 0, len(hits))
	for _, hit := range hits {
		snippets = append(snippets, hit.Chunk)
	}

	e.logger.Debug("question grounded",
		zap.Int("chunks", ix.Len()),
		zap.Int("retrieved", len(snippets)),
	)

	return e.narrator.Answer(ctx, ai.AnswerRequest{
		Lang:     lang,
		Role:     role,
		Question: question,
		Snippets: snippets,
	})
}

// Questions generates assessment questions for a vacancy, falling back to
// the built-in bank when the provider fails.
func (e *Engine) Questions(ctx context.Context, lang, role, vacancyText string) []string {
	questions, err := e.narrator.Questions(ctx, ai.QuestionsRequest{
		Lang:        lang,
		Role:        role,
		VacancyText: vacancyText,
	})
	if err != nil || len(questions) == 0 {
		if err != nil {
			e.logger.Warn("question generation failed, using builtin bank", zap.Error(err))
		}
		return ai.FallbackQuestions(role)
	}
	return questions
}

// Catalog exposes the engine's vacancy catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Model exposes the engine's trained success predictor.
func (e *Engine) Model() *model.TrainedModel {
	return e.model
}
