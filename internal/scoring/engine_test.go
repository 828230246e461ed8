package scoring

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/personato/talentlens/internal/ai"
	"github.com/personato/talentlens/internal/catalog"
	"github.com/personato/talentlens/internal/feature"
	"github.com/personato/talentlens/internal/model"
	"go.uber.org/zap"
)

type stubNarrator struct {
	narrative string
	answer    string
	questions []string
	err       error

	lastAnswerReq ai.AnswerRequest
}

func (s *stubNarrator) Narrative(_ context.Context, _ ai.NarrativeRequest) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.narrative, nil
}

func (s *stubNarrator) Answer(_ context.Context, req ai.AnswerRequest) (string, error) {
	s.lastAnswerReq = req
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

func (s *stubNarrator) Questions(_ context.Context, _ ai.QuestionsRequest) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.questions, nil
}

func testEngine(t *testing.T, narrator ai.Narrator) *Engine {
	t.Helper()

	cat := catalog.Builtin()
	ds := model.Synthesize(cat.Sectors(), 400, model.DefaultSeed)
	m, err := model.TrainOnce(ds, 42)
	if err != nil {
		t.Fatalf("TrainOnce: %v", err)
	}

	extractor := feature.NewExtractor(nil, zap.NewNop())
	return NewEngine(m, cat, extractor, narrator, zap.NewNop())
}

const analystLetter = "5 years of experience in Python and SQL, passionate about data analysis and growth"

func TestEvaluateExplicitVacancy(t *testing.T) {
	e := testEngine(t, nil)

	res, err := e.Evaluate(context.Background(), Request{
		Sector:      "IT",
		Role:        "Data Analyst",
		CVName:      "cv.txt",
		CVText:      analystLetter,
		Weights:     DefaultWeights(),
		BlendFactor: DefaultBlendFactor,
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if res.Sector != "IT" || res.Role != "Data Analyst" {
		t.Fatalf("unexpected vacancy: %s/%s", res.Sector, res.Role)
	}
	if res.AutoMatch {
		t.Fatal("explicit vacancy must not be flagged as auto-matched")
	}
	if res.Features.ExperienceYears != 5 {
		t.Fatalf("ExperienceYears = %d, want 5", res.Features.ExperienceYears)
	}
	if res.Features.SkillMatch != 0.4 {
		t.Fatalf("SkillMatch = %v, want 0.4", res.Features.SkillMatch)
	}
	if res.Features.MotivationScore <= 0.5 {
		t.Fatalf("MotivationScore = %v, want > 0.5", res.Features.MotivationScore)
	}
	if res.BaseProbability <= 0 || res.BaseProbability >= 1 {
		t.Fatalf("base probability outside (0, 1): %v", res.BaseProbability)
	}
	for _, p := range []float64{res.AdjustedProbability, res.OfferProbability, res.AcceptanceProbability} {
		if p < 0 || p > 1 {
			t.Fatalf("probability out of range in %+v", res)
		}
	}
}

func TestEvaluateAutoDetectsVacancy(t *testing.T) {
	e := testEngine(t, nil)

	res, err := e.Evaluate(context.Background(), Request{
		VacancyText: "We need someone for sourcing and screening candidates, interviewing and working with our ATS.",
		CVText:      "8 years of recruitment, sourcing and interviewing across agencies.",
		Weights:     DefaultWeights(),
		BlendFactor: DefaultBlendFactor,
	})
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if !res.AutoMatch {
		t.Fatal("expected auto-matched vacancy")
	}
	if res.Sector != "HR" || res.Role != "Recruiter" {
		t.Fatalf("classified as %s/%s, want HR/Recruiter", res.Sector, res.Role)
	}
	if res.Similarity <= 0 {
		t.Fatalf("expected positive similarity, got %v", res.Similarity)
	}
}

func TestEvaluateMissingVacancy(t *testing.T) {
	e := testEngine(t, nil)

	if _, err := e.Evaluate(context.Background(), Request{CVText: "some cv"}); err == nil {
		t.Fatal("expected an error without sector/role or vacancy text")
	}

	_, err := e.Evaluate(context.Background(), Request{Sector: "IT", Role: "Astronaut", CVText: "cv"})
	if err == nil {
		t.Fatal("expected an error for an unknown role")
	}
}

func TestEvaluateBlendBoundariesEndToEnd(t *testing.T) {
	e := testEngine(t, nil)

	base := Request{
		Sector: "IT", Role: "Data Analyst",
		CVText:  analystLetter,
		Weights: DefaultWeights(),
	}

	req0 := base
	req0.BlendFactor = 0
	res0, err := e.Evaluate(context.Background(), req0)
	if err != nil {
		t.Fatal(err)
	}
	if res0.AdjustedProbability != res0.BaseProbability {
		t.Fatal("blend 0 must keep the model probability")
	}

	req1 := base
	req1.BlendFactor = 1
	res1, err := e.Evaluate(context.Background(), req1)
	if err != nil {
		t.Fatal(err)
	}
	if want := WeightedScore(res1.Features, DefaultWeights()); res1.AdjustedProbability != want {
		t.Fatalf("blend 1 must use the weighted score %v, got %v", want, res1.AdjustedProbability)
	}
}

func TestEvaluateNarrative(t *testing.T) {
	stub := &stubNarrator{narrative: "- Solid analyst.\n- Interview recommended."}
	e := testEngine(t, stub)

	res, err := e.Evaluate(context.Background(), Request{
		Sector: "IT", Role: "Data Analyst",
		CVText: analystLetter, Weights: DefaultWeights(), BlendFactor: 0.4,
		WithNarrative: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Narrative, "Interview recommended") {
		t.Fatalf("unexpected narrative: %q", res.Narrative)
	}
}

func TestEvaluateNarrativeFallsBackOnError(t *testing.T) {
	stub := &stubNarrator{err: errors.New("provider down")}
	e := testEngine(t, stub)

	res, err := e.Evaluate(context.Background(), Request{
		Sector: "IT", Role: "Data Analyst",
		CVText: analystLetter, Weights: DefaultWeights(), BlendFactor: 0.4,
		Lang:          ai.LangEnglish,
		WithNarrative: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res.Narrative, "Profile:") {
		t.Fatalf("expected template fallback narrative, got %q", res.Narrative)
	}
}

func TestEngineAnswerGroundsInCorpus(t *testing.T) {
	stub := &stubNarrator{answer: "Five years, per the CV."}
	e := testEngine(t, stub)

	corpus := BuildCorpus("analyst vacancy", "cv.txt", strings.Repeat(analystLetter+" ", 30), "")
	got, err := e.Answer(context.Background(), ai.LangEnglish, "Data Analyst", "How many years of experience?", corpus)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Five years, per the CV." {
		t.Fatalf("unexpected answer: %q", got)
	}
	if len(stub.lastAnswerReq.Snippets) == 0 {
		t.Fatal("answer request must carry retrieved snippets")
	}
}

func TestEngineQuestionsFallback(t *testing.T) {
	stub := &stubNarrator{err: errors.New("provider down")}
	e := testEngine(t, stub)

	qs := e.Questions(context.Background(), ai.LangEnglish, "Recruiter", "vacancy text")
	if len(qs) != 7 {
		t.Fatalf("expected the builtin bank, got %d questions", len(qs))
	}
}

func TestBuildCorpus(t *testing.T) {
	corpus := BuildCorpus("vacancy   text", "cv.pdf", "cv\n\ntext", "letter text")

	for _, want := range []string{"### VACANCY MATCHED CONTEXT", "### FILE: cv.pdf", "### COVER LETTER"} {
		if !strings.Contains(corpus, want) {
			t.Fatalf("corpus missing %q: %s", want, corpus)
		}
	}
	if strings.Contains(corpus, "\n") || strings.Contains(corpus, "  ") {
		t.Fatalf("corpus whitespace not collapsed: %q", corpus)
	}

	if got := BuildCorpus("", "", "cv body", ""); !strings.Contains(got, "### FILE: candidate") {
		t.Fatalf("expected default file name, got %q", got)
	}
}
