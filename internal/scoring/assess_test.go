package scoring

import (
	"math"
	"testing"

	"github.com/personato/talentlens/internal/feature"
)

func TestAssess(t *testing.T) {
	answers := []string{
		"I achieved excellent growth in my last role and I am proud of the impact we made.",
		"",
		"   ",
		"I trust my team and take responsible ownership of commitments.",
	}

	got, ok := Assess(answers)
	if !ok {
		t.Fatal("expected a scored assessment")
	}

	if got.Motivation <= 0.5 {
		t.Fatalf("positive answers should lift motivation above neutral, got %v", got.Motivation)
	}
	if got.Joy <= 0 || got.Trust <= 0 {
		t.Fatalf("expected joy and trust signals, got %+v", got)
	}

	combined := "I achieved excellent growth in my last role and I am proud of the impact we made. I trust my team and take responsible ownership of commitments."
	wantFit := 0.6*feature.LexiconSentiment(combined) + 0.4*(got.Joy+got.Trust)/2
	if math.Abs(got.Fit-wantFit) > 1e-9 {
		t.Fatalf("Fit = %v, want %v", got.Fit, wantFit)
	}
	if got.Fit < 0 || got.Fit > 1 {
		t.Fatalf("Fit out of range: %v", got.Fit)
	}
}

func TestAssessNoAnswers(t *testing.T) {
	if _, ok := Assess(nil); ok {
		t.Fatal("no answers must not produce an assessment")
	}
	if _, ok := Assess([]string{"", "  "}); ok {
		t.Fatal("blank answers must not produce an assessment")
	}
}

func TestAssessShortAnswerNeutralMotivation(t *testing.T) {
	got, ok := Assess([]string{"fine"})
	if !ok {
		t.Fatal("expected an assessment")
	}
	if got.Motivation != 0.5 {
		t.Fatalf("short text must stay neutral, got %v", got.Motivation)
	}
}
