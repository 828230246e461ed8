package scoring

import (
	"math"
	"testing"

	"github.com/personato/talentlens/internal/feature"
)

func midCandidate() feature.Vector {
	return feature.Vector{
		ExperienceYears: 5,
		MotivationScore: 0.56,
		SkillMatch:      0.4,
		CultureFit:      0.2,
		SentimentScore:  0.56,
		EmotionPos:      0.1,
		EmotionNeg:      0.05,
		Education:       feature.EducationHBO,
	}
}

func TestWeightedScoreBounds(t *testing.T) {
	vectors := []feature.Vector{
		{},
		midCandidate(),
		{ExperienceYears: 20, MotivationScore: 1, SkillMatch: 1, CultureFit: 1, SentimentScore: 1, EmotionPos: 1},
		{EmotionNeg: 1},
	}

	for _, v := range vectors {
		got := WeightedScore(v, DefaultWeights())
		if got < 0 || got > 1 {
			t.Fatalf("WeightedScore out of range for %+v: %v", v, got)
		}
	}
}

func TestWeightedScorePerfectCandidate(t *testing.T) {
	perfect := feature.Vector{
		ExperienceYears: 10, MotivationScore: 1, SkillMatch: 1,
		CultureFit: 1, SentimentScore: 1, EmotionPos: 1, EmotionNeg: 0,
	}
	if got := WeightedScore(perfect, DefaultWeights()); math.Abs(got-1) > 1e-9 {
		t.Fatalf("perfect candidate scores %v, want 1", got)
	}
}

func TestWeightedScoreNegativeEmotionSubtracts(t *testing.T) {
	calm := midCandidate()
	anxious := midCandidate()
	anxious.EmotionNeg = 1

	if WeightedScore(anxious, DefaultWeights()) >= WeightedScore(calm, DefaultWeights()) {
		t.Fatal("negative emotion must lower the weighted score")
	}
}

func TestWeightedScoreNegativeWeightsFloored(t *testing.T) {
	w := DefaultWeights()
	w.SkillMatch = -5

	got := WeightedScore(midCandidate(), w)
	if got < 0 || got > 1 {
		t.Fatalf("score out of range with negative weight: %v", got)
	}

	wZero := DefaultWeights()
	wZero.SkillMatch = 0
	if got != WeightedScore(midCandidate(), wZero) {
		t.Fatal("a negative weight must behave as zero")
	}
}

func TestWeightedScoreZeroWeights(t *testing.T) {
	if got := WeightedScore(midCandidate(), Weights{}); got != 0 {
		t.Fatalf("all-zero weights must score 0, got %v", got)
	}
}

func TestBlendBoundaries(t *testing.T) {
	v := midCandidate()
	w := DefaultWeights()
	base := 0.73

	if got := Blend(base, v, w, 0); got != base {
		t.Fatalf("blend 0 must return the base probability, got %v", got)
	}

	want := WeightedScore(v, w)
	if got := Blend(base, v, w, 1); math.Abs(got-want) > 1e-12 {
		t.Fatalf("blend 1 must return the weighted score %v, got %v", want, got)
	}
}

func TestBlendInterpolates(t *testing.T) {
	v := midCandidate()
	w := DefaultWeights()
	base := 0.9

	score := WeightedScore(v, w)
	got := Blend(base, v, w, 0.4)
	want := 0.6*base + 0.4*score
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("Blend = %v, want %v", got, want)
	}

	lo, hi := score, base
	if lo > hi {
		lo, hi = hi, lo
	}
	if got < lo || got > hi {
		t.Fatalf("blend %v outside [%v, %v]", got, lo, hi)
	}
}

func TestBlendFactorClipped(t *testing.T) {
	v := midCandidate()
	w := DefaultWeights()

	if got := Blend(0.5, v, w, -3); got != 0.5 {
		t.Fatalf("negative blend factor must clip to 0, got %v", got)
	}
	if got, want := Blend(0.5, v, w, 7), WeightedScore(v, w); math.Abs(got-want) > 1e-12 {
		t.Fatalf("oversized blend factor must clip to 1, got %v want %v", got, want)
	}
}
