package scoring

import (
	"math"
	"testing"

	"github.com/personato/talentlens/internal/feature"
)

func TestOfferUplift(t *testing.T) {
	cases := []struct {
		name      string
		base      float64
		salaryPct float64
		remote    int
		expected  float64
	}{
		{name: "no terms", base: 0.5, expected: 0.5},
		{name: "salary only", base: 0.5, salaryPct: 10, expected: 0.52},
		{name: "remote only", base: 0.5, remote: 2, expected: 0.52},
		{name: "both", base: 0.5, salaryPct: 5, remote: 1, expected: 0.52},
		{name: "remote saturates at three", base: 0.5, remote: 5, expected: 0.53},
		{name: "clipped at one", base: 0.99, salaryPct: 50, remote: 3, expected: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := OfferUplift(tc.base, tc.salaryPct, tc.remote)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Fatalf("OfferUplift = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestOfferUpliftMonotonicInSalary(t *testing.T) {
	prev := OfferUplift(0.4, 0, 0)
	for pct := 1.0; pct <= 30; pct++ {
		cur := OfferUplift(0.4, pct, 0)
		if cur < prev {
			t.Fatalf("uplift decreased at %.0f%% salary: %v < %v", pct, cur, prev)
		}
		prev = cur
	}
}

func TestOfferUpliftRemoteDaysBeyondCapAddNothing(t *testing.T) {
	three := OfferUplift(0.4, 0, 3)
	for days := 4; days <= 7; days++ {
		if got := OfferUplift(0.4, 0, days); got != three {
			t.Fatalf("%d remote days changed the uplift: %v vs %v", days, got, three)
		}
	}
}

func TestAcceptanceProbability(t *testing.T) {
	v := feature.Vector{SentimentScore: 0.56, EmotionPos: 0.1}

	got := AcceptanceProbability(0.7, v, 0, 0)
	// z = 1.2*0.7 + 0.4*0.56 + 0.4*0.1 - 0.6
	want := 1 / (1 + math.Exp(-(1.2*0.7 + 0.4*0.56 + 0.4*0.1 - 0.6)))
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("AcceptanceProbability = %v, want %v", got, want)
	}
	if got <= 0 || got >= 1 {
		t.Fatalf("acceptance outside (0, 1): %v", got)
	}
}

func TestAcceptanceProbabilityRespondsToTerms(t *testing.T) {
	v := feature.Vector{SentimentScore: 0.5, EmotionPos: 0.2}

	plain := AcceptanceProbability(0.5, v, 0, 0)
	sweetened := AcceptanceProbability(0.5, v, 15, 2)
	if sweetened <= plain {
		t.Fatal("a better offer must not lower acceptance")
	}
}

func TestAcceptanceProbabilityGrowsWithSuccess(t *testing.T) {
	v := feature.Vector{SentimentScore: 0.5, EmotionPos: 0.2}
	if AcceptanceProbability(0.9, v, 0, 0) <= AcceptanceProbability(0.1, v, 0, 0) {
		t.Fatal("acceptance must grow with predicted success")
	}
}
