package scoring

import (
	"math"
	"sync"
	"testing"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	if w.SkillMatch != 1.4 || w.Experience != 0.6 || w.EmotionNegative != 0.4 {
		t.Fatalf("unexpected defaults: %+v", w)
	}
	if w.positiveSum() != 0.6+1.4+1.2+1.0+0.8+0.6 {
		t.Fatalf("unexpected positive sum: %v", w.positiveSum())
	}
}

func TestSessionStoreFallsBackToDefaults(t *testing.T) {
	store := NewSessionStore(DefaultWeights())

	if got := store.Weights("nope", "IT"); got != DefaultWeights() {
		t.Fatalf("unknown session must fall back to defaults, got %+v", got)
	}

	session := store.NewSession()
	if got := store.Weights(session, "IT"); got != DefaultWeights() {
		t.Fatalf("fresh session must fall back to defaults, got %+v", got)
	}
}

func TestSessionStoreIsolatesSessionsAndSectors(t *testing.T) {
	store := NewSessionStore(DefaultWeights())

	a := store.NewSession()
	b := store.NewSession()
	if a == b {
		t.Fatal("session ids must be unique")
	}

	custom := DefaultWeights()
	custom.SkillMatch = 2.0
	store.SetWeights(a, "IT", custom)

	if got := store.Weights(a, "IT"); got.SkillMatch != 2.0 {
		t.Fatalf("expected custom weights, got %+v", got)
	}
	if got := store.Weights(a, "Finance"); got != DefaultWeights() {
		t.Fatal("other sectors of the same session must keep defaults")
	}
	if got := store.Weights(b, "IT"); got != DefaultWeights() {
		t.Fatal("other sessions must keep defaults")
	}
}

func TestSessionStoreImplicitSession(t *testing.T) {
	store := NewSessionStore(DefaultWeights())

	custom := DefaultWeights()
	custom.Motivation = 3
	store.SetWeights("external-id", "HR", custom)

	if got := store.Weights("external-id", "HR"); got.Motivation != 3 {
		t.Fatalf("expected implicit session to hold weights, got %+v", got)
	}
}

func TestSessionStoreConcurrency(t *testing.T) {
	store := NewSessionStore(DefaultWeights())
	session := store.NewSession()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			w := DefaultWeights()
			w.Experience = 1
			store.SetWeights(session, "IT", w)
		}()
		go func() {
			defer wg.Done()
			_ = store.Weights(session, "IT")
		}()
	}
	wg.Wait()

	if got := store.Weights(session, "IT"); got.Experience != 1 {
		t.Fatalf("expected the written weights to win, got %+v", got)
	}
}

func TestWeightsNormalized(t *testing.T) {
	w := DefaultWeights().Normalized()

	sum := w.Experience + w.SkillMatch + w.CultureFit + w.Motivation +
		w.Sentiment + w.EmotionPositive + w.EmotionNegative
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("expected normalized weights to sum to 1, got %v", sum)
	}
	if w.SkillMatch <= w.Experience {
		t.Fatalf("expected relative ordering to survive normalization, got %+v", w)
	}

	var zero Weights
	if got := zero.Normalized(); got != zero {
		t.Fatalf("expected zero weights to stay zero, got %+v", got)
	}
}
