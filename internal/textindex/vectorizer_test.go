package textindex

import (
	"math"
	"testing"
)

func TestVectorizerSelfSimilarity(t *testing.T) {
	docs := []string{
		"Data Analyst Python SQL PowerBI Visualization Statistics",
		"Account Manager Prospecting Negotiation CRM Forecasting",
		"Legal Counsel Contract Compliance GDPR Negotiation Advisory",
	}

	vec := NewVectorizer(Options{StopWords: true})
	vectors := vec.FitTransform(docs)

	for i, doc := range docs {
		sim := Cosine(vec.Transform(doc), vectors[i])
		if math.Abs(sim-1.0) > 1e-9 {
			t.Fatalf("document %d: self-similarity = %v, want 1.0", i, sim)
		}
	}
}

func TestVectorizerDisjointDocsAreOrthogonal(t *testing.T) {
	docs := []string{"cats purr whiskers", "trucks diesel cargo"}

	vec := NewVectorizer(Options{})
	vectors := vec.FitTransform(docs)

	if sim := Cosine(vectors[0], vectors[1]); sim != 0 {
		t.Fatalf("expected zero similarity for disjoint vocab, got %v", sim)
	}
}

func TestVectorizerStopWordsDropped(t *testing.T) {
	vec := NewVectorizer(Options{StopWords: true})
	vec.Fit([]string{"the quick brown fox", "a lazy dog"})

	if _, ok := vec.vocab["the"]; ok {
		t.Fatal("stop word should not enter the vocabulary")
	}
	if _, ok := vec.vocab["quick"]; !ok {
		t.Fatal("content word missing from vocabulary")
	}
}

func TestVectorizerBigrams(t *testing.T) {
	vec := NewVectorizer(Options{Bigrams: true})
	vec.Fit([]string{"machine learning engineer"})

	for _, term := range []string{"machine", "learning", "machine learning", "learning engineer"} {
		if _, ok := vec.vocab[term]; !ok {
			t.Fatalf("expected term %q in vocabulary", term)
		}
	}
}

func TestVectorizerMaxFeatures(t *testing.T) {
	docs := []string{
		"alpha beta gamma shared",
		"delta epsilon zeta shared",
		"eta theta iota shared",
	}

	vec := NewVectorizer(Options{MaxFeatures: 4})
	vec.Fit(docs)

	if got := vec.VocabSize(); got != 4 {
		t.Fatalf("vocabulary size = %d, want 4", got)
	}
	// "shared" appears in every document and must survive the cap.
	if _, ok := vec.vocab["shared"]; !ok {
		t.Fatal("most frequent term evicted from capped vocabulary")
	}
}

func TestVectorizerDeterministic(t *testing.T) {
	docs := []string{"one two three", "two three four", "three four five"}

	a := NewVectorizer(Options{Bigrams: true})
	b := NewVectorizer(Options{Bigrams: true})
	a.Fit(docs)
	b.Fit(docs)

	if len(a.vocab) != len(b.vocab) {
		t.Fatalf("vocab sizes differ: %d vs %d", len(a.vocab), len(b.vocab))
	}
	for term, idx := range a.vocab {
		if b.vocab[term] != idx {
			t.Fatalf("term %q index differs: %d vs %d", term, idx, b.vocab[term])
		}
	}
}

func TestCosineZeroVector(t *testing.T) {
	if sim := Cosine(Vector{}, Vector{0: 1}); sim != 0 {
		t.Fatalf("expected zero similarity against empty vector, got %v", sim)
	}
}

func TestTransformUnknownTermsIgnored(t *testing.T) {
	vec := NewVectorizer(Options{})
	vec.Fit([]string{"alpha beta"})

	got := vec.Transform("gamma delta")
	if len(got) != 0 {
		t.Fatalf("expected empty vector for out-of-vocabulary text, got %v", got)
	}
}
