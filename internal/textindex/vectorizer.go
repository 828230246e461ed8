// Package textindex provides the shared TF-IDF machinery used both by the
// vacancy classifier and by the document retrieval index.
package textindex

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// stopWords lists common English function words excluded from classifier
// vocabularies. Retrieval indexes keep them since bigrams give them context.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(
		"a about above after again all am an and any are as at be because been " +
			"before being below between both but by could did do does doing down " +
			"during each few for from further had has have having he her here hers " +
			"him his how i if in into is it its itself just me more most my no nor " +
			"not of off on once only or other our ours out over own same she so " +
			"some such than that the their theirs them then there these they this " +
			"those through to too under until up very was we were what when where " +
			"which while who whom why will with you your yours") {
		stopWords[w] = struct{}{}
	}
}

// Options controls how a Vectorizer tokenizes and limits its vocabulary.
type Options struct {
	// Bigrams adds adjacent word pairs to the term stream.
	Bigrams bool
	// StopWords drops common English words before term generation.
	StopWords bool
	// MaxFeatures caps the vocabulary size, keeping the terms seen in the
	// most documents. Zero means unlimited.
	MaxFeatures int
}

// Vector is a sparse TF-IDF representation keyed by vocabulary index.
// Vectors produced by Transform are L2-normalized.
type Vector map[int]float64

// Vectorizer converts documents into TF-IDF vectors over a vocabulary
// learned by Fit. A fitted Vectorizer is safe for concurrent Transform calls.
type Vectorizer struct {
	opts  Options
	vocab map[string]int
	idf   []float64
}

func NewVectorizer(opts Options) *Vectorizer {
	return &Vectorizer{opts: opts}
}

func (v *Vectorizer) tokenize(doc string) []string {
	words := tokenPattern.FindAllString(strings.ToLower(doc), -1)
	if v.opts.StopWords {
		kept := words[:0]
		for _, w := range words {
			if _, ok := stopWords[w]; !ok {
				kept = append(kept, w)
			}
		}
		words = kept
	}

	if !v.opts.Bigrams {
		return words
	}

	terms := make([]string, 0, len(words)*2)
	terms = append(terms, words...)
	for i := 0; i+1 < len(words); i++ {
		terms = append(terms, words[i]+" "+words[i+1])
	}
	return terms
}

// Fit learns the vocabulary and inverse document frequencies from docs.
func (v *Vectorizer) Fit(docs []string) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range v.tokenize(doc) {
			seen[term] = struct{}{}
		}
		for term := range seen {
			df[term]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}

	if v.opts.MaxFeatures > 0 && len(terms) > v.opts.MaxFeatures {
		// Most frequent terms win; ties break lexicographically so the
		// vocabulary is deterministic.
		sort.Slice(terms, func(i, j int) bool {
			if df[terms[i]] != df[terms[j]] {
				return df[terms[i]] > df[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.opts.MaxFeatures]
	}

	sort.Strings(terms)

	n := float64(len(docs))
	v.vocab = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, term := range terms {
		v.vocab[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
}

// Transform converts a document into an L2-normalized TF-IDF vector using
// the fitted vocabulary. Terms outside the vocabulary are ignored.
func (v *Vectorizer) Transform(doc string) Vector {
	vec := make(Vector)
	for _, term := range v.tokenize(doc) {
		if idx, ok := v.vocab[term]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for idx, count := range vec {
		weighted := count * v.idf[idx]
		vec[idx] = weighted
		norm += weighted * weighted
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// FitTransform fits the vocabulary on docs and returns their vectors.
func (v *Vectorizer) FitTransform(docs []string) []Vector {
	v.Fit(docs)
	vectors := make([]Vector, len(docs))
	for i, doc := range docs {
		vectors[i] = v.Transform(doc)
	}
	return vectors
}

// VocabSize reports the number of terms in the fitted vocabulary.
func (v *Vectorizer) VocabSize() int {
	return len(v.vocab)
}

// Cosine returns the cosine similarity of two sparse vectors. Zero vectors
// yield zero similarity.
func Cosine(a, b Vector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}

	var dot, normA, normB float64
	for idx, av := range a {
		normA += av * av
		if bv, ok := b[idx]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
