package textindex

import (
	"sort"
	"strings"
)

const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 150
	DefaultMaxFeatures  = 5000
	DefaultTopK         = 8
)

// Index is an in-memory retrieval index over overlapping chunks of a
// document corpus. It is immutable once built.
type Index struct {
	chunks  []string
	vec     *Vectorizer
	vectors []Vector
}

// Hit is a retrieved chunk with its similarity to the query.
type Hit struct {
	Chunk      string
	Position   int
	Similarity float64
}

// Build chunks the corpus with the default window and overlap and fits a
// TF-IDF vectorizer with unigrams and bigrams over the chunks.
func Build(corpus string) *Index {
	return BuildWithOptions(corpus, DefaultChunkSize, DefaultChunkOverlap)
}

// BuildWithOptions is Build with an explicit chunk window and overlap.
func BuildWithOptions(corpus string, size, overlap int) *Index {
	ix := &Index{chunks: Chunk(corpus, size, overlap)}
	if len(ix.chunks) == 0 {
		return ix
	}

	ix.vec = NewVectorizer(Options{Bigrams: true, MaxFeatures: DefaultMaxFeatures})
	ix.vectors = ix.vec.FitTransform(ix.chunks)
	return ix
}

// Len reports the number of chunks in the index.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.chunks)
}

// Retrieve returns the topK chunks most similar to the query, most similar
// first. Chunks with equal similarity keep their corpus order. An empty
// query or an empty index yields no hits.
func (ix *Index) Retrieve(query string, topK int) []Hit {
	if ix.Len() == 0 || strings.TrimSpace(query) == "" {
		return nil
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	qv := ix.vec.Transform(query)
	hits := make([]Hit, len(ix.chunks))
	for i, chunk := range ix.chunks {
		hits[i] = Hit{Chunk: chunk, Position: i, Similarity: Cosine(qv, ix.vectors[i])}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Similarity > hits[j].Similarity
	})

	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits
}
