package catalog

import (
	"strings"

	"github.com/personato/talentlens/internal/textindex"
)

// Match is a classified vacancy: the best catalog profile for a vacancy
// text and its cosine similarity.
type Match struct {
	Profile    Profile
	Similarity float64
}

// Classifier assigns free vacancy text to the closest catalog profile using
// TF-IDF over profile signatures. It is immutable once built.
type Classifier struct {
	profiles []Profile
	vec      *textindex.Vectorizer
	vectors  []textindex.Vector
}

// NewClassifier indexes every profile signature in the catalog.
func NewClassifier(c *Catalog) *Classifier {
	profiles := c.Profiles()
	signatures := make([]string, len(profiles))
	for i, p := range profiles {
		signatures[i] = p.Signature()
	}

	vec := textindex.NewVectorizer(textindex.Options{StopWords: true})
	return &Classifier{
		profiles: profiles,
		vec:      vec,
		vectors:  vec.FitTransform(signatures),
	}
}

// Classify returns the profile with the highest similarity to the vacancy
// text. Ties keep the earliest catalog entry. The second return is false
// when the text is blank or the catalog is empty.
func (c *Classifier) Classify(vacancyText string) (Match, bool) {
	if strings.TrimSpace(vacancyText) == "" || len(c.profiles) == 0 {
		return Match{}, false
	}

	qv := c.vec.Transform(vacancyText)
	best := 0
	bestSim := -1.0
	for i, v := range c.vectors {
		if sim := textindex.Cosine(qv, v); sim > bestSim {
			best, bestSim = i, sim
		}
	}

	return Match{Profile: c.profiles[best], Similarity: bestSim}, true
}
