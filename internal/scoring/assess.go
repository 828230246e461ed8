package scoring

import (
	"strings"

	"github.com/personato/talentlens/internal/feature"
	"github.com/personato/talentlens/internal/util"
)

// Assessment scores a set of free-text answers to assessment questions.
type Assessment struct {
	Motivation float64
	Joy        float64
	Trust      float64
	Fit        float64
}

// Assess combines the answers into one text and derives motivation from
// its sentiment and fit from motivation plus the joy and trust emotions.
// Empty answers are ignored; no answers yield the zero Assessment and false.
func Assess(answers []string) (Assessment, bool) {
	var kept []string
	for _, a := range answers {
		if a = strings.TrimSpace(a); a != "" {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		return Assessment{}, false
	}

	combined := strings.Join(kept, " ")
	motivation := feature.LexiconSentiment(combined)
	emotions := feature.EmotionVector(combined)
	joy := emotions[feature.EmotionJoy]
	trust := emotions[feature.EmotionTrust]

	return Assessment{
		Motivation: motivation,
		Joy:        joy,
		Trust:      trust,
		Fit:        util.Clip01(0.6*motivation + 0.4*(joy+trust)/2),
	}, true
}
