// Package model trains the hiring success predictor on a synthetic
// candidate population and serves probability predictions from it.
package model

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/personato/talentlens/internal/feature"
	"github.com/personato/talentlens/internal/util"
)

const (
	// DefaultSampleCount is the synthetic population size.
	DefaultSampleCount = 1000
	// DefaultSeed reproduces the reference training population.
	DefaultSeed uint64 = 13
)

// Sample is one synthetic candidate. Gender is kept for fairness audits
// only and never becomes a model input.
type Sample struct {
	Sector          string
	Education       string
	ExperienceYears float64
	Motivation      float64
	SkillMatch      float64
	CultureFit      float64
	Sentiment       float64
	EmotionPos      float64
	EmotionNeg      float64
	Gender          string
	Hired           bool
}

// Dataset is a synthetic candidate population with the sector list it was
// drawn from.
type Dataset struct {
	Samples []Sample
	Sectors []string
}

// Synthesize draws n candidates over the given sectors. The same seed
// always produces the same population. Hiring outcomes follow a latent
// logistic signal over experience, motivation, skills, fit, sentiment and
// education, plus noise.
func Synthesize(sectors []string, n int, seed uint64) *Dataset {
	if n <= 0 {
		n = DefaultSampleCount
	}

	rng := rand.New(rand.NewSource(seed))
	normal := func(mu, sigma float64) float64 {
		return distuv.Normal{Mu: mu, Sigma: sigma, Src: rng}.Rand()
	}
	pick := func(options []string, probs []float64) string {
		r := rng.Float64()
		acc := 0.0
		for i, p := range probs {
			acc += p
			if r < acc {
				return options[i]
			}
		}
		return options[len(options)-1]
	}

	ds := &Dataset{Samples: make([]Sample, 0, n)}
	ds.Sectors = append(ds.Sectors, sectors...)

	for i := 0; i < n; i++ {
		edu := pick(
			[]string{feature.EducationMBO, feature.EducationHBO, feature.EducationWO},
			[]float64{0.35, 0.45, 0.20},
		)
		yrs := float64(rng.Intn(16))
		mot := util.Clip01(normal(0.68, 0.15))
		skill := util.Clip(normal(0.72, 0.12), 0.2, 1)
		fit := util.Clip01(normal(0.66, 0.18))
		sent := util.Clip01(normal(0.65, 0.2))
		emoPos := util.Clip01(sent + normal(0, 0.1))
		emoNeg := util.Clip01(1 - sent + normal(0, 0.1))
		gender := pick([]string{"F", "M", "X"}, []float64{0.48, 0.48, 0.04})

		sector := ""
		if len(sectors) > 0 {
			sector = sectors[rng.Intn(len(sectors))]
		}

		eduBonus := 0.0
		switch edu {
		case feature.EducationWO:
			eduBonus = 0.25
		case feature.EducationHBO:
			eduBonus = 0.15
		}

		logit := -1.1 + 0.06*yrs + 0.9*mot + 1.2*skill + 0.9*fit + 0.4*sent + eduBonus + normal(0, 0.55)

		ds.Samples = append(ds.Samples, Sample{
			Sector:          sector,
			Education:       edu,
			ExperienceYears: yrs,
			Motivation:      mot,
			SkillMatch:      skill,
			CultureFit:      fit,
			Sentiment:       sent,
			EmotionPos:      emoPos,
			EmotionNeg:      emoNeg,
			Gender:          gender,
			Hired:           util.Sigmoid(logit) > 0.6,
		})
	}

	return ds
}

// vector renders the sample in the canonical numeric feature order.
func (s Sample) vector() feature.Vector {
	return feature.Vector{
		ExperienceYears: int(s.ExperienceYears),
		MotivationScore: s.Motivation,
		SkillMatch:      s.SkillMatch,
		CultureFit:      s.CultureFit,
		SentimentScore:  s.Sentiment,
		EmotionPos:      s.EmotionPos,
		EmotionNeg:      s.EmotionNeg,
		Education:       s.Education,
	}
}
