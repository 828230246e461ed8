package scoring

import (
	"github.com/personato/talentlens/internal/feature"
	"github.com/personato/talentlens/internal/util"
)

// experienceScale normalizes years of experience for the blender: ten or
// more years count as a full score.
const experienceScale = 10.0

// WeightedScore reduces a feature vector to a single unit-interval score
// under the given weights. Positive factors accumulate, negative emotion
// subtracts at 70% strength, and the result is normalized by the sum of
// the positive weights.
func WeightedScore(v feature.Vector, w Weights) float64 {
	w = w.sanitized()

	normExp := util.Clip01(float64(v.ExperienceYears) / experienceScale)
	pos := w.Experience*normExp +
		w.SkillMatch*util.Clip01(v.SkillMatch) +
		w.CultureFit*util.Clip01(v.CultureFit) +
		w.Motivation*util.Clip01(v.MotivationScore) +
		w.Sentiment*util.Clip01(v.SentimentScore) +
		w.EmotionPositive*util.Clip01(v.EmotionPos)

	raw := pos - 0.7*w.EmotionNegative*util.Clip01(v.EmotionNeg)

	denom := w.positiveSum()
	if denom == 0 {
		denom = 1
	}
	return util.Clip01(raw / denom)
}

// Blend mixes the model probability with the weighted score. A blend
// factor of 0 returns the model probability untouched, 1 returns the
// weighted score; the factor itself is clipped to the unit interval.
func Blend(baseProb float64, v feature.Vector, w Weights, blendFactor float64) float64 {
	blendFactor = util.Clip01(blendFactor)
	score := WeightedScore(v, w)
	return util.Clip01((1-blendFactor)*baseProb + blendFactor*score)
}
