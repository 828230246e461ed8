package scoring

import (
	"github.com/personato/talentlens/internal/feature"
	"github.com/personato/talentlens/internal/util"
)

// remoteDayCap is the number of remote days per week that still add value.
const remoteDayCap = 3

// offerBoost converts offer terms into a probability uplift: 0.002 per
// salary percent and 0.01 per remote day up to the cap.
func offerBoost(salaryPct float64, remoteDays int) float64 {
	if remoteDays > remoteDayCap {
		remoteDays = remoteDayCap
	}
	return 0.002*salaryPct + 0.01*float64(remoteDays)
}

// OfferUplift applies offer terms additively to a base probability and
// clips the result to the unit interval.
func OfferUplift(baseProb, salaryPct float64, remoteDays int) float64 {
	return util.Clip01(baseProb + offerBoost(salaryPct, remoteDays))
}

// AcceptanceProbability estimates how likely the candidate is to accept an
// offer, from the predicted success, the candidate's sentiment and positive
// emotion, and the offer terms.
func AcceptanceProbability(successProb float64, v feature.Vector, salaryPct float64, remoteDays int) float64 {
	z := 1.2*successProb + 0.4*v.SentimentScore + 0.4*v.EmotionPos + offerBoost(salaryPct, remoteDays) - 0.6
	return util.Sigmoid(z)
}
