// Package feature turns candidate documents into the fixed numeric schema
// consumed by the success model and the weight blender.
package feature

// Education levels on the Dutch ladder.
const (
	EducationMBO = "MBO"
	EducationHBO = "HBO"
	EducationWO  = "WO"
)

// Canonical numeric column names, in model input order.
const (
	ColExperienceYears = "ExperienceYears"
	ColMotivationScore = "MotivationScore"
	ColSkillMatch      = "SkillMatch"
	ColCultureFit      = "CultureFit"
	ColSentimentScore  = "SentimentScore"
	ColEmotionPos      = "EmotionPos"
	ColEmotionNeg      = "EmotionNeg"
	ColEducationHBO    = "EducationLevel_HBO"
	ColEducationWO     = "EducationLevel_WO"
)

// Vector is the fixed-schema feature summary of a candidate document.
// MotivationScore mirrors SentimentScore: motivation is read from the same
// sentiment signal.
type Vector struct {
	ExperienceYears int
	MotivationScore float64
	SkillMatch      float64
	CultureFit      float64
	SentimentScore  float64
	EmotionPos      float64
	EmotionNeg      float64
	Education       string
}

// NumericColumns returns the canonical column order used to feed models,
// excluding sector indicators which are appended by the model itself.
func NumericColumns() []string {
	return []string{
		ColExperienceYears,
		ColMotivationScore,
		ColSkillMatch,
		ColCultureFit,
		ColSentimentScore,
		ColEmotionPos,
		ColEmotionNeg,
		ColEducationHBO,
		ColEducationWO,
	}
}

// SnapshotEntry is one row of a display snapshot.
type SnapshotEntry struct {
	Name  string
	Value float64
}

// Snapshot renders the vector as ordered unit-interval values for display,
// with experience normalized against a ten-year scale.
func (v Vector) Snapshot() []SnapshotEntry {
	exp := float64(v.ExperienceYears) / 10
	if exp > 1 {
		exp = 1
	}
	return []SnapshotEntry{
		{Name: "Experience", Value: exp},
		{Name: "Motivation", Value: v.MotivationScore},
		{Name: "Skill match", Value: v.SkillMatch},
		{Name: "Culture fit", Value: v.CultureFit},
		{Name: "Sentiment", Value: v.SentimentScore},
		{Name: "Positive emotion", Value: v.EmotionPos},
		{Name: "Negative emotion", Value: v.EmotionNeg},
	}
}

// NumericRow renders the vector in NumericColumns order. Education becomes
// two indicator columns with MBO as the baseline.
func (v Vector) NumericRow() []float64 {
	hbo, wo := 0.0, 0.0
	switch v.Education {
	case EducationHBO:
		hbo = 1
	case EducationWO:
		wo = 1
	}

	return []float64{
		float64(v.ExperienceYears),
		v.MotivationScore,
		v.SkillMatch,
		v.CultureFit,
		v.SentimentScore,
		v.EmotionPos,
		v.EmotionNeg,
		hbo,
		wo,
	}
}
