package feature

import (
	"context"
	"unicode/utf8"

	"github.com/personato/talentlens/internal/catalog"
	"github.com/personato/talentlens/internal/logger"
	"github.com/personato/talentlens/internal/util"
	"go.uber.org/zap"
)

// sentimentMaxChars bounds the text sent to an external sentiment scorer.
const sentimentMaxChars = 1500

// SentimentScorer scores text sentiment in the unit interval. External
// implementations may fail; the extractor then falls back to the lexicon.
type SentimentScorer interface {
	ScoreSentiment(ctx context.Context, text string) (float64, error)
}

// Extractor derives feature vectors from candidate text. Extraction itself
// performs no I/O; only the optional sentiment scorer may reach out.
type Extractor struct {
	scorer SentimentScorer
	logger *zap.Logger
}

// NewExtractor builds an extractor. The scorer may be nil, in which case
// sentiment always comes from the built-in lexicon.
func NewExtractor(scorer SentimentScorer, log *zap.Logger) *Extractor {
	return &Extractor{scorer: scorer, logger: logger.WithFields(log)}
}

// Extract summarizes the candidate text against the vacancy profile.
// Identical inputs always produce identical vectors.
func (e *Extractor) Extract(ctx context.Context, text string, vacancy catalog.Profile) Vector {
	sentiment := e.sentiment(ctx, text)
	emotions := EmotionVector(text)

	return Vector{
		ExperienceYears: DetectExperienceYears(text),
		MotivationScore: sentiment,
		SkillMatch:      SkillMatchScore(text, SkillVocabulary(vacancy.JobTitle, vacancy.RequiredSkills)),
		CultureFit:      CultureFitScore(text, vacancy.ValueWords),
		SentimentScore:  sentiment,
		EmotionPos:      meanOf(emotions, positiveEmotions),
		EmotionNeg:      meanOf(emotions, negativeEmotions),
		Education:       EducationLevel(text),
	}
}

func (e *Extractor) sentiment(ctx context.Context, text string) float64 {
	if len(text) < 20 {
		return 0.5
	}

	if e.scorer != nil {
		clipped := text
		if utf8.RuneCountInString(clipped) > sentimentMaxChars {
			clipped = string([]rune(clipped)[:sentimentMaxChars])
		}

		score, err := e.scorer.ScoreSentiment(ctx, clipped)
		if err == nil {
			return util.Clip01(score)
		}

		e.logger.Debug("external sentiment scoring failed, using lexicon",
			zap.Error(err),
			zap.Int("text_length", utf8.RuneCountInString(text)),
		)
	}

	return LexiconSentiment(text)
}
