package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/personato/talentlens/internal/feature"
	"github.com/personato/talentlens/internal/util"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt_sentiment.md
var sentimentPromptTemplate string

const defaultMaxLogLength = 200

// SentimentScorer rates document sentiment through Gemini.
type SentimentScorer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

var _ feature.SentimentScorer = (*SentimentScorer)(nil)

func NewSentimentScorer(generator contentGenerator, logger *zap.Logger, maxLogLength int) *SentimentScorer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &SentimentScorer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// ScoreSentiment sends the text to Gemini and parses a unit-interval score
// from the JSON response.
func (s *SentimentScorer) ScoreSentiment(ctx context.Context, text string) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, fmt.Errorf("text must not be empty")
	}

	prompt := strings.ReplaceAll(sentimentPromptTemplate, "{{TEXT}}", text)

	s.logger.Debug("gemini sentiment request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, s.maxLogLen)),
	)

	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return 0, err
	}

	s.logger.Debug("gemini sentiment response",
		zap.String("response_preview", util.TruncateForLog(raw, s.maxLogLen)),
	)

	score, err := parseSentiment(raw)
	if err != nil {
		return 0, err
	}

	return util.Clip01(score), nil
}

func parseSentiment(raw string) (float64, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return 0, fmt.Errorf("parse gemini sentiment response: %w", err)
	}

	score := coerceFloat(data["score"])
	if math.IsNaN(score) {
		return 0, fmt.Errorf("gemini sentiment response has no usable score")
	}
	return score, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
