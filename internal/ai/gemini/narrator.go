package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/personato/talentlens/internal/ai"
	"github.com/personato/talentlens/internal/util"
	"go.uber.org/zap"
)

//go:embed prompt_narrative.md
var narrativePromptTemplate string

//go:embed prompt_answer.md
var answerPromptTemplate string

//go:embed prompt_questions.md
var questionsPromptTemplate string

// Budget for grounded context inside a single prompt, in runes.
const (
	maxContextChars  = 150000
	maxVacancyChars  = 2500
	maxQuestionCount = 8
)

// Narrator produces narratives, grounded answers and assessment questions
// through Gemini.
type Narrator struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

var _ ai.Narrator = (*Narrator)(nil)

func NewNarrator(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Narrator {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Narrator{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Narrative writes an executive candidate narrative grounded in the corpus.
func (n *Narrator) Narrative(ctx context.Context, req ai.NarrativeRequest) (string, error) {
	features, err := json.Marshal(req.Features)
	if err != nil {
		return "", fmt.Errorf("marshal features payload: %w", err)
	}
	vacancy, err := json.Marshal(req.Vacancy)
	if err != nil {
		return "", fmt.Errorf("marshal vacancy payload: %w", err)
	}

	prompt := strings.NewReplacer(
		"{{LANG}}", language(req.Lang),
		"{{ROLE}}", req.Role,
		"{{PROBABILITY}}", fmt.Sprintf("%.3f", req.Probability),
		"{{FEATURES}}", string(features),
		"{{VACANCY}}", string(vacancy),
		"{{CONTEXT}}", truncateRunes(req.Corpus, maxContextChars),
	).Replace(narrativePromptTemplate)

	return n.generate(ctx, "narrative", prompt)
}

// Answer answers a recruiter question strictly from retrieved snippets.
func (n *Narrator) Answer(ctx context.Context, req ai.AnswerRequest) (string, error) {
	if strings.TrimSpace(req.Question) == "" {
		return "", fmt.Errorf("question must not be empty")
	}

	snippets := strings.Join(req.Snippets, "\n\n---\n\n")
	prompt := strings.NewReplacer(
		"{{LANG}}", language(req.Lang),
		"{{ROLE}}", req.Role,
		"{{QUESTION}}", req.Question,
		"{{SNIPPETS}}", truncateRunes(snippets, maxContextChars),
	).Replace(answerPromptTemplate)

	return n.generate(ctx, "answer", prompt)
}

// Questions generates role-specific assessment questions, falling back to
// nothing on its own: callers decide what to do with an error.
func (n *Narrator) Questions(ctx context.Context, req ai.QuestionsRequest) ([]string, error) {
	prompt := strings.NewReplacer(
		"{{LANG}}", language(req.Lang),
		"{{ROLE}}", req.Role,
		"{{VACANCY}}", truncateRunes(req.VacancyText, maxVacancyChars),
	).Replace(questionsPromptTemplate)

	raw, err := n.generate(ctx, "questions", prompt)
	if err != nil {
		return nil, err
	}

	questions := parseQuestions(raw)
	if len(questions) == 0 {
		return nil, fmt.Errorf("gemini returned no usable questions")
	}
	return questions, nil
}

func (n *Narrator) generate(ctx context.Context, task, prompt string) (string, error) {
	n.logger.Debug("gemini generate content request",
		zap.String("task", task),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, n.maxLogLen)),
	)

	raw, err := n.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}

	n.logger.Debug("gemini generate content response",
		zap.String("task", task),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, n.maxLogLen)),
	)

	return raw, nil
}

// parseQuestions splits the response into lines, strips bullet or number
// prefixes and keeps substantial entries, capped at maxQuestionCount.
func parseQuestions(raw string) []string {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimLeft(strings.TrimSpace(line), "0123456789.-*• )")
		line = strings.TrimSpace(line)
		if len(line) <= 10 {
			continue
		}
		questions = append(questions, line)
		if len(questions) == maxQuestionCount {
			break
		}
	}
	return questions
}

func language(lang string) string {
	if lang == ai.LangDutch {
		return ai.LangDutch
	}
	return ai.LangEnglish
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
