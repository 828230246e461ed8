package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/personato/talentlens/internal/ai"
	"github.com/personato/talentlens/internal/scoring"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptAsk        = "Ask a question"
	PromptQuestions  = "Suggested interview questions"
	PromptAssessment = "Run a mini assessment"
	PromptOutreach   = "Draft an outreach message"
	PromptExit       = "Exit"
)

var errExit = errors.New("exit requested")

var askPrompt = promptui.Select{
	Label: "What do you want to do?",
	Items: []string{PromptAsk, PromptQuestions, PromptAssessment, PromptOutreach, PromptExit},
}

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Interactive Q&A grounded in the candidate documents",
	Run: func(cmd *cobra.Command, _ []string) {
		ask(cmd)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().String("cv", "", "path to the candidate CV text file (required)")
	askCmd.Flags().String("cover", "", "path to an optional cover letter text file")
	askCmd.Flags().String("vacancy", "", "path to the vacancy text file")
	askCmd.Flags().String("sector", "", "vacancy sector, combined with --role it skips auto-detection")
	askCmd.Flags().String("role", "", "vacancy job title, combined with --sector it skips auto-detection")
	askCmd.Flags().String("lang", ai.LangEnglish, "answer language (en or nl)")

	askCmd.MarkFlagRequired("cv")
}

func ask(cmd *cobra.Command) {
	ctx := context.Background()

	log := newLogger()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	engine, err := buildEngine(ctx, config, log)
	if err != nil {
		log.Fatal("building the scoring engine", zap.Error(err))
	}

	cvText, cvName, err := readFlagFile(cmd, "cv")
	if err != nil {
		log.Fatal("reading the cv", zap.Error(err))
	}

	coverText, _, err := readFlagFile(cmd, "cover")
	if err != nil {
		log.Fatal("reading the cover letter", zap.Error(err))
	}

	vacancyText, _, err := readFlagFile(cmd, "vacancy")
	if err != nil {
		log.Fatal("reading the vacancy", zap.Error(err))
	}

	lang := cmd.Flag("lang").Value.String()

	result, err := engine.Evaluate(ctx, scoring.Request{
		Sector:      cmd.Flag("sector").Value.String(),
		Role:        cmd.Flag("role").Value.String(),
		VacancyText: vacancyText,
		CVName:      cvName,
		CVText:      cvText,
		CoverLetter: coverText,
		Weights:     config.weights(),
		BlendFactor: config.blendFactor(),
	})
	if err != nil {
		log.Fatal("evaluating the candidate", zap.Error(err))
	}

	log.Info("session ready",
		zap.String("sector", result.Sector),
		zap.String("role", result.Role),
		zap.Float64("adjusted_probability", result.AdjustedProbability),
	)

	for {
		_, action, err := askPrompt.Run()
		if err != nil {
			log.Fatal("exiting", zap.Error(err))
		}

		if err := handleAskAction(ctx, action, engine, result, lang, vacancyText, log); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			log.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAskAction(ctx context.Context, action string, engine *scoring.Engine, result *scoring.Result, lang, vacancyText string, log *zap.Logger) error {
	switch action {
	case PromptAsk:
		return answerQuestion(ctx, engine, result, lang)
	case PromptQuestions:
		for i, q := range engine.Questions(ctx, lang, result.Role, vacancyText) {
			fmt.Fprintf(os.Stdout, "%d. %s\n", i+1, q)
		}
		return nil
	case PromptAssessment:
		return runAssessment(ctx, engine, result, lang, vacancyText)
	case PromptOutreach:
		return draftOutreach(result, lang)
	case PromptExit:
		log.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func answerQuestion(ctx context.Context, engine *scoring.Engine, result *scoring.Result, lang string) error {
	question, err := textPrompt("Question")
	if err != nil {
		return err
	}
	if strings.TrimSpace(question) == "" {
		return nil
	}

	answer, err := engine.Answer(ctx, lang, result.Role, question, result.Corpus)
	if err != nil {
		return fmt.Errorf("answering the question: %w", err)
	}

	fmt.Fprintln(os.Stdout, answer)
	return nil
}

// runAssessment asks the interview questions one by one and scores the
// collected answers.
func runAssessment(ctx context.Context, engine *scoring.Engine, result *scoring.Result, lang, vacancyText string) error {
	questions := engine.Questions(ctx, lang, result.Role, vacancyText)

	answers := make([]string, 0, len(questions))
	for _, q := range questions {
		answer, err := textPrompt(q)
		if err != nil {
			return err
		}
		answers = append(answers, answer)
	}

	assessment, ok := scoring.Assess(answers)
	if !ok {
		fmt.Fprintln(os.Stdout, "No answers given, nothing to assess.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "Motivation: %.2f\n", assessment.Motivation)
	fmt.Fprintf(os.Stdout, "Joy:        %.2f\n", assessment.Joy)
	fmt.Fprintf(os.Stdout, "Trust:      %.2f\n", assessment.Trust)
	fmt.Fprintf(os.Stdout, "Fit:        %.2f\n", assessment.Fit)
	return nil
}

func draftOutreach(result *scoring.Result, lang string) error {
	name, err := textPrompt("Candidate name")
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, ai.Outreach(lang, name, result.Role, result.Features.CultureFit))
	return nil
}

func textPrompt(label string) (string, error) {
	p := promptui.Prompt{Label: label}
	return p.Run()
}
