package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/personato/talentlens/internal/ai"
	"github.com/personato/talentlens/internal/scoring"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate CV against a vacancy",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().String("cv", "", "path to the candidate CV text file (required)")
	scoreCmd.Flags().String("cover", "", "path to an optional cover letter text file")
	scoreCmd.Flags().String("vacancy", "", "path to the vacancy text file, used for auto-detection")
	scoreCmd.Flags().String("sector", "", "vacancy sector, combined with --role it skips auto-detection")
	scoreCmd.Flags().String("role", "", "vacancy job title, combined with --sector it skips auto-detection")
	scoreCmd.Flags().Float64("salary", 0, "salary offer relative to market, in percent")
	scoreCmd.Flags().Int("remote", 0, "remote days per week in the offer")
	scoreCmd.Flags().String("lang", ai.LangEnglish, "output language for the narrative (en or nl)")
	scoreCmd.Flags().Bool("narrative", false, "include a recruiter-facing narrative in the output")
	scoreCmd.Flags().Float64("blend", 0, "blend factor between model probability and weighted score")

	scoreCmd.MarkFlagRequired("cv")
}

func score(cmd *cobra.Command) {
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

	blend := config.blendFactor()
	if cmd.Flag("blend").Changed {
		blend, _ = cmd.Flags().GetFloat64("blend")
	}

	salary, _ := cmd.Flags().GetFloat64("salary")
	remote, _ := cmd.Flags().GetInt("remote")

	req := scoring.Request{
		Sector:        cmd.Flag("sector").Value.String(),
		Role:          cmd.Flag("role").Value.String(),
		VacancyText:   vacancyText,
		CVName:        cvName,
		CVText:        cvText,
		CoverLetter:   coverText,
		Lang:          cmd.Flag("lang").Value.String(),
		Weights:       config.weights(),
		BlendFactor:   blend,
		SalaryPct:     salary,
		RemoteDays:    remote,
		WithNarrative: cmd.Flag("narrative").Value.String() == "true",
	}

	result, err := engine.Evaluate(ctx, req)
	if err != nil {
		log.Fatal("scoring the candidate", zap.Error(err))
	}

	if err := printResult(os.Stdout, result); err != nil {
		log.Fatal("writing the result", zap.Error(err))
	}
}

// readFlagFile reads the file named by a flag. An unset flag yields empty
// content and no error.
func readFlagFile(cmd *cobra.Command, name string) (content, base string, err error) {
	path := cmd.Flag(name).Value.String()
	if path == "" {
		return "", "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	base = path
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		base = path[i+1:]
	}

	return string(data), base, nil
}

func printResult(w io.Writer, result *scoring.Result) error {
	fmt.Fprintf(w, "Vacancy:     %s / %s\n", result.Sector, result.Role)
	if result.AutoMatch {
		fmt.Fprintf(w, "Matched:     auto (similarity %.2f)\n", result.Similarity)
	}
	fmt.Fprintf(w, "Education:   %s\n", result.Features.Education)
	fmt.Fprintf(w, "Experience:  %d years\n", result.Features.ExperienceYears)
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FACTOR\tVALUE")
	fmt.Fprintln(tw, "------\t-----")
	for _, entry := range result.Features.Snapshot() {
		fmt.Fprintf(tw, "%s\t%.2f\n", entry.Name, entry.Value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Base probability:       %.1f%%\n", result.BaseProbability*100)
	fmt.Fprintf(w, "Adjusted probability:   %.1f%%\n", result.AdjustedProbability*100)
	fmt.Fprintf(w, "Offer probability:      %.1f%%\n", result.OfferProbability*100)
	fmt.Fprintf(w, "Acceptance probability: %.1f%%\n", result.AcceptanceProbability*100)

	if result.Narrative != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, result.Narrative)
	}

	return nil
}
