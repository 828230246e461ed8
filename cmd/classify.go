package cmd

import (
	"fmt"
	"os"

	"github.com/personato/talentlens/internal/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Match a vacancy text to the closest catalog profile",
	Run: func(cmd *cobra.Command, _ []string) {
		classify(cmd)
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().String("vacancy", "", "path to the vacancy text file (required)")

	classifyCmd.MarkFlagRequired("vacancy")
}

func classify(cmd *cobra.Command) {
	log := newLogger()

	config, err := getConfig()
	if err != nil {
		log.Fatal("getting a config", zap.Error(err))
	}

	vacancyText, _, err := readFlagFile(cmd, "vacancy")
	if err != nil {
		log.Fatal("reading the vacancy", zap.Error(err))
	}

	cat := buildCatalog(config, log)

	match, ok := catalog.NewClassifier(cat).Classify(vacancyText)
	if !ok {
		log.Fatal("classifying the vacancy", zap.String("reason", "vacancy text is empty"))
	}

	fmt.Fprintf(os.Stdout, "Sector:     %s\n", match.Profile.Sector)
	fmt.Fprintf(os.Stdout, "Role:       %s\n", match.Profile.JobTitle)
	fmt.Fprintf(os.Stdout, "Similarity: %.2f\n", match.Similarity)
}
