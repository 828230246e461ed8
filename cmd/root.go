package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/personato/talentlens/internal/ai"
	"github.com/personato/talentlens/internal/ai/gemini"
	"github.com/personato/talentlens/internal/catalog"
	"github.com/personato/talentlens/internal/feature"
	"github.com/personato/talentlens/internal/logger"
	"github.com/personato/talentlens/internal/model"
	"github.com/personato/talentlens/internal/scoring"
	"github.com/personato/talentlens/internal/secrets"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "talentlens"
)

type Config struct {
	Catalog  *CatalogConfig   `mapstructure:"catalog"`
	Weights  *scoring.Weights `mapstructure:"weights"`
	Blend    *float64         `mapstructure:"blend"`
	Training *TrainingConfig  `mapstructure:"training"`
	AI       *AIConfig        `mapstructure:"ai"`

	// NormalizeWeights rescales the configured weights to sum to one.
	NormalizeWeights bool `mapstructure:"normalize-weights"`
}

type CatalogConfig struct {
	File   string `mapstructure:"file"`
	Sector string `mapstructure:"sector"`
}

type TrainingConfig struct {
	Samples int    `mapstructure:"samples"`
	Seed    uint64 `mapstructure:"seed"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "talentlens is a cli for scoring candidates against a vacancy catalog",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is talentlens.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// A missing config file is fine, the engine runs with defaults. A config
	// file that exists but does not parse is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

// weights returns the configured weight profile, or the defaults.
func (c *Config) weights() scoring.Weights {
	w := scoring.DefaultWeights()
	if c.Weights != nil {
		w = *c.Weights
	}
	if c.NormalizeWeights {
		w = w.Normalized()
	}
	return w
}

// blendFactor returns the configured blend factor, or the default.
func (c *Config) blendFactor() float64 {
	if c.Blend != nil {
		return *c.Blend
	}
	return scoring.DefaultBlendFactor
}

// buildCatalog loads the builtin vacancy catalog and applies a CSV override
// when one is configured. Override failures degrade to the builtin catalog.
func buildCatalog(config *Config, log *zap.Logger) *catalog.Catalog {
	cat := catalog.Builtin()

	if config.Catalog == nil || config.Catalog.File == "" {
		return cat
	}

	sector := config.Catalog.Sector
	if sector == "" {
		sector = catalog.DefaultSector
	}

	updated, err := catalog.LoadOverrideFile(config.Catalog.File, sector, cat)
	if err != nil {
		log.Warn("ignoring catalog override",
			zap.String("file", config.Catalog.File),
			zap.Error(err),
		)
		return cat
	}

	log.Info("catalog override applied",
		zap.String("file", config.Catalog.File),
		zap.String(logger.FieldSector, sector),
	)
	return updated
}

// trainModel synthesizes the training set and fits the success predictor.
func trainModel(config *Config, cat *catalog.Catalog, log *zap.Logger) (*model.TrainedModel, error) {
	samples := model.DefaultSampleCount
	seed := model.DefaultSeed
	if config.Training != nil {
		if config.Training.Samples > 0 {
			samples = config.Training.Samples
		}
		if config.Training.Seed != 0 {
			seed = config.Training.Seed
		}
	}

	ds := model.Synthesize(cat.Sectors(), samples, seed)

	trained, err := model.TrainOnce(ds, seed)
	if err != nil {
		return nil, fmt.Errorf("training the success predictor: %w", err)
	}

	metrics := trained.Metrics()
	log.Info("success predictor trained",
		zap.Int("samples", trained.SampleCount()),
		zap.Float64("f1", metrics.F1),
		zap.Float64("auc", metrics.AUC),
	)

	return trained, nil
}

// newGenerator builds the Gemini generator from the ai configuration.
func newGenerator(ctx context.Context, config *AIConfig) (*gemini.Generator, error) {
	provider := strings.TrimSpace(strings.ToLower(config.Provider))
	if provider != "" && provider != gemini.Provider {
		return nil, fmt.Errorf("unsupported ai provider: %s", config.Provider)
	}

	if config.Gemini == nil {
		config.Gemini = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: config.Gemini.APIKey,
		File:  config.Gemini.APIKeyFile,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, err
	}

	return gemini.NewGenerator(ctx, apiKey, config.Gemini.Model)
}

// buildEngine wires the full scoring engine from the configuration. When the
// ai section is disabled or fails, the engine falls back to the lexicon
// sentiment and the offline narrative template.
func buildEngine(ctx context.Context, config *Config, log *zap.Logger) (*scoring.Engine, error) {
	cat := buildCatalog(config, log)

	trained, err := trainModel(config, cat, log)
	if err != nil {
		return nil, err
	}

	var scorer feature.SentimentScorer
	var narrator ai.Narrator

	if config.AI != nil && config.AI.Enabled {
		generator, err := newGenerator(ctx, config.AI)
		if err != nil {
			log.Warn("ai provider unavailable, scoring offline", zap.Error(err))
		} else {
			aiLogger := logger.WithProviderFields(log, gemini.Provider, generator.Model())
			maxLog := 0
			if config.AI.Gemini != nil {
				maxLog = config.AI.Gemini.MaxLogLength
			}
			scorer = gemini.NewSentimentScorer(generator, aiLogger, maxLog)
			narrator = gemini.NewNarrator(generator, aiLogger, maxLog)
		}
	}

	extractor := feature.NewExtractor(scorer, log)

	return scoring.NewEngine(trained, cat, extractor, narrator, log), nil
}
