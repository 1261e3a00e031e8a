// Package root contains the root command for the application
package root

import (
	"context"
	"fmt"
	"time"

	"anand/fintrack/internal/categorizer"
	"anand/fintrack/internal/config"
	"anand/fintrack/internal/logging"
	"anand/fintrack/internal/store"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "fintrack",
		Short: "A CLI tool to parse bank statements into categorized transactions.",
		Long: `fintrack parses bank statement exports (XLSX, legacy XLS, CSV) into
normalized, categorized transactions and uploads them into a per-user
transaction store with duplicate detection. It also records manual
chit fund payments.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to fintrack!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Warn("Falling back to default configuration")
				cfg = &config.Config{}
				cfg.Log.Level = "info"
				cfg.Log.Format = "text"
				cfg.Store.Path = "transactions.yaml"
				cfg.Parser.PreviewRows = 20
				cfg.Parser.MinMaterialAmount = 100
				cfg.ChitFund.BeatAmount = 50000
			}
			Cfg = cfg

			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Upload and transactions command flags
	User         string
	ReviewedFile string
	Category     string
	TransID      string

	// Categorize command flags
	Description string
	TxType      string

	// Chit fund command flags
	ChitDate    string
	ChitBeat    string
	ChitDiv     string
	ChitName    string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// OpenStore opens the YAML transaction store at the configured path.
func OpenStore() (store.TransactionStore, error) {
	path := "transactions.yaml"
	if Cfg != nil && Cfg.Store.Path != "" {
		path = Cfg.Store.Path
	}

	s, err := store.NewFileStore(path)
	if err != nil {
		return nil, fmt.Errorf("could not open transaction store: %w", err)
	}
	return s, nil
}

// NewCategorizer builds the categorizer from the configuration: custom
// rule tables when a rules file is configured, and the Gemini fallback
// when AI is enabled.
func NewCategorizer(ctx context.Context) (*categorizer.Categorizer, func(), error) {
	var opts []categorizer.Option
	cleanup := func() {}

	if Cfg != nil && Cfg.Categorization.RulesFile != "" {
		income, expense, err := categorizer.LoadRulesFile(Cfg.Categorization.RulesFile)
		if err != nil {
			return nil, nil, fmt.Errorf("could not load categorization rules: %w", err)
		}
		opts = append(opts, categorizer.WithRules(income, expense))
		Log.Debug("Loaded categorization rules file",
			logging.Field{Key: logging.FieldFile, Value: Cfg.Categorization.RulesFile})
	}

	if Cfg != nil && Cfg.AI.Enabled {
		client, err := categorizer.NewGeminiClient(ctx, Cfg.AI.APIKey, Cfg.AI.Model, Log)
		if err != nil {
			Log.WithError(err).Warn("AI categorization unavailable, rules only")
		} else {
			timeout := time.Duration(Cfg.AI.TimeoutSeconds) * time.Second
			opts = append(opts, categorizer.WithAIClient(client, timeout))
			cleanup = func() {
				_ = client.Close()
			}
		}
	}

	return categorizer.New(Log, opts...), cleanup, nil
}
