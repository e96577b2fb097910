package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"brandvoice/automation"
	"brandvoice/config"
	"brandvoice/generator"
	"brandvoice/store"
)

var (
	configPath string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "brandvoice",
	Short: "Draft brand voice communications from records and score them",
	Long: `brandvoice runs one record-triggered automation per invocation:

  draft   generate a first draft from a request record and store it
  score   score a stored draft against the brand voice rubric
  review  ask the model for a qualitative review of a stored draft
  check   score a local file without touching the record store
  serve   expose draft, score and review as webhooks`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (defaults are built in)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logs")
	rootCmd.AddCommand(draftCmd, scoreCmd, reviewCmd, checkCmd, serveCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(automation.ExitCode(err))
	}
}

// deps holds what an invocation was built with. Fields stay nil when the
// invocation did not ask for them.
type deps struct {
	cfg   config.Config
	store *store.Client
	agent *generator.Agent
}

// loadDeps reads config and credentials once, before any remote call.
func loadDeps(need config.Need) (deps, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return deps{}, automation.ConfigError(err)
	}
	secrets, err := config.LoadSecrets(cfg, need)
	if err != nil {
		return deps{}, automation.ConfigError(err)
	}

	d := deps{cfg: cfg}
	if need.Store {
		d.store, err = store.New(cfg.Store.BaseURL, secrets.StoreKey, nil, logger)
		if err != nil {
			return deps{}, automation.ConfigError(err)
		}
	}
	if need.Generation {
		d.agent, err = buildAgent(cfg, secrets.GenerationKey)
		if err != nil {
			return deps{}, automation.ConfigError(err)
		}
	}
	return d, nil
}

func buildAgent(cfg config.Config, apiKey string) (*generator.Agent, error) {
	drafts, err := generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
		Model:   cfg.Generation.DraftModel,
		APIKey:  apiKey,
		BaseURL: cfg.Generation.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	reviews, err := generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
		Model:   cfg.Generation.ReviewModel,
		APIKey:  apiKey,
		BaseURL: cfg.Generation.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	return generator.NewAgent(drafts, reviews,
		generator.WithStyle(cfg.Generation.Style),
		generator.WithMaxOutputTokens(cfg.Generation.MaxOutputTokens))
}
