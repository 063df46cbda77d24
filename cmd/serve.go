package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meltemi-labs/reviewboost/internal/business"
	"github.com/meltemi-labs/reviewboost/internal/config"
	"github.com/meltemi-labs/reviewboost/internal/llm"
	"github.com/meltemi-labs/reviewboost/internal/rewrite"
	"github.com/meltemi-labs/reviewboost/internal/server"
)

var (
	servePort    int
	serveOrigins []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the rewrite HTTP server",
	Long: `Run the HTTP server exposing the rewrite API.

Endpoints:
  POST /api/rewrite
  GET  /api/health

Environment variables:
  OPENAI_API_KEY              - generation API credential
  REVIEWBOOST_MODEL           - model override (default: gpt-4o)
  REVIEWBOOST_PORT            - listen port (default: 8080)
  REVIEWBOOST_ALLOWED_ORIGINS - comma-separated CORS allow-list
  REVIEWBOOST_PROFILE         - path to a business profile YAML file
  REVIEWBOOST_ENV             - set to "development" for error details

Examples:
  reviewboost serve
  reviewboost serve --port 9090 --cors-origin http://localhost:5173`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides REVIEWBOOST_PORT)")
	serveCmd.Flags().StringArrayVar(&serveOrigins, "cors-origin", nil, "Allowed CORS origin (repeatable; default: allow all)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.FromEnv()
	if servePort > 0 {
		cfg.Port = servePort
	}
	if len(serveOrigins) > 0 {
		cfg.AllowedOrigins = serveOrigins
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var profile *business.Profile
	if cfg.ProfilePath != "" {
		profile, err = business.Load(cfg.ProfilePath)
		if err != nil {
			return err
		}
		logger.Info("business profile loaded",
			zap.String("name", profile.Name),
			zap.String("category", profile.Category),
		)
	}

	llmConfig := llm.DefaultConfig()
	llmConfig.Model = cfg.Model
	llmConfig.APIKey = cfg.APIKey

	// A missing credential is reported per request, not at startup, so the
	// health endpoint stays available while the operator fixes it.
	var generator llm.LLM
	if cfg.APIKey == "" {
		logger.Warn("OPENAI_API_KEY not set, rewrite requests will fail with a configuration error")
	} else {
		openaiLLM, err := llm.NewOpenAILLM(llmConfig)
		if err != nil {
			return err
		}
		generator = openaiLLM
	}

	rewriter := rewrite.New(generator, profile, llmConfig)
	srv := server.New(cfg, logger, rewriter)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Development() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
