package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cennetul/muhafiz-go/internal/config"
	"github.com/cennetul/muhafiz-go/internal/llm"
	"github.com/cennetul/muhafiz-go/internal/server"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the chat backend",
	Long: `Run the HTTP backend the embedded widget talks to.

Wants a model API key (MUHAFIZ_API_KEY or API_KEY) unless the provider is
set to ollama; without one the server still runs but answers every chat
request with the busy apology.

Examples:
  muhafiz serve
  muhafiz serve --port 9000
  muhafiz serve --persona persona.yaml`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (overrides MUHAFIZ_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if servePort != "" {
		cfg.Port = servePort
	}

	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer func() { _ = cleanup() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	completer, err := llm.New(ctx, cfg, pol)
	cancel()
	if err != nil {
		return fmt.Errorf("init completer: %w", err)
	}
	if cfg.Provider == config.ProviderGoogleAI && cfg.GeminiAPIKey == "" {
		logger.Warn("no model API key configured; chat requests will be answered with the busy apology")
	}

	api := server.New(completer, pol, logger, cfg.RequestTimeout)
	srv := api.HTTPServer(cfg)

	go func() {
		logger.Info("starting muhafiz backend", "port", cfg.Port, "provider", cfg.Provider)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
