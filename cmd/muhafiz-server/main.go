// Package main provides the standalone chat backend for muhafiz.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cennetul/muhafiz-go/internal/config"
	"github.com/cennetul/muhafiz-go/internal/llm"
	"github.com/cennetul/muhafiz-go/internal/persona"
	"github.com/cennetul/muhafiz-go/internal/server"
)

func main() {
	personaFile := flag.String("persona", "", "YAML file overriding the default persona")
	port := flag.String("port", "", "listen port (overrides MUHAFIZ_PORT)")
	flag.Parse()

	cfg := config.Load()
	if *personaFile != "" {
		cfg.PersonaFile = *personaFile
	}
	if *port != "" {
		cfg.Port = *port
	}

	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer func() { _ = cleanup() }()
	slog.SetDefault(logger)

	pol, err := persona.Load(cfg.PersonaFile)
	if err != nil {
		logger.Error("failed to load persona", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	completer, err := llm.New(ctx, cfg, pol)
	cancel()
	if err != nil {
		logger.Error("failed to create completer", "error", err)
		os.Exit(1)
	}
	if cfg.Provider == config.ProviderGoogleAI && cfg.GeminiAPIKey == "" {
		logger.Warn("no model API key configured; chat requests will be answered with the busy apology")
	}

	api := server.New(completer, pol, logger, cfg.RequestTimeout)
	srv := api.HTTPServer(cfg)

	go func() {
		logger.Info("starting muhafiz-server", "port", cfg.Port, "provider", cfg.Provider)
		logger.Info("chat endpoint available", "url", fmt.Sprintf("http://localhost:%s/api/chat", cfg.Port))

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
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
