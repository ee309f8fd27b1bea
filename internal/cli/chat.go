package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/cennetul/muhafiz-go/internal/client"
	"github.com/cennetul/muhafiz-go/internal/config"
	"github.com/cennetul/muhafiz-go/internal/llm"
	"github.com/cennetul/muhafiz-go/internal/widget"
	"github.com/spf13/cobra"
)

var chatBackendURL string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the chat widget in the terminal",
	Long: `Open the chat widget and talk to the agent.

The widget posts to the configured backend. When the backend is unreachable
and dev mode is on (MUHAFIZ_DEV_MODE=true) with a local API key present, it
falls back to calling the model directly.

Examples:
  muhafiz chat
  muhafiz chat --backend https://moj-projekat.vercel.app`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatBackendURL, "backend", "", "backend base URL (overrides MUHAFIZ_BACKEND_URL)")
}

func runChat(cmd *cobra.Command, args []string) error {
	if chatBackendURL != "" {
		cfg.BackendURL = chatBackendURL
	}

	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer func() { _ = cleanup() }()

	// The direct fallback tier only exists when a local credential can build
	// a completer. Its absence is not an error; the client degrades to the
	// canned diagnostic instead.
	var direct llm.Completer
	if cfg.DevMode {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		c, err := llm.New(ctx, cfg, pol)
		cancel()
		if err != nil {
			logger.Warn("direct fallback unavailable", "error", err)
		} else {
			direct = c
		}
	}

	sender := client.New(cfg, pol, direct, logger)

	if err := widget.Run(sender, pol); err != nil {
		return fmt.Errorf("widget error: %w", err)
	}
	return nil
}
