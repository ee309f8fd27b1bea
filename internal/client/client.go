// Package client implements the widget-side messaging client: one primary
// transport and a chain of fallback tiers, each attempted only when the
// previous one is confirmed unusable. Send always resolves to a response
// the widget can render; it never returns an error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cennetul/muhafiz-go/internal/chat"
	"github.com/cennetul/muhafiz-go/internal/config"
	"github.com/cennetul/muhafiz-go/internal/llm"
	"github.com/cennetul/muhafiz-go/internal/persona"
)

// previewDomain marks embeds still running on the hosting provider's
// preview URL with no backend configured. Short-circuiting here keeps the
// direct-credential tier out of misconfigured embeds.
const previewDomain = "webflow.io"

// Sender is what the widget depends on.
type Sender interface {
	Send(ctx context.Context, history []chat.Message, message string) chat.Response
}

// Client resolves a send through up to three strategies: the backend, the
// direct model fallback, and a terminal canned reply.
type Client struct {
	endpoint    string
	configured  bool
	embedOrigin string
	devMode     bool
	direct      llm.Completer // nil when no local credential is available
	persona     persona.Persona
	httpClient  *http.Client
	logger      *slog.Logger
}

// New creates a messaging client. If cfg.BackendURL is empty the client
// targets the local server, mirroring the relative-path default of the
// embedded widget. direct may be nil; it is only used in dev mode.
func New(cfg config.Config, p persona.Persona, direct llm.Completer, logger *slog.Logger) *Client {
	base := strings.TrimRight(cfg.BackendURL, "/")
	configured := base != ""
	if !configured {
		base = "http://localhost:" + cfg.Port
	}

	return &Client{
		endpoint:    base + "/api/chat",
		configured:  configured,
		embedOrigin: cfg.EmbedOrigin,
		devMode:     cfg.DevMode,
		direct:      direct,
		persona:     p,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// Send resolves one turn. Tiers, strictly in order:
//
//  1. POST to the backend; usable only on 200 with a JSON content type.
//  2. Misconfiguration guard: unconfigured backend on a preview domain
//     stops here with a fixed setup message.
//  3. Direct model call, only with a local credential in dev mode.
//  4. A canned diagnostic, so the caller always has text to render.
func (c *Client) Send(ctx context.Context, history []chat.Message, message string) chat.Response {
	resp, err := c.post(ctx, history, message)
	if err == nil {
		return *resp
	}
	c.logger.Warn("backend unusable, falling back", "endpoint", c.endpoint, "error", err)

	if !c.configured && strings.Contains(c.embedOrigin, previewDomain) {
		return chat.Response{Text: c.persona.ConfigNeeded}
	}

	if c.direct == nil || !c.devMode {
		return chat.Response{Text: c.persona.ConnectFailed}
	}

	direct, err := c.direct.Complete(ctx, history, message)
	if err != nil {
		// A completer without a credential is the same as no completer.
		if errors.Is(err, llm.ErrMissingAPIKey) {
			c.logger.Warn("direct fallback has no credential")
			return chat.Response{Text: c.persona.ConnectFailed}
		}
		c.logger.Error("direct fallback failed", "error", err)
		return chat.Response{Text: c.persona.SystemError}
	}
	return *direct
}

// post is the primary tier. Any transport error, non-200 status or non-JSON
// content type makes the tier unusable; the body of a failed response is
// never surfaced to the caller.
func (c *Client) post(ctx context.Context, history []chat.Message, message string) (*chat.Response, error) {
	payload := struct {
		History []chat.Turn `json:"history"`
		Message string      `json:"message"`
	}{
		History: chat.HistoryToTurns(history),
		Message: message,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if resp.StatusCode != http.StatusOK || !strings.Contains(contentType, "application/json") {
		// Drain so the connection can be reused, then discard.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("server error: %s (content type %q)", resp.Status, contentType)
	}

	var chatResp chat.Response
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &chatResp, nil
}
