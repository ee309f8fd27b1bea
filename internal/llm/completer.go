// Package llm provides the completion client using langchaingo.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cennetul/muhafiz-go/internal/chat"
	"github.com/cennetul/muhafiz-go/internal/config"
	"github.com/cennetul/muhafiz-go/internal/persona"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
)

// ErrMissingAPIKey is returned by Complete when the configured provider
// needs a credential that is absent. The credential value itself never
// appears in errors or logs.
var ErrMissingAPIKey = errors.New("model API key not configured")

// Completer produces one model turn for a conversation.
type Completer interface {
	Complete(ctx context.Context, history []chat.Message, message string) (*chat.Response, error)
}

// Client wraps a langchaingo model configured with the persona policy.
type Client struct {
	llm     llms.Model
	persona persona.Persona
}

// New creates a completion client based on configuration.
func New(ctx context.Context, cfg config.Config, p persona.Persona) (*Client, error) {
	var model llms.Model
	var err error

	switch cfg.Provider {
	case config.ProviderGoogleAI:
		if cfg.GeminiAPIKey == "" {
			// Construction still succeeds; the missing credential is
			// reported by each Complete call, so a server without a key
			// keeps serving and answers every chat turn with the apology.
			return &Client{persona: p}, nil
		}
		model, err = googleai.New(ctx,
			googleai.WithAPIKey(cfg.GeminiAPIKey),
			googleai.WithDefaultModel(p.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("create googleai model: %w", err)
		}

	case config.ProviderOllama:
		model, err = ollama.New(
			ollama.WithModel(p.Model),
			ollama.WithServerURL(cfg.OllamaHost),
		)
		if err != nil {
			return nil, fmt.Errorf("create ollama model: %w", err)
		}

	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}

	return &Client{llm: model, persona: p}, nil
}

// NewWithModel wraps an existing model (for tests).
func NewWithModel(model llms.Model, p persona.Persona) *Client {
	return &Client{llm: model, persona: p}
}

// Complete sends the full prior history plus the new message to the model
// and returns its text and, when signalled, the first tool call of the turn.
// History is never truncated or summarized; turn order is preserved.
// Single attempt, no retry.
func (c *Client) Complete(ctx context.Context, history []chat.Message, message string) (*chat.Response, error) {
	if c.llm == nil {
		return nil, ErrMissingAPIKey
	}

	messages := make([]llms.MessageContent, 0, len(history)+2)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, c.persona.Instruction))
	for _, m := range history {
		role := llms.ChatMessageTypeAI
		if m.Sender == chat.SenderUser {
			role = llms.ChatMessageTypeHuman
		}
		messages = append(messages, llms.TextParts(role, m.Text))
	}
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, message))

	resp, err := c.llm.GenerateContent(ctx, messages,
		llms.WithTemperature(c.persona.Temperature),
		llms.WithTools([]llms.Tool{c.persona.OrderTool()}),
	)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response choices")
	}

	choice := resp.Choices[0]
	toolCall, err := extractToolCall(choice)
	if err != nil {
		return nil, err
	}

	text := choice.Content
	if text == "" {
		text = "..."
	}

	return &chat.Response{Text: text, ToolCall: toolCall}, nil
}

// extractToolCall surfaces the first function call of the turn, if any.
// Later calls are dropped. The name is not filtered here; unrecognized
// names pass through and simply find no consumer downstream.
func extractToolCall(choice *llms.ContentChoice) (*chat.ToolCall, error) {
	var fc *llms.FunctionCall
	if len(choice.ToolCalls) > 0 && choice.ToolCalls[0].FunctionCall != nil {
		fc = choice.ToolCalls[0].FunctionCall
	} else if choice.FuncCall != nil {
		fc = choice.FuncCall
	}
	if fc == nil {
		return nil, nil
	}

	args := map[string]any{}
	if fc.Arguments != "" {
		if err := json.Unmarshal([]byte(fc.Arguments), &args); err != nil {
			return nil, fmt.Errorf("parse tool call arguments: %w", err)
		}
	}
	return &chat.ToolCall{Name: fc.Name, Args: args}, nil
}
