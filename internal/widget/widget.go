// Package widget implements the chat widget as a terminal UI state machine:
// an append-only message list, an open/closed flag orthogonal to a loading
// flag, an auto-open timer, and the order deep-link flow.
package widget

import (
	"context"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/cennetul/muhafiz-go/internal/chat"
	"github.com/cennetul/muhafiz-go/internal/client"
	"github.com/cennetul/muhafiz-go/internal/persona"
)

// DefaultAutoOpenDelay is how long a mounted, untouched widget waits before
// opening itself with a greeting.
const DefaultAutoOpenDelay = 30 * time.Second

// autoOpenMsg fires when the auto-open timer elapses.
type autoOpenMsg struct{}

// responseMsg carries the resolved reply for an in-flight send.
type responseMsg struct {
	resp chat.Response
}

// Model is the widget state. All transitions happen in Update; the message
// list only ever grows and messages are never edited.
type Model struct {
	sender  client.Sender
	persona persona.Persona

	input    textinput.Model
	messages []chat.Message
	open     bool
	loading  bool
	toggled  bool // a manual toggle permanently disables the auto-open timer
	quitting bool

	autoOpenDelay time.Duration
	sendTimeout   time.Duration
	theme         Theme
}

// New creates a closed, empty widget.
func New(sender client.Sender, p persona.Persona) Model {
	input := textinput.New()
	input.Placeholder = "Napišite poruku..."

	return Model{
		sender:        sender,
		persona:       p,
		input:         input,
		autoOpenDelay: DefaultAutoOpenDelay,
		sendTimeout:   60 * time.Second,
		theme:         defaultTheme,
	}
}

// Init starts the auto-open timer.
func (m Model) Init() tea.Cmd {
	return autoOpenCmd(m.autoOpenDelay)
}

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "tab":
			// Manual toggle, independent of the timer.
			m.toggled = true
			m.open = !m.open
			if m.open {
				m.input.Focus()
			} else {
				m.input.Blur()
			}
			return m, nil

		case "enter":
			if m.open && !m.loading {
				return m.submit()
			}
			return m, nil

		default:
			if m.open && !m.loading {
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				return m, cmd
			}
			return m, nil
		}

	case autoOpenMsg:
		// Fires once. Acts only if nothing has happened yet: still closed,
		// no message of either sender, never toggled by hand.
		if !m.open && len(m.messages) == 0 && !m.toggled {
			m.open = true
			m.messages = append(m.messages, chat.NewBotMessage(m.persona.Greeting))
			m.input.Focus()
		}
		return m, nil

	case responseMsg:
		m.loading = false
		if msg.resp.Text != "" {
			m.messages = append(m.messages, chat.NewBotMessage(msg.resp.Text))
		}
		if order, ok := chat.OrderFromToolCall(msg.resp.ToolCall); ok {
			link := chat.WhatsAppLink(m.persona.WhatsAppNumber, order)
			m.messages = append(m.messages, chat.NewBotMessage(chat.ActionMessage(link)))
		}
		return m, nil
	}

	return m, nil
}

// submit appends the user message and issues the send command. The history
// snapshot excludes the message being sent; it travels separately.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}

	history := make([]chat.Message, len(m.messages))
	copy(history, m.messages)

	m.messages = append(m.messages, chat.NewUserMessage(text))
	m.input.SetValue("")
	m.loading = true

	return m, m.sendCmd(history, text)
}

// sendCmd runs the tiered send off the UI loop. The sender contract
// guarantees a renderable response, so there is no error branch here.
func (m Model) sendCmd(history []chat.Message, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.sendTimeout)
		defer cancel()
		return responseMsg{resp: m.sender.Send(ctx, history, text)}
	}
}

func autoOpenCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return autoOpenMsg{}
	})
}

// Run starts the interactive widget and blocks until the user quits.
func Run(sender client.Sender, p persona.Persona) error {
	_, err := tea.NewProgram(New(sender, p)).Run()
	return err
}
