package widget

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/cennetul/muhafiz-go/internal/chat"
)

// Theme holds the color scheme for the widget.
type Theme struct {
	Header lipgloss.Color
	User   lipgloss.Color
	Bot    lipgloss.Color
	Action lipgloss.Color
	Hint   lipgloss.Color
}

var defaultTheme = Theme{
	Header: lipgloss.Color("#1B5E20"), // islamic green
	User:   lipgloss.Color("#5FAFD7"),
	Bot:    lipgloss.Color("#D7AF5F"), // gold accent
	Action: lipgloss.Color("#25D366"), // whatsapp green
	Hint:   lipgloss.Color("#6C6C6C"),
}

func (t Theme) headerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Header).Bold(true)
}

func (t Theme) userStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.User)
}

func (t Theme) botStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Bot)
}

func (t Theme) actionStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Action).Bold(true).Underline(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

// View renders the widget.
func (m Model) View() tea.View {
	return tea.NewView(m.renderContent())
}

func (m Model) renderContent() string {
	if m.quitting {
		return ""
	}

	if !m.open {
		return m.theme.hintStyle().Render("● "+m.persona.Name+" — tab za razgovor, ctrl+c za izlaz") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.theme.headerStyle().Render(m.persona.Name))
	b.WriteString(m.theme.hintStyle().Render("  Duhovni Skrbnik"))
	b.WriteString("\n\n")

	for _, msg := range m.messages {
		b.WriteString(m.renderMessage(msg))
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString(m.theme.hintStyle().Render("Hamza piše..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.theme.hintStyle().Render("enter pošalji • tab zatvori • ctrl+c izlaz"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderMessage(msg chat.Message) string {
	if url, ok := chat.ActionURL(msg.Text); ok {
		label := "Hvala Vam. Potvrdite narudžbu putem WhatsApp-a:"
		return fmt.Sprintf("%s\n  %s",
			m.theme.botStyle().Render(label),
			m.theme.actionStyle().Render(url))
	}

	if msg.Sender == chat.SenderUser {
		return m.theme.userStyle().Render("Vi: ") + msg.Text
	}
	return m.theme.botStyle().Render("Hamza: ") + msg.Text
}
