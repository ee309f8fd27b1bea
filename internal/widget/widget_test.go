package widget

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/cennetul/muhafiz-go/internal/chat"
	"github.com/cennetul/muhafiz-go/internal/persona"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	resp       chat.Response
	gotHistory []chat.Message
	gotMessage string
	calls      int
}

func (f *fakeSender) Send(ctx context.Context, history []chat.Message, message string) chat.Response {
	f.calls++
	f.gotHistory = history
	f.gotMessage = message
	return f.resp
}

func testModel(resp chat.Response) (Model, *fakeSender) {
	sender := &fakeSender{resp: resp}
	return New(sender, persona.Default()), sender
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestAutoOpenInjectsGreeting(t *testing.T) {
	m, _ := testModel(chat.Response{Text: "ok"})

	m, _ = update(t, m, autoOpenMsg{})

	assert.True(t, m.open)
	require.Len(t, m.messages, 1)
	assert.Equal(t, chat.SenderBot, m.messages[0].Sender)
	assert.Equal(t, persona.Default().Greeting, m.messages[0].Text)
}

func TestAutoOpenSuppressedByExistingMessages(t *testing.T) {
	m, _ := testModel(chat.Response{Text: "ok"})
	m.messages = append(m.messages, chat.NewUserMessage("već pričamo"))

	m, _ = update(t, m, autoOpenMsg{})

	assert.False(t, m.open)
	assert.Len(t, m.messages, 1, "no greeting once any message exists")
}

func TestAutoOpenSuppressedByManualToggle(t *testing.T) {
	m, _ := testModel(chat.Response{Text: "ok"})
	m.toggled = true

	m, _ = update(t, m, autoOpenMsg{})

	assert.False(t, m.open)
	assert.Empty(t, m.messages)
}

func TestSubmitAppendsUserMessageAndLoads(t *testing.T) {
	m, sender := testModel(chat.Response{Text: "Selam alejkum"})
	m.open = true
	m.messages = append(m.messages, chat.NewBotMessage("pozdrav"))
	m.input.SetValue("  Treba mi štit  ")

	next, cmd := m.submit()
	m = next.(Model)

	require.Len(t, m.messages, 2)
	assert.Equal(t, chat.SenderUser, m.messages[1].Sender)
	assert.Equal(t, "Treba mi štit", m.messages[1].Text, "input is trimmed")
	assert.True(t, m.loading)
	assert.Empty(t, m.input.Value())
	require.NotNil(t, cmd)

	// Run the send command; history excludes the in-flight message.
	msg := cmd()
	resp, ok := msg.(responseMsg)
	require.True(t, ok)
	assert.Equal(t, "Selam alejkum", resp.resp.Text)
	assert.Equal(t, "Treba mi štit", sender.gotMessage)
	require.Len(t, sender.gotHistory, 1)
	assert.Equal(t, "pozdrav", sender.gotHistory[0].Text)
}

func TestSubmitIgnoresEmptyInput(t *testing.T) {
	m, sender := testModel(chat.Response{Text: "ok"})
	m.open = true
	m.input.SetValue("   ")

	next, cmd := m.submit()
	m = next.(Model)

	assert.Empty(t, m.messages)
	assert.False(t, m.loading)
	assert.Nil(t, cmd)
	assert.Zero(t, sender.calls)
}

func TestResponseAppendsBotMessage(t *testing.T) {
	m, _ := testModel(chat.Response{})
	m.open = true
	m.loading = true

	m, _ = update(t, m, responseMsg{resp: chat.Response{Text: "Hairli Vam bilo"}})

	assert.False(t, m.loading)
	require.Len(t, m.messages, 1)
	assert.Equal(t, "Hairli Vam bilo", m.messages[0].Text)
}

func TestResponseWithOrderToolCall(t *testing.T) {
	m, _ := testModel(chat.Response{})
	m.open = true
	m.loading = true

	m, _ = update(t, m, responseMsg{resp: chat.Response{
		Text: "Hvala Vam",
		ToolCall: &chat.ToolCall{
			Name: "submit_order",
			Args: map[string]any{"name": "Amina", "address": "Sarajevo 1", "phone": "061000000"},
		},
	}})

	// Text reply plus exactly one extra action message.
	require.Len(t, m.messages, 2)
	assert.Equal(t, "Hvala Vam", m.messages[0].Text)

	link := m.messages[1]
	assert.Equal(t, chat.SenderBot, link.Sender)
	assert.True(t, strings.HasPrefix(link.Text, chat.ActionPrefix))
	assert.Contains(t, link.Text, "wa.me/"+persona.Default().WhatsAppNumber)
	assert.Contains(t, link.Text, "Amina")
	assert.Contains(t, link.Text, "Sarajevo+1")
	assert.Contains(t, link.Text, "061000000")
}

func TestResponseWithUnknownToolCall(t *testing.T) {
	m, _ := testModel(chat.Response{})
	m.loading = true

	m, _ = update(t, m, responseMsg{resp: chat.Response{
		Text:     "evo",
		ToolCall: &chat.ToolCall{Name: "nesto_drugo", Args: map[string]any{}},
	}})

	assert.Len(t, m.messages, 1, "unknown tool names produce no action message")
}

func TestResponseWithEmptyText(t *testing.T) {
	m, _ := testModel(chat.Response{})
	m.loading = true

	m, _ = update(t, m, responseMsg{resp: chat.Response{Text: ""}})

	assert.False(t, m.loading, "loading clears even when nothing is rendered")
	assert.Empty(t, m.messages)
}

func TestViewRendersActionLink(t *testing.T) {
	m, _ := testModel(chat.Response{})
	m.open = true
	link := chat.WhatsAppLink(persona.Default().WhatsAppNumber, chat.OrderDetails{
		Name: "Amina", Address: "Sarajevo 1", Phone: "061000000", PaymentMethod: chat.DefaultPaymentMethod,
	})
	m.messages = append(m.messages, chat.NewBotMessage(chat.ActionMessage(link)))

	out := m.renderContent()
	assert.Contains(t, out, "wa.me")
	assert.NotContains(t, out, chat.ActionPrefix, "sentinel itself never renders")
}
