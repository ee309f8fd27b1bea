package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryToTurns(t *testing.T) {
	history := []Message{
		NewBotMessage("Selam alejkum"),
		NewUserMessage("Selam"),
		NewBotMessage("Kako ste?"),
		NewUserMessage("Dobro, hvala"),
	}

	turns := HistoryToTurns(history)
	require.Len(t, turns, len(history))

	wantRoles := []string{"model", "user", "model", "user"}
	for i, turn := range turns {
		assert.Equal(t, wantRoles[i], turn.Role, "turn %d role", i)
		require.Len(t, turn.Parts, 1)
		assert.Equal(t, history[i].Text, turn.Parts[0].Text, "turn %d text", i)
	}
}

func TestHistoryToTurnsEmpty(t *testing.T) {
	turns := HistoryToTurns(nil)
	assert.Empty(t, turns)
}

func TestRoundTripPreservesOrder(t *testing.T) {
	history := []Message{
		NewUserMessage("prva"),
		NewBotMessage("druga"),
		NewUserMessage("treća"),
	}

	back := TurnsToHistory(HistoryToTurns(history))
	require.Len(t, back, len(history))
	for i := range history {
		assert.Equal(t, history[i].Text, back[i].Text)
		assert.Equal(t, history[i].Sender, back[i].Sender)
	}
}

func TestTurnsToHistory(t *testing.T) {
	tests := []struct {
		name       string
		turn       Turn
		wantSender Sender
		wantText   string
	}{
		{"user role", Turn{Role: "user", Parts: []Part{{Text: "hej"}}}, SenderUser, "hej"},
		{"model role", Turn{Role: "model", Parts: []Part{{Text: "selam"}}}, SenderBot, "selam"},
		{"unknown role maps to model", Turn{Role: "assistant", Parts: []Part{{Text: "x"}}}, SenderBot, "x"},
		{"multi part joined", Turn{Role: "user", Parts: []Part{{Text: "a"}, {Text: "b"}}}, SenderUser, "ab"},
		{"no parts", Turn{Role: "user"}, SenderUser, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TurnsToHistory([]Turn{tt.turn})
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantSender, got[0].Sender)
			assert.Equal(t, tt.wantText, got[0].Text)
		})
	}
}

func TestMessageIDsUnique(t *testing.T) {
	a := NewUserMessage("ista poruka")
	b := NewUserMessage("ista poruka")
	assert.NotEqual(t, a.ID, b.ID)
}
