package chat

// Turn is the wire representation of one conversation entry, as sent to the
// backend and onward to the model: {role, parts:[{text}]}.
type Turn struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// Part is a single content fragment of a turn. Only text parts exist here.
type Part struct {
	Text string `json:"text"`
}

// HistoryToTurns maps stored messages to wire turns, preserving order.
// The sender maps 1:1 to the role (user -> "user", bot -> "model").
func HistoryToTurns(history []Message) []Turn {
	turns := make([]Turn, 0, len(history))
	for _, m := range history {
		turns = append(turns, Turn{
			Role:  string(m.Sender),
			Parts: []Part{{Text: m.Text}},
		})
	}
	return turns
}

// TurnsToHistory converts wire turns back into domain messages. Unknown
// roles are treated as model turns. Multi-part turns are joined in order.
func TurnsToHistory(turns []Turn) []Message {
	history := make([]Message, 0, len(turns))
	for _, t := range turns {
		var text string
		for _, p := range t.Parts {
			text += p.Text
		}
		sender := SenderBot
		if t.Role == string(SenderUser) {
			sender = SenderUser
		}
		history = append(history, newMessage(text, sender))
	}
	return history
}
