package chat

// ToolCall is a structured function call returned by the model alongside or
// instead of free text. Only the first call of a turn is ever surfaced.
type ToolCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// Response is the contract returned by the backend handler and by the direct
// fallback path alike. Text is always non-empty; ToolCall is present only
// when the model signalled one.
type Response struct {
	Text     string    `json:"text"`
	ToolCall *ToolCall `json:"toolCall,omitempty"`
}
