package model

// ConversationTurn is one completed user/assistant exchange.
type ConversationTurn struct {
	UserMessage       string `json:"user_message"`
	AssistantResponse string `json:"assistant_response"`
}
