package chat

import "healthsmart-chatbot/internal/model"

// Source tags which path produced a reply.
type Source string

const (
	SourceEmergency             Source = "emergency_alert"
	SourceRules                 Source = "rules_engine"
	SourceGenerative            Source = "generative"
	SourceGenerativeWithContext Source = "generative_with_context"
)

// --- UseCase Inputs ---

type ChatInput struct {
	Message   string
	SessionID string
}

// --- UseCase Outputs ---

type ChatOutput struct {
	Response  string
	Source    Source
	SessionID string
}

type HistoryOutput struct {
	SessionID string
	Turns     []model.ConversationTurn
}
