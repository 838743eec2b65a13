package repository

import (
	"context"

	"healthsmart-chatbot/internal/model"
)

// HistoryRepository stores bounded conversation history per session.
type HistoryRepository interface {
	// Append adds turn at the tail and evicts the oldest turns beyond capacity.
	Append(ctx context.Context, sessionID string, turn model.ConversationTurn) error

	// Recent returns a copy of the session's turns, oldest first.
	Recent(ctx context.Context, sessionID string) ([]model.ConversationTurn, error)

	// Clear drops the session.
	Clear(ctx context.Context, sessionID string) error
}

// ContextRetriever returns at most k passages for query in relevance order.
// Failures degrade to an empty result.
type ContextRetriever interface {
	Retrieve(ctx context.Context, query string, k int) []string
}

// Embedder turns texts into vectors with the same model used at ingestion.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
