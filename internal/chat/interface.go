package chat

import (
	"context"

	"healthsmart-chatbot/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat routes one message and records the turn when appropriate.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// History returns the retained turns of a session, oldest first.
	History(ctx context.Context, sessionID string) (HistoryOutput, error)

	// ClearSession forgets a session's history.
	ClearSession(ctx context.Context, sessionID string) error
}
