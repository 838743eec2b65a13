package usecase

import (
	"context"
	"fmt"
	"strings"

	"healthsmart-chatbot/internal/chat"
)

// History returns the retained turns for sessionID, oldest first.
func (uc *implUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return chat.HistoryOutput{}, chat.ErrSessionIDRequired
	}

	turns, err := uc.history.Recent(ctx, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "%s: history.Recent: %v", LogPrefixHistory, err)
		return chat.HistoryOutput{}, fmt.Errorf("%s: %w", LogPrefixHistory, err)
	}

	return chat.HistoryOutput{
		SessionID: sessionID,
		Turns:     turns,
	}, nil
}

// ClearSession drops all turns for sessionID.
func (uc *implUseCase) ClearSession(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return chat.ErrSessionIDRequired
	}

	if err := uc.history.Clear(ctx, sessionID); err != nil {
		uc.l.Errorf(ctx, "%s: history.Clear: %v", LogPrefixClearSession, err)
		return fmt.Errorf("%s: %w", LogPrefixClearSession, err)
	}

	uc.l.Infof(ctx, "%s: session=%s cleared", LogPrefixClearSession, sessionID)
	return nil
}
