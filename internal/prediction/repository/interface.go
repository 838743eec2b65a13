package repository

import (
	"context"

	"healthsmart-chatbot/internal/prediction"
)

// LogRepository persists prediction logs.
type LogRepository interface {
	Save(ctx context.Context, log prediction.Log) error
	List(ctx context.Context, limit int) ([]prediction.Log, error)
}
