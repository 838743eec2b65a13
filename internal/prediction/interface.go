package prediction

import (
	"context"

	"healthsmart-chatbot/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Predict validates the features, calls the prediction service and logs the result.
	Predict(ctx context.Context, sc model.Scope, input PredictInput) (PredictOutput, error)

	// ListLogs returns the most recent stored predictions, newest first.
	ListLogs(ctx context.Context, input ListLogsInput) (ListLogsOutput, error)
}
