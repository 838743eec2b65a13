package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"healthsmart-chatbot/internal/model"
	"healthsmart-chatbot/internal/prediction"
	"healthsmart-chatbot/pkg/predictor"
)

// Predict validates the features, calls the prediction service and stores a
// best-effort log entry.
func (uc *implUseCase) Predict(ctx context.Context, sc model.Scope, input prediction.PredictInput) (prediction.PredictOutput, error) {
	if err := input.Features.Validate(); err != nil {
		return prediction.PredictOutput{}, err
	}

	result, err := uc.client.Predict(ctx, input.Features.Vector())
	if err != nil {
		var se *predictor.StatusError
		if errors.As(err, &se) && se.Rejected() {
			return prediction.PredictOutput{}, fmt.Errorf("%w: %s", prediction.ErrInvalidFeatures, se.Body)
		}
		uc.l.Errorf(ctx, "%s: client.Predict: %v", LogPrefixPredict, err)
		return prediction.PredictOutput{}, fmt.Errorf("%w: %v", prediction.ErrPredictorUnavailable, err)
	}

	uc.saveLog(ctx, input.Features, result)
	uc.l.Infof(ctx, "%s: ip=%s risk=%.4f", LogPrefixPredict, sc.ClientIP, result[0])

	return prediction.PredictOutput{
		Prediction:   result,
		Risk:         result[0],
		ModelVersion: uc.modelVersion,
	}, nil
}

// saveLog never fails the request.
func (uc *implUseCase) saveLog(ctx context.Context, features prediction.Features, result []float64) {
	if uc.repo == nil {
		return
	}
	err := uc.repo.Save(ctx, prediction.Log{
		ID:           uuid.NewString(),
		Features:     features,
		Result:       result,
		ModelVersion: uc.modelVersion,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: repo.Save: %v", LogPrefixPredict, err)
	}
}

// ListLogs returns recent predictions, newest first.
func (uc *implUseCase) ListLogs(ctx context.Context, input prediction.ListLogsInput) (prediction.ListLogsOutput, error) {
	if uc.repo == nil {
		return prediction.ListLogsOutput{}, prediction.ErrLogUnavailable
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	logs, err := uc.repo.List(ctx, limit)
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.List: %v", LogPrefixListLogs, err)
		return prediction.ListLogsOutput{}, fmt.Errorf("%s: %w", LogPrefixListLogs, err)
	}
	return prediction.ListLogsOutput{Logs: logs}, nil
}
