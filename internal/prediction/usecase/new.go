package usecase

import (
	"healthsmart-chatbot/internal/prediction"
	"healthsmart-chatbot/internal/prediction/repository"
	pkgLog "healthsmart-chatbot/pkg/log"
	"healthsmart-chatbot/pkg/predictor"
)

const (
	LogPrefixPredict  = "internal.prediction.usecase.Predict"
	LogPrefixListLogs = "internal.prediction.usecase.ListLogs"

	DefaultModelVersion = "1.0.0"
	DefaultListLimit    = 20
	MaxListLimit        = 100
)

type implUseCase struct {
	l            pkgLog.Logger
	client       predictor.IPredictor
	repo         repository.LogRepository
	modelVersion string
}

// New creates a new prediction UseCase. A nil repo disables logging.
func New(l pkgLog.Logger, client predictor.IPredictor, repo repository.LogRepository, modelVersion string) prediction.UseCase {
	if modelVersion == "" {
		modelVersion = DefaultModelVersion
	}
	return &implUseCase{
		l:            l,
		client:       client,
		repo:         repo,
		modelVersion: modelVersion,
	}
}
