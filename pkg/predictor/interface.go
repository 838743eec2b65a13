package predictor

import "context"

// IPredictor calls the heart disease prediction service.
type IPredictor interface {
	// Predict sends one feature vector and returns the raw model outputs
	Predict(ctx context.Context, features []float64) ([]float64, error)
}

// New creates a new prediction service client
func New(cfg Config) (IPredictor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &predictorImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}
