package predictor

import "time"

const (
	DefaultBaseURL = "http://localhost:5000"
	DefaultTimeout = 15 * time.Second

	predictPath = "/api/v1/predict"
)
