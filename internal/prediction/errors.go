package prediction

import "errors"

var (
	ErrInvalidFeatures      = errors.New("invalid features")
	ErrPredictorUnavailable = errors.New("prediction service unavailable")
	ErrLogUnavailable       = errors.New("prediction log is not configured")
)
