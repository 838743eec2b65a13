package http

import (
	"errors"
	"net/http"

	"healthsmart-chatbot/internal/prediction"
)

// mapError translates use-case errors into an HTTP status and client error.
func (h *handler) mapError(err error) (int, error) {
	switch {
	case errors.Is(err, prediction.ErrInvalidFeatures):
		return http.StatusBadRequest, err
	case errors.Is(err, prediction.ErrPredictorUnavailable):
		return http.StatusBadGateway, prediction.ErrPredictorUnavailable
	case errors.Is(err, prediction.ErrLogUnavailable):
		return http.StatusServiceUnavailable, prediction.ErrLogUnavailable
	default:
		return http.StatusInternalServerError, errors.New("internal server error")
	}
}
