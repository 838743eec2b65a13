package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"healthsmart-chatbot/internal/chat"
)

// Error messages exposed to clients.
const (
	msgInvalidRequest   = "invalid request: message is required"
	msgSessionIDTooLong = "invalid request: session_id must be at most 128 characters"
	msgMalformedBody    = "invalid request: body must be a JSON object"
	msgGenerationFailed = "could not get a response from the language model"
	msgInternal         = "internal server error"
)

// mapError translates use-case errors into an HTTP status and client message.
func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return http.StatusBadRequest, msgInvalidRequest
	case errors.Is(err, chat.ErrSessionIDRequired):
		return http.StatusBadRequest, chat.ErrSessionIDRequired.Error()
	case errors.Is(err, chat.ErrGenerationFailed):
		return http.StatusBadGateway, msgGenerationFailed
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// bindErrorMessage names the request field that failed binding.
func bindErrorMessage(err error) string {
	if errors.Is(err, chat.ErrEmptyMessage) {
		return msgInvalidRequest
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "Message":
			return msgInvalidRequest
		case "SessionID":
			return msgSessionIDTooLong
		}
	}
	return msgMalformedBody
}
