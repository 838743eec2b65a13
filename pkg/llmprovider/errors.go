package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"healthsmart-chatbot/pkg/ollama"
	"healthsmart-chatbot/pkg/qwen"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request")
	ErrProviderTimeout       = errors.New("provider timeout")
	ErrProviderRateLimited   = errors.New("provider rate limited")
)

// ProviderError is a failed call to one provider. StatusCode is 0 when the
// request never got an HTTP answer.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func newProviderError(provider string, err error) *ProviderError {
	perr := &ProviderError{Provider: provider, Err: err}

	var qwenErr *qwen.StatusError
	var ollamaErr *ollama.StatusError
	switch {
	case errors.As(err, &qwenErr):
		perr.StatusCode = qwenErr.StatusCode
	case errors.As(err, &ollamaErr):
		perr.StatusCode = ollamaErr.StatusCode
	}
	return perr
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider %s (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is reports a 429 answer as ErrProviderRateLimited.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderRateLimited && e.StatusCode == http.StatusTooManyRequests
}

// Retryable reports whether another attempt against the same provider can
// succeed: transport failures, 429 and 5xx answers.
func (e *ProviderError) Retryable() bool {
	if errors.Is(e.Err, context.Canceled) || errors.Is(e.Err, context.DeadlineExceeded) {
		return false
	}
	switch {
	case e.StatusCode == 0:
		return true
	case e.StatusCode == http.StatusTooManyRequests:
		return true
	case e.StatusCode >= http.StatusInternalServerError:
		return true
	default:
		return false
	}
}

// isRetryable treats errors that did not come from an adapter as retryable.
func isRetryable(err error) bool {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.Retryable()
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
