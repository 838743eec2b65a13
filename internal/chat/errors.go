package chat

import "errors"

var (
	ErrEmptyMessage      = errors.New("message is required")
	ErrSessionIDRequired = errors.New("session id is required")
	ErrGenerationFailed  = errors.New("generative backend failed")
)
