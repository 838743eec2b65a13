package ollama

import "time"

const (
	// DefaultBaseURL is the local Ollama daemon
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the default generation model
	DefaultModel = "llama3.2:latest"

	// DefaultEmbedModel is the default embedding model
	DefaultEmbedModel = "nomic-embed-text"

	// DefaultTimeout bounds one HTTP round trip
	DefaultTimeout = 60 * time.Second
)
