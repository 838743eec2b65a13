package ollama

import "context"

// IOllama defines the interface for the Ollama HTTP API.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Generate runs a single non-streaming completion for prompt
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// Embed returns one vector per input text using the embedding model
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Model returns the generation model being used
	Model() string
}

// New creates a new Ollama client with the given configuration
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
