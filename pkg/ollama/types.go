package ollama

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds Ollama client configuration
type Config struct {
	BaseURL    string
	Model      string
	EmbedModel string
	HTTPClient *http.Client
}

// Validate fills defaults. Ollama needs no credentials.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.EmbedModel == "" {
		c.EmbedModel = DefaultEmbedModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type ollamaImpl struct {
	baseURL    string
	model      string
	embedModel string
	httpClient *http.Client
}

// GenerateRequest is a single prompt completion request
type GenerateRequest struct {
	Prompt      string
	System      string
	Temperature float64
	MaxTokens   int
}

// GenerateResponse is the completed answer
type GenerateResponse struct {
	Text            string
	Model           string
	PromptEvalCount int
	EvalCount       int
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	System  string          `json:"system,omitempty"`
	Stream  bool            `json:"stream"`
	Options *generateOption `json:"options,omitempty"`
}

type generateOption struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type generateResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}

type embeddingRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type embeddingResponse struct {
	Embedding []float32 `json:"embedding"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// StatusError is returned when the server answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ollama: API error %d: %s", e.StatusCode, e.Message)
}
