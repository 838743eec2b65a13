package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func newOllamaImpl(cfg Config) *ollamaImpl {
	return &ollamaImpl{
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		embedModel: cfg.EmbedModel,
		httpClient: cfg.HTTPClient,
	}
}

// Generate posts to /api/generate with streaming disabled.
func (o *ollamaImpl) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	if req == nil || req.Prompt == "" {
		return nil, fmt.Errorf("ollama: prompt is required")
	}

	body := generateRequest{
		Model:  o.model,
		Prompt: req.Prompt,
		System: req.System,
		Stream: false,
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		body.Options = &generateOption{
			Temperature: req.Temperature,
			NumPredict:  req.MaxTokens,
		}
	}

	var out generateResponse
	if err := o.post(ctx, "/api/generate", body, &out); err != nil {
		return nil, err
	}

	return &GenerateResponse{
		Text:            out.Response,
		Model:           out.Model,
		PromptEvalCount: out.PromptEvalCount,
		EvalCount:       out.EvalCount,
	}, nil
}

// Embed calls /api/embeddings once per text, preserving input order.
func (o *ollamaImpl) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("ollama: no texts provided")
	}

	vectors := make([][]float32, 0, len(texts))
	for _, text := range texts {
		var out embeddingResponse
		if err := o.post(ctx, "/api/embeddings", embeddingRequest{Model: o.embedModel, Prompt: text}, &out); err != nil {
			return nil, err
		}
		if len(out.Embedding) == 0 {
			return nil, fmt.Errorf("ollama: empty embedding returned")
		}
		vectors = append(vectors, out.Embedding)
	}
	return vectors, nil
}

// Model returns the generation model being used
func (o *ollamaImpl) Model() string {
	return o.model
}

func (o *ollamaImpl) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("ollama: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("ollama: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("ollama: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		statusErr := &StatusError{StatusCode: resp.StatusCode, Message: string(bodyBytes)}
		var errResp errorResponse
		if jsonErr := json.Unmarshal(bodyBytes, &errResp); jsonErr == nil && errResp.Error != "" {
			statusErr.Message = errResp.Error
		}
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("ollama: failed to decode response: %w", err)
	}
	return nil
}
