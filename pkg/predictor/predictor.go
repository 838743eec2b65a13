package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Predict posts the feature vector and decodes the prediction list.
func (p *predictorImpl) Predict(ctx context.Context, features []float64) ([]float64, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("predictor: no features provided")
	}

	body, err := json.Marshal(predictRequest{InputData: features})
	if err != nil {
		return nil, fmt.Errorf("predictor: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+predictPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("predictor: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("predictor: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("predictor: decode response: %w", err)
	}
	if len(out.Prediction) == 0 {
		return nil, fmt.Errorf("predictor: empty prediction")
	}

	return out.Prediction, nil
}
