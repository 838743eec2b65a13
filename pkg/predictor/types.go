package predictor

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds prediction service client configuration
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Validate fills defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("predictor: base url must be http(s), got %q", c.BaseURL)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type predictorImpl struct {
	baseURL    string
	httpClient *http.Client
}

// StatusError is returned when the service answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("predictor: status %d: %s", e.StatusCode, e.Body)
}

// Rejected reports whether the service refused the input itself.
func (e *StatusError) Rejected() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

type predictRequest struct {
	InputData []float64 `json:"input_data"`
}

type predictResponse struct {
	Prediction []float64 `json:"prediction"`
}
