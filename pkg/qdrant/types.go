package qdrant

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// SearchRequest is the request for semantic search.
type SearchRequest struct {
	Vector         []float32      `json:"vector"`
	Limit          int            `json:"limit"`
	WithPayload    bool           `json:"with_payload"`
	Filter         map[string]any `json:"filter,omitempty"`
	ScoreThreshold *float64       `json:"score_threshold,omitempty"`
}

// SearchResponse contains search results ordered by descending score.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// ScoredPoint is a search result with similarity score.
type ScoredPoint struct {
	ID      PointID        `json:"id"`
	Score   float64        `json:"score"`
	Payload map[string]any `json:"payload"`
}

// CollectionInfo summarizes a collection.
type CollectionInfo struct {
	Name        string
	Status      string // green, yellow, grey or red
	PointsCount int
	VectorSize  int
}

// APIError is a non-200 answer from Qdrant.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("qdrant: API error %d: %s", e.StatusCode, e.Message)
}

// NotFound reports a missing collection.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// PointID accepts both UUID strings and unsigned integer ids.
type PointID string

// UnmarshalJSON implements json.Unmarshaler.
func (p *PointID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = PointID(s)
		return nil
	}
	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("qdrant: invalid point id %s", string(data))
	}
	*p = PointID(fmt.Sprintf("%d", n))
	return nil
}

type collectionResponse struct {
	Result struct {
		Status      string `json:"status"`
		PointsCount int    `json:"points_count"`
		Config      struct {
			Params struct {
				Vectors struct {
					Size int `json:"size"`
				} `json:"vectors"`
			} `json:"params"`
		} `json:"config"`
	} `json:"result"`
}

type statusEnvelope struct {
	Status struct {
		Error string `json:"error"`
	} `json:"status"`
}
