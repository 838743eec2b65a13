package voyage_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"healthsmart-chatbot/pkg/voyage"
)

type wireRequest struct {
	Input     []string `json:"input"`
	Model     string   `json:"model"`
	InputType string   `json:"input_type"`
}

func TestVoyageClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-voyage-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid key","type":"auth"}}`))
			return
		}

		var req wireRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if len(req.Input) > 0 && req.Input[0] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if req.InputType != voyage.InputTypeQuery || req.Model != "custom-model" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":"bad input_type or model"}`))
			return
		}

		if len(req.Input) == 2 {
			// Out of order on purpose.
			w.Write([]byte(`{"data":[{"embedding":[2],"index":1},{"embedding":[1],"index":0}]}`))
			return
		}
		w.Write([]byte(`{"data":[{"embedding":[0.1,0.2,0.3],"index":0}]}`))
	}))
	defer ts.Close()

	client, _ := voyage.New("test-voyage-key")
	client.WithBaseURL(ts.URL + "/").WithModel("custom-model").WithInputType(voyage.InputTypeQuery)

	t.Run("Success Flow", func(t *testing.T) {
		emb, err := client.Embed(context.Background(), []string{"Triệu chứng tiểu đường"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(emb) != 1 || len(emb[0]) != 3 {
			t.Fatalf("expected 1 embed with 3 dims, got %v", emb)
		}
		if emb[0][0] != 0.1 || emb[0][1] != 0.2 || emb[0][2] != 0.3 {
			t.Errorf("unexpected embedding values: %v", emb[0])
		}
	})

	t.Run("Order follows index", func(t *testing.T) {
		emb, err := client.Embed(context.Background(), []string{"a", "b"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if emb[0][0] != 1 || emb[1][0] != 2 {
			t.Errorf("expected vectors in input order, got %v", emb)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.Embed(context.Background(), []string{"cause_500"})
		var apiErr *voyage.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected APIError with 500, got %v", err)
		}
	})

	t.Run("Empty input", func(t *testing.T) {
		if _, err := client.Embed(context.Background(), nil); err == nil {
			t.Fatal("expected error for empty input")
		}
	})

	t.Run("Unauthorized Error Flow", func(t *testing.T) {
		badClient, _ := voyage.New("bad-key")
		badClient.WithBaseURL(ts.URL)
		_, err := badClient.Embed(context.Background(), []string{"Hello world"})
		var apiErr *voyage.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "invalid key" || apiErr.Type != "auth" {
			t.Errorf("unexpected error: %+v", apiErr)
		}
	})

	t.Run("Detail message", func(t *testing.T) {
		plain, _ := voyage.New("test-voyage-key")
		plain.WithBaseURL(ts.URL)
		_, err := plain.Embed(context.Background(), []string{"x"})
		var apiErr *voyage.APIError
		if !errors.As(err, &apiErr) || apiErr.Message != "bad input_type or model" {
			t.Fatalf("expected detail message, got %v", err)
		}
	})
}

func TestVoyageClient_Batches(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var req wireRequest
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Input) > voyage.MaxBatchSize {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		data := make([]map[string]any, len(req.Input))
		for i, text := range req.Input {
			var n float32
			fmt.Sscanf(text, "t%f", &n)
			data[i] = map[string]any{"embedding": []float32{n}, "index": i}
		}
		json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))
	defer ts.Close()

	client, _ := voyage.New("k")
	client.WithBaseURL(ts.URL)

	texts := make([]string, voyage.MaxBatchSize+5)
	for i := range texts {
		texts[i] = fmt.Sprintf("t%d", i)
	}

	emb, err := client.Embed(context.Background(), texts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 requests, got %d", calls.Load())
	}
	if len(emb) != len(texts) {
		t.Fatalf("expected %d vectors, got %d", len(texts), len(emb))
	}
	for i, v := range emb {
		if v[0] != float32(i) {
			t.Fatalf("vector %d out of order: %v", i, v)
		}
	}
}

func TestNewRequiresKey(t *testing.T) {
	if _, err := voyage.New(""); err == nil {
		t.Fatal("expected error for empty key")
	}
}
