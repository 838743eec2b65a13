package log

import (
	"context"
	"testing"
)

func TestIsKeyValues(t *testing.T) {
	tests := []struct {
		name string
		arg  []any
		want bool
	}{
		{"message only", []any{"hello"}, false},
		{"message with pairs", []any{"generation failed", "provider", "ollama", "model", "llama3.2"}, true},
		{"odd pair count", []any{"msg", "key"}, false},
		{"non string key", []any{"msg", 1, "v"}, false},
		{"non string message", []any{42, "k", "v"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, got := isKeyValues(tt.arg)
			if got != tt.want {
				t.Errorf("isKeyValues(%v) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	l := Init(ZapConfig{Level: "bogus", Mode: ModeProduction, Encoding: EncodingJSON})
	l.Info(context.Background(), "started", "port", 8080)
	l.Debugf(WithRequestID(context.Background(), "abc"), "value=%d", 1)
}
