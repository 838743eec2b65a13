package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Chatbot.HistoryCapacity != 5 {
		t.Errorf("expected history capacity 5, got %d", cfg.Chatbot.HistoryCapacity)
	}
	if cfg.Chatbot.TopK != 3 {
		t.Errorf("expected top_k 3, got %d", cfg.Chatbot.TopK)
	}
	if cfg.Chatbot.GenerationTimeout != 60*time.Second {
		t.Errorf("expected 60s generation timeout, got %s", cfg.Chatbot.GenerationTimeout)
	}
	if cfg.LLM.FallbackEnabled || cfg.LLM.RetryAttempts != 1 {
		t.Errorf("expected single attempt without fallback, got %+v", cfg.LLM)
	}
	if len(cfg.LLM.Providers) != 1 || cfg.LLM.Providers[0].Name != "ollama" {
		t.Fatalf("expected implicit ollama provider, got %+v", cfg.LLM.Providers)
	}
	if cfg.LLM.Providers[0].Model != "llama3.2:latest" {
		t.Errorf("unexpected default model %q", cfg.LLM.Providers[0].Model)
	}
	if cfg.Qdrant.CollectionName != "medical_documents" {
		t.Errorf("unexpected collection %q", cfg.Qdrant.CollectionName)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("CHATBOT_HISTORY_CAPACITY", "8")
	t.Setenv("QDRANT_URL", "http://qdrant:6333")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Chatbot.HistoryCapacity != 8 {
		t.Errorf("expected env override 8, got %d", cfg.Chatbot.HistoryCapacity)
	}
	if cfg.Qdrant.URL != "http://qdrant:6333" {
		t.Errorf("expected env override url, got %q", cfg.Qdrant.URL)
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{"empty", LLMConfig{}, true},
		{"missing name", LLMConfig{Providers: []ProviderConfig{{Enabled: true, Priority: 1}}}, true},
		{"zero priority", LLMConfig{Providers: []ProviderConfig{{Name: "ollama", Enabled: true}}}, true},
		{"duplicate priority", LLMConfig{Providers: []ProviderConfig{
			{Name: "ollama", Enabled: true, Priority: 1},
			{Name: "qwen", Enabled: true, Priority: 1},
		}}, true},
		{"none enabled", LLMConfig{Providers: []ProviderConfig{{Name: "ollama"}}}, true},
		{"valid", LLMConfig{Providers: []ProviderConfig{{Name: "ollama", Enabled: true, Priority: 1}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("TEST_QWEN_KEY", "secret")
	if got := expandEnvVar("${TEST_QWEN_KEY}"); got != "secret" {
		t.Errorf("expected secret, got %q", got)
	}
	if got := expandEnvVar("plain"); got != "plain" {
		t.Errorf("expected plain, got %q", got)
	}
}
