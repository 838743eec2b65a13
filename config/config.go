package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Chat pipeline
	Chatbot   ChatbotConfig
	Embedding EmbeddingConfig
	Ollama    OllamaConfig
	Voyage    VoyageConfig
	Qdrant    QdrantConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Prediction gateway
	Prediction PredictionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled bool
	PerMin  int
}

// ChatbotConfig tunes the routing pipeline.
type ChatbotConfig struct {
	HistoryCapacity   int
	TopK              int
	GenerationTimeout time.Duration
	RetrievalTimeout  time.Duration
	MaxSessions       int
	SessionTTL        time.Duration
	RulesFile         string
	SystemPromptFile  string
}

// EmbeddingConfig selects the query embedder: "voyage", "ollama" or "" to
// disable retrieval.
type EmbeddingConfig struct {
	Provider string
}

type OllamaConfig struct {
	URL        string
	EmbedModel string
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

type QdrantConfig struct {
	URL            string
	CollectionName string
	ContentKey     string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// PredictionConfig points at the heart-disease prediction service.
type PredictionConfig struct {
	Enabled      bool
	URL          string
	ModelVersion string
	LogDBPath    string
	Timeout      time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Chat pipeline
	cfg.Chatbot.HistoryCapacity = viper.GetInt("chatbot.history_capacity")
	cfg.Chatbot.TopK = viper.GetInt("chatbot.top_k")
	cfg.Chatbot.GenerationTimeout = viper.GetDuration("chatbot.generation_timeout")
	cfg.Chatbot.RetrievalTimeout = viper.GetDuration("chatbot.retrieval_timeout")
	cfg.Chatbot.MaxSessions = viper.GetInt("chatbot.max_sessions")
	cfg.Chatbot.SessionTTL = viper.GetDuration("chatbot.session_ttl")
	cfg.Chatbot.RulesFile = viper.GetString("chatbot.rules_file")
	cfg.Chatbot.SystemPromptFile = viper.GetString("chatbot.system_prompt_file")

	cfg.Embedding.Provider = strings.ToLower(viper.GetString("embedding.provider"))

	cfg.Ollama.URL = viper.GetString("ollama.url")
	cfg.Ollama.EmbedModel = viper.GetString("ollama.embed_model")
	if ollamaURL := viper.GetString("ollama_url"); ollamaURL != "" {
		cfg.Ollama.URL = ollamaURL
	}

	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	cfg.Voyage.Model = viper.GetString("voyage.model")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.ContentKey = viper.GetString("qdrant.content_key")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Without an explicit provider list the local Ollama daemon is used.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{{
			Name:     "ollama",
			Enabled:  true,
			Priority: 1,
			BaseURL:  cfg.Ollama.URL,
			Model:    viper.GetString("ollama.model"),
			Timeout:  cfg.Chatbot.GenerationTimeout.String(),
		}}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// Prediction gateway
	cfg.Prediction.Enabled = viper.GetBool("prediction.enabled")
	cfg.Prediction.URL = viper.GetString("prediction.url")
	cfg.Prediction.ModelVersion = viper.GetString("prediction.model_version")
	cfg.Prediction.LogDBPath = viper.GetString("prediction.log_db_path")
	cfg.Prediction.Timeout = viper.GetDuration("prediction.timeout")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.per_min", 60)

	// Chat pipeline defaults
	viper.SetDefault("chatbot.history_capacity", 5)
	viper.SetDefault("chatbot.top_k", 3)
	viper.SetDefault("chatbot.generation_timeout", "60s")
	viper.SetDefault("chatbot.retrieval_timeout", "10s")
	viper.SetDefault("chatbot.max_sessions", 10000)
	viper.SetDefault("chatbot.session_ttl", "1h")
	viper.SetDefault("embedding.provider", "")
	viper.SetDefault("ollama.url", "http://localhost:11434")
	viper.SetDefault("ollama.model", "llama3.2:latest")
	viper.SetDefault("ollama.embed_model", "nomic-embed-text")
	viper.SetDefault("voyage.model", "voyage-3")
	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.collection_name", "medical_documents")
	viper.SetDefault("qdrant.content_key", "content")

	// LLM defaults: a single attempt on the first provider
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")

	// Prediction defaults
	viper.SetDefault("prediction.enabled", false)
	viper.SetDefault("prediction.url", "http://localhost:5000")
	viper.SetDefault("prediction.model_version", "1.0.0")
	viper.SetDefault("prediction.log_db_path", "data/predictions.db")
	viper.SetDefault("prediction.timeout", "10s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
