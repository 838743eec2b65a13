package llmprovider

import "time"

// Provider names accepted in llm.providers[].name
const (
	ProviderOllama   = "ollama"
	ProviderQwen     = "qwen"
	ProviderDeepSeek = "deepseek"
)

// DeepSeek speaks the OpenAI-compatible protocol served by pkg/qwen.
const (
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	DeepSeekModel   = "deepseek-chat"
)

const (
	DefaultRetryAttempts = 1
	LogPrefixGenerate    = "pkg.llmprovider.Manager.GenerateContent"
)

// DefaultConfig is a single attempt on the first provider.
func DefaultConfig() *Config {
	return &Config{
		FallbackEnabled: false,
		RetryAttempts:   DefaultRetryAttempts,
		RetryDelay:      time.Second,
	}
}
