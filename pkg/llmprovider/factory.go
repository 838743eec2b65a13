package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"healthsmart-chatbot/config"
	"healthsmart-chatbot/pkg/ollama"
	"healthsmart-chatbot/pkg/qwen"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, []error, error) {
	if cfg == nil {
		return nil, nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []error

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Errorf("provider %s (priority %d): %w", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		msgs := make([]string, len(initErrors))
		for i, e := range initErrors {
			msgs[i] = e.Error()
		}
		return nil, initErrors, fmt.Errorf("no providers successfully initialized: %s", strings.Join(msgs, "; "))
	}

	return providers, initErrors, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	httpClient, err := newHTTPClient(cfg.Timeout)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(cfg.Name) {
	case ProviderOllama:
		client, err := ollama.New(ollama.Config{
			BaseURL:    cfg.BaseURL,
			Model:      cfg.Model,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewOllamaAdapter(client), nil

	case ProviderQwen, "alibaba":
		client, err := qwen.New(qwen.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create qwen client: %w", err)
		}
		return NewQwenAdapter(ProviderQwen, client), nil

	case ProviderDeepSeek:
		baseURL, model := cfg.BaseURL, cfg.Model
		if baseURL == "" {
			baseURL = DeepSeekBaseURL
		}
		if model == "" {
			model = DeepSeekModel
		}
		client, err := qwen.New(qwen.Config{
			APIKey:     cfg.APIKey,
			Model:      model,
			BaseURL:    baseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create deepseek client: %w", err)
		}
		return NewQwenAdapter(ProviderDeepSeek, client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func newHTTPClient(timeout string) (*http.Client, error) {
	if timeout == "" {
		return nil, nil
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid timeout %q: %w", timeout, err)
	}
	return &http.Client{Timeout: d}, nil
}
