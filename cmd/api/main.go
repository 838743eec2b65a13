package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"healthsmart-chatbot/config"
	_ "healthsmart-chatbot/docs" // Swagger docs
	chatHTTP "healthsmart-chatbot/internal/chat/delivery/http"
	chatRepo "healthsmart-chatbot/internal/chat/repository"
	"healthsmart-chatbot/internal/chat/repository/memory"
	qdrantRepo "healthsmart-chatbot/internal/chat/repository/qdrant"
	chatUC "healthsmart-chatbot/internal/chat/usecase"
	"healthsmart-chatbot/internal/httpserver"
	"healthsmart-chatbot/internal/intent"
	"healthsmart-chatbot/internal/middleware"
	predictionHTTP "healthsmart-chatbot/internal/prediction/delivery/http"
	predictionRepo "healthsmart-chatbot/internal/prediction/repository"
	predictionSQLite "healthsmart-chatbot/internal/prediction/repository/sqlite"
	predictionUC "healthsmart-chatbot/internal/prediction/usecase"
	"healthsmart-chatbot/pkg/llmprovider"
	"healthsmart-chatbot/pkg/log"
	"healthsmart-chatbot/pkg/ollama"
	"healthsmart-chatbot/pkg/predictor"
	pkgQdrant "healthsmart-chatbot/pkg/qdrant"
	"healthsmart-chatbot/pkg/voyage"
)

// @title       HealthSmart Chatbot API
// @description Health chatbot routing emergency, rule-based and retrieval-augmented generative answers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting HealthSmart chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Rule table
	table := intent.DefaultTable()
	if cfg.Chatbot.RulesFile != "" {
		table, err = intent.LoadFile(cfg.Chatbot.RulesFile)
		if err != nil {
			logger.Errorf(ctx, "Failed to load rules from %s: %v", cfg.Chatbot.RulesFile, err)
			return
		}
	}
	logger.Infof(ctx, "Rule table: %d emergency keyword(s), %d rule(s)", len(table.Emergency), len(table.Rules))
	classifier := intent.New(table)

	systemPrompt := ""
	if cfg.Chatbot.SystemPromptFile != "" {
		b, readErr := os.ReadFile(cfg.Chatbot.SystemPromptFile)
		if readErr != nil {
			logger.Errorf(ctx, "Failed to read system prompt %s: %v", cfg.Chatbot.SystemPromptFile, readErr)
			return
		}
		systemPrompt = strings.TrimSpace(string(b))
	}

	// 4. LLM providers
	llm, err := newLLMManager(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}

	// 5. Context retrieval (optional)
	retriever := newRetriever(ctx, cfg, logger)

	// 6. Chat domain
	history := memory.New(memory.Config{
		Capacity:    cfg.Chatbot.HistoryCapacity,
		MaxSessions: cfg.Chatbot.MaxSessions,
		SessionTTL:  cfg.Chatbot.SessionTTL,
	})
	chatUseCase := chatUC.New(logger, classifier, history, retriever, llm, chatUC.Config{
		SystemPrompt:      systemPrompt,
		TopK:              cfg.Chatbot.TopK,
		GenerationTimeout: cfg.Chatbot.GenerationTimeout,
		RetrievalTimeout:  cfg.Chatbot.RetrievalTimeout,
	})
	chatHandler := chatHTTP.New(logger, chatUseCase)

	// 7. Prediction domain (optional)
	var predictionHandler predictionHTTP.Handler
	if cfg.Prediction.Enabled {
		client, predErr := predictor.New(predictor.Config{
			BaseURL:    cfg.Prediction.URL,
			HTTPClient: newHTTPClient(cfg.Prediction.Timeout),
		})
		if predErr != nil {
			logger.Errorf(ctx, "Failed to initialize prediction client: %v", predErr)
			return
		}

		var logRepo predictionRepo.LogRepository
		if cfg.Prediction.LogDBPath != "" {
			sqliteRepo, repoErr := predictionSQLite.New(cfg.Prediction.LogDBPath)
			if repoErr == nil {
				repoErr = sqliteRepo.AutoMigrate(ctx)
			}
			if repoErr != nil {
				if sqliteRepo != nil {
					sqliteRepo.Close()
				}
				logger.Warnf(ctx, "Prediction log disabled: %v", repoErr)
			} else {
				defer sqliteRepo.Close()
				logRepo = sqliteRepo
			}
		}

		uc := predictionUC.New(logger, client, logRepo, cfg.Prediction.ModelVersion)
		predictionHandler = predictionHTTP.New(logger, uc)
		logger.Infof(ctx, "✅ Prediction gateway enabled → %s", cfg.Prediction.URL)
	} else {
		logger.Info(ctx, "Prediction gateway disabled")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware: middleware.New(logger, middleware.Config{
			Environment:      cfg.Environment.Name,
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimitPerMin:  cfg.RateLimit.PerMin,
		}),
		ChatHandler:       chatHandler,
		PredictionHandler: predictionHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newLLMManager(ctx context.Context, cfg *config.Config, logger log.Logger) (*llmprovider.Manager, error) {
	providers, providerErrs, err := llmprovider.InitializeProviders(&cfg.LLM)
	for _, perr := range providerErrs {
		logger.Warnf(ctx, "LLM provider skipped: %v", perr)
	}
	if err != nil {
		return nil, err
	}

	managerCfg := llmprovider.DefaultConfig()
	managerCfg.FallbackEnabled = cfg.LLM.FallbackEnabled
	if cfg.LLM.RetryAttempts > 0 {
		managerCfg.RetryAttempts = cfg.LLM.RetryAttempts
	}
	if d, perr := time.ParseDuration(cfg.LLM.RetryDelay); perr == nil {
		managerCfg.RetryDelay = d
	}
	if d, perr := time.ParseDuration(cfg.LLM.MaxTotalTimeout); perr == nil {
		managerCfg.MaxTotalTimeout = d
	}

	for _, p := range providers {
		logger.Infof(ctx, "✅ LLM provider %s (%s)", p.Name(), p.Model())
	}
	return llmprovider.NewManager(providers, managerCfg, logger), nil
}

// newRetriever wires the configured embedder to Qdrant. Without an embedder
// every answer is generated without retrieved context.
func newRetriever(ctx context.Context, cfg *config.Config, logger log.Logger) chatRepo.ContextRetriever {
	var embedder chatRepo.Embedder

	switch cfg.Embedding.Provider {
	case "voyage":
		client, err := voyage.New(cfg.Voyage.APIKey)
		if err != nil {
			logger.Warnf(ctx, "Voyage embedder not available: %v", err)
			return chatRepo.NoopRetriever{}
		}
		if cfg.Voyage.Model != "" {
			client = client.WithModel(cfg.Voyage.Model)
		}
		embedder = client.WithInputType(voyage.InputTypeQuery).WithHTTPClient(newHTTPClient(cfg.Chatbot.RetrievalTimeout))
	case "ollama":
		client, err := ollama.New(ollama.Config{
			BaseURL:    cfg.Ollama.URL,
			EmbedModel: cfg.Ollama.EmbedModel,
			HTTPClient: newHTTPClient(cfg.Chatbot.RetrievalTimeout),
		})
		if err != nil {
			logger.Warnf(ctx, "Ollama embedder not available: %v", err)
			return chatRepo.NoopRetriever{}
		}
		embedder = client
	case "":
		logger.Info(ctx, "Retrieval disabled (embedding.provider not set)")
		return chatRepo.NoopRetriever{}
	default:
		logger.Warnf(ctx, "Unknown embedding provider %q, retrieval disabled", cfg.Embedding.Provider)
		return chatRepo.NoopRetriever{}
	}

	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL).WithHTTPClient(newHTTPClient(cfg.Chatbot.RetrievalTimeout))
	logger.Infof(ctx, "✅ Retrieval enabled: %s embeddings → qdrant %s/%s", cfg.Embedding.Provider, cfg.Qdrant.URL, cfg.Qdrant.CollectionName)

	// Retrieval degrades per request, so an unreachable store only warns here.
	if info, err := qdrantClient.GetCollection(ctx, cfg.Qdrant.CollectionName); err != nil {
		logger.Warnf(ctx, "Knowledge base not available yet: %v", err)
	} else {
		logger.Infof(ctx, "Knowledge base %s: %d passage(s), %d-dim vectors, status %s", info.Name, info.PointsCount, info.VectorSize, info.Status)
	}
	return qdrantRepo.New(qdrantClient, embedder, cfg.Qdrant.CollectionName, cfg.Qdrant.ContentKey, logger)
}
