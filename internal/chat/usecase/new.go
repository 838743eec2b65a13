package usecase

import (
	"time"

	"healthsmart-chatbot/internal/chat"
	"healthsmart-chatbot/internal/chat/repository"
	"healthsmart-chatbot/internal/intent"
	"healthsmart-chatbot/pkg/llmprovider"
	pkgLog "healthsmart-chatbot/pkg/log"
)

// Config tunes the generative path.
type Config struct {
	SystemPrompt      string
	TopK              int
	GenerationTimeout time.Duration
	RetrievalTimeout  time.Duration
}

type implUseCase struct {
	l          pkgLog.Logger
	classifier intent.Engine
	history    repository.HistoryRepository
	retriever  repository.ContextRetriever
	llm        llmprovider.Generator
	cfg        Config
}

// New creates a new chat UseCase instance. A nil retriever disables retrieval.
func New(
	l pkgLog.Logger,
	classifier intent.Engine,
	history repository.HistoryRepository,
	retriever repository.ContextRetriever,
	llm llmprovider.Generator,
	cfg Config,
) chat.UseCase {
	if retriever == nil {
		retriever = repository.NoopRetriever{}
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = DefaultSystemPrompt
	}
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = DefaultGenerationTimeout
	}
	if cfg.RetrievalTimeout <= 0 {
		cfg.RetrievalTimeout = DefaultRetrievalTimeout
	}

	return &implUseCase{
		l:          l,
		classifier: classifier,
		history:    history,
		retriever:  retriever,
		llm:        llm,
		cfg:        cfg,
	}
}
