package usecase

import (
	"context"
	"errors"
	"sync"

	"healthsmart-chatbot/internal/chat/repository"
	"healthsmart-chatbot/internal/chat/repository/memory"
	"healthsmart-chatbot/internal/intent"
	"healthsmart-chatbot/internal/model"
	"healthsmart-chatbot/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct {
	mu    sync.Mutex
	warns int
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	m.warns++
	m.mu.Unlock()
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock generator recording the prompts it receives
type mockGenerator struct {
	answer  string
	err     error
	block   bool
	prompts []string
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if len(req.Messages) > 0 {
		m.prompts = append(m.prompts, req.Messages[0].Text())
	}
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: []llmprovider.Part{{Text: m.answer}}},
		ProviderName: "mock",
		ModelName:    "mock-model",
	}, nil
}

func (m *mockGenerator) lastPrompt() string {
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

// Mock retriever returning fixed passages
type mockRetriever struct {
	passages []string
	calls    int
	lastK    int
}

func (m *mockRetriever) Retrieve(ctx context.Context, query string, k int) []string {
	m.calls++
	m.lastK = k
	return m.passages
}

// History repository whose writes always fail
type failingHistory struct{}

func (failingHistory) Append(ctx context.Context, sessionID string, turn model.ConversationTurn) error {
	return errors.New("store down")
}

func (failingHistory) Recent(ctx context.Context, sessionID string) ([]model.ConversationTurn, error) {
	return nil, errors.New("store down")
}

func (failingHistory) Clear(ctx context.Context, sessionID string) error {
	return errors.New("store down")
}

type fixture struct {
	uc        *implUseCase
	logger    *mockLogger
	llm       *mockGenerator
	retriever *mockRetriever
	history   repository.HistoryRepository
}

func newFixture(passages []string) *fixture {
	f := &fixture{
		logger:    &mockLogger{},
		llm:       &mockGenerator{answer: "Loãng xương do thiếu canxi."},
		retriever: &mockRetriever{passages: passages},
		history:   memory.New(memory.Config{Capacity: 5}),
	}
	f.uc = New(f.logger, intent.New(intent.DefaultTable()), f.history, f.retriever, f.llm, Config{
		SystemPrompt: "SYSTEM",
	}).(*implUseCase)
	return f
}

// Engine that classifies every message as rule-based but has no answer
type unansweredRuleEngine struct {
	responds int
}

func (e *unansweredRuleEngine) Classify(message string) intent.Intent {
	return intent.IntentRuleBased
}

func (e *unansweredRuleEngine) Respond(message string) (string, bool) {
	e.responds++
	return "", false
}
