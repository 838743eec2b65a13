package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"healthsmart-chatbot/internal/chat"
	"healthsmart-chatbot/internal/intent"
	"healthsmart-chatbot/internal/model"
)

func TestChat_Emergency(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	out, err := f.uc.Chat(ctx, model.Scope{}, chat.ChatInput{Message: "Tôi bị đau tim", SessionID: "s1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Source != chat.SourceEmergency || out.Response != EmergencyResponse {
		t.Errorf("unexpected output: %+v", out)
	}
	if f.retriever.calls != 0 || len(f.llm.prompts) != 0 {
		t.Errorf("emergency must not reach retrieval or generation")
	}

	turns, _ := f.history.Recent(ctx, "s1")
	if len(turns) != 0 {
		t.Errorf("emergency turn must not be recorded, got %d turns", len(turns))
	}
}

func TestChat_RuleBased(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	out, err := f.uc.Chat(ctx, model.Scope{}, chat.ChatInput{Message: "Cảm ơn bạn", SessionID: "s1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Source != chat.SourceRules {
		t.Errorf("expected rules_engine, got %s", out.Source)
	}
	if out.Response != "Rất vui được giúp bạn! Nếu có câu hỏi khác, đừng ngần ngại hỏi nhé." {
		t.Errorf("unexpected response: %q", out.Response)
	}

	turns, _ := f.history.Recent(ctx, "s1")
	if len(turns) != 1 || turns[0].UserMessage != "Cảm ơn bạn" || turns[0].AssistantResponse != out.Response {
		t.Errorf("unexpected history: %+v", turns)
	}
}

func TestChat_GenerativeWithoutContext(t *testing.T) {
	f := newFixture(nil)

	out, err := f.uc.Chat(context.Background(), model.Scope{}, chat.ChatInput{Message: "Nguyên nhân gây loãng xương là gì?", SessionID: "s1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Source != chat.SourceGenerative {
		t.Errorf("expected generative, got %s", out.Source)
	}
	if !strings.HasSuffix(out.Response, DisclaimerSuffix) {
		t.Errorf("missing disclaimer: %q", out.Response)
	}
	if strings.Contains(f.llm.lastPrompt(), HeaderContext) {
		t.Errorf("empty context must not produce an evidence block")
	}
	if f.retriever.lastK != DefaultTopK {
		t.Errorf("expected k=%d, got %d", DefaultTopK, f.retriever.lastK)
	}
}

func TestChat_GenerativeWithContext(t *testing.T) {
	f := newFixture([]string{"Canxi giúp xương chắc khỏe.", "Vitamin D hỗ trợ hấp thu canxi."})

	out, err := f.uc.Chat(context.Background(), model.Scope{}, chat.ChatInput{Message: "Nguyên nhân gây loãng xương là gì?", SessionID: "s1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Source != chat.SourceGenerativeWithContext {
		t.Errorf("expected generative_with_context, got %s", out.Source)
	}

	prompt := f.llm.lastPrompt()
	if !strings.Contains(prompt, HeaderContext+"\nCanxi giúp xương chắc khỏe.\n\nVitamin D hỗ trợ hấp thu canxi.") {
		t.Errorf("context block missing or reordered:\n%s", prompt)
	}
	if !strings.HasSuffix(prompt, HeaderQuestion+"\nNguyên nhân gây loãng xương là gì?") {
		t.Errorf("question block must carry the raw message:\n%s", prompt)
	}
}

func TestChat_GenerativeUsesSessionHistory(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	if _, err := f.uc.Chat(ctx, model.Scope{}, chat.ChatInput{Message: "xin chào", SessionID: "s1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.uc.Chat(ctx, model.Scope{}, chat.ChatInput{Message: "xin chào", SessionID: "other"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.uc.Chat(ctx, model.Scope{}, chat.ChatInput{Message: "Huyết áp cao nên ăn gì?", SessionID: "s1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := f.llm.lastPrompt()
	if strings.Count(prompt, LabelUser) != 1 {
		t.Errorf("expected exactly one prior turn from s1 in prompt:\n%s", prompt)
	}
	if !strings.Contains(prompt, HeaderHistory+"\nNgười dùng: xin chào\nTrợ lý: Chào bạn") {
		t.Errorf("history block missing:\n%s", prompt)
	}
}

func TestChat_GenerationFailure(t *testing.T) {
	f := newFixture([]string{"passage"})
	f.llm.err = errors.New("connection refused")
	ctx := context.Background()

	_, err := f.uc.Chat(ctx, model.Scope{}, chat.ChatInput{Message: "Bệnh tiểu đường là gì?", SessionID: "s1"})
	if !errors.Is(err, chat.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}

	turns, _ := f.history.Recent(ctx, "s1")
	if len(turns) != 0 {
		t.Errorf("failed generation must not be recorded, got %d turns", len(turns))
	}
}

func TestChat_GenerationTimeout(t *testing.T) {
	f := newFixture(nil)
	f.llm.block = true
	f.uc.cfg.GenerationTimeout = 20 * time.Millisecond

	start := time.Now()
	_, err := f.uc.Chat(context.Background(), model.Scope{}, chat.ChatInput{Message: "Bệnh tiểu đường là gì?", SessionID: "s1"})
	if !errors.Is(err, chat.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Errorf("timeout not applied")
	}
}

func TestChat_EmptyCompletion(t *testing.T) {
	f := newFixture(nil)
	f.llm.answer = "   "

	_, err := f.uc.Chat(context.Background(), model.Scope{}, chat.ChatInput{Message: "Bệnh gout là gì?", SessionID: "s1"})
	if !errors.Is(err, chat.ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}

func TestChat_EmptyMessage(t *testing.T) {
	f := newFixture(nil)

	for _, msg := range []string{"", "   ", "\n\t"} {
		if _, err := f.uc.Chat(context.Background(), model.Scope{}, chat.ChatInput{Message: msg}); !errors.Is(err, chat.ErrEmptyMessage) {
			t.Errorf("message %q: expected ErrEmptyMessage, got %v", msg, err)
		}
	}
}

func TestChat_IssuesSessionID(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	out, err := f.uc.Chat(ctx, model.Scope{}, chat.ChatInput{Message: "xin chào"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.SessionID == "" {
		t.Fatal("expected a generated session id")
	}

	turns, _ := f.history.Recent(ctx, out.SessionID)
	if len(turns) != 1 {
		t.Errorf("turn must be stored under the issued id, got %d", len(turns))
	}
}

func TestChat_HistoryBound(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	messages := []string{"xin chào", "bạn là ai", "giờ làm việc", "liên hệ", "cảm ơn", "chào bạn"}
	for _, m := range messages {
		if _, err := f.uc.Chat(ctx, model.Scope{}, chat.ChatInput{Message: m, SessionID: "s1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	out, err := f.uc.History(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Turns) != 5 {
		t.Fatalf("expected 5 turns, got %d", len(out.Turns))
	}
	if out.Turns[0].UserMessage != "bạn là ai" || out.Turns[4].UserMessage != "chào bạn" {
		t.Errorf("oldest turn not evicted: %+v", out.Turns)
	}
}

func TestChat_HistoryWriteFailureStillReplies(t *testing.T) {
	logger := &mockLogger{}
	uc := New(logger, intent.New(intent.DefaultTable()), failingHistory{}, nil, &mockGenerator{answer: "ok"}, Config{})

	out, err := uc.Chat(context.Background(), model.Scope{}, chat.ChatInput{Message: "Bệnh gout là gì?", SessionID: "s1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Source != chat.SourceGenerative {
		t.Errorf("expected generative, got %s", out.Source)
	}
	if logger.warns < 2 {
		t.Errorf("expected read and write failures to be logged, got %d warnings", logger.warns)
	}
}

func TestChat_RoundTrip(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()
	sc := model.Scope{RequestID: "req-1", ClientIP: "127.0.0.1"}

	steps := []struct {
		message    string
		wantSource chat.Source
		wantTurns  int
	}{
		{"Tôi bị đau tim", chat.SourceEmergency, 0},
		{"Cảm ơn bạn", chat.SourceRules, 1},
		{"Nguyên nhân gây loãng xương là gì?", chat.SourceGenerative, 2},
	}

	for _, s := range steps {
		out, err := f.uc.Chat(ctx, sc, chat.ChatInput{Message: s.message, SessionID: "rt"})
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", s.message, err)
		}
		if out.Source != s.wantSource {
			t.Errorf("%q: expected source %s, got %s", s.message, s.wantSource, out.Source)
		}
		turns, _ := f.history.Recent(ctx, "rt")
		if len(turns) != s.wantTurns {
			t.Errorf("%q: expected %d turns, got %d", s.message, s.wantTurns, len(turns))
		}
	}
}

func TestHistoryAndClearSession(t *testing.T) {
	f := newFixture(nil)
	ctx := context.Background()

	if _, err := f.uc.History(ctx, " "); !errors.Is(err, chat.ErrSessionIDRequired) {
		t.Errorf("expected ErrSessionIDRequired, got %v", err)
	}
	if err := f.uc.ClearSession(ctx, ""); !errors.Is(err, chat.ErrSessionIDRequired) {
		t.Errorf("expected ErrSessionIDRequired, got %v", err)
	}

	if _, err := f.uc.Chat(ctx, model.Scope{}, chat.ChatInput{Message: "xin chào", SessionID: "s1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.uc.ClearSession(ctx, "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := f.uc.History(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.SessionID != "s1" || len(out.Turns) != 0 {
		t.Errorf("expected empty history after clear, got %+v", out)
	}
}

func TestHistory_StoreFailure(t *testing.T) {
	uc := New(&mockLogger{}, intent.New(intent.DefaultTable()), failingHistory{}, nil, &mockGenerator{}, Config{})

	if _, err := uc.History(context.Background(), "s1"); err == nil {
		t.Error("expected error")
	}
	if err := uc.ClearSession(context.Background(), "s1"); err == nil {
		t.Error("expected error")
	}
}

func TestChat_RuleWithoutResponseFallsThrough(t *testing.T) {
	f := newFixture(nil)
	engine := &unansweredRuleEngine{}
	f.uc.classifier = engine
	ctx := context.Background()

	out, err := f.uc.Chat(ctx, model.Scope{}, chat.ChatInput{Message: "giờ làm việc", SessionID: "s1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if engine.responds != 1 {
		t.Errorf("expected one Respond call, got %d", engine.responds)
	}
	if out.Source != chat.SourceGenerative {
		t.Errorf("expected generative, got %s", out.Source)
	}
	if len(f.llm.prompts) != 1 {
		t.Errorf("expected one generation call, got %d", len(f.llm.prompts))
	}
	if f.logger.warns != 1 {
		t.Errorf("expected the fallthrough to be logged once, got %d warnings", f.logger.warns)
	}

	turns, _ := f.history.Recent(ctx, "s1")
	if len(turns) != 1 || turns[0].UserMessage != "giờ làm việc" || turns[0].AssistantResponse != out.Response {
		t.Errorf("expected exactly one recorded turn, got %+v", turns)
	}
}
