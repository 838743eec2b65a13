package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"healthsmart-chatbot/internal/chat"
	"healthsmart-chatbot/internal/model"
	"healthsmart-chatbot/pkg/log"
	"healthsmart-chatbot/pkg/response"
)

type mockUseCase struct {
	chatOut    chat.ChatOutput
	chatErr    error
	historyOut chat.HistoryOutput
	historyErr error
	clearErr   error

	lastInput chat.ChatInput
	lastScope model.Scope
	lastID    string
}

func (m *mockUseCase) Chat(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ChatOutput, error) {
	m.lastInput = input
	m.lastScope = sc
	return m.chatOut, m.chatErr
}

func (m *mockUseCase) History(ctx context.Context, sessionID string) (chat.HistoryOutput, error) {
	m.lastID = sessionID
	return m.historyOut, m.historyErr
}

func (m *mockUseCase) ClearSession(ctx context.Context, sessionID string) error {
	m.lastID = sessionID
	return m.clearErr
}

func newRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc)
	RegisterChatRoute(r, h)
	RegisterSessionRoutes(r.Group("/api/v1"), h)
	return r
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockUseCase{chatOut: chat.ChatOutput{Response: "Rất vui", Source: chat.SourceRules, SessionID: "s1"}}
		w := doRequest(newRouter(uc), http.MethodPost, "/chat", `{"message":"Cảm ơn bạn","session_id":"s1"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp chatResp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if resp.Response != "Rất vui" || resp.Source != "rules_engine" || resp.SessionID != "s1" {
			t.Errorf("unexpected body: %+v", resp)
		}
		if uc.lastInput.Message != "Cảm ơn bạn" || uc.lastInput.SessionID != "s1" {
			t.Errorf("unexpected input: %+v", uc.lastInput)
		}
	})

	t.Run("malformed input", func(t *testing.T) {
		cases := []string{``, `{}`, `{"message":""}`, `{"message":"   "}`, `{"message":42}`, `not json`}
		for _, body := range cases {
			uc := &mockUseCase{}
			w := doRequest(newRouter(uc), http.MethodPost, "/chat", body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("body %q: expected 400, got %d", body, w.Code)
			}
			var resp errorResp
			json.Unmarshal(w.Body.Bytes(), &resp)
			if resp.Error == "" {
				t.Errorf("body %q: expected error field", body)
			}
		}
	})

	t.Run("error names the failing field", func(t *testing.T) {
		cases := []struct {
			body string
			want string
		}{
			{`{}`, msgInvalidRequest},
			{`{"message":"   "}`, msgInvalidRequest},
			{`{"message":"xin chào","session_id":"` + strings.Repeat("a", 129) + `"}`, msgSessionIDTooLong},
			{`not json`, msgMalformedBody},
			{`{"message":42}`, msgMalformedBody},
		}
		for _, tc := range cases {
			w := doRequest(newRouter(&mockUseCase{}), http.MethodPost, "/chat", tc.body)
			var resp errorResp
			json.Unmarshal(w.Body.Bytes(), &resp)
			if w.Code != http.StatusBadRequest || resp.Error != tc.want {
				t.Errorf("body %.40q: got %d %q, want 400 %q", tc.body, w.Code, resp.Error, tc.want)
			}
		}
	})

	t.Run("generation failure", func(t *testing.T) {
		uc := &mockUseCase{chatErr: errors.Join(chat.ErrGenerationFailed, errors.New("timeout"))}
		w := doRequest(newRouter(uc), http.MethodPost, "/chat", `{"message":"Bệnh gout là gì?"}`)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var resp errorResp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Error != msgGenerationFailed {
			t.Errorf("unexpected error message: %q", resp.Error)
		}
	})

	t.Run("unknown failure", func(t *testing.T) {
		uc := &mockUseCase{chatErr: errors.New("boom")}
		w := doRequest(newRouter(uc), http.MethodPost, "/chat", `{"message":"hi"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestHistoryHandler(t *testing.T) {
	uc := &mockUseCase{historyOut: chat.HistoryOutput{
		SessionID: "s1",
		Turns:     []model.ConversationTurn{{UserMessage: "xin chào", AssistantResponse: "Chào bạn"}},
	}}
	w := doRequest(newRouter(uc), http.MethodGet, "/api/v1/sessions/s1/history", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.lastID != "s1" {
		t.Errorf("expected id s1, got %q", uc.lastID)
	}

	var resp struct {
		ErrorCode int         `json:"error_code"`
		Data      historyResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if resp.ErrorCode != 0 || resp.Data.Count != 1 || resp.Data.Turns[0].UserMessage != "xin chào" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestClearSessionHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &mockUseCase{}
		w := doRequest(newRouter(uc), http.MethodDelete, "/api/v1/sessions/s1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastID != "s1" {
			t.Errorf("expected id s1, got %q", uc.lastID)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		uc := &mockUseCase{clearErr: errors.New("down")}
		w := doRequest(newRouter(uc), http.MethodDelete, "/api/v1/sessions/s1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp.Message != msgInternal {
			t.Errorf("unexpected message: %q", resp.Message)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		uc := &mockUseCase{clearErr: chat.ErrSessionIDRequired}
		w := doRequest(newRouter(uc), http.MethodDelete, "/api/v1/sessions/%20", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
