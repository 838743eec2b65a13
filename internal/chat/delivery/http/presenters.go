package http

import (
	"healthsmart-chatbot/internal/chat"
	"healthsmart-chatbot/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id" binding:"max=128"`
}

func (r chatReq) validate() error {
	if isBlank(r.Message) {
		return chat.ErrEmptyMessage
	}
	return nil
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		Message:   r.Message,
		SessionID: r.SessionID,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response  string `json:"response"`
	Source    string `json:"source"`
	SessionID string `json:"session_id"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		Response:  out.Response,
		Source:    string(out.Source),
		SessionID: out.SessionID,
	}
}

type errorResp struct {
	Error string `json:"error"`
}

type turnResp struct {
	UserMessage       string `json:"user_message"`
	AssistantResponse string `json:"assistant_response"`
}

type historyResp struct {
	SessionID string     `json:"session_id"`
	Turns     []turnResp `json:"turns"`
	Count     int        `json:"count"`
}

func (h *handler) newHistoryResp(out chat.HistoryOutput) historyResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = newTurnResp(t)
	}
	return historyResp{
		SessionID: out.SessionID,
		Turns:     turns,
		Count:     len(turns),
	}
}

func newTurnResp(t model.ConversationTurn) turnResp {
	return turnResp{
		UserMessage:       t.UserMessage,
		AssistantResponse: t.AssistantResponse,
	}
}
