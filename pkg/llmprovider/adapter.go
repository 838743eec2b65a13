package llmprovider

import (
	"context"
	"strings"

	"healthsmart-chatbot/pkg/ollama"
	"healthsmart-chatbot/pkg/qwen"
)

// OllamaAdapter adapts pkg/ollama to llmprovider.Provider interface
type OllamaAdapter struct {
	client ollama.IOllama
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// GenerateContent flattens the messages into one prompt for /api/generate.
func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ollamaReq := &ollama.GenerateRequest{
		Prompt:      flattenMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		ollamaReq.System = req.SystemInstruction.Text()
	}

	resp, err := a.client.Generate(ctx, ollamaReq)
	if err != nil {
		return nil, newProviderError(ProviderOllama, err)
	}

	return &Response{
		Content: Message{
			Role:  RoleAssistant,
			Parts: []Part{{Text: resp.Text}},
		},
		ProviderName: ProviderOllama,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.PromptEvalCount,
			OutputTokens: resp.EvalCount,
			TotalTokens:  resp.PromptEvalCount + resp.EvalCount,
		},
	}, nil
}

// Name returns provider name
func (a *OllamaAdapter) Name() string {
	return ProviderOllama
}

// Model returns model name
func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}

// QwenAdapter adapts an OpenAI-compatible client (Qwen, DeepSeek) to Provider
type QwenAdapter struct {
	name   string
	client qwen.IQwen
}

// NewQwenAdapter creates a new adapter reported under name
func NewQwenAdapter(name string, client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		Messages:    make([]qwen.Message, 0, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		qwenReq.System = req.SystemInstruction.Text()
	}
	for _, msg := range req.Messages {
		qwenReq.Messages = append(qwenReq.Messages, qwen.Message{Role: msg.Role, Content: msg.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, newProviderError(a.name, err)
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage.InputTokens = resp.Usage.InputTokens
		usage.OutputTokens = resp.Usage.OutputTokens
		usage.TotalTokens = resp.Usage.TotalTokens
	}

	return &Response{
		Content: Message{
			Role:  RoleAssistant,
			Parts: []Part{{Text: resp.Content}},
		},
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

// flattenMessages renders a message list as a single prompt string.
// A lone user message is passed through unchanged.
func flattenMessages(msgs []Message) string {
	if len(msgs) == 1 && msgs[0].Role == RoleUser {
		return msgs[0].Text()
	}

	var sb strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if msg.Role != RoleUser {
			sb.WriteString(msg.Role)
			sb.WriteString(": ")
		}
		sb.WriteString(msg.Text())
	}
	return sb.String()
}
