package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"healthsmart-chatbot/internal/chat"
	"healthsmart-chatbot/internal/intent"
	"healthsmart-chatbot/internal/model"
	"healthsmart-chatbot/pkg/llmprovider"
)

// Chat classifies the message once and answers through the emergency, rule or
// generative path. Rule and generative answers are recorded in the session
// history; emergency alerts never are.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ChatOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.ChatOutput{}, chat.ErrEmptyMessage
	}

	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	in := uc.classifier.Classify(input.Message)
	uc.l.Infof(ctx, "%s: session=%s ip=%s intent=%s", LogPrefixChat, sessionID, sc.ClientIP, in)

	switch in {
	case intent.IntentEmergency:
		return chat.ChatOutput{
			Response:  EmergencyResponse,
			Source:    chat.SourceEmergency,
			SessionID: sessionID,
		}, nil

	case intent.IntentRuleBased:
		if reply, ok := uc.classifier.Respond(input.Message); ok {
			uc.record(ctx, sessionID, input.Message, reply)
			return chat.ChatOutput{
				Response:  reply,
				Source:    chat.SourceRules,
				SessionID: sessionID,
			}, nil
		}
		uc.l.Warnf(ctx, "%s: rule keyword matched but no response found, falling back to generation", LogPrefixChat)
	}

	reply, source, err := uc.generate(ctx, sessionID, input.Message)
	if err != nil {
		return chat.ChatOutput{}, err
	}

	uc.record(ctx, sessionID, input.Message, reply)
	return chat.ChatOutput{
		Response:  reply,
		Source:    source,
		SessionID: sessionID,
	}, nil
}

func (uc *implUseCase) generate(ctx context.Context, sessionID, message string) (string, chat.Source, error) {
	retrieveCtx, cancelRetrieve := context.WithTimeout(ctx, uc.cfg.RetrievalTimeout)
	passages := uc.retriever.Retrieve(retrieveCtx, message, uc.cfg.TopK)
	cancelRetrieve()

	turns, err := uc.history.Recent(ctx, sessionID)
	if err != nil {
		uc.l.Warnf(ctx, "%s: history.Recent: %v", LogPrefixChat, err)
		turns = nil
	}

	prompt := assemblePrompt(uc.cfg.SystemPrompt, turns, passages, message)

	genCtx, cancelGen := context.WithTimeout(ctx, uc.cfg.GenerationTimeout)
	defer cancelGen()

	resp, err := uc.llm.GenerateContent(genCtx, &llmprovider.Request{
		Messages:    []llmprovider.Message{llmprovider.UserText(prompt)},
		Temperature: GenerationTemperature,
		MaxTokens:   GenerationMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: llm.GenerateContent: %v", LogPrefixChat, err)
		return "", "", fmt.Errorf("%w: %v", chat.ErrGenerationFailed, err)
	}

	// A blank completion is a backend failure, not an answer: the caller gets
	// ErrGenerationFailed (502) and nothing is recorded, instead of a
	// placeholder text being stored as the assistant turn.
	answer := strings.TrimSpace(resp.Text())
	if answer == "" {
		uc.l.Errorf(ctx, "%s: empty completion from %s", LogPrefixChat, resp.ProviderName)
		return "", "", fmt.Errorf("%w: empty completion", chat.ErrGenerationFailed)
	}

	source := chat.SourceGenerative
	if len(passages) > 0 {
		source = chat.SourceGenerativeWithContext
	}

	return answer + DisclaimerSuffix, source, nil
}

// record stores a completed turn. A failed write is logged and does not fail
// the request since the reply was already produced.
func (uc *implUseCase) record(ctx context.Context, sessionID, message, reply string) {
	err := uc.history.Append(ctx, sessionID, model.ConversationTurn{
		UserMessage:       message,
		AssistantResponse: reply,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: history.Append: %v", LogPrefixChat, err)
	}
}
