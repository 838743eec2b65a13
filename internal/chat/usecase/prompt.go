package usecase

import (
	"strings"

	"healthsmart-chatbot/internal/model"
)

// assemblePrompt renders the generation prompt in fixed order: system
// instruction, history, retrieved context, current question. Empty blocks
// are omitted together with their header.
func assemblePrompt(system string, history []model.ConversationTurn, passages []string, message string) string {
	blocks := make([]string, 0, 4)
	blocks = append(blocks, system)

	if len(history) > 0 {
		var sb strings.Builder
		sb.WriteString(HeaderHistory)
		for _, turn := range history {
			sb.WriteString("\n")
			sb.WriteString(LabelUser + " " + turn.UserMessage)
			sb.WriteString("\n")
			sb.WriteString(LabelAssistant + " " + turn.AssistantResponse)
		}
		blocks = append(blocks, sb.String())
	}

	if len(passages) > 0 {
		blocks = append(blocks, HeaderContext+"\n"+strings.Join(passages, "\n\n"))
	}

	blocks = append(blocks, HeaderQuestion+"\n"+message)

	return strings.Join(blocks, "\n\n")
}
