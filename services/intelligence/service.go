package intelligence

import (
	"context"
	"fmt"
	"strings"

	"brightnest/models"
)

const maxContextMessages = 20

const systemPrompt = `You are the booking assistant for a home-cleaning marketplace.
Customers can book small, medium, or large home cleans on a one-time, weekly,
biweekly, or monthly schedule, with optional deep-clean and move-in/out addons.
Weekly, biweekly, and monthly plans earn a subscription discount. Weekend and
same-day visits carry a surcharge. Answer briefly and suggest the booking flow
for anything you cannot do yourself.`

// LLMClient generates a completion for a prompt.
type LLMClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ContextStore persists per-user conversation state.
type ContextStore interface {
	Get(ctx context.Context, userID string) (*models.AIContext, error)
	Set(ctx context.Context, userID string, aiCtx *models.AIContext) error
	Clear(ctx context.Context, userID string) error
}

// AIService is the chat assistant surface.
type AIService interface {
	Chat(ctx context.Context, userID, message string) (string, error)
	Reset(ctx context.Context, userID string) error
}

// DefaultAIService wires the LLM client to the conversation store.
type DefaultAIService struct {
	Client LLMClient
	Store  ContextStore
}

func NewDefaultAIService(client LLMClient, store ContextStore) *DefaultAIService {
	return &DefaultAIService{Client: client, Store: store}
}

// Chat appends the user message to the stored conversation, prompts the
// model with the full history, and stores the reply.
func (s *DefaultAIService) Chat(ctx context.Context, userID, message string) (string, error) {
	aiCtx, err := s.Store.Get(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load conversation context: %w", err)
	}

	aiCtx.Messages = append(aiCtx.Messages, models.AIMessage{Role: "user", Content: message})
	if len(aiCtx.Messages) > maxContextMessages {
		aiCtx.Messages = aiCtx.Messages[len(aiCtx.Messages)-maxContextMessages:]
	}

	reply, err := s.Client.GenerateContent(ctx, buildPrompt(aiCtx))
	if err != nil {
		return "", err
	}

	aiCtx.Messages = append(aiCtx.Messages, models.AIMessage{Role: "model", Content: reply})
	if err := s.Store.Set(ctx, userID, aiCtx); err != nil {
		return "", fmt.Errorf("failed to save conversation context: %w", err)
	}
	return reply, nil
}

// Reset clears the stored conversation.
func (s *DefaultAIService) Reset(ctx context.Context, userID string) error {
	return s.Store.Clear(ctx, userID)
}

func buildPrompt(aiCtx *models.AIContext) string {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n")
	for _, msg := range aiCtx.Messages {
		sb.WriteString(msg.Role)
		sb.WriteString(": ")
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("model: ")
	return sb.String()
}
