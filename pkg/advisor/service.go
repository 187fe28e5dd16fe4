package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrValidation = errors.New("validation failed")

// questionInstruction keeps the chatbot on topic. Non-finance questions are
// politely refused by the model itself.
const questionInstruction = "You are a financial agent. Only answer questions related to finance. " +
	"If the question is not about finance, politely refuse to answer."

type Service interface {
	// AskQuestion answers a free-form finance question through the AI
	// collaborator, with a fresh conversational context per call.
	AskQuestion(ctx context.Context, question string) (string, error)
}

type ServiceImpl struct {
	client Client
}

func NewService(client Client) *ServiceImpl {
	return &ServiceImpl{client: client}
}

func (s *ServiceImpl) AskQuestion(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("%w: question cannot be empty", ErrValidation)
	}
	return s.client.Ask(ctx, fmt.Sprintf("%s\n\nUser: %s", questionInstruction, question))
}
