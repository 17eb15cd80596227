package services

import (
	"context"
	"strings"

	"k9hope_backend/internal/algorithms"
	"k9hope_backend/internal/chatbot"
	"k9hope_backend/internal/logger"
	"k9hope_backend/internal/services/dto"
	"k9hope_backend/pkg/apperrors"
)

type ChatService interface {
	SendMessage(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	client     chatbot.Client
	configured bool
}

// NewChatService wires the guardrail in front of the model client.
// configured=false means no API credential is present; guarded paths
// still answer, everything else is 503.
func NewChatService(client chatbot.Client, configured bool) ChatService {
	return &chatService{
		client:     client,
		configured: configured,
	}
}

// SendMessage runs the guardrail first. Only messages the guardrail
// forwards ever reach the model; model failures degrade to a fixed
// apology rather than an error status.
func (s *chatService) SendMessage(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, apperrors.NewBadRequestError("Message must not be empty")
	}

	switch algorithms.Classify(message) {
	case algorithms.VerdictGreet:
		return &dto.ChatResponse{Reply: algorithms.GreetingResponse}, nil
	case algorithms.VerdictRedirect:
		return &dto.ChatResponse{Reply: algorithms.RedirectResponse}, nil
	}

	if !s.configured {
		return nil, apperrors.ErrServiceUnavailable("chat", "Clinical assistant is not configured")
	}

	reply, err := s.client.GenerateContent(ctx, message)
	if err != nil {
		logger.WithError(err).Error("chat model call failed")
		return &dto.ChatResponse{Reply: algorithms.ErrorResponse}, nil
	}
	if strings.TrimSpace(reply) == "" {
		return &dto.ChatResponse{Reply: algorithms.FallbackResponse}, nil
	}
	return &dto.ChatResponse{Reply: reply}, nil
}
