package service

import (
	"context"
	"strings"

	"doc-wizard-be/internal/dto"
	"doc-wizard-be/internal/pkg/logger"
	"doc-wizard-be/pkg/llm"
	"doc-wizard-be/pkg/markdown"
)

// Fixed sampling temperature for documentation output.
const generationTemperature = 0.7

// IGenerationService is the stateless boundary in front of the completion
// provider. It injects the fixed system prompt, normalizes returned text and
// classifies failures; it holds no session state between calls and never
// retries.
type IGenerationService interface {
	Generate(ctx context.Context, messages []dto.GenerateMessage) (string, error)
}

type generationService struct {
	provider llm.LLMProvider
	model    string
	logger   logger.ILogger
}

func NewGenerationService(provider llm.LLMProvider, model string, sysLogger logger.ILogger) IGenerationService {
	return &generationService{
		provider: provider,
		model:    model,
		logger:   sysLogger,
	}
}

func (s *generationService) Generate(ctx context.Context, messages []dto.GenerateMessage) (string, error) {
	// The system instruction always comes first; caller-supplied system
	// messages are forwarded after it, not deduplicated.
	history := make([]llm.Message, 0, len(messages)+1)
	history = append(history, llm.Message{Role: "system", Content: generationSystemPrompt})
	for _, msg := range messages {
		role := msg.Role
		if role == "" {
			role = "user"
		}
		history = append(history, llm.Message{Role: role, Content: msg.Content})
	}

	opts := []llm.Option{llm.WithTemperature(generationTemperature)}
	if s.model != "" {
		opts = append(opts, llm.WithModel(s.model))
	}

	content, err := s.provider.Chat(ctx, history, opts...)
	if err != nil {
		s.logger.Error("generation", "Provider call failed", map[string]interface{}{"error": err.Error()})
		return "", classifyProviderError(err)
	}
	if strings.TrimSpace(content) == "" {
		return "", &dto.EmptyCompletionError{}
	}

	return markdown.Normalize(content), nil
}

// classifyProviderError derives the error class from the provider's message
// content: key configuration problems and rate limiting get their own types,
// everything else is a generic upstream failure.
func classifyProviderError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key"):
		return &dto.AuthConfigError{Cause: err}
	case strings.Contains(msg, "rate limit"):
		return &dto.RateLimitError{Cause: err}
	default:
		return &dto.UpstreamError{Cause: err}
	}
}
