package service

import (
	"context"
	"errors"
	"testing"

	"doc-wizard-be/internal/dto"
	"doc-wizard-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

// fakeProvider records the last request and replays a fixed response.
type fakeProvider struct {
	response   string
	err        error
	calls      int
	gotHistory []llm.Message
	gotOpts    llm.Options
}

func (p *fakeProvider) Chat(_ context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.calls++
	p.gotHistory = history
	p.gotOpts = llm.Options{}
	for _, opt := range options {
		opt(&p.gotOpts)
	}
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func TestGenerateInjectsSystemPrompt(t *testing.T) {
	provider := &fakeProvider{response: "# Doc"}
	svc := NewGenerationService(provider, "gpt-4", noopLogger{})

	content, err := svc.Generate(context.Background(), []dto.GenerateMessage{
		{Role: "user", Content: "Generate documentation for: Title: X"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "# Doc", content)

	assert.Equal(t, 1, provider.calls)
	assert.Len(t, provider.gotHistory, 2)
	assert.Equal(t, "system", provider.gotHistory[0].Role)
	assert.Contains(t, provider.gotHistory[0].Content, "Confluence documentation expert")
	assert.Equal(t, "user", provider.gotHistory[1].Role)

	assert.Equal(t, 0.7, provider.gotOpts.Temperature)
	assert.Equal(t, "gpt-4", provider.gotOpts.Model)
}

func TestGenerateDefaultsMissingRole(t *testing.T) {
	provider := &fakeProvider{response: "ok"}
	svc := NewGenerationService(provider, "gpt-4", noopLogger{})

	_, err := svc.Generate(context.Background(), []dto.GenerateMessage{{Content: "hello"}})
	assert.NoError(t, err)
	assert.Equal(t, "user", provider.gotHistory[1].Role)
}

func TestGenerateNormalizesOutput(t *testing.T) {
	provider := &fakeProvider{response: "# Title\r\n\r\n\r\n\r\nBody\r\n"}
	svc := NewGenerationService(provider, "gpt-4", noopLogger{})

	content, err := svc.Generate(context.Background(), []dto.GenerateMessage{
		{Role: "user", Content: "go"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "# Title\n\nBody", content)
}

func TestGenerateEmptyCompletion(t *testing.T) {
	provider := &fakeProvider{response: "  \n\t "}
	svc := NewGenerationService(provider, "gpt-4", noopLogger{})

	_, err := svc.Generate(context.Background(), []dto.GenerateMessage{
		{Role: "user", Content: "go"},
	})
	var emptyErr *dto.EmptyCompletionError
	assert.True(t, errors.As(err, &emptyErr))
}

func TestGenerateClassifiesProviderErrors(t *testing.T) {
	tests := []struct {
		name        string
		providerErr string
		wantTarget  interface{}
	}{
		{"api key error", "Incorrect API key provided", new(*dto.AuthConfigError)},
		{"api key error uppercase", "invalid API KEY", new(*dto.AuthConfigError)},
		{"rate limit error", "Rate limit reached for requests", new(*dto.RateLimitError)},
		{"rate limit lowercase", "openai: rate limit exceeded", new(*dto.RateLimitError)},
		{"generic upstream error", "connection refused", new(*dto.UpstreamError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{err: errors.New(tt.providerErr)}
			svc := NewGenerationService(provider, "gpt-4", noopLogger{})

			_, err := svc.Generate(context.Background(), []dto.GenerateMessage{
				{Role: "user", Content: "go"},
			})
			assert.Error(t, err)
			assert.True(t, errors.As(err, tt.wantTarget), "got %T", err)
		})
	}
}
