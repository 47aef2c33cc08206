package controller

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"doc-wizard-be/internal/dto"
	"doc-wizard-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubGenerationService struct {
	content string
	err     error
	calls   int
}

func (s *stubGenerationService) Generate(_ context.Context, _ []dto.GenerateMessage) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.content, nil
}

func newGenerateTestApp(stub *stubGenerationService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware("test"))
	api := app.Group("/api")
	NewGenerateController(stub).RegisterRoutes(api)
	return app
}

func postGenerate(t *testing.T, app *fiber.App, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/generate/v1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body failed: %v", err)
	}
	return resp.StatusCode, string(raw)
}

func TestGenerateEndpointSuccess(t *testing.T) {
	stub := &stubGenerationService{content: "# Doc\n\nBody"}
	app := newGenerateTestApp(stub)

	status, body := postGenerate(t, app, `{"messages":[{"role":"user","content":"write docs"}]}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"content":"# Doc\n\nBody"}`, body)
	assert.Equal(t, 1, stub.calls)
}

func TestGenerateEndpointRejectsMissingMessages(t *testing.T) {
	stub := &stubGenerationService{content: "# Doc"}
	app := newGenerateTestApp(stub)

	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"null messages", `{"messages":null}`},
		{"messages not an array", `{"messages":"hello"}`},
		{"not json at all", `plain text`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := postGenerate(t, app, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.JSONEq(t, `{"error":"Invalid request: messages array is required"}`, body)
		})
	}
	assert.Equal(t, 0, stub.calls)
}

func TestGenerateEndpointRateLimited(t *testing.T) {
	stub := &stubGenerationService{err: &dto.RateLimitError{Cause: assert.AnError}}
	app := newGenerateTestApp(stub)

	status, body := postGenerate(t, app, `{"messages":[{"role":"user","content":"write docs"}]}`)
	assert.Equal(t, fiber.StatusTooManyRequests, status)
	assert.JSONEq(t, `{"error":"Rate limit exceeded. Please try again later."}`, body)
}

func TestGenerateEndpointAuthConfigError(t *testing.T) {
	stub := &stubGenerationService{err: &dto.AuthConfigError{Cause: assert.AnError}}
	app := newGenerateTestApp(stub)

	status, body := postGenerate(t, app, `{"messages":[{"role":"user","content":"write docs"}]}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body, `"error":"OpenAI API key configuration error"`)
	assert.Contains(t, body, `"details"`)
}

func TestGenerateEndpointUpstreamFailure(t *testing.T) {
	stub := &stubGenerationService{err: &dto.UpstreamError{Cause: assert.AnError}}
	app := newGenerateTestApp(stub)

	status, body := postGenerate(t, app, `{"messages":[{"role":"user","content":"write docs"}]}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body, `"error":"Failed to generate documentation"`)
}
