package dto

import "encoding/json"

type GenerateMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerateRequest keeps messages raw so the controller can distinguish a
// missing field from a field of the wrong shape.
type GenerateRequest struct {
	Messages json.RawMessage `json:"messages"`
}

type GenerateResponse struct {
	Content string `json:"content"`
}

type GenerateErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// --- Generation error taxonomy ---

// ValidationError marks malformed or missing request fields. No provider
// call is attempted when one is raised.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthConfigError marks provider failures caused by API-key configuration.
type AuthConfigError struct {
	Cause error
}

func (e *AuthConfigError) Error() string {
	return "api key configuration error: " + e.Cause.Error()
}

// RateLimitError marks provider-side rate limiting.
type RateLimitError struct {
	Cause error
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

// UpstreamError marks any other provider failure.
type UpstreamError struct {
	Cause error
}

func (e *UpstreamError) Error() string {
	return "generation failed: " + e.Cause.Error()
}

// EmptyCompletionError marks a provider response with no usable text.
type EmptyCompletionError struct{}

func (e *EmptyCompletionError) Error() string {
	return "no content received from model"
}
