package dto

import "fmt"

type UpdateParamsRequest struct {
	Title              *string `json:"title"`
	Description        *string `json:"description"`
	AcceptanceCriteria *string `json:"acceptance_criteria"`
	TestCases          *string `json:"test_cases"`
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

type ImportRequest struct {
	Document string `json:"document" validate:"required"`
	Feedback string `json:"feedback" validate:"required"`
}

type SetVersionRequest struct {
	Index *int `json:"index" validate:"required"`
}

type VersionDTO struct {
	Version   int    `json:"version"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
	Feedback  string `json:"feedback,omitempty"`
}

type WizardStateResponse struct {
	Title               string       `json:"title"`
	Description         string       `json:"description"`
	AcceptanceCriteria  string       `json:"acceptance_criteria"`
	TestCases           string       `json:"test_cases"`
	GeneratedContent    string       `json:"generated_content"`
	CurrentStep         int          `json:"current_step"`
	Versions            []VersionDTO `json:"versions"`
	CurrentVersionIndex int          `json:"current_version_index"`
}

type PreviewResponse struct {
	HTML string `json:"html"`
}

// IndexError marks a version-cursor move outside the log bounds.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("version index %d out of range (log has %d entries)", e.Index, e.Length)
}

// GenerationInFlightError rejects a generation entry while another call is
// still awaiting the provider. The store offers no internal locking, so
// overlapping appends must be refused up front.
type GenerationInFlightError struct{}

func (e *GenerationInFlightError) Error() string {
	return "a generation request is already in progress"
}
