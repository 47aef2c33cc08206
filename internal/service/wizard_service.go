package service

import (
	"context"
	"strings"
	"sync/atomic"

	"doc-wizard-be/internal/config"
	"doc-wizard-be/internal/dto"
	"doc-wizard-be/internal/entity"
	"doc-wizard-be/internal/pkg/logger"
	"doc-wizard-be/pkg/docparse"
	"doc-wizard-be/pkg/markdown"
)

// IWizardService orchestrates the editing flow on top of the version store
// and the generation gateway: fresh generation from wizard parameters,
// feedback-driven regeneration and seeding from an imported document.
type IWizardService interface {
	State(ctx context.Context) (*dto.WizardStateResponse, error)
	UpdateParams(ctx context.Context, req *dto.UpdateParamsRequest) (*dto.WizardStateResponse, error)
	NextStep(ctx context.Context) (*dto.WizardStateResponse, error)
	PrevStep(ctx context.Context) (*dto.WizardStateResponse, error)
	GenerateInitial(ctx context.Context) (*dto.WizardStateResponse, error)
	RegenerateWithFeedback(ctx context.Context, feedback string) (*dto.WizardStateResponse, error)
	ImportExisting(ctx context.Context, document, feedback string) (*dto.WizardStateResponse, error)
	SetVersion(ctx context.Context, index int) (*dto.WizardStateResponse, error)
	Reset(ctx context.Context) (*dto.WizardStateResponse, error)
	Preview(ctx context.Context) (*dto.PreviewResponse, error)
}

type wizardService struct {
	sessions  ISessionService
	gateway   IGenerationService
	wizardCfg config.WizardConfig
	logger    logger.ILogger

	// Serializes generation against the lock-free store. A second request
	// arriving while one awaits the provider is refused, not queued.
	generating atomic.Bool
}

func NewWizardService(
	sessions ISessionService,
	gateway IGenerationService,
	wizardCfg config.WizardConfig,
	sysLogger logger.ILogger,
) IWizardService {
	return &wizardService{
		sessions:  sessions,
		gateway:   gateway,
		wizardCfg: wizardCfg,
		logger:    sysLogger,
	}
}

func (s *wizardService) State(ctx context.Context) (*dto.WizardStateResponse, error) {
	state, err := s.sessions.State(ctx)
	if err != nil {
		return nil, err
	}
	return stateToResponse(state), nil
}

func (s *wizardService) UpdateParams(ctx context.Context, req *dto.UpdateParamsRequest) (*dto.WizardStateResponse, error) {
	state, err := s.sessions.UpdateParams(ctx, req)
	if err != nil {
		return nil, err
	}
	return stateToResponse(state), nil
}

func (s *wizardService) NextStep(ctx context.Context) (*dto.WizardStateResponse, error) {
	state, err := s.sessions.NextStep(ctx)
	if err != nil {
		return nil, err
	}
	return stateToResponse(state), nil
}

func (s *wizardService) PrevStep(ctx context.Context) (*dto.WizardStateResponse, error) {
	state, err := s.sessions.PrevStep(ctx)
	if err != nil {
		return nil, err
	}
	return stateToResponse(state), nil
}

// GenerateInitial produces the first version from the wizard parameters.
// Parameter validation happens before any provider call; on gateway failure
// the store is left untouched.
func (s *wizardService) GenerateInitial(ctx context.Context) (*dto.WizardStateResponse, error) {
	state, err := s.sessions.State(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(state.Title) == "" {
		return nil, &dto.ValidationError{Message: "Title is required to generate documentation"}
	}
	if s.wizardCfg.RequireDescription && strings.TrimSpace(state.Description) == "" {
		return nil, &dto.ValidationError{Message: "Description is required to generate documentation"}
	}

	if !s.generating.CompareAndSwap(false, true) {
		return nil, &dto.GenerationInFlightError{}
	}
	defer s.generating.Store(false)

	content, err := s.gateway.Generate(ctx, []dto.GenerateMessage{
		{Role: "user", Content: buildInitialPrompt(state)},
	})
	if err != nil {
		return nil, err
	}

	next, err := s.sessions.AppendVersion(ctx, content, nil)
	if err != nil {
		return nil, err
	}
	s.logger.Info("wizard", "Generated initial version", map[string]interface{}{"versions": len(next.Versions)})
	return stateToResponse(next), nil
}

// RegenerateWithFeedback appends a refined version derived from the current
// document and the feedback text. The prior version stays in the log.
func (s *wizardService) RegenerateWithFeedback(ctx context.Context, feedback string) (*dto.WizardStateResponse, error) {
	if strings.TrimSpace(feedback) == "" {
		return nil, &dto.ValidationError{Message: "Feedback is required to regenerate documentation"}
	}

	state, err := s.sessions.State(ctx)
	if err != nil {
		return nil, err
	}
	if state.GeneratedContent == "" {
		return nil, &dto.ValidationError{Message: "No generated documentation to refine"}
	}

	if !s.generating.CompareAndSwap(false, true) {
		return nil, &dto.GenerationInFlightError{}
	}
	defer s.generating.Store(false)

	content, err := s.gateway.Generate(ctx, []dto.GenerateMessage{
		{Role: "user", Content: buildFeedbackPrompt(state, feedback)},
	})
	if err != nil {
		return nil, err
	}

	next, err := s.sessions.AppendVersion(ctx, content, &feedback)
	if err != nil {
		return nil, err
	}
	s.logger.Info("wizard", "Regenerated with feedback", map[string]interface{}{"versions": len(next.Versions)})
	return stateToResponse(next), nil
}

// ImportExisting improves an external document per the feedback, parses the
// derived TITLE:/DESCRIPTION: header out of the response and replaces the
// session with the seeded result.
func (s *wizardService) ImportExisting(ctx context.Context, document, feedback string) (*dto.WizardStateResponse, error) {
	if strings.TrimSpace(document) == "" {
		return nil, &dto.ValidationError{Message: "Document content is required to import"}
	}
	if strings.TrimSpace(feedback) == "" {
		return nil, &dto.ValidationError{Message: "Feedback is required to import documentation"}
	}

	if !s.generating.CompareAndSwap(false, true) {
		return nil, &dto.GenerationInFlightError{}
	}
	defer s.generating.Store(false)

	raw, err := s.gateway.Generate(ctx, []dto.GenerateMessage{
		{Role: "user", Content: buildImportPrompt(document, feedback)},
	})
	if err != nil {
		return nil, err
	}

	seed := docparse.ParseSeedResponse(raw)
	var title, description *string
	if seed.Title != "" {
		title = &seed.Title
	}
	if seed.Description != "" {
		description = &seed.Description
	}

	next, err := s.sessions.SeedFromExternal(ctx, seed.Content, title, description)
	if err != nil {
		return nil, err
	}
	s.logger.Info("wizard", "Imported external document", map[string]interface{}{"title": next.Title})
	return stateToResponse(next), nil
}

func (s *wizardService) SetVersion(ctx context.Context, index int) (*dto.WizardStateResponse, error) {
	state, err := s.sessions.SetVersion(ctx, index)
	if err != nil {
		return nil, err
	}
	return stateToResponse(state), nil
}

func (s *wizardService) Reset(ctx context.Context) (*dto.WizardStateResponse, error) {
	state, err := s.sessions.Reset(ctx)
	if err != nil {
		return nil, err
	}
	return stateToResponse(state), nil
}

// Preview renders the currently selected version to sanitized HTML.
func (s *wizardService) Preview(ctx context.Context) (*dto.PreviewResponse, error) {
	state, err := s.sessions.State(ctx)
	if err != nil {
		return nil, err
	}

	html, err := markdown.Render(state.GeneratedContent)
	if err != nil {
		return nil, err
	}
	return &dto.PreviewResponse{HTML: html}, nil
}

func stateToResponse(state *entity.SessionState) *dto.WizardStateResponse {
	versions := make([]dto.VersionDTO, len(state.Versions))
	for i, v := range state.Versions {
		versions[i] = dto.VersionDTO{
			Version:   v.Version,
			Content:   v.Content,
			Timestamp: v.Timestamp,
		}
		if v.Feedback != nil {
			versions[i].Feedback = *v.Feedback
		}
	}

	return &dto.WizardStateResponse{
		Title:               state.Title,
		Description:         state.Description,
		AcceptanceCriteria:  state.AcceptanceCriteria,
		TestCases:           state.TestCases,
		GeneratedContent:    state.GeneratedContent,
		CurrentStep:         state.CurrentStep,
		Versions:            versions,
		CurrentVersionIndex: state.CurrentVersionIndex,
	}
}
