package service

import (
	"context"
	"time"

	"doc-wizard-be/internal/dto"
	"doc-wizard-be/internal/entity"
	"doc-wizard-be/internal/pkg/logger"
	"doc-wizard-be/internal/repository/contract"
	"doc-wizard-be/internal/repository/memory"
)

// StorageSlot names the single snapshot slot backing the active session.
const StorageSlot = "document-storage"

// ISessionService is the version store: an append-only log of document
// versions plus a cursor, with the wizard parameters riding along. Every
// mutation persists the full observable state before returning, so a restart
// reconstructs identical state.
//
// The store performs no internal locking; callers serialize generation
// requests (see wizardService).
type ISessionService interface {
	State(ctx context.Context) (*entity.SessionState, error)
	UpdateParams(ctx context.Context, req *dto.UpdateParamsRequest) (*entity.SessionState, error)
	NextStep(ctx context.Context) (*entity.SessionState, error)
	PrevStep(ctx context.Context) (*entity.SessionState, error)
	AppendVersion(ctx context.Context, content string, feedback *string) (*entity.SessionState, error)
	SetVersion(ctx context.Context, index int) (*entity.SessionState, error)
	SeedFromExternal(ctx context.Context, content string, title, description *string) (*entity.SessionState, error)
	Reset(ctx context.Context) (*entity.SessionState, error)
}

type sessionService struct {
	active    *memory.SessionRepository
	snapshots contract.SessionSnapshotRepository
	logger    logger.ILogger
}

func NewSessionService(
	active *memory.SessionRepository,
	snapshots contract.SessionSnapshotRepository,
	sysLogger logger.ILogger,
) ISessionService {
	return &sessionService{
		active:    active,
		snapshots: snapshots,
		logger:    sysLogger,
	}
}

// current returns the live state, restoring it from the durable snapshot
// after a restart and falling back to a fresh session.
func (s *sessionService) current(ctx context.Context) (*entity.SessionState, error) {
	if state, found := s.active.Get(StorageSlot); found {
		return state, nil
	}

	state, err := s.snapshots.Load(ctx, StorageSlot)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = entity.NewSessionState()
	}
	s.active.Save(StorageSlot, state)
	return state, nil
}

// persist writes the durable snapshot and returns a defensive copy.
func (s *sessionService) persist(ctx context.Context, state *entity.SessionState) (*entity.SessionState, error) {
	if err := s.snapshots.Save(ctx, StorageSlot, state); err != nil {
		return nil, err
	}
	s.active.Save(StorageSlot, state)
	return state.Clone(), nil
}

func (s *sessionService) State(ctx context.Context) (*entity.SessionState, error) {
	state, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return state.Clone(), nil
}

func (s *sessionService) UpdateParams(ctx context.Context, req *dto.UpdateParamsRequest) (*entity.SessionState, error) {
	state, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		state.Title = *req.Title
	}
	if req.Description != nil {
		state.Description = *req.Description
	}
	if req.AcceptanceCriteria != nil {
		state.AcceptanceCriteria = *req.AcceptanceCriteria
	}
	if req.TestCases != nil {
		state.TestCases = *req.TestCases
	}

	return s.persist(ctx, state)
}

func (s *sessionService) NextStep(ctx context.Context) (*entity.SessionState, error) {
	state, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if state.CurrentStep < entity.StepGenerated {
		state.CurrentStep++
	}
	return s.persist(ctx, state)
}

func (s *sessionService) PrevStep(ctx context.Context) (*entity.SessionState, error) {
	state, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if state.CurrentStep > entity.StepDetails {
		state.CurrentStep--
	}
	return s.persist(ctx, state)
}

// AppendVersion is the only mutation that grows the log. The new entry gets
// version = length+1 and the cursor always lands on it.
func (s *sessionService) AppendVersion(ctx context.Context, content string, feedback *string) (*entity.SessionState, error) {
	state, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	state.Versions = append(state.Versions, entity.DocumentVersion{
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
		Version:   len(state.Versions) + 1,
		Feedback:  feedback,
	})
	state.CurrentVersionIndex = len(state.Versions) - 1
	state.GeneratedContent = content
	state.CurrentStep = entity.StepGenerated

	return s.persist(ctx, state)
}

// SetVersion is pure navigation: it moves the cursor and the derived active
// content without touching the log.
func (s *sessionService) SetVersion(ctx context.Context, index int) (*entity.SessionState, error) {
	state, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(state.Versions) {
		return nil, &dto.IndexError{Index: index, Length: len(state.Versions)}
	}

	state.CurrentVersionIndex = index
	state.GeneratedContent = state.Versions[index].Content

	return s.persist(ctx, state)
}

// SeedFromExternal replaces the log with exactly one feedback-less version
// of the given content, landing on the terminal step. Wizard parameters
// carry over; title and description are overwritten only when supplied.
func (s *sessionService) SeedFromExternal(ctx context.Context, content string, title, description *string) (*entity.SessionState, error) {
	state, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	state.Versions = []entity.DocumentVersion{{
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
		Version:   1,
	}}
	state.CurrentVersionIndex = 0
	state.GeneratedContent = content
	state.CurrentStep = entity.StepGenerated
	if title != nil {
		state.Title = *title
	}
	if description != nil {
		state.Description = *description
	}

	return s.persist(ctx, state)
}

// Reset clears the log, the cursor and all wizard parameters, and removes
// the durable snapshot entirely.
func (s *sessionService) Reset(ctx context.Context) (*entity.SessionState, error) {
	if err := s.snapshots.Delete(ctx, StorageSlot); err != nil {
		return nil, err
	}

	state := entity.NewSessionState()
	s.active.Save(StorageSlot, state)
	s.logger.Info("session", "Session reset", nil)
	return state.Clone(), nil
}
