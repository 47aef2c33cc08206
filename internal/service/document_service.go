package service

import (
	"context"
	"time"

	"doc-wizard-be/internal/dto"
	"doc-wizard-be/internal/entity"
	"doc-wizard-be/internal/pkg/logger"
	"doc-wizard-be/internal/repository/contract"
	"doc-wizard-be/internal/repository/specification"

	"github.com/google/uuid"
)

// IDocumentService manages the library of saved documents: durable copies of
// the session's active content that outlive resets and can later reseed a
// fresh session.
type IDocumentService interface {
	Save(ctx context.Context) (*dto.SaveDocumentResponse, error)
	GetAll(ctx context.Context) ([]dto.SavedDocumentResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Load(ctx context.Context, id uuid.UUID) (*dto.WizardStateResponse, error)
}

type documentService struct {
	documents contract.SavedDocumentRepository
	sessions  ISessionService
	logger    logger.ILogger
}

func NewDocumentService(
	documents contract.SavedDocumentRepository,
	sessions ISessionService,
	sysLogger logger.ILogger,
) IDocumentService {
	return &documentService{
		documents: documents,
		sessions:  sessions,
		logger:    sysLogger,
	}
}

// Save copies the session's active content into the library. The saved row
// is independent of the session afterwards.
func (s *documentService) Save(ctx context.Context) (*dto.SaveDocumentResponse, error) {
	state, err := s.sessions.State(ctx)
	if err != nil {
		return nil, err
	}
	if state.GeneratedContent == "" {
		return nil, &dto.ValidationError{Message: "No generated documentation to save"}
	}

	doc := &entity.SavedDocument{
		Id:          uuid.New(),
		Title:       state.Title,
		Description: state.Description,
		Content:     state.GeneratedContent,
		Timestamp:   time.Now(),
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Info("document", "Saved document", map[string]interface{}{"id": doc.Id.String()})
	return &dto.SaveDocumentResponse{Id: doc.Id}, nil
}

func (s *documentService) GetAll(ctx context.Context) ([]dto.SavedDocumentResponse, error) {
	docs, err := s.documents.FindAll(ctx, specification.OrderBy{Field: "timestamp", Desc: true})
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SavedDocumentResponse, len(docs))
	for i, doc := range docs {
		responses[i] = dto.SavedDocumentResponse{
			Id:          doc.Id,
			Title:       doc.Title,
			Description: doc.Description,
			Content:     doc.Content,
			Timestamp:   doc.Timestamp,
		}
	}
	return responses, nil
}

func (s *documentService) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := s.documents.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if doc == nil {
		return &dto.NotFoundError{Resource: "document"}
	}
	return s.documents.Delete(ctx, id)
}

// Load reseeds the session from a saved document: a single-version log with
// the document's content, landing on the terminal step.
func (s *documentService) Load(ctx context.Context, id uuid.UUID) (*dto.WizardStateResponse, error) {
	doc, err := s.documents.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, &dto.NotFoundError{Resource: "document"}
	}

	state, err := s.sessions.SeedFromExternal(ctx, doc.Content, &doc.Title, &doc.Description)
	if err != nil {
		return nil, err
	}
	return stateToResponse(state), nil
}
