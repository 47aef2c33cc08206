package contract

import (
	"context"

	"doc-wizard-be/internal/entity"
	"doc-wizard-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SavedDocumentRepository interface {
	Create(ctx context.Context, doc *entity.SavedDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedDocument, error)
}
