package contract

import (
	"context"

	"doc-wizard-be/internal/entity"
)

// SessionSnapshotRepository persists the full observable session state to the
// local store so a restart reconstructs identical state. Writes are
// whole-value overwrites; there is only ever one writer.
type SessionSnapshotRepository interface {
	Save(ctx context.Context, slot string, state *entity.SessionState) error
	Load(ctx context.Context, slot string) (*entity.SessionState, error)
	Delete(ctx context.Context, slot string) error
}
