package implementation

import (
	"context"
	"errors"

	"doc-wizard-be/internal/entity"
	"doc-wizard-be/internal/mapper"
	"doc-wizard-be/internal/model"
	"doc-wizard-be/internal/repository/contract"
	"doc-wizard-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionSnapshotRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewSessionSnapshotRepository(db *gorm.DB) contract.SessionSnapshotRepository {
	return &SessionSnapshotRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *SessionSnapshotRepositoryImpl) Save(ctx context.Context, slot string, state *entity.SessionState) error {
	m, err := r.mapper.StateToSnapshot(slot, state)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		UpdateAll: true,
	}).Create(m).Error
}

func (r *SessionSnapshotRepositoryImpl) Load(ctx context.Context, slot string) (*entity.SessionState, error) {
	var m model.SessionSnapshot
	query := specification.BySlot{Slot: slot}.Apply(r.db.WithContext(ctx))
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SnapshotToState(&m)
}

func (r *SessionSnapshotRepositoryImpl) Delete(ctx context.Context, slot string) error {
	query := specification.BySlot{Slot: slot}.Apply(r.db.WithContext(ctx))
	return query.Delete(&model.SessionSnapshot{}).Error
}
