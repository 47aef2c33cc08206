package mapper

import (
	"encoding/json"
	"time"

	"doc-wizard-be/internal/entity"
	"doc-wizard-be/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) StateToSnapshot(slot string, state *entity.SessionState) (*model.SessionSnapshot, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	return &model.SessionSnapshot{
		Slot:      slot,
		Data:      data,
		UpdatedAt: time.Now(),
	}, nil
}

func (m *SessionMapper) SnapshotToState(snapshot *model.SessionSnapshot) (*entity.SessionState, error) {
	state := entity.NewSessionState()
	if err := json.Unmarshal(snapshot.Data, state); err != nil {
		return nil, err
	}
	if state.Versions == nil {
		state.Versions = []entity.DocumentVersion{}
	}
	return state, nil
}
