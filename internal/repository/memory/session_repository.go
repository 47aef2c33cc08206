package memory

import (
	"doc-wizard-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps the active session state in memory. The durable
// snapshot in sqlite remains the source of truth across restarts; this cache
// only spares a read per request while the process is up.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// The active session never expires on its own; it is replaced or cleared
	// by explicit store operations.
	c := cache.New(cache.NoExpiration, 0)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(slot string, state *entity.SessionState) {
	r.cache.Set(slot, state, cache.NoExpiration)
}

func (r *SessionRepository) Get(slot string) (*entity.SessionState, bool) {
	if x, found := r.cache.Get(slot); found {
		return x.(*entity.SessionState), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(slot string) {
	r.cache.Delete(slot)
}
