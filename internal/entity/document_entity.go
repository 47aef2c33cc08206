package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavedDocument is a finished document persisted independently of the active
// session. Records are never mutated in place; editing one re-seeds the
// active session instead.
type SavedDocument struct {
	Id          uuid.UUID
	Title       string
	Description string
	Content     string
	Timestamp   time.Time
}
