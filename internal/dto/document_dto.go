package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveDocumentResponse struct {
	Id uuid.UUID `json:"id"`
}

type SavedDocumentResponse struct {
	Id          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
}

// NotFoundError marks a lookup for a resource that does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}
