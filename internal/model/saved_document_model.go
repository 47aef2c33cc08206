package model

import (
	"time"

	"github.com/google/uuid"
)

type SavedDocument struct {
	Id          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Title       string    `gorm:"size:512;not null"`
	Description string    `gorm:"type:text"`
	Content     string    `gorm:"type:text;not null"`
	Timestamp   time.Time `gorm:"index"`
}
