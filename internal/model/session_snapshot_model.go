package model

import (
	"time"

	"gorm.io/datatypes"
)

// SessionSnapshot holds one serialized session state per named slot. The
// active wizard session writes the "document-storage" slot on every mutation.
type SessionSnapshot struct {
	Slot      string         `gorm:"primaryKey;size:64"`
	Data      datatypes.JSON `gorm:"type:json"`
	UpdatedAt time.Time
}
