package domain

import (
	"errors"
	"time"
)

// Type classifies a notification for display.
type Type string

const (
	TypeAlert   Type = "alert"
	TypeWarning Type = "warning"
	TypeInfo    Type = "info"
)

// Valid reports whether t is one of the known notification types.
func (t Type) Valid() bool {
	switch t {
	case TypeAlert, TypeWarning, TypeInfo:
		return true
	}
	return false
}

// Notification is one observed sensor event. Everything except IsRead is
// immutable after creation; the record is a fact of what was observed.
type Notification struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Message     string    `json:"message" gorm:"not null"`
	Type        Type      `json:"type" gorm:"default:alert"`
	Snapshot    string    `json:"snapshot,omitempty"`
	PeopleCount int       `json:"peopleCount" gorm:"default:0"`
	FanStatus   bool      `json:"fanStatus" gorm:"default:false"`
	IsRead      bool      `json:"isRead" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"createdAt"`
}

var ErrNotFound = errors.New("notification not found")
