package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of the query views.

type VillaSnapshot struct {
	ID            uuid.UUID
	Name          string
	Location      string
	PricePerNight int64
	PriceHourly   *int64
	IsActive      bool
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	DisplayName  string
	Role         string
	IsActive     bool
	PasswordHash string
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int32
}
