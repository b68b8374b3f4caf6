package interview

import (
	"time"

	"lavoro/internal/common"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Interview is owned 1:1 by its application. Rescheduling overwrites
// the existing row instead of appending a new one.
type Interview struct {
	ID            common.UUID `json:"id"`
	ApplicationID common.UUID `json:"application_id"`
	Date          time.Time   `json:"date"`
	MeetingLink   string      `json:"meeting_link"`
	Status        Status      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func ParseStatus(value string) (Status, bool) {
	switch Status(value) {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return Status(value), true
	default:
		return "", false
	}
}
