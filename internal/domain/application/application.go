package application

import (
	"time"

	"lavoro/internal/common"
)

type Status string

const (
	StatusPending            Status = "pending"
	StatusInterviewScheduled Status = "interview_scheduled"
	StatusAccepted           Status = "accepted"
	StatusRejected           Status = "rejected"
)

// Application links one candidate to one job offer. The pair is unique
// for the lifetime of the platform; the matching score is stamped at
// creation and never recomputed.
type Application struct {
	ID            common.UUID `json:"id"`
	CandidateID   common.UUID `json:"candidate_id"`
	JobOfferID    common.UUID `json:"job_offer_id"`
	Status        Status      `json:"status"`
	MatchingScore int         `json:"matching_score"`
	Anonymous     bool        `json:"is_anonymous"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Terminal reports whether the status ends the lifecycle. Terminal
// statuses may still be overwritten by each other (last write wins),
// but never regress to pending.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

func ParseStatus(value string) (Status, bool) {
	switch Status(value) {
	case StatusPending, StatusInterviewScheduled, StatusAccepted, StatusRejected:
		return Status(value), true
	default:
		return "", false
	}
}
