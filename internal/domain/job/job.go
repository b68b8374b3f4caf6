package job

import (
	"time"

	"lavoro/internal/common"
)

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

type Type string

const (
	TypePermanent Type = "cdi"
	TypeFixedTerm Type = "cdd"
	TypeFreelance Type = "freelance"
)

type Offer struct {
	ID           common.UUID `json:"id"`
	EnterpriseID common.UUID `json:"enterprise_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Type         Type        `json:"type"`
	Salary       string      `json:"salary,omitempty"`
	Location     string      `json:"location"`
	Requirements []string    `json:"requirements"`
	Benefits     []string    `json:"benefits,omitempty"`
	Status       Status      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
