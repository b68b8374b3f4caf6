package user

import (
	"time"

	"lavoro/internal/common"
)

type Role string

const (
	RoleCandidate  Role = "candidate"
	RoleEnterprise Role = "enterprise"
	RoleAdmin      Role = "admin"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

type User struct {
	ID           common.UUID `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	Status       Status      `json:"status"`
	PhotoURL     string      `json:"photo_url,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}
