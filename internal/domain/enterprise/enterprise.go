package enterprise

import (
	"time"

	"lavoro/internal/common"
)

type Profile struct {
	ID          common.UUID `json:"id"`
	UserID      common.UUID `json:"user_id"`
	CompanyName string      `json:"company_name"`
	Description string      `json:"description,omitempty"`
	Website     string      `json:"website,omitempty"`
	LogoURL     string      `json:"logo_url,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
