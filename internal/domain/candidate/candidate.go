package candidate

import (
	"time"

	"lavoro/internal/common"
)

// Profile carries everything an enterprise sees about an applicant,
// which is why anonymized rendering blanks all of it except the id.
type Profile struct {
	ID        common.UUID `json:"id"`
	UserID    common.UUID `json:"user_id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Bio       string      `json:"bio,omitempty"`
	Phone     string      `json:"phone,omitempty"`
	CVURL     string      `json:"cv_url,omitempty"`
	Skills    []string    `json:"skills"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
