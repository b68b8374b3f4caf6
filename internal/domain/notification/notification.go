package notification

import (
	"time"

	"lavoro/internal/common"
)

type Notification struct {
	ID        common.UUID `json:"id"`
	UserID    common.UUID `json:"user_id"`
	Content   string      `json:"content"`
	Read      bool        `json:"read"`
	CreatedAt time.Time   `json:"created_at"`
}
