package notification

import (
	"context"

	"lavoro/internal/common"
)

type Repository interface {
	Create(ctx context.Context, n Notification) (*Notification, error)
	ListByUser(ctx context.Context, userID common.UUID, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, userID common.UUID) (int64, error)
	MarkRead(ctx context.Context, id common.UUID) error
	MarkAllRead(ctx context.Context, userID common.UUID) error
}
