package app

import (
	"context"

	"lavoro/internal/common"
	"lavoro/internal/domain/notification"
	"lavoro/internal/domain/user"
)

// Notifier is the side-channel lifecycle operations emit through.
// Delivery is a plain insert: no batching, no dedup, no retry.
type Notifier interface {
	Notify(ctx context.Context, userID common.UUID, content string) error
}

type NotificationService struct {
	repo  notification.Repository
	users user.Repository
}

func NewNotificationService(repo notification.Repository, users user.Repository) *NotificationService {
	return &NotificationService{repo: repo, users: users}
}

func (s *NotificationService) Notify(ctx context.Context, userID common.UUID, content string) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	_, err := s.repo.Create(ctx, notification.Notification{
		UserID:  userID,
		Content: content,
	})
	return err
}

func (s *NotificationService) ListForUser(ctx context.Context, userID common.UUID, limit int) ([]notification.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID common.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id common.UUID) error {
	return s.repo.MarkRead(ctx, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID common.UUID) error {
	return s.repo.MarkAllRead(ctx, userID)
}
