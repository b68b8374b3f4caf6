package user

import (
	"context"

	"lavoro/internal/common"
)

type Repository interface {
	Create(ctx context.Context, u User) (*User, error)
	GetByID(ctx context.Context, id common.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) error
	Delete(ctx context.Context, id common.UUID) error
	Count(ctx context.Context) (int64, error)
}
