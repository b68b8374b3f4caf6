package candidate

import (
	"context"

	"lavoro/internal/common"
)

type Repository interface {
	Create(ctx context.Context, profile Profile) (*Profile, error)
	Update(ctx context.Context, profile Profile) (*Profile, error)
	GetByID(ctx context.Context, id common.UUID) (*Profile, error)
	GetByUserID(ctx context.Context, userID common.UUID) (*Profile, error)
	Count(ctx context.Context) (int64, error)
}
