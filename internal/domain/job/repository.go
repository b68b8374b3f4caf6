package job

import (
	"context"

	"lavoro/internal/common"
)

// ActiveFilter narrows the public listing; empty fields are ignored.
type ActiveFilter struct {
	Type     Type
	Location string
	Search   string
}

type Repository interface {
	Create(ctx context.Context, offer Offer) (*Offer, error)
	Update(ctx context.Context, offer Offer) (*Offer, error)
	GetByID(ctx context.Context, id common.UUID) (*Offer, error)
	ListActive(ctx context.Context, filter ActiveFilter) ([]Offer, error)
	ListByEnterprise(ctx context.Context, enterpriseID common.UUID) ([]Offer, error)
	ListAll(ctx context.Context) ([]Offer, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) error
	Delete(ctx context.Context, id common.UUID) error
	Count(ctx context.Context) (int64, error)
}
