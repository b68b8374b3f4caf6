package interview

import (
	"context"
	"time"

	"lavoro/internal/common"
)

type Repository interface {
	// Upsert creates the interview for its application or overwrites
	// the existing row in place, keyed by the unique application_id.
	Upsert(ctx context.Context, iv Interview) (*Interview, error)
	GetByID(ctx context.Context, id common.UUID) (*Interview, error)
	GetByApplicationID(ctx context.Context, applicationID common.UUID) (*Interview, error)
	ListUpcomingByCandidate(ctx context.Context, candidateID common.UUID, after time.Time, limit int) ([]Interview, error)
	ListAll(ctx context.Context) ([]Interview, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) error
	DeleteByApplicationID(ctx context.Context, applicationID common.UUID) error
}
