package application

import (
	"context"

	"lavoro/internal/common"
)

type Repository interface {
	// Create relies on the storage-level unique constraint on
	// (candidate_id, job_offer_id) and reports a conflict error when
	// the pair already exists.
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	FindByCandidateAndJob(ctx context.Context, candidateID, jobOfferID common.UUID) (*Application, error)
	ListByCandidate(ctx context.Context, candidateID common.UUID) ([]Application, error)
	ListByEnterprise(ctx context.Context, enterpriseID common.UUID) ([]Application, error)
	ListByJob(ctx context.Context, jobOfferID common.UUID) ([]Application, error)
	ListAll(ctx context.Context) ([]Application, error)
	ListAppliedJobIDs(ctx context.Context, candidateID common.UUID) ([]common.UUID, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Application, error)
	UpdateAnonymity(ctx context.Context, id common.UUID, anonymous bool) error
	Delete(ctx context.Context, id common.UUID) error
	Count(ctx context.Context) (int64, error)
}
