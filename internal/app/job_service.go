package app

import (
	"context"

	"lavoro/internal/common"
	"lavoro/internal/domain/application"
	"lavoro/internal/domain/candidate"
	"lavoro/internal/domain/enterprise"
	"lavoro/internal/domain/job"
)

type JobService struct {
	repo         job.Repository
	enterprises  enterprise.Repository
	candidates   candidate.Repository
	applications application.Repository
}

func NewJobService(repo job.Repository, enterprises enterprise.Repository, candidates candidate.Repository, applications application.Repository) *JobService {
	return &JobService{repo: repo, enterprises: enterprises, candidates: candidates, applications: applications}
}

// JobView wraps an offer with the viewer-dependent applied mark.
type JobView struct {
	job.Offer
	HasApplied bool `json:"has_applied"`
}

func (s *JobService) Create(ctx context.Context, userID common.UUID, offer job.Offer) (*job.Offer, error) {
	profile, err := s.enterprises.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := validateOffer(offer); err != nil {
		return nil, err
	}
	offer.EnterpriseID = profile.ID
	if offer.Status == "" {
		offer.Status = job.StatusActive
	}
	return s.repo.Create(ctx, offer)
}

func (s *JobService) Update(ctx context.Context, userID common.UUID, offer job.Offer) (*job.Offer, error) {
	profile, err := s.enterprises.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	current, err := s.repo.GetByID(ctx, offer.ID)
	if err != nil {
		return nil, err
	}
	if current.EnterpriseID != profile.ID {
		return nil, common.NewError(common.CodeForbidden, "job offer belongs to another enterprise", nil)
	}
	if err := validateOffer(offer); err != nil {
		return nil, err
	}
	offer.EnterpriseID = current.EnterpriseID
	if offer.Status == "" {
		offer.Status = current.Status
	}
	return s.repo.Update(ctx, offer)
}

func (s *JobService) SetStatus(ctx context.Context, userID, jobID common.UUID, status job.Status) error {
	profile, err := s.enterprises.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	current, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if current.EnterpriseID != profile.ID {
		return common.NewError(common.CodeForbidden, "job offer belongs to another enterprise", nil)
	}
	if status != job.StatusActive && status != job.StatusClosed {
		return common.NewValidationError("invalid status", map[string]string{"status": "status must be active or closed"})
	}
	return s.repo.UpdateStatus(ctx, jobID, status)
}

func (s *JobService) Delete(ctx context.Context, userID, jobID common.UUID) error {
	profile, err := s.enterprises.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	current, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}
	if current.EnterpriseID != profile.ID {
		return common.NewError(common.CodeForbidden, "job offer belongs to another enterprise", nil)
	}
	return s.repo.Delete(ctx, jobID)
}

// DeleteAny skips ownership, for the admin surface.
func (s *JobService) DeleteAny(ctx context.Context, jobID common.UUID) error {
	if _, err := s.repo.GetByID(ctx, jobID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, jobID)
}

// ListActive is the public listing. When userID belongs to a candidate
// with a profile, offers they already applied to carry the mark.
func (s *JobService) ListActive(ctx context.Context, filter job.ActiveFilter, userID common.UUID) ([]JobView, error) {
	offers, err := s.repo.ListActive(ctx, filter)
	if err != nil {
		return nil, err
	}

	applied := map[common.UUID]bool{}
	if userID != "" {
		if profile, err := s.candidates.GetByUserID(ctx, userID); err == nil {
			ids, err := s.applications.ListAppliedJobIDs(ctx, profile.ID)
			if err != nil {
				return nil, err
			}
			for _, id := range ids {
				applied[id] = true
			}
		}
	}

	views := make([]JobView, 0, len(offers))
	for _, offer := range offers {
		views = append(views, JobView{Offer: offer, HasApplied: applied[offer.ID]})
	}
	return views, nil
}

// GetActive looks up a single offer for the public surface; closed
// offers are not found there.
func (s *JobService) GetActive(ctx context.Context, jobID common.UUID) (*job.Offer, error) {
	offer, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if offer.Status != job.StatusActive {
		return nil, common.NewError(common.CodeNotFound, "job offer not found", nil)
	}
	return offer, nil
}

func (s *JobService) ListByEnterprise(ctx context.Context, userID common.UUID) ([]job.Offer, error) {
	profile, err := s.enterprises.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByEnterprise(ctx, profile.ID)
}

func (s *JobService) ListAll(ctx context.Context) ([]job.Offer, error) {
	return s.repo.ListAll(ctx)
}

func validateOffer(offer job.Offer) error {
	fields := map[string]string{}
	if offer.Title == "" {
		fields["title"] = "title is required"
	}
	if offer.Description == "" {
		fields["description"] = "description is required"
	}
	if offer.Location == "" {
		fields["location"] = "location is required"
	}
	switch offer.Type {
	case job.TypePermanent, job.TypeFixedTerm, job.TypeFreelance:
	default:
		fields["type"] = "type must be cdi, cdd, or freelance"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid job offer", fields)
	}
	return nil
}
