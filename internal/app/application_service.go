package app

import (
	"context"
	"fmt"

	"lavoro/internal/common"
	"lavoro/internal/domain/application"
	"lavoro/internal/domain/candidate"
	"lavoro/internal/domain/enterprise"
	"lavoro/internal/domain/interview"
	"lavoro/internal/domain/job"
	"lavoro/internal/domain/user"
	"lavoro/internal/matching"
	"lavoro/internal/observability"
)

type ApplicationService struct {
	repo        application.Repository
	candidates  candidate.Repository
	enterprises enterprise.Repository
	jobs        job.Repository
	users       user.Repository
	interviews  interview.Repository
	notifier    Notifier
	logger      observability.Logger
}

func NewApplicationService(repo application.Repository, candidates candidate.Repository, enterprises enterprise.Repository, jobs job.Repository, users user.Repository, interviews interview.Repository, notifier Notifier, logger observability.Logger) *ApplicationService {
	return &ApplicationService{
		repo:        repo,
		candidates:  candidates,
		enterprises: enterprises,
		jobs:        jobs,
		users:       users,
		interviews:  interviews,
		notifier:    notifier,
		logger:      logger,
	}
}

// Apply creates the one application a candidate may hold for a job
// offer. The matching score is computed here and nowhere else; it is
// a point-in-time stamp that later skill edits do not touch.
func (s *ApplicationService) Apply(ctx context.Context, userID, jobOfferID common.UUID) (*application.Application, error) {
	profile, err := s.candidates.GetByUserID(ctx, userID)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeNotFound, "candidate profile not found", err)
		}
		return nil, err
	}

	offer, err := s.jobs.GetByID(ctx, jobOfferID)
	if err != nil {
		return nil, err
	}
	if offer.Status != job.StatusActive {
		return nil, common.NewError(common.CodeNotFound, "job offer not found", nil)
	}

	if _, err := s.repo.FindByCandidateAndJob(ctx, profile.ID, offer.ID); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied to this job offer", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}

	score := matching.Score(profile.Skills, offer.Requirements)

	created, err := s.repo.Create(ctx, application.Application{
		CandidateID:   profile.ID,
		JobOfferID:    offer.ID,
		Status:        application.StatusPending,
		MatchingScore: score,
	})
	if err != nil {
		return nil, err
	}

	if owner, err := s.enterprises.GetByID(ctx, offer.EnterpriseID); err == nil {
		s.emit(ctx, owner.UserID, fmt.Sprintf("New application received for %q with %d%% match!", offer.Title, score))
	} else {
		s.logError("application notify: " + err.Error())
	}

	return created, nil
}

// SetStatus records an accept/reject decision. A terminal status may
// overwrite the other terminal status (last write wins); regression to
// pending is impossible because only terminal statuses are admitted.
func (s *ApplicationService) SetStatus(ctx context.Context, applicationID common.UUID, status application.Status) (*application.Application, error) {
	if !status.Terminal() {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be accepted or rejected"})
	}

	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, app.ID, status)
	if err != nil {
		return nil, err
	}

	statusText := "accepted"
	if status == application.StatusRejected {
		statusText = "rejected"
	}
	title := s.jobTitle(ctx, app.JobOfferID)
	if candidateUser, ok := s.candidateUserID(ctx, app.CandidateID); ok {
		s.emit(ctx, candidateUser, fmt.Sprintf("Your application for %q has been %s.", title, statusText))
	}

	return updated, nil
}

func (s *ApplicationService) SetAnonymity(ctx context.Context, applicationID common.UUID, anonymous bool) error {
	if _, err := s.repo.GetByID(ctx, applicationID); err != nil {
		return err
	}
	return s.repo.UpdateAnonymity(ctx, applicationID, anonymous)
}

// Delete removes the application and the interview it owns.
func (s *ApplicationService) Delete(ctx context.Context, applicationID common.UUID) error {
	if _, err := s.repo.GetByID(ctx, applicationID); err != nil {
		return err
	}
	if err := s.interviews.DeleteByApplicationID(ctx, applicationID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, applicationID)
}

func (s *ApplicationService) Get(ctx context.Context, id common.UUID) (*application.Application, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ApplicationService) ListForCandidate(ctx context.Context, userID common.UUID) ([]ApplicationView, error) {
	profile, err := s.candidates.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListByCandidate(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	return s.buildViews(ctx, items, false), nil
}

// ListForEnterprise returns the applications to the enterprise's
// offers, with anonymous candidates masked.
func (s *ApplicationService) ListForEnterprise(ctx context.Context, userID common.UUID) ([]ApplicationView, error) {
	profile, err := s.enterprises.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListByEnterprise(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	return s.buildViews(ctx, items, true), nil
}

func (s *ApplicationService) ListForJob(ctx context.Context, jobOfferID common.UUID) ([]ApplicationView, error) {
	if _, err := s.jobs.GetByID(ctx, jobOfferID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListByJob(ctx, jobOfferID)
	if err != nil {
		return nil, err
	}
	return s.buildViews(ctx, items, true), nil
}

func (s *ApplicationService) ListAll(ctx context.Context) ([]ApplicationView, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildViews(ctx, items, false), nil
}

func (s *ApplicationService) emit(ctx context.Context, userID common.UUID, content string) {
	// Notifications are best-effort: a failed insert never rolls back
	// the transition that triggered it.
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, userID, content); err != nil {
		s.logError("notify user " + userID.String() + ": " + err.Error())
	}
}

func (s *ApplicationService) candidateUserID(ctx context.Context, candidateID common.UUID) (common.UUID, bool) {
	profile, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		s.logError("load candidate " + candidateID.String() + ": " + err.Error())
		return "", false
	}
	return profile.UserID, true
}

func (s *ApplicationService) jobTitle(ctx context.Context, jobOfferID common.UUID) string {
	offer, err := s.jobs.GetByID(ctx, jobOfferID)
	if err != nil {
		return ""
	}
	return offer.Title
}

func (s *ApplicationService) logError(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Error(msg)
}
