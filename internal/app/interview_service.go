package app

import (
	"context"
	"fmt"
	"time"

	"lavoro/internal/common"
	"lavoro/internal/domain/application"
	"lavoro/internal/domain/candidate"
	"lavoro/internal/domain/interview"
	"lavoro/internal/domain/job"
	"lavoro/internal/observability"
)

type InterviewService struct {
	repo         interview.Repository
	applications application.Repository
	candidates   candidate.Repository
	jobs         job.Repository
	notifier     Notifier
	logger       observability.Logger
}

func NewInterviewService(repo interview.Repository, applications application.Repository, candidates candidate.Repository, jobs job.Repository, notifier Notifier, logger observability.Logger) *InterviewService {
	return &InterviewService{
		repo:         repo,
		applications: applications,
		candidates:   candidates,
		jobs:         jobs,
		notifier:     notifier,
		logger:       logger,
	}
}

// Schedule creates the application's interview or overwrites the
// existing one in place (date, link, status back to scheduled). The
// application is advanced to interview_scheduled unconditionally,
// even when it had already moved past pending.
func (s *InterviewService) Schedule(ctx context.Context, applicationID common.UUID, date time.Time, meetingLink string) (*interview.Interview, error) {
	app, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.Upsert(ctx, interview.Interview{
		ApplicationID: app.ID,
		Date:          date,
		MeetingLink:   meetingLink,
		Status:        interview.StatusScheduled,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.applications.UpdateStatus(ctx, app.ID, application.StatusInterviewScheduled); err != nil {
		return nil, err
	}

	title := ""
	if offer, err := s.jobs.GetByID(ctx, app.JobOfferID); err == nil {
		title = offer.Title
	}
	if profile, err := s.candidates.GetByID(ctx, app.CandidateID); err == nil {
		s.emit(ctx, profile.UserID, fmt.Sprintf("Interview scheduled for %q! Check your applications for the meeting link.", title))
	}

	return saved, nil
}

func (s *InterviewService) SetStatus(ctx context.Context, interviewID common.UUID, status interview.Status) error {
	if _, err := s.repo.GetByID(ctx, interviewID); err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, interviewID, status)
}

func (s *InterviewService) UpcomingForCandidate(ctx context.Context, userID common.UUID, limit int) ([]interview.Interview, error) {
	profile, err := s.candidates.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.repo.ListUpcomingByCandidate(ctx, profile.ID, time.Now().UTC(), limit)
}

func (s *InterviewService) ListAll(ctx context.Context) ([]interview.Interview, error) {
	return s.repo.ListAll(ctx)
}

func (s *InterviewService) emit(ctx context.Context, userID common.UUID, content string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, userID, content); err != nil && s.logger != nil {
		s.logger.Error("notify user " + userID.String() + ": " + err.Error())
	}
}
