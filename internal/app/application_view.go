package app

import (
	"context"
	"time"

	"lavoro/internal/common"
	"lavoro/internal/domain/application"
	"lavoro/internal/domain/interview"
)

const anonymousEmail = "anonymous@candidate.hidden"

// ApplicationView is the presentation of an application to an API
// consumer. When the application is anonymous and the viewer is the
// enterprise side, every candidate field except the opaque id is
// replaced by the placeholder identity.
type ApplicationView struct {
	ID            common.UUID        `json:"id"`
	Status        application.Status `json:"status"`
	MatchingScore int                `json:"matching_score"`
	Anonymous     bool               `json:"is_anonymous"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	CandidateID        common.UUID `json:"candidate_id"`
	CandidateEmail     string      `json:"candidate_email,omitempty"`
	CandidateFirstName string      `json:"candidate_first_name,omitempty"`
	CandidateLastName  string      `json:"candidate_last_name,omitempty"`
	CandidateBio       string      `json:"candidate_bio,omitempty"`
	CandidatePhone     string      `json:"candidate_phone,omitempty"`
	CandidateCVURL     string      `json:"candidate_cv_url,omitempty"`
	CandidateSkills    []string    `json:"candidate_skills,omitempty"`
	CandidatePhotoURL  string      `json:"candidate_photo_url,omitempty"`

	JobID       common.UUID `json:"job_id"`
	JobTitle    string      `json:"job_title,omitempty"`
	JobLocation string      `json:"job_location,omitempty"`
	CompanyName string      `json:"company_name,omitempty"`

	Interview *interview.Interview `json:"interview,omitempty"`
}

func (s *ApplicationService) buildViews(ctx context.Context, items []application.Application, hideCandidate bool) []ApplicationView {
	views := make([]ApplicationView, 0, len(items))
	for _, item := range items {
		views = append(views, s.buildView(ctx, item, hideCandidate))
	}
	return views
}

func (s *ApplicationService) buildView(ctx context.Context, app application.Application, hideCandidate bool) ApplicationView {
	view := ApplicationView{
		ID:            app.ID,
		Status:        app.Status,
		MatchingScore: app.MatchingScore,
		Anonymous:     app.Anonymous,
		CreatedAt:     app.CreatedAt,
		UpdatedAt:     app.UpdatedAt,
		CandidateID:   app.CandidateID,
		JobID:         app.JobOfferID,
	}

	if hideCandidate && app.Anonymous {
		view.CandidateEmail = anonymousEmail
	} else if profile, err := s.candidates.GetByID(ctx, app.CandidateID); err == nil {
		view.CandidateFirstName = profile.FirstName
		view.CandidateLastName = profile.LastName
		view.CandidateBio = profile.Bio
		view.CandidatePhone = profile.Phone
		view.CandidateCVURL = profile.CVURL
		view.CandidateSkills = profile.Skills
		if owner, err := s.users.GetByID(ctx, profile.UserID); err == nil {
			view.CandidateEmail = owner.Email
			view.CandidatePhotoURL = owner.PhotoURL
		}
	}

	if offer, err := s.jobs.GetByID(ctx, app.JobOfferID); err == nil {
		view.JobTitle = offer.Title
		view.JobLocation = offer.Location
		if company, err := s.enterprises.GetByID(ctx, offer.EnterpriseID); err == nil {
			view.CompanyName = company.CompanyName
		}
	}

	if iv, err := s.interviews.GetByApplicationID(ctx, app.ID); err == nil {
		view.Interview = iv
	}

	return view
}
