package app

import (
	"context"
	"strings"
	"testing"

	"lavoro/internal/common"
	"lavoro/internal/domain/application"
	"lavoro/internal/domain/candidate"
	"lavoro/internal/domain/enterprise"
	"lavoro/internal/domain/job"
	"lavoro/internal/domain/user"
)

type lifecycleFixture struct {
	users         *fakeUserRepo
	candidates    *fakeCandidateRepo
	enterprises   *fakeEnterpriseRepo
	jobs          *fakeJobRepo
	applications  *fakeApplicationRepo
	interviews    *fakeInterviewRepo
	notifications *fakeNotificationRepo

	service       *ApplicationService
	interviewsSvc *InterviewService

	candidateUser  *user.User
	candidateID    common.UUID
	enterpriseUser *user.User
	enterpriseID   common.UUID
	offer          *job.Offer
}

func newLifecycleFixture(t *testing.T, skills, requirements []string) *lifecycleFixture {
	t.Helper()
	ctx := context.Background()

	f := &lifecycleFixture{
		users:         newFakeUserRepo(),
		candidates:    newFakeCandidateRepo(),
		enterprises:   newFakeEnterpriseRepo(),
		jobs:          newFakeJobRepo(),
		applications:  newFakeApplicationRepo(),
		interviews:    newFakeInterviewRepo(),
		notifications: newFakeNotificationRepo(),
	}

	candidateUser, err := f.users.Create(ctx, user.User{Email: "jane@example.com", Role: user.RoleCandidate, Status: user.StatusActive})
	if err != nil {
		t.Fatalf("create candidate user: %v", err)
	}
	f.candidateUser = candidateUser
	profile, err := f.candidates.Create(ctx, candidate.Profile{UserID: candidateUser.ID, FirstName: "Jane", LastName: "Doe", Skills: skills})
	if err != nil {
		t.Fatalf("create candidate profile: %v", err)
	}
	f.candidateID = profile.ID

	enterpriseUser, err := f.users.Create(ctx, user.User{Email: "hr@acme.example", Role: user.RoleEnterprise, Status: user.StatusActive})
	if err != nil {
		t.Fatalf("create enterprise user: %v", err)
	}
	f.enterpriseUser = enterpriseUser
	company, err := f.enterprises.Create(ctx, enterprise.Profile{UserID: enterpriseUser.ID, CompanyName: "ACME"})
	if err != nil {
		t.Fatalf("create enterprise profile: %v", err)
	}
	f.enterpriseID = company.ID

	offer, err := f.jobs.Create(ctx, job.Offer{
		EnterpriseID: company.ID,
		Title:        "Backend Engineer",
		Description:  "Build services",
		Type:         job.TypePermanent,
		Location:     "Remote",
		Requirements: requirements,
		Status:       job.StatusActive,
	})
	if err != nil {
		t.Fatalf("create job offer: %v", err)
	}
	f.offer = offer

	notifier := NewNotificationService(f.notifications, f.users)
	f.service = NewApplicationService(f.applications, f.candidates, f.enterprises, f.jobs, f.users, f.interviews, notifier, nil)
	f.interviewsSvc = NewInterviewService(f.interviews, f.applications, f.candidates, f.jobs, notifier, nil)
	return f
}

func TestApplyStampsScoreAndNotifiesEnterprise(t *testing.T) {
	f := newLifecycleFixture(t, []string{"Go", "SQL", "Docker"}, []string{"go", "sql"})
	ctx := context.Background()

	created, err := f.service.Apply(ctx, f.candidateUser.ID, f.offer.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if created.Status != application.StatusPending {
		t.Fatalf("expected pending, got %s", created.Status)
	}
	if created.MatchingScore != 100 {
		t.Fatalf("expected score 100, got %d", created.MatchingScore)
	}

	notes := f.notifications.forUser(f.enterpriseUser.ID)
	if len(notes) != 1 {
		t.Fatalf("expected 1 enterprise notification, got %d", len(notes))
	}
	if !strings.Contains(notes[0].Content, "Backend Engineer") || !strings.Contains(notes[0].Content, "100%") {
		t.Fatalf("unexpected notification content: %q", notes[0].Content)
	}
	if notes[0].Read {
		t.Fatal("notification should start unread")
	}
}

func TestApplyTwiceIsConflict(t *testing.T) {
	f := newLifecycleFixture(t, []string{"Go"}, []string{"go"})
	ctx := context.Background()

	first, err := f.service.Apply(ctx, f.candidateUser.ID, f.offer.ID)
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if _, err := f.service.Apply(ctx, f.candidateUser.ID, f.offer.ID); !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	// The first application is untouched.
	loaded, err := f.service.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Status != application.StatusPending || loaded.MatchingScore != first.MatchingScore {
		t.Fatalf("first application changed: %+v", loaded)
	}
}

func TestApplyClosedJobIsNotFound(t *testing.T) {
	f := newLifecycleFixture(t, []string{"Go"}, []string{"go"})
	ctx := context.Background()

	if err := f.jobs.UpdateStatus(ctx, f.offer.ID, job.StatusClosed); err != nil {
		t.Fatalf("close job: %v", err)
	}
	if _, err := f.service.Apply(ctx, f.candidateUser.ID, f.offer.ID); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found for closed job, got %v", err)
	}
}

func TestApplyWithoutProfileIsNotFound(t *testing.T) {
	f := newLifecycleFixture(t, nil, []string{"go"})
	ctx := context.Background()

	stranger, err := f.users.Create(ctx, user.User{Email: "noprofile@example.com", Role: user.RoleCandidate, Status: user.StatusActive})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if _, err := f.service.Apply(ctx, stranger.ID, f.offer.ID); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestScoreIsImmutableAfterSkillEdit(t *testing.T) {
	f := newLifecycleFixture(t, []string{"Go"}, []string{"go", "kafka"})
	ctx := context.Background()

	created, err := f.service.Apply(ctx, f.candidateUser.ID, f.offer.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if created.MatchingScore != 50 {
		t.Fatalf("expected score 50, got %d", created.MatchingScore)
	}

	profile, err := f.candidates.GetByID(ctx, f.candidateID)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	profile.Skills = []string{"Go", "Kafka"}
	if _, err := f.candidates.Update(ctx, *profile); err != nil {
		t.Fatalf("update skills: %v", err)
	}

	loaded, err := f.service.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.MatchingScore != 50 {
		t.Fatalf("score changed after skill edit: %d", loaded.MatchingScore)
	}
}

func TestSetStatusNotifiesCandidate(t *testing.T) {
	f := newLifecycleFixture(t, []string{"Go"}, []string{"go"})
	ctx := context.Background()

	created, err := f.service.Apply(ctx, f.candidateUser.ID, f.offer.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	updated, err := f.service.SetStatus(ctx, created.ID, application.StatusAccepted)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if updated.Status != application.StatusAccepted {
		t.Fatalf("expected accepted, got %s", updated.Status)
	}

	notes := f.notifications.forUser(f.candidateUser.ID)
	if len(notes) != 1 {
		t.Fatalf("expected 1 candidate notification, got %d", len(notes))
	}
	if !strings.Contains(notes[0].Content, "accepted") || !strings.Contains(notes[0].Content, "Backend Engineer") {
		t.Fatalf("unexpected content: %q", notes[0].Content)
	}
}

func TestSetStatusLastWriteWinsBetweenTerminals(t *testing.T) {
	f := newLifecycleFixture(t, []string{"Go"}, []string{"go"})
	ctx := context.Background()

	created, err := f.service.Apply(ctx, f.candidateUser.ID, f.offer.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := f.service.SetStatus(ctx, created.ID, application.StatusAccepted); err != nil {
		t.Fatalf("accept: %v", err)
	}
	updated, err := f.service.SetStatus(ctx, created.ID, application.StatusRejected)
	if err != nil {
		t.Fatalf("reject after accept: %v", err)
	}
	if updated.Status != application.StatusRejected {
		t.Fatalf("expected rejected, got %s", updated.Status)
	}
}

func TestSetStatusRejectsNonTerminal(t *testing.T) {
	f := newLifecycleFixture(t, []string{"Go"}, []string{"go"})
	ctx := context.Background()

	created, err := f.service.Apply(ctx, f.candidateUser.ID, f.offer.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := f.service.SetStatus(ctx, created.ID, application.StatusPending); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := f.service.SetStatus(ctx, created.ID, application.StatusInterviewScheduled); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSetStatusUnknownApplication(t *testing.T) {
	f := newLifecycleFixture(t, []string{"Go"}, []string{"go"})
	if _, err := f.service.SetStatus(context.Background(), common.NewUUID(), application.StatusAccepted); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSetAnonymityHidesCandidateFromEnterprise(t *testing.T) {
	f := newLifecycleFixture(t, []string{"Go"}, []string{"go"})
	ctx := context.Background()

	created, err := f.service.Apply(ctx, f.candidateUser.ID, f.offer.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err := f.service.SetAnonymity(ctx, created.ID, true); err != nil {
		t.Fatalf("set anonymity: %v", err)
	}

	views, err := f.service.ListForEnterprise(ctx, f.enterpriseUser.ID)
	if err != nil {
		t.Fatalf("enterprise list: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(views))
	}
	view := views[0]
	if view.CandidateEmail != anonymousEmail {
		t.Fatalf("expected placeholder email, got %q", view.CandidateEmail)
	}
	if view.CandidateFirstName != "" || view.CandidateLastName != "" || view.CandidatePhone != "" || len(view.CandidateSkills) != 0 {
		t.Fatalf("candidate fields leaked: %+v", view)
	}
	if view.CandidateID == "" {
		t.Fatal("opaque candidate id should survive masking")
	}

	// The candidate still sees their own identity.
	own, err := f.service.ListForCandidate(ctx, f.candidateUser.ID)
	if err != nil {
		t.Fatalf("candidate list: %v", err)
	}
	if own[0].CandidateFirstName != "Jane" {
		t.Fatalf("candidate view masked: %+v", own[0])
	}
}

func TestDeleteCascadesInterview(t *testing.T) {
	f := newLifecycleFixture(t, []string{"Go"}, []string{"go"})
	ctx := context.Background()

	created, err := f.service.Apply(ctx, f.candidateUser.ID, f.offer.ID)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := f.interviewsSvc.Schedule(ctx, created.ID, mustTime(t, "2026-09-10T14:00:00Z"), "https://meet.example/abc"); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	if err := f.service.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := f.service.Get(ctx, created.ID); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected application gone, got %v", err)
	}
	if _, err := f.interviews.GetByApplicationID(ctx, created.ID); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected interview gone, got %v", err)
	}
}

func TestNotifyFailureDoesNotBlockTransitions(t *testing.T) {
	f := newLifecycleFixture(t, []string{"Go"}, []string{"go"})
	ctx := context.Background()

	// With the recipient accounts gone, every Notify call fails with
	// NotFound. The transitions themselves must still go through.
	if err := f.users.Delete(ctx, f.candidateUser.ID); err != nil {
		t.Fatalf("delete candidate user: %v", err)
	}
	if err := f.users.Delete(ctx, f.enterpriseUser.ID); err != nil {
		t.Fatalf("delete enterprise user: %v", err)
	}

	created, err := f.service.Apply(ctx, f.candidateUser.ID, f.offer.ID)
	if err != nil {
		t.Fatalf("apply despite notify failure: %v", err)
	}
	if created.Status != application.StatusPending {
		t.Fatalf("expected pending, got %s", created.Status)
	}

	if _, err := f.interviewsSvc.Schedule(ctx, created.ID, mustTime(t, "2026-09-15T09:00:00Z"), "https://meet.example/xyz"); err != nil {
		t.Fatalf("schedule despite notify failure: %v", err)
	}
	current, err := f.service.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if current.Status != application.StatusInterviewScheduled {
		t.Fatalf("expected interview_scheduled, got %s", current.Status)
	}

	if _, err := f.service.SetStatus(ctx, created.ID, application.StatusAccepted); err != nil {
		t.Fatalf("set status despite notify failure: %v", err)
	}
	current, err = f.service.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if current.Status != application.StatusAccepted {
		t.Fatalf("expected accepted, got %s", current.Status)
	}

	if notes := f.notifications.forUser(f.candidateUser.ID); len(notes) != 0 {
		t.Fatalf("expected no candidate notifications, got %d", len(notes))
	}
	if notes := f.notifications.forUser(f.enterpriseUser.ID); len(notes) != 0 {
		t.Fatalf("expected no enterprise notifications, got %d", len(notes))
	}
}
