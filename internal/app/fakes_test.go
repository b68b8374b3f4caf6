package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"lavoro/internal/common"
	"lavoro/internal/domain/application"
	"lavoro/internal/domain/candidate"
	"lavoro/internal/domain/enterprise"
	"lavoro/internal/domain/interview"
	"lavoro/internal/domain/job"
	"lavoro/internal/domain/notification"
	"lavoro/internal/domain/user"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[common.UUID]*user.User
	byEmail map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[common.UUID]*user.User), byEmail: make(map[string]*user.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == "" {
		u.ID = common.NewUUID()
	}
	u.CreatedAt = time.Now().UTC()
	stored := u
	r.byID[u.ID] = &stored
	r.byEmail[u.Email] = &stored
	return &u, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byEmail[email]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []user.User
	for _, stored := range r.byID {
		items = append(items, *stored)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *fakeUserRepo) UpdateStatus(ctx context.Context, id common.UUID, status user.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[id]
	if !ok {
		return common.NewError(common.CodeNotFound, "user not found", nil)
	}
	stored.Status = status
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[id]
	if !ok {
		return common.NewError(common.CodeNotFound, "user not found", nil)
	}
	delete(r.byEmail, stored.Email)
	delete(r.byID, id)
	return nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

type fakeCandidateRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*candidate.Profile
}

func newFakeCandidateRepo() *fakeCandidateRepo {
	return &fakeCandidateRepo{byID: make(map[common.UUID]*candidate.Profile)}
}

func (r *fakeCandidateRepo) Create(ctx context.Context, profile candidate.Profile) (*candidate.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = common.NewUUID()
	}
	stored := profile
	r.byID[profile.ID] = &stored
	return &profile, nil
}

func (r *fakeCandidateRepo) Update(ctx context.Context, profile candidate.Profile) (*candidate.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[profile.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "candidate profile not found", nil)
	}
	stored := profile
	r.byID[profile.ID] = &stored
	return &profile, nil
}

func (r *fakeCandidateRepo) GetByID(ctx context.Context, id common.UUID) (*candidate.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "candidate profile not found", nil)
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeCandidateRepo) GetByUserID(ctx context.Context, userID common.UUID) (*candidate.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, stored := range r.byID {
		if stored.UserID == userID {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "candidate profile not found", nil)
}

func (r *fakeCandidateRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

type fakeEnterpriseRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*enterprise.Profile
}

func newFakeEnterpriseRepo() *fakeEnterpriseRepo {
	return &fakeEnterpriseRepo{byID: make(map[common.UUID]*enterprise.Profile)}
}

func (r *fakeEnterpriseRepo) Create(ctx context.Context, profile enterprise.Profile) (*enterprise.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = common.NewUUID()
	}
	stored := profile
	r.byID[profile.ID] = &stored
	return &profile, nil
}

func (r *fakeEnterpriseRepo) Update(ctx context.Context, profile enterprise.Profile) (*enterprise.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[profile.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "enterprise profile not found", nil)
	}
	stored := profile
	r.byID[profile.ID] = &stored
	return &profile, nil
}

func (r *fakeEnterpriseRepo) GetByID(ctx context.Context, id common.UUID) (*enterprise.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "enterprise profile not found", nil)
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeEnterpriseRepo) GetByUserID(ctx context.Context, userID common.UUID) (*enterprise.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, stored := range r.byID {
		if stored.UserID == userID {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "enterprise profile not found", nil)
}

func (r *fakeEnterpriseRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*job.Offer
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: make(map[common.UUID]*job.Offer)}
}

func (r *fakeJobRepo) Create(ctx context.Context, offer job.Offer) (*job.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if offer.ID == "" {
		offer.ID = common.NewUUID()
	}
	now := time.Now().UTC()
	offer.CreatedAt = now
	offer.UpdatedAt = now
	stored := offer
	r.byID[offer.ID] = &stored
	return &offer, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, offer job.Offer) (*job.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[offer.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "job offer not found", nil)
	}
	offer.UpdatedAt = time.Now().UTC()
	stored := offer
	r.byID[offer.ID] = &stored
	return &offer, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job offer not found", nil)
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeJobRepo) ListActive(ctx context.Context, filter job.ActiveFilter) ([]job.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Offer
	for _, stored := range r.byID {
		if stored.Status == job.StatusActive {
			items = append(items, *stored)
		}
	}
	return items, nil
}

func (r *fakeJobRepo) ListByEnterprise(ctx context.Context, enterpriseID common.UUID) ([]job.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Offer
	for _, stored := range r.byID {
		if stored.EnterpriseID == enterpriseID {
			items = append(items, *stored)
		}
	}
	return items, nil
}

func (r *fakeJobRepo) ListAll(ctx context.Context) ([]job.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Offer
	for _, stored := range r.byID {
		items = append(items, *stored)
	}
	return items, nil
}

func (r *fakeJobRepo) UpdateStatus(ctx context.Context, id common.UUID, status job.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[id]
	if !ok {
		return common.NewError(common.CodeNotFound, "job offer not found", nil)
	}
	stored.Status = status
	return nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return common.NewError(common.CodeNotFound, "job offer not found", nil)
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeJobRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*application.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: make(map[common.UUID]*application.Application)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, stored := range r.byID {
		if stored.CandidateID == app.CandidateID && stored.JobOfferID == app.JobOfferID {
			return nil, common.NewError(common.CodeConflict, "application already exists", nil)
		}
	}
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	stored := app
	r.byID[app.ID] = &stored
	return &app, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeApplicationRepo) FindByCandidateAndJob(ctx context.Context, candidateID, jobOfferID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, stored := range r.byID {
		if stored.CandidateID == candidateID && stored.JobOfferID == jobOfferID {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) ListByCandidate(ctx context.Context, candidateID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, stored := range r.byID {
		if stored.CandidateID == candidateID {
			items = append(items, *stored)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListByEnterprise(ctx context.Context, enterpriseID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, stored := range r.byID {
		items = append(items, *stored)
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobOfferID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, stored := range r.byID {
		if stored.JobOfferID == jobOfferID {
			items = append(items, *stored)
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListAll(ctx context.Context) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, stored := range r.byID {
		items = append(items, *stored)
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListAppliedJobIDs(ctx context.Context, candidateID common.UUID) ([]common.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []common.UUID
	for _, stored := range r.byID {
		if stored.CandidateID == candidateID {
			ids = append(ids, stored.JobOfferID)
		}
	}
	return ids, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[id]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	stored.Status = status
	stored.UpdatedAt = time.Now().UTC()
	copied := *stored
	return &copied, nil
}

func (r *fakeApplicationRepo) UpdateAnonymity(ctx context.Context, id common.UUID, anonymous bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[id]
	if !ok {
		return common.NewError(common.CodeNotFound, "application not found", nil)
	}
	stored.Anonymous = anonymous
	return nil
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return common.NewError(common.CodeNotFound, "application not found", nil)
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeApplicationRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}

type fakeInterviewRepo struct {
	mu            sync.Mutex
	byApplication map[common.UUID]*interview.Interview
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{byApplication: make(map[common.UUID]*interview.Interview)}
}

func (r *fakeInterviewRepo) Upsert(ctx context.Context, iv interview.Interview) (*interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := r.byApplication[iv.ApplicationID]; ok {
		existing.Date = iv.Date
		existing.MeetingLink = iv.MeetingLink
		existing.Status = iv.Status
		existing.UpdatedAt = now
		copied := *existing
		return &copied, nil
	}
	iv.ID = common.NewUUID()
	iv.CreatedAt = now
	iv.UpdatedAt = now
	stored := iv
	r.byApplication[iv.ApplicationID] = &stored
	return &iv, nil
}

func (r *fakeInterviewRepo) GetByID(ctx context.Context, id common.UUID) (*interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, stored := range r.byApplication {
		if stored.ID == id {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "interview not found", nil)
}

func (r *fakeInterviewRepo) GetByApplicationID(ctx context.Context, applicationID common.UUID) (*interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byApplication[applicationID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "interview not found", nil)
	}
	copied := *stored
	return &copied, nil
}

func (r *fakeInterviewRepo) ListUpcomingByCandidate(ctx context.Context, candidateID common.UUID, after time.Time, limit int) ([]interview.Interview, error) {
	return nil, nil
}

func (r *fakeInterviewRepo) ListAll(ctx context.Context) ([]interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []interview.Interview
	for _, stored := range r.byApplication {
		items = append(items, *stored)
	}
	return items, nil
}

func (r *fakeInterviewRepo) UpdateStatus(ctx context.Context, id common.UUID, status interview.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, stored := range r.byApplication {
		if stored.ID == id {
			stored.Status = status
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "interview not found", nil)
}

func (r *fakeInterviewRepo) DeleteByApplicationID(ctx context.Context, applicationID common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byApplication, applicationID)
	return nil
}

func (r *fakeInterviewRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byApplication)
}

type fakeNotificationRepo struct {
	mu    sync.Mutex
	items []notification.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n notification.Notification) (*notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = common.NewUUID()
	n.CreatedAt = time.Now().UTC()
	r.items = append(r.items, n)
	return &n, nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID common.UUID, limit int) ([]notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []notification.Notification
	for i := len(r.items) - 1; i >= 0 && len(items) < limit; i-- {
		if r.items[i].UserID == userID {
			items = append(items, r.items[i])
		}
	}
	return items, nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, userID common.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, item := range r.items {
		if item.UserID == userID && !item.Read {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Read = true
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "notification not found", nil)
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].UserID == userID {
			r.items[i].Read = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) forUser(userID common.UUID) []notification.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []notification.Notification
	for _, item := range r.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items
}
