package app

import (
	"context"

	"lavoro/internal/common"
	"lavoro/internal/domain/application"
	"lavoro/internal/domain/candidate"
	"lavoro/internal/domain/enterprise"
	"lavoro/internal/domain/job"
	"lavoro/internal/domain/user"
)

type UserService struct {
	users        user.Repository
	candidates   candidate.Repository
	enterprises  enterprise.Repository
	jobs         job.Repository
	applications application.Repository
}

func NewUserService(users user.Repository, candidates candidate.Repository, enterprises enterprise.Repository, jobs job.Repository, applications application.Repository) *UserService {
	return &UserService{users: users, candidates: candidates, enterprises: enterprises, jobs: jobs, applications: applications}
}

type PlatformStats struct {
	Users        int64 `json:"users"`
	Candidates   int64 `json:"candidates"`
	Enterprises  int64 `json:"enterprises"`
	Jobs         int64 `json:"jobs"`
	Applications int64 `json:"applications"`
}

func (s *UserService) Stats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{}
	var err error
	if stats.Users, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Candidates, err = s.candidates.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Enterprises, err = s.enterprises.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Jobs, err = s.jobs.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Applications, err = s.applications.Count(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id common.UUID) (*user.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) SetStatus(ctx context.Context, id common.UUID, status user.Status) error {
	if status != user.StatusActive && status != user.StatusSuspended {
		return common.NewValidationError("invalid status", map[string]string{"status": "status must be active or suspended"})
	}
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}
	return s.users.UpdateStatus(ctx, id, status)
}

func (s *UserService) Delete(ctx context.Context, id common.UUID) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
