package app

import (
	"context"
	"strings"

	"lavoro/internal/common"
	"lavoro/internal/domain/candidate"
	"lavoro/internal/domain/enterprise"
)

type ProfileService struct {
	candidates  candidate.Repository
	enterprises enterprise.Repository
}

func NewProfileService(candidates candidate.Repository, enterprises enterprise.Repository) *ProfileService {
	return &ProfileService{candidates: candidates, enterprises: enterprises}
}

func (s *ProfileService) GetCandidate(ctx context.Context, userID common.UUID) (*candidate.Profile, error) {
	return s.candidates.GetByUserID(ctx, userID)
}

// UpdateCandidate replaces the mutable profile fields, including the
// skill list. Applications already created keep the score stamped from
// the skills at apply time.
func (s *ProfileService) UpdateCandidate(ctx context.Context, userID common.UUID, input candidate.Profile) (*candidate.Profile, error) {
	current, err := s.candidates.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, common.NewValidationError("invalid profile", map[string]string{"name": "first and last name are required"})
	}
	current.FirstName = strings.TrimSpace(input.FirstName)
	current.LastName = strings.TrimSpace(input.LastName)
	current.Bio = input.Bio
	current.Phone = input.Phone
	current.CVURL = input.CVURL
	current.Skills = input.Skills
	return s.candidates.Update(ctx, *current)
}

func (s *ProfileService) GetEnterprise(ctx context.Context, userID common.UUID) (*enterprise.Profile, error) {
	return s.enterprises.GetByUserID(ctx, userID)
}

func (s *ProfileService) UpdateEnterprise(ctx context.Context, userID common.UUID, input enterprise.Profile) (*enterprise.Profile, error) {
	current, err := s.enterprises.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.CompanyName) == "" {
		return nil, common.NewValidationError("invalid profile", map[string]string{"company_name": "company name is required"})
	}
	current.CompanyName = strings.TrimSpace(input.CompanyName)
	current.Description = input.Description
	current.Website = input.Website
	current.LogoURL = input.LogoURL
	return s.enterprises.Update(ctx, *current)
}
