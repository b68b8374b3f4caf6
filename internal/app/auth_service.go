package app

import (
	"context"
	"strings"
	"time"

	"lavoro/internal/common"
	"lavoro/internal/domain/candidate"
	"lavoro/internal/domain/enterprise"
	"lavoro/internal/domain/user"
	"lavoro/internal/observability"
	"lavoro/internal/security"
)

type AuthService struct {
	users       user.Repository
	candidates  candidate.Repository
	enterprises enterprise.Repository
	jwtProvider *security.JWTProvider
	logger      observability.Logger
	accessTTL   time.Duration
}

func NewAuthService(users user.Repository, candidates candidate.Repository, enterprises enterprise.Repository, jwtProvider *security.JWTProvider, logger observability.Logger, accessTTL time.Duration) *AuthService {
	return &AuthService{
		users:       users,
		candidates:  candidates,
		enterprises: enterprises,
		jwtProvider: jwtProvider,
		logger:      logger,
		accessTTL:   accessTTL,
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	Role        user.Role
	FirstName   string
	LastName    string
	CompanyName string
}

type AuthResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      user.User `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, common.NewValidationError("invalid request", map[string]string{"email": "valid email is required"})
	}
	if len(input.Password) < 8 {
		return nil, common.NewValidationError("invalid request", map[string]string{"password": "password must be at least 8 characters"})
	}
	if input.Role != user.RoleCandidate && input.Role != user.RoleEnterprise {
		return nil, common.NewValidationError("invalid request", map[string]string{"role": "role must be candidate or enterprise"})
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, common.NewError(common.CodeConflict, "email already registered", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}

	created, err := s.users.Create(ctx, user.User{
		Email:        email,
		PasswordHash: hash,
		Role:         input.Role,
		Status:       user.StatusActive,
	})
	if err != nil {
		return nil, err
	}

	switch input.Role {
	case user.RoleCandidate:
		_, err = s.candidates.Create(ctx, candidate.Profile{
			UserID:    created.ID,
			FirstName: strings.TrimSpace(input.FirstName),
			LastName:  strings.TrimSpace(input.LastName),
		})
	case user.RoleEnterprise:
		_, err = s.enterprises.Create(ctx, enterprise.Profile{
			UserID:      created.ID,
			CompanyName: strings.TrimSpace(input.CompanyName),
		})
	}
	if err != nil {
		return nil, err
	}

	s.logInfo("user registered: " + created.ID.String())
	return s.issue(created)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	account, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
		}
		return nil, err
	}
	if !security.CheckPassword(account.PasswordHash, password) {
		return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
	}
	if account.Status == user.StatusSuspended {
		return nil, common.NewError(common.CodeForbidden, "account suspended", nil)
	}
	return s.issue(account)
}

func (s *AuthService) issue(account *user.User) (*AuthResult, error) {
	token, expiresAt, err := s.jwtProvider.Generate(account.ID, string(account.Role), s.accessTTL)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue token", err)
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: *account}, nil
}

func (s *AuthService) logInfo(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg)
}
