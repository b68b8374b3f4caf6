package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lavoro/internal/common"
	"lavoro/internal/domain/enterprise"
)

type EnterpriseRepository struct {
	db *sql.DB
}

func NewEnterpriseRepository(db *sql.DB) *EnterpriseRepository {
	return &EnterpriseRepository{db: db}
}

const enterpriseColumns = `id, user_id, company_name, description, website, logo_url, created_at, updated_at`

func (r *EnterpriseRepository) Create(ctx context.Context, profile enterprise.Profile) (*enterprise.Profile, error) {
	profile.ID = common.NewUUID()
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO enterprise_profiles (id, user_id, company_name, description, website, logo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		profile.ID, profile.UserID, profile.CompanyName, profile.Description, profile.Website, profile.LogoURL, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create enterprise profile", err)
	}
	return &profile, nil
}

func (r *EnterpriseRepository) Update(ctx context.Context, profile enterprise.Profile) (*enterprise.Profile, error) {
	profile.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE enterprise_profiles SET company_name = $1, description = $2, website = $3, logo_url = $4, updated_at = $5
		WHERE id = $6`,
		profile.CompanyName, profile.Description, profile.Website, profile.LogoURL, profile.UpdatedAt, profile.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update enterprise profile", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "enterprise profile not found", sql.ErrNoRows)
	}
	return &profile, nil
}

func (r *EnterpriseRepository) GetByID(ctx context.Context, id common.UUID) (*enterprise.Profile, error) {
	return r.get(ctx, `SELECT `+enterpriseColumns+` FROM enterprise_profiles WHERE id = $1`, id)
}

func (r *EnterpriseRepository) GetByUserID(ctx context.Context, userID common.UUID) (*enterprise.Profile, error) {
	return r.get(ctx, `SELECT `+enterpriseColumns+` FROM enterprise_profiles WHERE user_id = $1`, userID)
}

func (r *EnterpriseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM enterprise_profiles`).Scan(&count); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count enterprises", err)
	}
	return count, nil
}

func (r *EnterpriseRepository) get(ctx context.Context, query string, arg any) (*enterprise.Profile, error) {
	row := r.db.QueryRowContext(ctx, query, arg)
	var profile enterprise.Profile
	if err := row.Scan(&profile.ID, &profile.UserID, &profile.CompanyName, &profile.Description, &profile.Website, &profile.LogoURL, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "enterprise profile not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load enterprise profile", err)
	}
	return &profile, nil
}
