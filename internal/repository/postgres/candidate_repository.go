package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lavoro/internal/common"
	"lavoro/internal/domain/candidate"
)

type CandidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

const candidateColumns = `id, user_id, first_name, last_name, bio, phone, cv_url, skills, created_at, updated_at`

func (r *CandidateRepository) Create(ctx context.Context, profile candidate.Profile) (*candidate.Profile, error) {
	profile.ID = common.NewUUID()
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO candidate_profiles (id, user_id, first_name, last_name, bio, phone, cv_url, skills, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		profile.ID, profile.UserID, profile.FirstName, profile.LastName, profile.Bio, profile.Phone, profile.CVURL,
		common.EncodeStringList(profile.Skills), profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create candidate profile", err)
	}
	return &profile, nil
}

func (r *CandidateRepository) Update(ctx context.Context, profile candidate.Profile) (*candidate.Profile, error) {
	profile.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE candidate_profiles SET first_name = $1, last_name = $2, bio = $3, phone = $4, cv_url = $5, skills = $6, updated_at = $7
		WHERE id = $8`,
		profile.FirstName, profile.LastName, profile.Bio, profile.Phone, profile.CVURL,
		common.EncodeStringList(profile.Skills), profile.UpdatedAt, profile.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update candidate profile", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "candidate profile not found", sql.ErrNoRows)
	}
	return &profile, nil
}

func (r *CandidateRepository) GetByID(ctx context.Context, id common.UUID) (*candidate.Profile, error) {
	return r.get(ctx, `SELECT `+candidateColumns+` FROM candidate_profiles WHERE id = $1`, id)
}

func (r *CandidateRepository) GetByUserID(ctx context.Context, userID common.UUID) (*candidate.Profile, error) {
	return r.get(ctx, `SELECT `+candidateColumns+` FROM candidate_profiles WHERE user_id = $1`, userID)
}

func (r *CandidateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM candidate_profiles`).Scan(&count); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count candidates", err)
	}
	return count, nil
}

func (r *CandidateRepository) get(ctx context.Context, query string, arg any) (*candidate.Profile, error) {
	row := r.db.QueryRowContext(ctx, query, arg)
	var profile candidate.Profile
	var skills string
	if err := row.Scan(&profile.ID, &profile.UserID, &profile.FirstName, &profile.LastName, &profile.Bio, &profile.Phone, &profile.CVURL, &skills, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "candidate profile not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load candidate profile", err)
	}
	profile.Skills = common.DecodeStringList(skills)
	return &profile, nil
}
