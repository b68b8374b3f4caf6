package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lavoro/internal/common"
	"lavoro/internal/domain/application"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, candidate_id, job_offer_id, status, matching_score, is_anonymous, created_at, updated_at`

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (id, candidate_id, job_offer_id, status, matching_score, is_anonymous, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		app.ID, app.CandidateID, app.JobOfferID, app.Status, app.MatchingScore, app.Anonymous, app.CreatedAt, app.UpdatedAt)
	if err != nil {
		// The unique constraint on (candidate_id, job_offer_id) closes
		// the race between the service-level existence check and this
		// insert.
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "already applied to this job offer", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *ApplicationRepository) FindByCandidateAndJob(ctx context.Context, candidateID, jobOfferID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE candidate_id = $1 AND job_offer_id = $2`, candidateID, jobOfferID)
	return scanApplication(row)
}

func (r *ApplicationRepository) ListByCandidate(ctx context.Context, candidateID common.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications WHERE candidate_id = $1 ORDER BY created_at DESC`, candidateID)
}

func (r *ApplicationRepository) ListByEnterprise(ctx context.Context, enterpriseID common.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT a.id, a.candidate_id, a.job_offer_id, a.status, a.matching_score, a.is_anonymous, a.created_at, a.updated_at
		FROM applications a
		JOIN jobs j ON j.id = a.job_offer_id
		WHERE j.enterprise_id = $1
		ORDER BY a.created_at DESC`, enterpriseID)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobOfferID common.UUID) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_offer_id = $1 ORDER BY created_at DESC`, jobOfferID)
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications ORDER BY created_at DESC`)
}

func (r *ApplicationRepository) ListAppliedJobIDs(ctx context.Context, candidateID common.UUID) ([]common.UUID, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT job_offer_id FROM applications WHERE candidate_id = $1`, candidateID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applied job ids", err)
	}
	defer rows.Close()
	var ids []common.UUID
	for rows.Next() {
		var id common.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job id", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	updatedAt := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3`, status, updatedAt, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application status", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) UpdateAnonymity(ctx context.Context, id common.UUID, anonymous bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET is_anonymous = $1, updated_at = $2 WHERE id = $3`, anonymous, time.Now().UTC(), id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update application anonymity", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete application", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return nil
}

func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count applications", err)
	}
	return count, nil
}

func (r *ApplicationRepository) list(ctx context.Context, query string, args ...any) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	var items []application.Application
	for rows.Next() {
		var app application.Application
		if err := rows.Scan(&app.ID, &app.CandidateID, &app.JobOfferID, &app.Status, &app.MatchingScore, &app.Anonymous, &app.CreatedAt, &app.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, app)
	}
	return items, nil
}

func scanApplication(row *sql.Row) (*application.Application, error) {
	var app application.Application
	if err := row.Scan(&app.ID, &app.CandidateID, &app.JobOfferID, &app.Status, &app.MatchingScore, &app.Anonymous, &app.CreatedAt, &app.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}
