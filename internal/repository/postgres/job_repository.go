package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	"lavoro/internal/common"
	"lavoro/internal/domain/job"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `id, enterprise_id, title, description, job_type, salary, location, requirements, benefits, status, created_at, updated_at`

func (r *JobRepository) Create(ctx context.Context, offer job.Offer) (*job.Offer, error) {
	offer.ID = common.NewUUID()
	now := time.Now().UTC()
	offer.CreatedAt = now
	offer.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (id, enterprise_id, title, description, job_type, salary, location, requirements, benefits, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		offer.ID, offer.EnterpriseID, offer.Title, offer.Description, offer.Type, offer.Salary, offer.Location,
		common.EncodeStringList(offer.Requirements), pq.Array(offer.Benefits), offer.Status, offer.CreatedAt, offer.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job offer", err)
	}
	return &offer, nil
}

func (r *JobRepository) Update(ctx context.Context, offer job.Offer) (*job.Offer, error) {
	offer.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET title = $1, description = $2, job_type = $3, salary = $4, location = $5, requirements = $6, benefits = $7, status = $8, updated_at = $9
		WHERE id = $10`,
		offer.Title, offer.Description, offer.Type, offer.Salary, offer.Location,
		common.EncodeStringList(offer.Requirements), pq.Array(offer.Benefits), offer.Status, offer.UpdatedAt, offer.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job offer", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job offer not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, offer.ID)
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Offer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	var offer job.Offer
	var requirements string
	if err := row.Scan(&offer.ID, &offer.EnterpriseID, &offer.Title, &offer.Description, &offer.Type, &offer.Salary, &offer.Location, &requirements, pq.Array(&offer.Benefits), &offer.Status, &offer.CreatedAt, &offer.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job offer not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job offer", err)
	}
	offer.Requirements = common.DecodeStringList(requirements)
	return &offer, nil
}

func (r *JobRepository) ListActive(ctx context.Context, filter job.ActiveFilter) ([]job.Offer, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = $1`
	args := []any{job.StatusActive}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += ` AND job_type = $` + strconv.Itoa(len(args))
	}
	if filter.Location != "" {
		args = append(args, "%"+strings.ToLower(filter.Location)+"%")
		query += ` AND LOWER(location) LIKE $` + strconv.Itoa(len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
		n := strconv.Itoa(len(args))
		query += ` AND (LOWER(title) LIKE $` + n + ` OR LOWER(description) LIKE $` + n + `)`
	}
	query += ` ORDER BY created_at DESC`
	return r.list(ctx, query, args...)
}

func (r *JobRepository) ListByEnterprise(ctx context.Context, enterpriseID common.UUID) ([]job.Offer, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs WHERE enterprise_id = $1 ORDER BY created_at DESC`, enterpriseID)
}

func (r *JobRepository) ListAll(ctx context.Context) ([]job.Offer, error) {
	return r.list(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id common.UUID, status job.Status) error {
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now().UTC(), id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update job status", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job offer not found", sql.ErrNoRows)
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job offer", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job offer not found", sql.ErrNoRows)
	}
	return nil
}

func (r *JobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count jobs", err)
	}
	return count, nil
}

func (r *JobRepository) list(ctx context.Context, query string, args ...any) ([]job.Offer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list job offers", err)
	}
	defer rows.Close()
	var items []job.Offer
	for rows.Next() {
		var offer job.Offer
		var requirements string
		if err := rows.Scan(&offer.ID, &offer.EnterpriseID, &offer.Title, &offer.Description, &offer.Type, &offer.Salary, &offer.Location, &requirements, pq.Array(&offer.Benefits), &offer.Status, &offer.CreatedAt, &offer.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job offer", err)
		}
		offer.Requirements = common.DecodeStringList(requirements)
		items = append(items, offer)
	}
	return items, nil
}
