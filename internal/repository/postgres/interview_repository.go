package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lavoro/internal/common"
	"lavoro/internal/domain/interview"
)

type InterviewRepository struct {
	db *sql.DB
}

func NewInterviewRepository(db *sql.DB) *InterviewRepository {
	return &InterviewRepository{db: db}
}

const interviewColumns = `id, application_id, interview_date, meeting_link, status, created_at, updated_at`

// Upsert keeps the 1:1 ownership: the unique index on application_id
// turns a reschedule into an in-place overwrite in a single statement.
func (r *InterviewRepository) Upsert(ctx context.Context, iv interview.Interview) (*interview.Interview, error) {
	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, `INSERT INTO interviews (id, application_id, interview_date, meeting_link, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (application_id) DO UPDATE
		SET interview_date = EXCLUDED.interview_date,
		    meeting_link = EXCLUDED.meeting_link,
		    status = EXCLUDED.status,
		    updated_at = EXCLUDED.updated_at
		RETURNING `+interviewColumns,
		common.NewUUID(), iv.ApplicationID, iv.Date, iv.MeetingLink, iv.Status, now, now)
	saved, err := scanInterviewRow(row)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to upsert interview", err)
	}
	return saved, nil
}

func (r *InterviewRepository) GetByID(ctx context.Context, id common.UUID) (*interview.Interview, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+interviewColumns+` FROM interviews WHERE id = $1`, id)
	saved, err := scanInterviewRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "interview not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load interview", err)
	}
	return saved, nil
}

func (r *InterviewRepository) GetByApplicationID(ctx context.Context, applicationID common.UUID) (*interview.Interview, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+interviewColumns+` FROM interviews WHERE application_id = $1`, applicationID)
	saved, err := scanInterviewRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "interview not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load interview", err)
	}
	return saved, nil
}

func (r *InterviewRepository) ListUpcomingByCandidate(ctx context.Context, candidateID common.UUID, after time.Time, limit int) ([]interview.Interview, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT i.id, i.application_id, i.interview_date, i.meeting_link, i.status, i.created_at, i.updated_at
		FROM interviews i
		JOIN applications a ON a.id = i.application_id
		WHERE a.candidate_id = $1 AND i.interview_date >= $2 AND i.status = $3
		ORDER BY i.interview_date ASC
		LIMIT $4`, candidateID, after, interview.StatusScheduled, limit)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list upcoming interviews", err)
	}
	defer rows.Close()
	return collectInterviews(rows)
}

func (r *InterviewRepository) ListAll(ctx context.Context) ([]interview.Interview, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+interviewColumns+` FROM interviews ORDER BY interview_date DESC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list interviews", err)
	}
	defer rows.Close()
	return collectInterviews(rows)
}

func (r *InterviewRepository) UpdateStatus(ctx context.Context, id common.UUID, status interview.Status) error {
	result, err := r.db.ExecContext(ctx, `UPDATE interviews SET status = $1, updated_at = $2 WHERE id = $3`, status, time.Now().UTC(), id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update interview status", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "interview not found", sql.ErrNoRows)
	}
	return nil
}

func (r *InterviewRepository) DeleteByApplicationID(ctx context.Context, applicationID common.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM interviews WHERE application_id = $1`, applicationID); err != nil {
		return common.NewError(common.CodeInternal, "failed to delete interview", err)
	}
	return nil
}

func scanInterviewRow(row *sql.Row) (*interview.Interview, error) {
	var iv interview.Interview
	if err := row.Scan(&iv.ID, &iv.ApplicationID, &iv.Date, &iv.MeetingLink, &iv.Status, &iv.CreatedAt, &iv.UpdatedAt); err != nil {
		return nil, err
	}
	return &iv, nil
}

func collectInterviews(rows *sql.Rows) ([]interview.Interview, error) {
	var items []interview.Interview
	for rows.Next() {
		var iv interview.Interview
		if err := rows.Scan(&iv.ID, &iv.ApplicationID, &iv.Date, &iv.MeetingLink, &iv.Status, &iv.CreatedAt, &iv.UpdatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan interview", err)
		}
		items = append(items, iv)
	}
	return items, nil
}
