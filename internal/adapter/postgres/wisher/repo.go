// Package wisher implements the Wisher repository using PostgreSQL.
// It covers wisher CRUD, the scoped approve toggle and the approved
// participation counts.
package wisher

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/mockinterview-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

// Repo provides wisher persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new wisher repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const wisherColumns = `id, interview_id, user_id, contact_by, approve`

const insertSQL = `
INSERT INTO wishers (interview_id, user_id, contact_by, approve)
VALUES ($1, $2, $3, $4)
RETURNING ` + wisherColumns

const updateSQL = `
UPDATE wishers
SET interview_id = $2, user_id = $3, contact_by = $4, approve = $5
WHERE id = $1
RETURNING ` + wisherColumns

const getByIDSQL = `SELECT ` + wisherColumns + ` FROM wishers WHERE id = $1`

const listSQL = `SELECT ` + wisherColumns + ` FROM wishers ORDER BY id`

const listByInterviewSQL = `SELECT ` + wisherColumns + ` FROM wishers WHERE interview_id = $1 ORDER BY id`

const deleteSQL = `DELETE FROM wishers WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a wisher by primary key.
// Returns domain.ErrNotFound if the wisher does not exist.
func (r *Repo) GetByID(ctx context.Context, id int) (*domain.Wisher, error) {
	w, err := scanWisher(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "wisher", id)
	}
	return &w, nil
}

// List returns every wisher ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Wisher, error) {
	return r.query(ctx, "list wishers", listSQL)
}

// ListByInterview returns the wishers of one interview ordered by id.
func (r *Repo) ListByInterview(ctx context.Context, interviewID int) ([]domain.Wisher, error) {
	return r.query(ctx, "list wishers by interview", listByInterviewSQL, interviewID)
}

// CountApprovedPerUser returns one row per user holding at least one approved
// wisher row, ordered by user id. Users without approvals are absent.
func (r *Repo) CountApprovedPerUser(ctx context.Context) ([]domain.ApprovedCount, error) {
	query, args, err := approvedCounts().OrderBy("user_id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build approved counts: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count approved per user: %w", err)
	}
	defer rows.Close()

	result := []domain.ApprovedCount{}
	for rows.Next() {
		var c domain.ApprovedCount
		if err := rows.Scan(&c.UserID, &c.Count); err != nil {
			return nil, fmt.Errorf("count approved per user: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count approved per user: %w", err)
	}

	return result, nil
}

// CountApprovedForUser returns the approved count for one user. ok is false
// when the user has no approved wisher rows.
func (r *Repo) CountApprovedForUser(ctx context.Context, userID int) (count domain.ApprovedCount, ok bool, err error) {
	query, args, err := approvedCounts().Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return domain.ApprovedCount{}, false, fmt.Errorf("build approved count: %w", err)
	}

	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&count.UserID, &count.Count)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ApprovedCount{}, false, nil
	}
	if err != nil {
		return domain.ApprovedCount{}, false, fmt.Errorf("count approved for user %d: %w", userID, err)
	}

	return count, true, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a wisher and returns it with its generated id.
// Returns domain.ErrNotFound if the interview does not exist.
func (r *Repo) Create(ctx context.Context, w *domain.Wisher) (*domain.Wisher, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertSQL,
		w.InterviewID, w.UserID, w.ContactBy, w.Approve,
	)

	created, err := scanWisher(row)
	if err != nil {
		return nil, postgres.MapError(err, "wisher", w.ID)
	}

	return &created, nil
}

// Update overwrites an existing wisher.
// Returns domain.ErrNotFound if the wisher or the referenced interview does not exist.
func (r *Repo) Update(ctx context.Context, w *domain.Wisher) (*domain.Wisher, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateSQL,
		w.ID, w.InterviewID, w.UserID, w.ContactBy, w.Approve,
	)

	updated, err := scanWisher(row)
	if err != nil {
		return nil, postgres.MapError(err, "wisher", w.ID)
	}

	return &updated, nil
}

// Delete removes a wisher and returns the number of deleted rows.
// The owning interview is left untouched.
func (r *Repo) Delete(ctx context.Context, id int) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return 0, postgres.MapError(err, "wisher", id)
	}
	return int(tag.RowsAffected()), nil
}

// SetApprove updates the approve flag of the wisher matching both ids in a
// single statement. Returns the number of updated rows; zero is not an error.
func (r *Repo) SetApprove(ctx context.Context, interviewID, wisherID int, approve bool) (int, error) {
	query, args, err := postgres.Psql.
		Update("wishers").
		Set("approve", approve).
		Where(sq.Eq{"id": wisherID, "interview_id": interviewID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build set approve: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "wisher", wisherID)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func approvedCounts() sq.SelectBuilder {
	return postgres.Psql.
		Select("user_id", "count(*)").
		From("wishers").
		Where("approve").
		GroupBy("user_id")
}

func (r *Repo) query(ctx context.Context, op, query string, args ...any) ([]domain.Wisher, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := []domain.Wisher{}
	for rows.Next() {
		w, err := scanWisher(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

func scanWisher(row pgx.Row) (domain.Wisher, error) {
	var w domain.Wisher
	if err := row.Scan(&w.ID, &w.InterviewID, &w.UserID, &w.ContactBy, &w.Approve); err != nil {
		return domain.Wisher{}, err
	}
	return w, nil
}
