// Package filter implements the saved Filter repository using PostgreSQL.
package filter

import (
	"context"

	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/mockinterview-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

// Repo provides saved filter persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new filter repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const filterColumns = `user_id, category_id, topic_id, filter_profile, status, mode`

const upsertSQL = `
INSERT INTO filters (` + filterColumns + `)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id) DO UPDATE
SET category_id = EXCLUDED.category_id,
    topic_id = EXCLUDED.topic_id,
    filter_profile = EXCLUDED.filter_profile,
    status = EXCLUDED.status,
    mode = EXCLUDED.mode
RETURNING ` + filterColumns

const getByUserIDSQL = `SELECT ` + filterColumns + ` FROM filters WHERE user_id = $1`

const deleteByUserIDSQL = `DELETE FROM filters WHERE user_id = $1`

// Upsert stores the filter of f.UserID, replacing any previous one.
func (r *Repo) Upsert(ctx context.Context, f *domain.Filter) (*domain.Filter, error) {
	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, upsertSQL,
		f.UserID, f.CategoryID, f.TopicID, int(f.Profile), f.Status, f.Mode,
	)

	saved, err := scanFilter(row)
	if err != nil {
		return nil, postgres.MapError(err, "filter", f.UserID)
	}

	return &saved, nil
}

// GetByUserID returns the filter saved by the user.
// Returns domain.ErrNotFound if the user has none.
func (r *Repo) GetByUserID(ctx context.Context, userID int) (*domain.Filter, error) {
	f, err := scanFilter(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getByUserIDSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "filter", userID)
	}
	return &f, nil
}

// DeleteByUserID removes the user's filter and returns the number of deleted rows.
func (r *Repo) DeleteByUserID(ctx context.Context, userID int) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteByUserIDSQL, userID)
	if err != nil {
		return 0, postgres.MapError(err, "filter", userID)
	}
	return int(tag.RowsAffected()), nil
}

func scanFilter(row pgx.Row) (domain.Filter, error) {
	var (
		f       domain.Filter
		profile int
	)
	if err := row.Scan(&f.UserID, &f.CategoryID, &f.TopicID, &profile, &f.Status, &f.Mode); err != nil {
		return domain.Filter{}, err
	}
	f.Profile = domain.FilterProfile(profile)
	return f, nil
}
