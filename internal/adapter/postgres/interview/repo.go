// Package interview implements the Interview repository using PostgreSQL.
// Static queries are SQL constants; filtered listings and the feedback-gap
// query are assembled with squirrel.
package interview

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/mockinterview-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

// Repo provides interview persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new interview repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const interviewColumns = `i.id, i.mode, i.status, i.submitter_id, i.agreed_wisher_id, i.title,
       i.additional, i.contact_by, i.approximate_date, i.created_at, i.topic_id,
       i.author, i.cancel_by`

const newestFirst = `ORDER BY i.created_at DESC, i.id DESC`

const insertSQL = `
INSERT INTO interviews AS i (mode, status, submitter_id, agreed_wisher_id, title, additional,
                             contact_by, approximate_date, created_at, topic_id, author, cancel_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + interviewColumns

const updateSQL = `
UPDATE interviews AS i
SET mode = $2, status = $3, submitter_id = $4, agreed_wisher_id = $5, title = $6,
    additional = $7, contact_by = $8, approximate_date = $9, created_at = $10,
    topic_id = $11, author = $12, cancel_by = $13
WHERE i.id = $1
RETURNING ` + interviewColumns

const getByIDSQL = `SELECT ` + interviewColumns + ` FROM interviews i WHERE i.id = $1`

const listAllSQL = `SELECT ` + interviewColumns + ` FROM interviews i ` + newestFirst

const listPageSQL = `SELECT ` + interviewColumns + ` FROM interviews i ` + newestFirst + ` LIMIT $1 OFFSET $2`

const countAllSQL = `SELECT count(*) FROM interviews`

const listByModeSQL = `SELECT ` + interviewColumns + ` FROM interviews i WHERE i.mode = $1 ` + newestFirst

const listByStatusSQL = `SELECT ` + interviewColumns + ` FROM interviews i WHERE i.status = $1 ` + newestFirst

const listLatestByStatusSQL = `SELECT ` + interviewColumns + ` FROM interviews i WHERE i.status = $1 ` + newestFirst + ` LIMIT $2`

// relatedWhere matches interviews the user submitted, every new interview,
// and interviews the user was approved for.
const relatedWhere = `
WHERE i.submitter_id = $1
   OR i.status = $2
   OR i.id IN (SELECT w.interview_id FROM wishers w WHERE w.user_id = $1 AND w.approve)`

const listRelatedPageSQL = `SELECT ` + interviewColumns + ` FROM interviews i` + relatedWhere + `
` + newestFirst + ` LIMIT $3 OFFSET $4`

const countRelatedSQL = `SELECT count(*) FROM interviews i` + relatedWhere

const deleteSQL = `DELETE FROM interviews WHERE id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an interview by primary key.
// Returns domain.ErrNotFound if the interview does not exist.
func (r *Repo) GetByID(ctx context.Context, id int) (*domain.Interview, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	in, err := scanInterview(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "interview", id)
	}

	return &in, nil
}

// List returns every interview, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Interview, error) {
	return r.query(ctx, "list interviews", listAllSQL)
}

// ListPage returns one page of all interviews, newest first, plus the total count.
func (r *Repo) ListPage(ctx context.Context, page domain.PageRequest) ([]domain.Interview, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, countAllSQL).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count interviews: %w", err)
	}

	items, err := r.query(ctx, "list interviews page", listPageSQL, page.Size, page.Offset())
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ListByMode returns interviews of the given mode, newest first.
func (r *Repo) ListByMode(ctx context.Context, mode int) ([]domain.Interview, error) {
	return r.query(ctx, "list interviews by mode", listByModeSQL, mode)
}

// ListByStatus returns interviews in the given status, newest first.
func (r *Repo) ListByStatus(ctx context.Context, status domain.InterviewStatus) ([]domain.Interview, error) {
	return r.query(ctx, "list interviews by status", listByStatusSQL, status.Code())
}

// ListLatestByStatus returns at most limit interviews in the given status, newest first.
func (r *Repo) ListLatestByStatus(ctx context.Context, status domain.InterviewStatus, limit int) ([]domain.Interview, error) {
	return r.query(ctx, "list latest interviews by status", listLatestByStatusSQL, status.Code(), limit)
}

// ListRelatedPage returns one page of the interviews relevant to userID:
// the ones they submitted, all new ones, and the ones they were approved for.
func (r *Repo) ListRelatedPage(ctx context.Context, userID int, page domain.PageRequest) ([]domain.Interview, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)
	newCode := domain.StatusNew.Code()

	var total int
	if err := q.QueryRow(ctx, countRelatedSQL, userID, newCode).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count related interviews: %w", err)
	}

	items, err := r.query(ctx, "list related interviews", listRelatedPageSQL, userID, newCode, page.Size, page.Offset())
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ListFiltered returns one page of the interviews matching every predicate,
// newest first, plus the total number of matches. An empty predicate set
// lists everything.
func (r *Repo) ListFiltered(ctx context.Context, preds domain.Predicates, page domain.PageRequest) ([]domain.Interview, int, error) {
	countSQL, countArgs, err := buildFilteredCount(preds)
	if err != nil {
		return nil, 0, fmt.Errorf("build filtered count: %w", err)
	}

	listSQL, listArgs, err := buildFilteredList(preds, page)
	if err != nil {
		return nil, 0, fmt.Errorf("build filtered list: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count filtered interviews: %w", err)
	}

	items, err := r.query(ctx, "list filtered interviews", listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ListNeedingFeedback returns the interviews userID still owes feedback on:
// they submitted it or were approved as a wisher, and no feedback row of
// theirs exists. Each interview appears once.
func (r *Repo) ListNeedingFeedback(ctx context.Context, userID int) ([]domain.Interview, error) {
	query, args, err := buildNeedingFeedback(userID)
	if err != nil {
		return nil, fmt.Errorf("build needing feedback: %w", err)
	}
	return r.query(ctx, "list interviews needing feedback", query, args...)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new interview and returns it with its generated id.
func (r *Repo) Create(ctx context.Context, in *domain.Interview) (*domain.Interview, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, insertSQL,
		in.Mode, in.Status.Code(), in.SubmitterID, in.AgreedWisherID, in.Title, in.Additional,
		in.ContactBy, in.ApproximateDate, in.CreatedAt, in.TopicID, in.Author, in.CancelBy,
	)

	created, err := scanInterview(row)
	if err != nil {
		return nil, postgres.MapError(err, "interview", in.ID)
	}

	return &created, nil
}

// Update overwrites every column of an existing interview.
// Returns domain.ErrNotFound if the interview does not exist.
func (r *Repo) Update(ctx context.Context, in *domain.Interview) (*domain.Interview, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, updateSQL, in.ID,
		in.Mode, in.Status.Code(), in.SubmitterID, in.AgreedWisherID, in.Title, in.Additional,
		in.ContactBy, in.ApproximateDate, in.CreatedAt, in.TopicID, in.Author, in.CancelBy,
	)

	updated, err := scanInterview(row)
	if err != nil {
		return nil, postgres.MapError(err, "interview", in.ID)
	}

	return &updated, nil
}

// UpdateStatus sets the status column in a single statement.
// Returns domain.ErrNotFound if no interview has the id.
func (r *Repo) UpdateStatus(ctx context.Context, id int, status domain.InterviewStatus) error {
	query, args, err := postgres.Psql.
		Update("interviews").
		Set("status", status.Code()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update status: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "interview", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("interview %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes an interview and, by cascade, its wishers and feedback.
// Returns the number of deleted rows; a missing id is not an error.
func (r *Repo) Delete(ctx context.Context, id int) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return 0, postgres.MapError(err, "interview", id)
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Query builders
// ---------------------------------------------------------------------------

func buildFilteredList(preds domain.Predicates, page domain.PageRequest) (string, []any, error) {
	b := postgres.Psql.
		Select(interviewColumns).
		From("interviews i").
		OrderBy("i.created_at DESC", "i.id DESC").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset()))

	b, err := applyPredicates(b, preds)
	if err != nil {
		return "", nil, err
	}

	return b.ToSql()
}

func buildFilteredCount(preds domain.Predicates) (string, []any, error) {
	b, err := applyPredicates(postgres.Psql.Select("count(*)").From("interviews i"), preds)
	if err != nil {
		return "", nil, err
	}

	return b.ToSql()
}

func buildNeedingFeedback(userID int) (string, []any, error) {
	return postgres.Psql.
		Select(interviewColumns).
		From("interviews i").
		Where(sq.Or{
			sq.Eq{"i.submitter_id": userID},
			sq.Expr(`EXISTS (SELECT 1 FROM wishers w
                WHERE w.interview_id = i.id AND w.user_id = ? AND w.approve)`, userID),
		}).
		Where(sq.Expr(`NOT EXISTS (SELECT 1 FROM feedbacks f
                WHERE f.interview_id = i.id AND f.user_id = ?)`, userID)).
		OrderBy("i.created_at DESC", "i.id DESC").
		ToSql()
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func (r *Repo) query(ctx context.Context, op, query string, args ...any) ([]domain.Interview, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items, err := scanInterviews(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// scanInterviews returns an empty slice (not nil) when there are no rows.
func scanInterviews(rows pgx.Rows) ([]domain.Interview, error) {
	result := []domain.Interview{}
	for rows.Next() {
		in, err := scanInterview(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, in)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanInterview(row pgx.Row) (domain.Interview, error) {
	var (
		in        domain.Interview
		status    int
		createdAt time.Time
		topicID   *int
	)

	err := row.Scan(
		&in.ID, &in.Mode, &status, &in.SubmitterID, &in.AgreedWisherID, &in.Title,
		&in.Additional, &in.ContactBy, &in.ApproximateDate, &createdAt, &topicID,
		&in.Author, &in.CancelBy,
	)
	if err != nil {
		return domain.Interview{}, err
	}

	in.Status = domain.StatusOf(status)
	in.CreatedAt = createdAt
	in.TopicID = domain.NormalizeTopicID(topicID)

	return in, nil
}
