package testhelper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

// Tests in one process share the database, so every test draws its own user ids.
var lastUserID atomic.Int64

func init() {
	lastUserID.Store(time.Now().UnixNano() % 1_000_000 * 1000)
}

// UniqueUserID returns a user id no other test in this process has used.
func UniqueUserID() int {
	return int(lastUserID.Add(1))
}

// InterviewOption customizes a seeded interview.
type InterviewOption func(*domain.Interview)

func WithStatus(s domain.InterviewStatus) InterviewOption {
	return func(i *domain.Interview) { i.Status = s }
}

func WithMode(mode int) InterviewOption {
	return func(i *domain.Interview) { i.Mode = mode }
}

func WithTopic(topicID int) InterviewOption {
	return func(i *domain.Interview) { i.TopicID = topicID }
}

func WithAgreedWisher(userID int) InterviewOption {
	return func(i *domain.Interview) { i.AgreedWisherID = userID }
}

func WithCreatedAt(t time.Time) InterviewOption {
	return func(i *domain.Interview) { i.CreatedAt = t }
}

// SeedInterview inserts an interview owned by submitterID. Defaults: status New,
// mode 1, topic 1, created now (minute precision).
func SeedInterview(t *testing.T, pool *pgxpool.Pool, submitterID int, opts ...InterviewOption) domain.Interview {
	t.Helper()

	in := domain.Interview{
		Mode:            1,
		Status:          domain.StatusNew,
		SubmitterID:     submitterID,
		Title:           "Mock interview",
		Additional:      "Go backend",
		ContactBy:       "telegram",
		ApproximateDate: "next week",
		CreatedAt:       domain.TruncateToMinute(time.Now().UTC()),
		TopicID:         1,
		Author:          "author",
	}
	for _, opt := range opts {
		opt(&in)
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO interviews (mode, status, submitter_id, agreed_wisher_id, title, additional,
		                         contact_by, approximate_date, created_at, topic_id, author, cancel_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id`,
		in.Mode, in.Status.Code(), in.SubmitterID, in.AgreedWisherID, in.Title, in.Additional,
		in.ContactBy, in.ApproximateDate, in.CreatedAt, in.TopicID, in.Author, in.CancelBy,
	).Scan(&in.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedInterview: %v", err)
	}

	return in
}

// SeedWisher inserts a wisher row for the interview.
func SeedWisher(t *testing.T, pool *pgxpool.Pool, interviewID, userID int, approve bool) domain.Wisher {
	t.Helper()

	w := domain.Wisher{
		InterviewID: interviewID,
		UserID:      userID,
		ContactBy:   "email",
		Approve:     approve,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO wishers (interview_id, user_id, contact_by, approve)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		w.InterviewID, w.UserID, w.ContactBy, w.Approve,
	).Scan(&w.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedWisher: %v", err)
	}

	return w
}

// SeedFeedback records that userID left feedback on the interview.
func SeedFeedback(t *testing.T, pool *pgxpool.Pool, interviewID, userID int) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO feedbacks (interview_id, user_id, text) VALUES ($1, $2, $3)`,
		interviewID, userID, "well done",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFeedback: %v", err)
	}
}
