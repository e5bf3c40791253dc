package wisher

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

type wisherRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Wisher, error)
	List(ctx context.Context) ([]domain.Wisher, error)
	ListByInterview(ctx context.Context, interviewID int) ([]domain.Wisher, error)
	CountApprovedPerUser(ctx context.Context) ([]domain.ApprovedCount, error)
	CountApprovedForUser(ctx context.Context, userID int) (domain.ApprovedCount, bool, error)

	Create(ctx context.Context, w *domain.Wisher) (*domain.Wisher, error)
	Update(ctx context.Context, w *domain.Wisher) (*domain.Wisher, error)
	Delete(ctx context.Context, id int) (int, error)
	SetApprove(ctx context.Context, interviewID, wisherID int, approve bool) (int, error)
}

type interviewRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Interview, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements wisher applications, approval and participation counts.
type Service struct {
	wishers    wisherRepo
	interviews interviewRepo
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Wisher service.
func NewService(
	log *slog.Logger,
	wishers wisherRepo,
	interviews interviewRepo,
	tx txManager,
) *Service {
	return &Service{
		wishers:    wishers,
		interviews: interviews,
		tx:         tx,
		log:        log.With("service", "wisher"),
	}
}
