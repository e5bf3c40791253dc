package interview

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

type interviewRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Interview, error)
	List(ctx context.Context) ([]domain.Interview, error)
	ListPage(ctx context.Context, page domain.PageRequest) ([]domain.Interview, int, error)
	ListByMode(ctx context.Context, mode int) ([]domain.Interview, error)
	ListByStatus(ctx context.Context, status domain.InterviewStatus) ([]domain.Interview, error)
	ListLatestByStatus(ctx context.Context, status domain.InterviewStatus, limit int) ([]domain.Interview, error)
	ListRelatedPage(ctx context.Context, userID int, page domain.PageRequest) ([]domain.Interview, int, error)
	ListFiltered(ctx context.Context, preds domain.Predicates, page domain.PageRequest) ([]domain.Interview, int, error)
	ListNeedingFeedback(ctx context.Context, userID int) ([]domain.Interview, error)

	Create(ctx context.Context, in *domain.Interview) (*domain.Interview, error)
	Update(ctx context.Context, in *domain.Interview) (*domain.Interview, error)
	UpdateStatus(ctx context.Context, id int, status domain.InterviewStatus) error
	Delete(ctx context.Context, id int) (int, error)
}

type filterRepo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Filter, error)
}

// Config holds the listing limits of the interview service.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
	LastLimit       int
}

// Service implements interview persistence and search.
type Service struct {
	interviews interviewRepo
	filters    filterRepo
	cfg        Config
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new Interview service.
func NewService(
	log *slog.Logger,
	interviews interviewRepo,
	filters filterRepo,
	cfg Config,
) *Service {
	return &Service{
		interviews: interviews,
		filters:    filters,
		cfg:        cfg,
		now:        time.Now,
		log:        log.With("service", "interview"),
	}
}

func (s *Service) normalizePage(page domain.PageRequest) domain.PageRequest {
	return page.Normalize(s.cfg.DefaultPageSize, s.cfg.MaxPageSize)
}
