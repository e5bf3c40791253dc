package filter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

type filterRepo interface {
	Upsert(ctx context.Context, f *domain.Filter) (*domain.Filter, error)
	GetByUserID(ctx context.Context, userID int) (*domain.Filter, error)
	DeleteByUserID(ctx context.Context, userID int) (int, error)
}

// Service manages the saved interview filter of each user.
type Service struct {
	filters filterRepo
	log     *slog.Logger
}

// NewService creates a new Filter service.
func NewService(log *slog.Logger, filters filterRepo) *Service {
	return &Service{
		filters: filters,
		log:     log.With("service", "filter"),
	}
}

// Save stores the user's filter, replacing the previous one.
func (s *Service) Save(ctx context.Context, f domain.Filter) (*domain.Filter, error) {
	if err := validate(f); err != nil {
		return nil, err
	}

	saved, err := s.filters.Upsert(ctx, &f)
	if err != nil {
		return nil, fmt.Errorf("save filter: %w", err)
	}

	s.log.InfoContext(ctx, "filter saved",
		slog.Int("user_id", saved.UserID),
		slog.Int("profile", int(saved.Profile)),
	)

	return saved, nil
}

// FindByUserID returns the user's filter and true, or false when none is saved.
func (s *Service) FindByUserID(ctx context.Context, userID int) (*domain.Filter, bool, error) {
	f, err := s.filters.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get filter: %w", err)
	}
	return f, true, nil
}

// DeleteByUserID removes the user's filter and returns how many rows went away.
func (s *Service) DeleteByUserID(ctx context.Context, userID int) (int, error) {
	n, err := s.filters.DeleteByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("delete filter: %w", err)
	}
	return n, nil
}

// Profiles returns the selectable filter profiles.
func (s *Service) Profiles() []domain.FilterProfile {
	return domain.FilterProfiles()
}

func validate(f domain.Filter) error {
	var errs []domain.FieldError
	if f.UserID <= 0 {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if f.Profile != domain.FilterProfileNone && !f.Profile.IsValid() {
		errs = append(errs, domain.FieldError{Field: "filterProfile", Message: "unknown profile"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
