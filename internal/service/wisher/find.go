package wisher

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

// FindByID returns the wisher and true, or false when it does not exist.
func (s *Service) FindByID(ctx context.Context, id int) (*domain.Wisher, bool, error) {
	w, err := s.wishers.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get wisher: %w", err)
	}
	return w, true, nil
}

// FindAll returns every wisher.
func (s *Service) FindAll(ctx context.Context) ([]domain.Wisher, error) {
	items, err := s.wishers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wishers: %w", err)
	}
	return items, nil
}

// FindByInterview returns the wishers of one interview.
func (s *Service) FindByInterview(ctx context.Context, interviewID int) ([]domain.Wisher, error) {
	items, err := s.wishers.ListByInterview(ctx, interviewID)
	if err != nil {
		return nil, fmt.Errorf("list wishers by interview: %w", err)
	}
	return items, nil
}

// CountApprovedPerUser returns the approved participation count of every user
// that has one.
func (s *Service) CountApprovedPerUser(ctx context.Context) ([]domain.ApprovedCount, error) {
	counts, err := s.wishers.CountApprovedPerUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("count approved per user: %w", err)
	}
	return counts, nil
}

// CountApprovedForUser returns the user's approved participation count, which
// is zero when the user was never approved.
func (s *Service) CountApprovedForUser(ctx context.Context, userID int) (domain.ApprovedCount, error) {
	count, ok, err := s.wishers.CountApprovedForUser(ctx, userID)
	if err != nil {
		return domain.ApprovedCount{}, fmt.Errorf("count approved for user: %w", err)
	}
	if !ok {
		return domain.ApprovedCount{UserID: userID}, nil
	}
	return count, nil
}
