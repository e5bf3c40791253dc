package interview

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

// FindByID returns the interview and true, or false when it does not exist.
func (s *Service) FindByID(ctx context.Context, id int) (*domain.Interview, bool, error) {
	in, err := s.interviews.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get interview: %w", err)
	}
	return in, true, nil
}

// FindAll returns every interview, newest first.
func (s *Service) FindAll(ctx context.Context) ([]domain.Interview, error) {
	items, err := s.interviews.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	return items, nil
}

// FindLast returns the most recent new interviews.
func (s *Service) FindLast(ctx context.Context) ([]domain.Interview, error) {
	items, err := s.interviews.ListLatestByStatus(ctx, domain.StatusNew, s.cfg.LastLimit)
	if err != nil {
		return nil, fmt.Errorf("list latest interviews: %w", err)
	}
	return items, nil
}

// FindNew returns every interview still waiting for participants.
func (s *Service) FindNew(ctx context.Context) ([]domain.Interview, error) {
	items, err := s.interviews.ListByStatus(ctx, domain.StatusNew)
	if err != nil {
		return nil, fmt.Errorf("list new interviews: %w", err)
	}
	return items, nil
}

// FindByMode returns the interviews of one mode.
func (s *Service) FindByMode(ctx context.Context, mode int) ([]domain.Interview, error) {
	items, err := s.interviews.ListByMode(ctx, mode)
	if err != nil {
		return nil, fmt.Errorf("list interviews by mode: %w", err)
	}
	return items, nil
}

// FindNeedingFeedback returns the interviews the user submitted or was
// approved for and has not left feedback on yet.
func (s *Service) FindNeedingFeedback(ctx context.Context, userID int) ([]domain.Interview, error) {
	items, err := s.interviews.ListNeedingFeedback(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list interviews needing feedback: %w", err)
	}
	return items, nil
}
