package interview

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

// FindPaging returns one page of all interviews, newest first.
func (s *Service) FindPaging(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Interview], error) {
	page = s.normalizePage(page)

	items, total, err := s.interviews.ListPage(ctx, page)
	if err != nil {
		return domain.Page[domain.Interview]{}, fmt.Errorf("list interview page: %w", err)
	}

	return domain.NewPage(items, page, total), nil
}

// FindPagingRelated returns one page of the interviews a user submitted, was
// approved for, or can still apply to.
func (s *Service) FindPagingRelated(ctx context.Context, userID int, page domain.PageRequest) (domain.Page[domain.Interview], error) {
	page = s.normalizePage(page)

	items, total, err := s.interviews.ListRelatedPage(ctx, userID, page)
	if err != nil {
		return domain.Page[domain.Interview]{}, fmt.Errorf("list related interviews: %w", err)
	}

	return domain.NewPage(items, page, total), nil
}

// FindWithFilters returns one page of the interviews matching the params.
// Empty params list everything.
func (s *Service) FindWithFilters(ctx context.Context, params domain.FilterRequestParams, page domain.PageRequest) (domain.Page[domain.Interview], error) {
	page = s.normalizePage(page)
	preds := domain.BuildInterviewPredicates(params)

	items, total, err := s.interviews.ListFiltered(ctx, preds, page)
	if err != nil {
		return domain.Page[domain.Interview]{}, fmt.Errorf("list filtered interviews: %w", err)
	}

	return domain.NewPage(items, page, total), nil
}

// FindWithSavedFilter applies the filter the user saved. A user without a
// saved filter gets the unfiltered listing.
func (s *Service) FindWithSavedFilter(ctx context.Context, userID int, page domain.PageRequest) (domain.Page[domain.Interview], error) {
	var params domain.FilterRequestParams

	f, err := s.filters.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		params = f.RequestParams()
	case errors.Is(err, domain.ErrNotFound):
	default:
		return domain.Page[domain.Interview]{}, fmt.Errorf("get saved filter: %w", err)
	}

	return s.FindWithFilters(ctx, params, page)
}
