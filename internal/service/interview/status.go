package interview

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

// UpdateStatus writes a new status code with a single statement. Unknown codes
// store the unknown status. A missing id or a storage failure yields false.
func (s *Service) UpdateStatus(ctx context.Context, id, statusCode int) bool {
	status := domain.StatusOf(statusCode)

	if err := s.interviews.UpdateStatus(ctx, id, status); err != nil {
		s.logWriteFailure(ctx, "interview status not updated", domain.Interview{ID: id}, err)
		return false
	}

	s.log.InfoContext(ctx, "interview status updated",
		slog.Int("interview_id", id),
		slog.String("status", status.String()),
	)

	return true
}
