package interview

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes the interview together with its wishers. Deleting a missing
// id is not an error.
func (s *Service) Delete(ctx context.Context, id int) error {
	n, err := s.interviews.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete interview: %w", err)
	}

	if n > 0 {
		s.log.InfoContext(ctx, "interview deleted", slog.Int("interview_id", id))
	}

	return nil
}
