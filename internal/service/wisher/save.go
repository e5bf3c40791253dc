package wisher

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

// Save records an application to an interview. The interview must exist.
// Rejected rows and storage failures are logged and reported as false.
func (s *Service) Save(ctx context.Context, w domain.Wisher) (*domain.Wisher, bool) {
	var saved *domain.Wisher

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.interviews.GetByID(txCtx, w.InterviewID); err != nil {
			return fmt.Errorf("get interview: %w", err)
		}

		created, err := s.wishers.Create(txCtx, &w)
		if err != nil {
			return fmt.Errorf("create wisher: %w", err)
		}
		saved = created
		return nil
	})
	if err != nil {
		s.logWriteFailure(ctx, "wisher not saved", w, err)
		return nil, false
	}

	s.log.InfoContext(ctx, "wisher saved",
		slog.Int("wisher_id", saved.ID),
		slog.Int("interview_id", saved.InterviewID),
		slog.Int("user_id", saved.UserID),
	)

	return saved, true
}

// Update overwrites a wisher and reports whether it succeeded.
func (s *Service) Update(ctx context.Context, w domain.Wisher) bool {
	if _, err := s.wishers.Update(ctx, &w); err != nil {
		s.logWriteFailure(ctx, "wisher not updated", w, err)
		return false
	}
	return true
}

// Delete removes a wisher if it exists and reports whether one was deleted.
// The interview it applied to is left untouched.
func (s *Service) Delete(ctx context.Context, id int) (bool, error) {
	n, err := s.wishers.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete wisher: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	s.log.InfoContext(ctx, "wisher deleted", slog.Int("wisher_id", id))
	return true, nil
}

// SetApprove sets the approve flag of the wisher with both ids. A pair that
// matches no row is a silent no-op; only storage failures are returned.
func (s *Service) SetApprove(ctx context.Context, interviewID, wisherID int, approve bool) error {
	n, err := s.wishers.SetApprove(ctx, interviewID, wisherID, approve)
	if err != nil {
		return fmt.Errorf("set wisher approve: %w", err)
	}

	s.log.DebugContext(ctx, "wisher approve set",
		slog.Int("interview_id", interviewID),
		slog.Int("wisher_id", wisherID),
		slog.Bool("approve", approve),
		slog.Int("rows", n),
	)

	return nil
}

func (s *Service) logWriteFailure(ctx context.Context, msg string, w domain.Wisher, err error) {
	attrs := []any{
		slog.Int("wisher_id", w.ID),
		slog.Int("interview_id", w.InterviewID),
		slog.String("error", err.Error()),
	}
	if domain.IsIntegrityViolation(err) {
		s.log.WarnContext(ctx, msg, attrs...)
		return
	}
	s.log.ErrorContext(ctx, msg, attrs...)
}
