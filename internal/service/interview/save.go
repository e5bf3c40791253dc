package interview

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/mockinterview-backend/internal/domain"
)

// Save stamps the creation time and persists the interview. It reports false
// instead of an error when the store rejects the row; the failure is logged.
func (s *Service) Save(ctx context.Context, in domain.Interview) (*domain.Interview, bool) {
	s.prepare(&in)

	var (
		saved *domain.Interview
		err   error
	)
	if in.ID > 0 {
		saved, err = s.interviews.Update(ctx, &in)
	} else {
		saved, err = s.interviews.Create(ctx, &in)
	}
	if err != nil {
		s.logWriteFailure(ctx, "interview not saved", in, err)
		return nil, false
	}

	s.log.InfoContext(ctx, "interview saved",
		slog.Int("interview_id", saved.ID),
		slog.Int("submitter_id", saved.SubmitterID),
	)

	return saved, true
}

// Update behaves like Save and reports only whether it succeeded.
func (s *Service) Update(ctx context.Context, in domain.Interview) bool {
	_, ok := s.Save(ctx, in)
	return ok
}

func (s *Service) prepare(in *domain.Interview) {
	in.CreatedAt = domain.TruncateToMinute(s.now().UTC())
	in.Status = domain.StatusOf(in.Status.Code())
	if in.TopicID <= 0 {
		in.TopicID = domain.DefaultTopicID
	}
}

func (s *Service) logWriteFailure(ctx context.Context, msg string, in domain.Interview, err error) {
	attrs := []any{
		slog.Int("interview_id", in.ID),
		slog.String("error", err.Error()),
	}
	if domain.IsIntegrityViolation(err) {
		s.log.WarnContext(ctx, msg, attrs...)
		return
	}
	s.log.ErrorContext(ctx, msg, attrs...)
}
