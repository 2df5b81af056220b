package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

// ProgressService records graded answers.
type ProgressService struct {
	repository ProgressRepository
	now        Clock
	logger     *zap.Logger
}

func NewProgressService(repository ProgressRepository, logger *zap.Logger) *ProgressService {
	return &ProgressService{repository: repository, now: time.Now, logger: logger}
}

// WithClock replaces the time source, for tests.
func (s *ProgressService) WithClock(now Clock) *ProgressService {
	s.now = now
	return s
}

// Update grades (userID, term). The returned entry reflects the update even
// when persisting it failed.
func (s *ProgressService) Update(ctx context.Context, userID int64, term string, correct bool) (entities.ProgressEntry, error) {
	p, err := s.repository.Update(ctx, userID, term, correct, s.now())
	if err != nil {
		s.logger.Error("failed to persist progress",
			zap.Int64("user_id", userID),
			zap.String("term", term),
			zap.Error(err),
		)
		return p, err
	}

	s.logger.Debug("progress updated",
		zap.Int64("user_id", userID),
		zap.String("term", term),
		zap.Bool("correct", correct),
		zap.Int("streak", p.Streak),
	)
	return p, nil
}
