package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

// ProgressUpdater records a resolved answer.
type ProgressUpdater interface {
	Update(ctx context.Context, userID int64, term string, correct bool) (entities.ProgressEntry, error)
}

// QuizService drives the per-user quiz dialogue.
type QuizService struct {
	vocabulary VocabularyRepository
	sessions   SessionStorage
	progress   ProgressUpdater
	logger     *zap.Logger
	lastID     atomic.Int64
}

func NewQuizService(
	vocabulary VocabularyRepository,
	sessions SessionStorage,
	progress ProgressUpdater,
	logger *zap.Logger,
) *QuizService {
	s := &QuizService{
		vocabulary: vocabulary,
		sessions:   sessions,
		progress:   progress,
		logger:     logger,
	}
	// Seeded from the clock so buttons sent before a restart never match.
	s.lastID.Store(time.Now().UnixNano())
	return s
}

// StartQuiz asks a random word from the whole vocabulary. Any pending
// question or confirmation of the user is discarded.
func (s *QuizService) StartQuiz(ctx context.Context, userID int64) (entities.Outcome, error) {
	word, err := s.vocabulary.Random(ctx)
	if err != nil {
		return entities.Outcome{}, fmt.Errorf("pick quiz word: %w", err)
	}

	if entities.IsActive(s.sessions.Get(userID)) {
		s.logger.Debug("replacing active quiz", zap.Int64("user_id", userID))
	}

	return s.apply(ctx, userID, startQuizEvent{id: s.lastID.Add(1), word: word})
}

// SubmitAnswer grades a free-text answer.
func (s *QuizService) SubmitAnswer(ctx context.Context, userID int64, text string) (entities.Outcome, error) {
	return s.apply(ctx, userID, submitAnswerEvent{text: text})
}

// Confirm resolves the pending close match of question quizID. A quizID that
// is not the pending one yields a NoActiveQuiz outcome.
func (s *QuizService) Confirm(ctx context.Context, userID, quizID int64, accept bool) (entities.Outcome, error) {
	return s.apply(ctx, userID, confirmEvent{id: quizID, accept: accept})
}

// Skip drops the active question without grading it.
func (s *QuizService) Skip(ctx context.Context, userID int64) (entities.Outcome, error) {
	return s.apply(ctx, userID, skipEvent{})
}

// apply runs one transition. The outcome is returned even when recording
// the grade failed.
func (s *QuizService) apply(ctx context.Context, userID int64, ev quizEvent) (entities.Outcome, error) {
	var (
		outcome entities.Outcome
		grade   *entities.Grade
	)
	s.sessions.Update(userID, func(cur entities.QuizState) entities.QuizState {
		var next entities.QuizState
		next, outcome, grade = transition(cur, ev)
		return next
	})

	s.logger.Debug("quiz step",
		zap.Int64("user_id", userID),
		zap.String("outcome", string(outcome.Kind)),
	)

	if grade == nil {
		return outcome, nil
	}

	if _, err := s.progress.Update(ctx, userID, grade.Term, grade.Correct); err != nil {
		return outcome, fmt.Errorf("record answer: %w", err)
	}
	return outcome, nil
}
