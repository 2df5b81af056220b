package service

import (
	"context"
	"time"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

// VocabularyRepository is the read-only word list.
type VocabularyRepository interface {
	All(ctx context.Context) ([]entities.WordEntry, error)
	Random(ctx context.Context) (entities.WordEntry, error)
}

// ProgressRepository reads and grades review history.
type ProgressRepository interface {
	UserProgress(ctx context.Context, userID int64) map[string]entities.ProgressEntry
	Update(ctx context.Context, userID int64, term string, correct bool, now time.Time) (entities.ProgressEntry, error)
}

// SessionStorage holds the per-user quiz state.
type SessionStorage interface {
	Get(userID int64) entities.QuizState
	Update(userID int64, fn func(entities.QuizState) entities.QuizState)
}

// DailyNotifier delivers the scheduled daily list.
type DailyNotifier interface {
	SendDailyWords(ctx context.Context, chatID int64, outcome entities.Outcome) error
}

// Clock returns the current time.
type Clock func() time.Time
