package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

// WordSelector picks the review list.
type WordSelector interface {
	Select(ctx context.Context, userID int64, today time.Time, limit int) ([]entities.WordEntry, error)
}

// DailyWordsService answers RequestDailyWords.
type DailyWordsService struct {
	selector WordSelector
	limit    int
	location *time.Location
	now      Clock
}

func NewDailyWordsService(selector WordSelector, limit int, location *time.Location) *DailyWordsService {
	if location == nil {
		location = time.UTC
	}
	return &DailyWordsService{
		selector: selector,
		limit:    limit,
		location: location,
		now:      time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (s *DailyWordsService) WithClock(now Clock) *DailyWordsService {
	s.now = now
	return s
}

// RequestDailyWords returns today's review list for userID. Today is taken in
// the configured timezone.
func (s *DailyWordsService) RequestDailyWords(ctx context.Context, userID int64) (entities.Outcome, error) {
	today := s.now().In(s.location)

	words, err := s.selector.Select(ctx, userID, today, s.limit)
	if err != nil {
		return entities.Outcome{}, fmt.Errorf("select daily words: %w", err)
	}

	return entities.Outcome{Kind: entities.OutcomeDailyWordList, Words: words}, nil
}
