package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

// DueSelector picks the words a user should review today.
type DueSelector struct {
	vocabulary VocabularyRepository
	progress   ProgressRepository

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewDueSelector creates a DueSelector with a time-seeded random source.
func NewDueSelector(vocabulary VocabularyRepository, progress ProgressRepository) *DueSelector {
	return NewDueSelectorWithRand(vocabulary, progress, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewDueSelectorWithRand creates a DueSelector using rng for the randomized passes.
func NewDueSelectorWithRand(vocabulary VocabularyRepository, progress ProgressRepository, rng *rand.Rand) *DueSelector {
	return &DueSelector{
		vocabulary: vocabulary,
		progress:   progress,
		rng:        rng,
	}
}

// Select returns at most limit words for userID, and exactly limit whenever
// the vocabulary is large enough.
//
//  1. Reviewed words whose interval has elapsed, in vocabulary order.
//  2. Never seen words, shuffled.
//  3. Reviewed words that are not due yet, shuffled.
func (s *DueSelector) Select(ctx context.Context, userID int64, today time.Time, limit int) ([]entities.WordEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	words, err := s.vocabulary.All(ctx)
	if err != nil {
		return nil, err
	}
	progress := s.progress.UserProgress(ctx, userID)

	return s.selectFrom(words, progress, today, limit), nil
}

func (s *DueSelector) selectFrom(
	words []entities.WordEntry,
	progress map[string]entities.ProgressEntry,
	today time.Time,
	limit int,
) []entities.WordEntry {
	out := make([]entities.WordEntry, 0, min(limit, len(words)))
	taken := make(map[string]struct{}, limit)

	appendUntilLimit := func(candidates []entities.WordEntry) {
		for _, w := range candidates {
			if len(out) >= limit {
				return
			}
			if _, ok := taken[w.Term]; ok {
				continue
			}
			taken[w.Term] = struct{}{}
			out = append(out, w)
		}
	}

	// Only words with history. Never-seen words count as due as well but are
	// taken by the shuffled pass below, not in file order.
	due := lo.Filter(words, func(w entities.WordEntry, _ int) bool {
		p, ok := progress[w.Term]
		return ok && p.IsDue(today)
	})
	appendUntilLimit(due)
	if len(out) >= limit {
		return out
	}

	unseen := lo.Filter(words, func(w entities.WordEntry, _ int) bool {
		_, ok := progress[w.Term]
		return !ok
	})
	appendUntilLimit(s.shuffled(unseen))
	if len(out) >= limit {
		return out
	}

	reinforcement := lo.Filter(words, func(w entities.WordEntry, _ int) bool {
		_, ok := progress[w.Term]
		return ok
	})
	appendUntilLimit(s.shuffled(reinforcement))

	return out
}

// shuffled returns a shuffled copy of the input slice.
func (s *DueSelector) shuffled(in []entities.WordEntry) []entities.WordEntry {
	out := append([]entities.WordEntry(nil), in...)

	s.mu.Lock()
	s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	s.mu.Unlock()

	return out
}
