package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

// ErrPersist marks a failed write of the progress snapshot. The in-memory
// state already holds the update when it is returned.
var ErrPersist = errors.New("persist progress")

// ProgressPersister reads and rewrites the whole progress store.
type ProgressPersister interface {
	// Load returns the stored snapshot, or an empty one when nothing was saved yet.
	Load(ctx context.Context) (entities.ProgressSnapshot, error)
	// Save replaces everything stored with snapshot.
	Save(ctx context.Context, snapshot entities.ProgressSnapshot) error
}

// ProgressStore keeps review history in memory and writes all of it through
// the persister after each update. Updates are serialized, persist included,
// so concurrent grading of the same term never loses a write.
type ProgressStore struct {
	persister ProgressPersister

	mu       sync.Mutex
	snapshot entities.ProgressSnapshot
	dirty    bool // last Save failed
}

// NewProgressStore loads the persisted snapshot.
func NewProgressStore(ctx context.Context, persister ProgressPersister) (*ProgressStore, error) {
	snapshot, err := persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if snapshot == nil {
		snapshot = entities.ProgressSnapshot{}
	}

	return &ProgressStore{
		persister: persister,
		snapshot:  snapshot,
	}, nil
}

// UserProgress returns a copy of every entry the user has.
func (s *ProgressStore) UserProgress(_ context.Context, userID int64) map[string]entities.ProgressEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot.User(userID)
}

// Update grades (userID, term) at now and persists the whole store.
func (s *ProgressStore) Update(ctx context.Context, userID int64, term string, correct bool, now time.Time) (entities.ProgressEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	terms, ok := s.snapshot[userID]
	if !ok {
		terms = make(map[string]entities.ProgressEntry)
		s.snapshot[userID] = terms
	}

	p := terms[term]
	p.Grade(correct, now)
	terms[term] = p

	if err := s.persistLocked(ctx); err != nil {
		return p, err
	}
	return p, nil
}

// Close writes the store once more if the last write failed.
func (s *ProgressStore) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}
	return s.persistLocked(ctx)
}

func (s *ProgressStore) persistLocked(ctx context.Context) error {
	if err := s.persister.Save(ctx, s.snapshot.Clone()); err != nil {
		s.dirty = true
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	s.dirty = false
	return nil
}
