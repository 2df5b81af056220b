package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

func word(term string, translations ...string) entities.WordEntry {
	return entities.WordEntry{Term: term, Translations: translations, RawTranslation: translations[0]}
}

type fakeVocabulary struct {
	words  []entities.WordEntry
	random int // index Random returns
	err    error
}

func (v *fakeVocabulary) All(context.Context) ([]entities.WordEntry, error) {
	return v.words, v.err
}

func (v *fakeVocabulary) Random(context.Context) (entities.WordEntry, error) {
	if v.err != nil {
		return entities.WordEntry{}, v.err
	}
	if len(v.words) == 0 {
		return entities.WordEntry{}, errors.New("empty")
	}
	return v.words[v.random], nil
}

type fakeProgress struct {
	mu      sync.Mutex
	entries map[int64]map[string]entities.ProgressEntry
	updates int
	err     error
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{entries: map[int64]map[string]entities.ProgressEntry{}}
}

func (p *fakeProgress) set(userID int64, term string, e entities.ProgressEntry) {
	if p.entries[userID] == nil {
		p.entries[userID] = map[string]entities.ProgressEntry{}
	}
	p.entries[userID][term] = e
}

func (p *fakeProgress) UserProgress(_ context.Context, userID int64) map[string]entities.ProgressEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return entities.ProgressSnapshot(p.entries).User(userID)
}

func (p *fakeProgress) Update(_ context.Context, userID int64, term string, correct bool, now time.Time) (entities.ProgressEntry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	e := p.entries[userID][term]
	e.Grade(correct, now)
	p.set(userID, term, e)
	p.updates++
	return e, p.err
}

func (p *fakeProgress) get(userID int64, term string) entities.ProgressEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.entries[userID][term]
}

func daysAgo(today time.Time, n int) *time.Time {
	ts := today.AddDate(0, 0, -n)
	return &ts
}
