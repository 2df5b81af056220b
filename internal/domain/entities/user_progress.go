package entities

import "time"

// MaxStreak is the top rung of the review ladder.
const MaxStreak = 2

// ProgressEntry stores the review history of one user for one term.
type ProgressEntry struct {
	Streak   int        `json:"streak"`    // consecutive correct answers, 0..MaxStreak
	LastSeen *time.Time `json:"last_seen"` // nil when never graded
}

// DelayDays returns how many days after LastSeen the term becomes due again.
func (p ProgressEntry) DelayDays() int {
	switch {
	case p.Streak <= 0:
		return 1
	case p.Streak == 1:
		return 2
	default:
		return 3
	}
}

// IsDue reports whether the entry should be reviewed on today's date.
// Dates are compared as calendar days in today's location.
func (p ProgressEntry) IsDue(today time.Time) bool {
	if p.LastSeen == nil {
		return true
	}

	seen := dateOf(p.LastSeen.In(today.Location()))
	due := seen.AddDate(0, 0, p.DelayDays())
	return !due.After(dateOf(today))
}

// Grade applies a graded answer at now.
func (p *ProgressEntry) Grade(correct bool, now time.Time) {
	if correct {
		p.Streak = min(p.Streak+1, MaxStreak)
	} else {
		p.Streak = 0
	}
	p.Streak = max(p.Streak, 0)

	seen := now
	p.LastSeen = &seen
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ProgressSnapshot maps user ID to term to review history.
type ProgressSnapshot map[int64]map[string]ProgressEntry

// Clone returns a deep copy, timestamps included.
func (s ProgressSnapshot) Clone() ProgressSnapshot {
	out := make(ProgressSnapshot, len(s))
	for userID, terms := range s {
		out[userID] = cloneTerms(terms)
	}
	return out
}

func cloneTerms(terms map[string]ProgressEntry) map[string]ProgressEntry {
	out := make(map[string]ProgressEntry, len(terms))
	for term, entry := range terms {
		if entry.LastSeen != nil {
			ts := *entry.LastSeen
			entry.LastSeen = &ts
		}
		out[term] = entry
	}
	return out
}

// User returns a deep copy of one user's entries, never nil.
func (s ProgressSnapshot) User(userID int64) map[string]ProgressEntry {
	return cloneTerms(s[userID])
}
