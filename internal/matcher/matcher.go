// Package matcher grades free-text answers against acceptable translations.
package matcher

import "github.com/Moiseysus/Itabot/internal/domain/entities"

// CloseMatchThreshold is the ratio an answer must exceed to be offered as a
// near miss.
const CloseMatchThreshold = 0.75

// Verdict classifies an answer.
type Verdict int

const (
	Incorrect Verdict = iota
	CloseMatch
	Correct
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case CloseMatch:
		return "close_match"
	default:
		return "incorrect"
	}
}

// Match is the result of Classify.
type Match struct {
	Verdict   Verdict
	Candidate string  // translation the answer matched or came closest to
	Ratio     float64 // best similarity ratio, 1 for exact matches
}

// Classify compares answer with every translation. translations are expected
// to be normalized already, as WordEntry guarantees.
func Classify(answer string, translations []string) Match {
	answer = entities.Normalize(answer)

	for _, t := range translations {
		if answer == t {
			return Match{Verdict: Correct, Candidate: t, Ratio: 1}
		}
	}

	best := Match{Verdict: Incorrect, Ratio: -1}
	for _, t := range translations {
		if r := Ratio(answer, t); r > best.Ratio {
			best.Ratio, best.Candidate = r, t
		}
	}
	if best.Ratio < 0 {
		return Match{Verdict: Incorrect}
	}

	if best.Ratio > CloseMatchThreshold {
		best.Verdict = CloseMatch
	}
	return best
}
