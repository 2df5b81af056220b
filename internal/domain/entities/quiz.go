package entities

// QuizState is the per-user quiz session. It is one of Idle,
// AwaitingAnswer or AwaitingConfirmation.
type QuizState interface {
	quizState()
}

// Idle means no question is open.
type Idle struct{}

// AwaitingAnswer holds the open question. ID is unique per started question
// and ties confirmation buttons to it.
type AwaitingAnswer struct {
	ID           int64
	Term         string
	Translations []string
}

// AwaitingConfirmation holds a near-miss waiting for a yes/no.
type AwaitingConfirmation struct {
	ID           int64
	Term         string
	Translations []string
	Candidate    string // translation the answer was close to
}

func (Idle) quizState()                 {}
func (AwaitingAnswer) quizState()       {}
func (AwaitingConfirmation) quizState() {}

// IsActive reports whether s holds an open question or confirmation.
func IsActive(s QuizState) bool {
	switch s.(type) {
	case AwaitingAnswer, AwaitingConfirmation:
		return true
	default:
		return false
	}
}
