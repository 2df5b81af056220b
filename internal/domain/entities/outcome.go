package entities

// OutcomeKind enumerates the results the core hands to the transport.
type OutcomeKind string

const (
	OutcomeDailyWordList      OutcomeKind = "daily_word_list"
	OutcomeQuizPrompt         OutcomeKind = "quiz_prompt"
	OutcomeCorrect            OutcomeKind = "correct"
	OutcomeIncorrect          OutcomeKind = "incorrect"
	OutcomeConfirmationPrompt OutcomeKind = "confirmation_prompt"
	OutcomeReveal             OutcomeKind = "reveal"
	OutcomeNoActiveQuiz       OutcomeKind = "no_active_quiz"
	OutcomeSkipped            OutcomeKind = "skipped"
)

// Outcome is a single message-worthy result. Only the fields relevant to
// Kind are set.
type Outcome struct {
	Kind         OutcomeKind
	Term         string      // QuizPrompt, Correct, Incorrect, Reveal
	Translations []string    // Incorrect: every acceptable answer
	Candidate    string      // ConfirmationPrompt, Reveal
	QuizID       int64       // ConfirmationPrompt: question the buttons belong to
	Words        []WordEntry // DailyWordList
}

// Grade is a resolved answer that must be recorded.
type Grade struct {
	Term    string
	Correct bool
}
