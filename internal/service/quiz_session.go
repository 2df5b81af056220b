package service

import (
	"github.com/Moiseysus/Itabot/internal/domain/entities"
	"github.com/Moiseysus/Itabot/internal/matcher"
)

// quizEvent is an inbound step of the quiz dialogue.
type quizEvent interface {
	quizEvent()
}

type startQuizEvent struct {
	id   int64
	word entities.WordEntry
}
type submitAnswerEvent struct{ text string }
type confirmEvent struct {
	id     int64 // question the button was shown for
	accept bool
}
type skipEvent struct{}

func (startQuizEvent) quizEvent()    {}
func (submitAnswerEvent) quizEvent() {}
func (confirmEvent) quizEvent()      {}
func (skipEvent) quizEvent()         {}

// transition applies ev to state. grade is non-nil when the question was
// resolved and must be recorded.
func transition(state entities.QuizState, ev quizEvent) (entities.QuizState, entities.Outcome, *entities.Grade) {
	switch ev := ev.(type) {
	case startQuizEvent:
		// Replaces whatever was pending.
		next := entities.AwaitingAnswer{ID: ev.id, Term: ev.word.Term, Translations: ev.word.Translations}
		return next, entities.Outcome{Kind: entities.OutcomeQuizPrompt, Term: ev.word.Term}, nil

	case submitAnswerEvent:
		switch st := state.(type) {
		case entities.AwaitingAnswer:
			return submitAnswer(st, ev.text)
		case entities.AwaitingConfirmation:
			// Still waiting for yes/no: ask again.
			return st, confirmationPrompt(st), nil
		}

	case confirmEvent:
		// Buttons of a replaced question must not resolve the current one.
		if st, ok := state.(entities.AwaitingConfirmation); ok && st.ID == ev.id {
			if ev.accept {
				return entities.Idle{},
					entities.Outcome{Kind: entities.OutcomeCorrect, Term: st.Term},
					&entities.Grade{Term: st.Term, Correct: true}
			}
			return entities.Idle{},
				entities.Outcome{Kind: entities.OutcomeReveal, Term: st.Term, Candidate: st.Candidate},
				&entities.Grade{Term: st.Term, Correct: false}
		}

	case skipEvent:
		if entities.IsActive(state) {
			return entities.Idle{}, entities.Outcome{Kind: entities.OutcomeSkipped}, nil
		}
	}

	return state, entities.Outcome{Kind: entities.OutcomeNoActiveQuiz}, nil
}

func submitAnswer(st entities.AwaitingAnswer, text string) (entities.QuizState, entities.Outcome, *entities.Grade) {
	m := matcher.Classify(text, st.Translations)

	switch m.Verdict {
	case matcher.Correct:
		return entities.Idle{},
			entities.Outcome{Kind: entities.OutcomeCorrect, Term: st.Term},
			&entities.Grade{Term: st.Term, Correct: true}

	case matcher.CloseMatch:
		next := entities.AwaitingConfirmation{ID: st.ID, Term: st.Term, Translations: st.Translations, Candidate: m.Candidate}
		return next, confirmationPrompt(next), nil

	default:
		return entities.Idle{},
			entities.Outcome{Kind: entities.OutcomeIncorrect, Term: st.Term, Translations: st.Translations},
			&entities.Grade{Term: st.Term, Correct: false}
	}
}

func confirmationPrompt(st entities.AwaitingConfirmation) entities.Outcome {
	return entities.Outcome{
		Kind:      entities.OutcomeConfirmationPrompt,
		Term:      st.Term,
		Candidate: st.Candidate,
		QuizID:    st.ID,
	}
}
