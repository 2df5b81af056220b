package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

func TestTransition(t *testing.T) {
	gatto := word("gatto", "gatto", "micio")
	asking := entities.AwaitingAnswer{ID: 1, Term: "gatto", Translations: gatto.Translations}
	confirming := entities.AwaitingConfirmation{ID: 1, Term: "gatto", Translations: gatto.Translations, Candidate: "gatto"}

	tests := []struct {
		name        string
		state       entities.QuizState
		event       quizEvent
		wantState   entities.QuizState
		wantKind    entities.OutcomeKind
		wantGrade   *entities.Grade
		wantOutcome func(t *testing.T, o entities.Outcome)
	}{
		{
			name:      "start from idle",
			state:     entities.Idle{},
			event:     startQuizEvent{id: 1, word: gatto},
			wantState: asking,
			wantKind:  entities.OutcomeQuizPrompt,
		},
		{
			name:      "start replaces pending confirmation",
			state:     confirming,
			event:     startQuizEvent{id: 2, word: word("cane", "dog")},
			wantState: entities.AwaitingAnswer{ID: 2, Term: "cane", Translations: []string{"dog"}},
			wantKind:  entities.OutcomeQuizPrompt,
		},
		{
			name:      "correct answer",
			state:     asking,
			event:     submitAnswerEvent{text: " Micio "},
			wantState: entities.Idle{},
			wantKind:  entities.OutcomeCorrect,
			wantGrade: &entities.Grade{Term: "gatto", Correct: true},
		},
		{
			name:      "close match asks for confirmation",
			state:     asking,
			event:     submitAnswerEvent{text: "gatti"},
			wantState: confirming,
			wantKind:  entities.OutcomeConfirmationPrompt,
			wantOutcome: func(t *testing.T, o entities.Outcome) {
				assert.Equal(t, "gatto", o.Candidate)
				assert.Equal(t, int64(1), o.QuizID)
			},
		},
		{
			name:      "incorrect answer reveals all translations",
			state:     asking,
			event:     submitAnswerEvent{text: "dog"},
			wantState: entities.Idle{},
			wantKind:  entities.OutcomeIncorrect,
			wantGrade: &entities.Grade{Term: "gatto", Correct: false},
			wantOutcome: func(t *testing.T, o entities.Outcome) {
				assert.Equal(t, []string{"gatto", "micio"}, o.Translations)
			},
		},
		{
			name:      "confirm yes",
			state:     confirming,
			event:     confirmEvent{id: 1, accept: true},
			wantState: entities.Idle{},
			wantKind:  entities.OutcomeCorrect,
			wantGrade: &entities.Grade{Term: "gatto", Correct: true},
		},
		{
			name:      "confirm no reveals candidate",
			state:     confirming,
			event:     confirmEvent{id: 1, accept: false},
			wantState: entities.Idle{},
			wantKind:  entities.OutcomeReveal,
			wantGrade: &entities.Grade{Term: "gatto", Correct: false},
			wantOutcome: func(t *testing.T, o entities.Outcome) {
				assert.Equal(t, "gatto", o.Candidate)
			},
		},
		{
			name:      "confirm from a replaced question",
			state:     confirming,
			event:     confirmEvent{id: 7, accept: true},
			wantState: confirming,
			wantKind:  entities.OutcomeNoActiveQuiz,
		},
		{
			name:      "answer while confirming repeats the prompt",
			state:     confirming,
			event:     submitAnswerEvent{text: "gatto"},
			wantState: confirming,
			wantKind:  entities.OutcomeConfirmationPrompt,
			wantOutcome: func(t *testing.T, o entities.Outcome) {
				assert.Equal(t, int64(1), o.QuizID)
			},
		},
		{
			name:      "confirm while asking",
			state:     asking,
			event:     confirmEvent{id: 1, accept: true},
			wantState: asking,
			wantKind:  entities.OutcomeNoActiveQuiz,
		},
		{
			name:      "skip while asking",
			state:     asking,
			event:     skipEvent{},
			wantState: entities.Idle{},
			wantKind:  entities.OutcomeSkipped,
		},
		{
			name:      "skip while confirming",
			state:     confirming,
			event:     skipEvent{},
			wantState: entities.Idle{},
			wantKind:  entities.OutcomeSkipped,
		},
		{
			name:      "answer without quiz",
			state:     entities.Idle{},
			event:     submitAnswerEvent{text: "cat"},
			wantState: entities.Idle{},
			wantKind:  entities.OutcomeNoActiveQuiz,
		},
		{
			name:      "confirm without quiz",
			state:     entities.Idle{},
			event:     confirmEvent{id: 1, accept: true},
			wantState: entities.Idle{},
			wantKind:  entities.OutcomeNoActiveQuiz,
		},
		{
			name:      "skip without quiz",
			state:     entities.Idle{},
			event:     skipEvent{},
			wantState: entities.Idle{},
			wantKind:  entities.OutcomeNoActiveQuiz,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, outcome, grade := transition(tt.state, tt.event)

			assert.Equal(t, tt.wantState, next)
			assert.Equal(t, tt.wantKind, outcome.Kind)
			assert.Equal(t, tt.wantGrade, grade)
			if tt.wantOutcome != nil {
				tt.wantOutcome(t, outcome)
			}
		})
	}
}
