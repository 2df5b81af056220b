// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

const (
	msgWelcome        = "Ciao! אני הבוט שלך ללימוד איטלקית. שלח /daily למילים יומיות או /quiz לחידון."
	msgUnknownCommand = "פקודה לא מוכרת. שלח /daily למילים יומיות, /quiz לחידון או /skip כדי לדלג."
	msgDailyHeader    = "המילים שלך להיום:"
	msgQuizPrompt     = "מה הפירוש של: %s?"
	msgCorrect        = "נכון! כל הכבוד."
	msgIncorrect      = "לא בדיוק... הפירוש הוא: %s"
	msgConfirm        = "האם התכוונת ל: %s?"
	msgReveal         = "התשובה הנכונה היא: %s"
	msgNoActiveQuiz   = "שלח /quiz כדי להתחיל חידון או /daily למילים יומיות."
	msgSkipped        = "החידון בוטל."
)

// Error messages.
const (
	msgInternalError    = "משהו השתבש. נסה שוב מאוחר יותר."
	msgProgressNotSaved = "ההתקדמות לא נשמרה, ננסה שוב בפעם הבאה."
	msgNoWords          = "אין מילים זמינות כרגע."
)

// Button labels.
const (
	btnYes = "כן"
	btnNo  = "לא"
)

func formatDailyWords(words []entities.WordEntry) string {
	if len(words) == 0 {
		return msgNoWords
	}

	lines := lo.Map(words, func(w entities.WordEntry, i int) string {
		return fmt.Sprintf("%d. %s – %s", i+1, w.Term, w.RawTranslation)
	})
	return msgDailyHeader + "\n" + strings.Join(lines, "\n")
}

func formatQuizPrompt(term string) string {
	return fmt.Sprintf(msgQuizPrompt, term)
}

func formatIncorrect(translations []string) string {
	return fmt.Sprintf(msgIncorrect, strings.Join(translations, ", "))
}

func formatConfirm(candidate string) string {
	return fmt.Sprintf(msgConfirm, candidate)
}

func formatReveal(candidate string) string {
	return fmt.Sprintf(msgReveal, candidate)
}
