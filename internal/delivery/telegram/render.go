package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

// renderOutcome turns a core outcome into a Telegram message.
func renderOutcome(chatID int64, o entities.Outcome) tgbotapi.MessageConfig {
	switch o.Kind {
	case entities.OutcomeDailyWordList:
		return newPlainMessage(chatID, formatDailyWords(o.Words))

	case entities.OutcomeQuizPrompt:
		return newPlainMessage(chatID, formatQuizPrompt(o.Term))

	case entities.OutcomeCorrect:
		return newPlainMessage(chatID, msgCorrect)

	case entities.OutcomeIncorrect:
		return newPlainMessage(chatID, formatIncorrect(o.Translations))

	case entities.OutcomeConfirmationPrompt:
		msg := newPlainMessage(chatID, formatConfirm(o.Candidate))
		msg.ReplyMarkup = buildConfirmKeyboard(o.QuizID)
		return msg

	case entities.OutcomeReveal:
		return newPlainMessage(chatID, formatReveal(o.Candidate))

	case entities.OutcomeSkipped:
		return newPlainMessage(chatID, msgSkipped)

	default:
		return newPlainMessage(chatID, msgNoActiveQuiz)
	}
}
