package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// buildConfirmKeyboard builds the yes/no keyboard for a close match.
func buildConfirmKeyboard(quizID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnYes, buildConfirmCallback(quizID, true)),
			tgbotapi.NewInlineKeyboardButtonData(btnNo, buildConfirmCallback(quizID, false)),
		),
	)
}
