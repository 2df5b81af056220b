package telegram

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Remove the user's "clock".
	defer func() {
		if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			h.logger.Warn("callback answer error", zap.Error(err))
		}
	}()

	if cb.Message == nil || cb.From == nil {
		return
	}

	data := decodeCallback(cb.Data)
	switch data.Action {
	case actionConfirm:
		_ = h.withErrorHandling(h.handleConfirm(cb.From.ID, cb.Message.MessageID, data))(ctx, cb.Message.Chat.ID)
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
	}
}

func (h *Handler) handleConfirm(userID int64, messageID int, data callbackData) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if len(data.Params) != 2 || (data.Params[0] != confirmYes && data.Params[0] != confirmNo) {
			return fmt.Errorf("invalid confirm callback %q", data.Raw)
		}
		quizID, err := strconv.ParseInt(data.Params[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid confirm callback %q: %w", data.Raw, err)
		}

		// Drop the buttons so the same prompt cannot be answered twice.
		h.removeKeyboard(chatID, messageID)

		outcome, err := h.quizService.Confirm(ctx, userID, quizID, data.Params[0] == confirmYes)
		return h.reply(chatID, outcome, err)
	}
}

func (h *Handler) removeKeyboard(chatID int64, messageID int) {
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	})
	if _, err := h.bot.Request(edit); err != nil {
		h.logger.Debug("failed to remove keyboard", zap.Error(err))
	}
}
