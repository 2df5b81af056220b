package telegram

import (
	"context"
)

func (h *Handler) handleDaily(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		outcome, err := h.dailyService.RequestDailyWords(ctx, userID)
		if err != nil {
			return err
		}
		return h.send(renderOutcome(chatID, outcome))
	}
}

func (h *Handler) handleQuiz(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		outcome, err := h.quizService.StartQuiz(ctx, userID)
		if err != nil {
			return err
		}
		return h.send(renderOutcome(chatID, outcome))
	}
}

func (h *Handler) handleSkip(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		outcome, err := h.quizService.Skip(ctx, userID)
		return h.reply(chatID, outcome, err)
	}
}

func (h *Handler) handleAnswer(userID int64, text string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		outcome, err := h.quizService.SubmitAnswer(ctx, userID, text)
		return h.reply(chatID, outcome, err)
	}
}
