package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
	"github.com/Moiseysus/Itabot/internal/repository"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			_ = h.send(newPlainMessage(chatID, errorText(err)))
			return nil
		}
		return nil
	}
}

// reply delivers outcome for quiz steps. A failed save still yields a verdict,
// which is sent before the error is handed on.
func (h *Handler) reply(chatID int64, outcome entities.Outcome, err error) error {
	if err != nil && !errors.Is(err, repository.ErrPersist) {
		return err
	}
	if sendErr := h.send(renderOutcome(chatID, outcome)); sendErr != nil {
		return sendErr
	}
	return err
}

func errorText(err error) string {
	switch {
	case errors.Is(err, repository.ErrPersist):
		return msgProgressNotSaved
	case errors.Is(err, repository.ErrVocabularyEmpty):
		return msgNoWords
	default:
		return msgInternalError
	}
}
