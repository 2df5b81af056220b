package telegram

import (
	"context"
	"fmt"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

// SendDailyWords delivers a scheduled daily list.
func (h *Handler) SendDailyWords(_ context.Context, chatID int64, outcome entities.Outcome) error {
	if outcome.Kind != entities.OutcomeDailyWordList {
		return fmt.Errorf("unexpected outcome %q for daily broadcast", outcome.Kind)
	}
	return h.send(renderOutcome(chatID, outcome))
}
