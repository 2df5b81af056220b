package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

// DailyWordsProvider builds the daily list for a user.
type DailyWordsProvider interface {
	RequestDailyWords(ctx context.Context, userID int64) (entities.Outcome, error)
}

// BroadcastService pushes the daily list to the configured chats on a cron schedule.
type BroadcastService struct {
	daily    DailyWordsProvider
	notifier DailyNotifier
	spec     string
	location *time.Location
	chatIDs  []int64
	logger   *zap.Logger
}

func NewBroadcastService(
	daily DailyWordsProvider,
	spec string,
	location *time.Location,
	chatIDs []int64,
	logger *zap.Logger,
) *BroadcastService {
	if location == nil {
		location = time.UTC
	}
	return &BroadcastService{
		daily:    daily,
		spec:     spec,
		location: location,
		chatIDs:  chatIDs,
		logger:   logger,
	}
}

// SetNotifier sets the notifier (called after handler is created).
func (s *BroadcastService) SetNotifier(notifier DailyNotifier) {
	s.notifier = notifier
}

// Start registers the cron job and blocks until ctx is done.
func (s *BroadcastService) Start(ctx context.Context) error {
	if len(s.chatIDs) == 0 {
		s.logger.Info("no broadcast chats configured, daily broadcast disabled")
		return nil
	}

	c := cron.New(cron.WithLocation(s.location))

	_, err := c.AddFunc(s.spec, func() {
		s.logger.Info("cron triggered: sending daily words")
		s.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("add cron job %q: %w", s.spec, err)
	}

	c.Start()
	s.logger.Info("daily broadcast started",
		zap.String("spec", s.spec),
		zap.String("timezone", s.location.String()),
		zap.Int("chats", len(s.chatIDs)),
	)

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("daily broadcast stopped")
	return nil
}

// RunOnce sends the daily list to every chat and returns how many succeeded.
// A failing chat does not stop the others.
func (s *BroadcastService) RunOnce(ctx context.Context) int {
	if s.notifier == nil {
		s.logger.Error("notifier not set, cannot broadcast")
		return 0
	}

	sent := 0
	for _, chatID := range s.chatIDs {
		if err := s.sendTo(ctx, chatID); err != nil {
			s.logger.Error("failed to broadcast daily words",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	s.logger.Info("daily words broadcast",
		zap.Int("sent", sent),
		zap.Int("total", len(s.chatIDs)),
	)
	return sent
}

// sendTo uses the chat ID as the user ID, as private chats do.
func (s *BroadcastService) sendTo(ctx context.Context, chatID int64) error {
	outcome, err := s.daily.RequestDailyWords(ctx, chatID)
	if err != nil {
		return err
	}
	return s.notifier.SendDailyWords(ctx, chatID, outcome)
}
