package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Moiseysus/Itabot/internal/domain/entities"
)

// BotAPI is the part of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type QuizService interface {
	StartQuiz(ctx context.Context, userID int64) (entities.Outcome, error)
	SubmitAnswer(ctx context.Context, userID int64, text string) (entities.Outcome, error)
	Confirm(ctx context.Context, userID, quizID int64, accept bool) (entities.Outcome, error)
	Skip(ctx context.Context, userID int64) (entities.Outcome, error)
}

type DailyWordsService interface {
	RequestDailyWords(ctx context.Context, userID int64) (entities.Outcome, error)
}
