package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Commands registered with Telegram.
const (
	cmdStart = "start"
	cmdHelp  = "help"
	cmdDaily = "daily"
	cmdQuiz  = "quiz"
	cmdSkip  = "skip"
)

type Handler struct {
	bot          BotAPI
	logger       *zap.Logger
	quizService  QuizService
	dailyService DailyWordsService
}

func NewHandler(
	bot BotAPI,
	logger *zap.Logger,
	quizService QuizService,
	dailyService DailyWordsService,
) *Handler {
	return &Handler{
		bot:          bot,
		logger:       logger,
		quizService:  quizService,
		dailyService: dailyService,
	}
}

// Commands returns the command menu shown by Telegram clients.
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: cmdStart, Description: "התחלה"},
		{Command: cmdDaily, Description: "המילים היומיות"},
		{Command: cmdQuiz, Description: "חידון"},
		{Command: cmdSkip, Description: "דילוג על השאלה"},
		{Command: cmdHelp, Description: "עזרה"},
	}
}

// Run consumes updates until ctx is done. Updates are handled one at a time.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.Bool("command", update.Message.IsCommand()),
	)

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case cmdStart, cmdHelp:
			_ = h.send(newPlainMessage(chatID, msgWelcome))

		case cmdDaily:
			_ = h.withErrorHandling(h.handleDaily(userID))(ctx, chatID)

		case cmdQuiz:
			_ = h.withErrorHandling(h.handleQuiz(userID))(ctx, chatID)

		case cmdSkip:
			_ = h.withErrorHandling(h.handleSkip(userID))(ctx, chatID)

		default:
			_ = h.send(newPlainMessage(chatID, msgUnknownCommand))
		}

		return
	}

	if update.Message.Text == "" {
		return
	}

	_ = h.withErrorHandling(h.handleAnswer(userID, update.Message.Text))(ctx, chatID)
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
