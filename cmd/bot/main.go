package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Moiseysus/Itabot/internal/config"
	"github.com/Moiseysus/Itabot/internal/delivery/telegram"
	"github.com/Moiseysus/Itabot/internal/infra/postgres"
	pgrepo "github.com/Moiseysus/Itabot/internal/infra/postgres/repository"
	"github.com/Moiseysus/Itabot/internal/infra/sqlite"
	"github.com/Moiseysus/Itabot/internal/logger"
	"github.com/Moiseysus/Itabot/internal/repository"
	"github.com/Moiseysus/Itabot/internal/service"
	"github.com/Moiseysus/Itabot/internal/storage"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil && !errors.Is(err, context.Canceled) {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}
	lg.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	vocab, err := repository.NewVocabularyRepository(cfg.Vocabulary.Path, repository.Columns{
		Term:        cfg.Vocabulary.TermColumn,
		Translation: cfg.Vocabulary.TranslationColumn,
		Sheet:       cfg.Vocabulary.Sheet,
	})
	if err != nil {
		return err
	}
	lg.Info("vocabulary loaded",
		zap.String("path", cfg.Vocabulary.Path),
		zap.Int("words", vocab.Len()),
	)

	persister, closePersister, err := openPersister(ctx, cfg)
	if err != nil {
		return err
	}
	defer closePersister()

	store, err := repository.NewProgressStore(ctx, persister)
	if err != nil {
		return err
	}
	defer func() {
		// ctx is already cancelled at shutdown.
		closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			lg.Error("failed to flush progress", zap.Error(err))
		}
	}()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands()...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	sessions := storage.NewSessionStorage()
	progressService := service.NewProgressService(store, lg)
	quizService := service.NewQuizService(vocab, sessions, progressService, lg)
	selector := service.NewDueSelector(vocab, store)
	dailyService := service.NewDailyWordsService(selector, cfg.Daily.Limit, cfg.Broadcast.Location)

	handler := telegram.NewHandler(bot, lg, quizService, dailyService)

	broadcast := service.NewBroadcastService(
		dailyService,
		cfg.Broadcast.Cron,
		cfg.Broadcast.Location,
		cfg.Broadcast.ChatIDs,
		lg,
	)
	broadcast.SetNotifier(handler)

	go func() {
		if err := broadcast.Start(ctx); err != nil {
			lg.Error("daily broadcast failed", zap.Error(err))
		}
	}()

	return handler.Run(ctx)
}

// openPersister picks the progress backend. The returned func releases it.
func openPersister(ctx context.Context, cfg *config.Config) (repository.ProgressPersister, func(), error) {
	switch cfg.Progress.Driver {
	case config.DriverPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, nil, err
		}
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		repo := pgrepo.NewProgressRepository(pool)
		if err := repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil

	case config.DriverSQLite:
		repo, err := sqlite.Open(ctx, cfg.Progress.Path)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil

	default:
		return storage.NewProgressFile(cfg.Progress.Path), func() {}, nil
	}
}
