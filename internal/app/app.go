package app

import (
	"context"

	"github.com/NasaVasa/radarbot/internal/config"
	"github.com/NasaVasa/radarbot/internal/delivery/telegram"
	"github.com/NasaVasa/radarbot/internal/infra/db"
	"github.com/NasaVasa/radarbot/internal/infra/llama"
	"github.com/NasaVasa/radarbot/internal/infra/log"
	"github.com/NasaVasa/radarbot/internal/usecase"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type App struct {
	bot       *telegram.Bot
	radar     *usecase.RadarService
	scheduler *cron.Cron
	cronSpec  string
	logger    *zap.Logger
	cleanupFn func() error
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	logger, err := log.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	dbConn, err := db.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	sentRepo := db.NewSentSignalRepository(dbConn)
	feeds := llama.NewClient(cfg.LlamaBaseURL, cfg.LlamaTimeout, logger)

	api, err := telegram.NewAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, err
	}

	notifier := telegram.NewNotifier(api, cfg.TelegramChatID, logger)
	formatter := telegram.NewFormatter()

	selector := usecase.NewSelector(
		usecase.SelectorConfig{
			NewProjectDays:   cfg.NewProjectDays,
			UsageRecencyDays: cfg.UsageRecencyDays,
			MinQualityScore:  cfg.MinQualityScore,
			MinUsageScore:    cfg.MinUsageScore,
			MaxSignalsPerRun: cfg.MaxSignalsPerRun,
			RaiseSubCap:      cfg.RaiseSubCap,
			NotifyDelay:      cfg.NotifyDelay,
		},
		sentRepo,
		notifier,
		formatter,
		usecase.NewQualityScorer(cfg.NewProjectDays),
		usecase.NewUsageScorer(cfg.UsageRecencyDays),
		usecase.NewRaiseScorer(cfg.TopTierList()),
		logger,
	)

	radar := usecase.NewRadarService(feeds, selector, logger)
	handlers := telegram.NewHandlers(radar, radar, logger)
	bot := telegram.NewBot(api, handlers, cfg.TelegramPollTimeout)

	cleanup := func() error {
		sqlDB, err := dbConn.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return &App{
		bot:       bot,
		radar:     radar,
		scheduler: cron.New(),
		cronSpec:  cfg.RadarCron,
		logger:    logger,
		cleanupFn: cleanup,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info("radarbot service starting", zap.String("cron", a.cronSpec))

	job := cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(cron.FuncJob(func() {
		if err := a.radar.RunOnce(ctx); err != nil {
			a.logger.Warn("scheduled radar pass failed", zap.Error(err))
		}
	}))
	if _, err := a.scheduler.AddJob(a.cronSpec, job); err != nil {
		return err
	}
	a.scheduler.Start()

	// First pass right away; the schedule covers the rest.
	go func() {
		if err := a.radar.RunOnce(ctx); err != nil {
			a.logger.Warn("initial radar pass failed", zap.Error(err))
		}
	}()

	a.logger.Info("radarbot service started")
	return a.bot.Start(ctx)
}

func (a *App) Shutdown() {
	a.logger.Info("radarbot service shutting down")
	<-a.scheduler.Stop().Done()
	if a.cleanupFn != nil {
		if err := a.cleanupFn(); err != nil {
			a.logger.Warn("failed to close database", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
