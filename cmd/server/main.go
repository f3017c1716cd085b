package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/lifeboard/backend/api/handler"
	"github.com/lifeboard/backend/internal/config"
	"github.com/lifeboard/backend/internal/infrastructure/monitor"
	"github.com/lifeboard/backend/internal/infrastructure/storage"
	"github.com/lifeboard/backend/internal/router"
	"github.com/lifeboard/backend/internal/seed"
	"github.com/lifeboard/backend/internal/services"
	"github.com/lifeboard/backend/internal/services/lifecycle"
	"github.com/lifeboard/backend/pkg/httpcontext"
	"github.com/lifeboard/backend/pkg/logger"
	boltRepo "github.com/lifeboard/backend/repository/bolt"
	activityUC "github.com/lifeboard/backend/usecase/activity"
	analyticsUC "github.com/lifeboard/backend/usecase/analytics"
	communityUC "github.com/lifeboard/backend/usecase/community"
	exportUC "github.com/lifeboard/backend/usecase/export"
	messagingUC "github.com/lifeboard/backend/usecase/messaging"
	preferencesUC "github.com/lifeboard/backend/usecase/preferences"
	profileUC "github.com/lifeboard/backend/usecase/profile"
	taskUC "github.com/lifeboard/backend/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	db, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		zapLogger.Fatal("failed to open storage", zap.Error(err))
	}
	manager.Register("storage", func(ctx context.Context) error {
		return db.Close()
	})

	taskRepo, err := boltRepo.NewTaskRepository(db, zapLogger)
	if err != nil {
		zapLogger.Fatal("task repository init failed", zap.Error(err))
	}
	activityRepo, err := boltRepo.NewActivityRepository(db, zapLogger)
	if err != nil {
		zapLogger.Fatal("activity repository init failed", zap.Error(err))
	}
	postRepo, err := boltRepo.NewPostRepository(db, zapLogger)
	if err != nil {
		zapLogger.Fatal("post repository init failed", zap.Error(err))
	}
	conversationRepo, err := boltRepo.NewConversationRepository(db, zapLogger)
	if err != nil {
		zapLogger.Fatal("conversation repository init failed", zap.Error(err))
	}
	profileRepo, err := boltRepo.NewProfileRepository(db, zapLogger)
	if err != nil {
		zapLogger.Fatal("profile repository init failed", zap.Error(err))
	}
	preferencesRepo, err := boltRepo.NewPreferencesRepository(db, zapLogger)
	if err != nil {
		zapLogger.Fatal("preferences repository init failed", zap.Error(err))
	}

	if cfg.Storage.SeedDemo {
		if err := seed.Run(appCtx, seed.Repositories{
			Tasks:         taskRepo,
			Activities:    activityRepo,
			Posts:         postRepo,
			Conversations: conversationRepo,
		}, zapLogger); err != nil {
			zapLogger.Warn("demo seeding failed", zap.Error(err))
		}
	}

	mon := monitor.New(db, []monitor.Counter{taskRepo, activityRepo, postRepo, conversationRepo}, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	taskUseCase := taskUC.New(taskRepo, zapLogger)
	activityUseCase := activityUC.New(activityRepo, zapLogger)
	communityUseCase := communityUC.New(postRepo, profileRepo, cfg.Community.PopularMinLikes, zapLogger)
	messagingUseCase := messagingUC.New(conversationRepo, zapLogger)
	profileUseCase := profileUC.New(profileRepo, zapLogger)
	preferencesUseCase := preferencesUC.New(preferencesRepo, zapLogger)
	analyticsUseCase := analyticsUC.New(taskRepo, activityRepo, zapLogger)
	exportUseCase := exportUC.New(taskRepo, activityRepo, postRepo, conversationRepo, zapLogger)

	if cfg.Reports.Enabled {
		reporter := services.NewReporter(analyticsUseCase, preferencesRepo, cfg.Reports.Schedule, zapLogger)
		if err := reporter.Start(); err != nil {
			zapLogger.Fatal("reporter start failed", zap.Error(err))
		}
		manager.Register("reporter", func(ctx context.Context) error {
			return reporter.Stop(ctx)
		})
	}

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Task:        apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Activity:    apiHandler.NewActivityHandler(activityUseCase, ctxAdapter, zapLogger),
		Community:   apiHandler.NewCommunityHandler(communityUseCase, ctxAdapter, zapLogger),
		Messaging:   apiHandler.NewMessagingHandler(messagingUseCase, ctxAdapter, zapLogger),
		Profile:     apiHandler.NewProfileHandler(profileUseCase, ctxAdapter, zapLogger),
		Preferences: apiHandler.NewPreferencesHandler(preferencesUseCase, ctxAdapter, zapLogger),
		Analytics:   apiHandler.NewAnalyticsHandler(analyticsUseCase, ctxAdapter, zapLogger),
		Export:      apiHandler.NewExportHandler(exportUseCase, ctxAdapter, zapLogger),
		Health:      apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	r := router.New(handlers)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Concurrency:  cfg.HTTP.MaxConn,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
