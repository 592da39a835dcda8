package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "planbase/internal/adapter/db"
	httpadapter "planbase/internal/adapter/http"
	"planbase/internal/adapter/http/handlers"
	httpmiddleware "planbase/internal/adapter/http/middleware"
	"planbase/internal/app/service"
	"planbase/internal/config"
	"planbase/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	uow := dbadapter.NewUnitOfWork(db)
	taskRepo := dbadapter.NewTaskRepository(db)
	planningRepo := dbadapter.NewPlanningRepository(db)
	linkRepo := dbadapter.NewLinkRepository(db)
	calendarRepo := dbadapter.NewCalendarRepository(db)
	configRepo := dbadapter.NewCalendarConfigRepository(db)
	dayTypeRepo := dbadapter.NewDayTypeRepository(db)
	notificationRepo := dbadapter.NewNotificationRepository(db)

	notifier := service.NewNotifier(notificationRepo, cfg.NotifierQueueSize)
	defer notifier.Close()

	taskService := service.NewTaskService(uow, taskRepo, planningRepo, calendarRepo, configRepo, linkRepo, notifier)
	planningService := service.NewPlanningService(uow, planningRepo, taskRepo, linkRepo, notifier)
	calendarService := service.NewCalendarService(uow, calendarRepo, configRepo, dayTypeRepo, planningRepo, taskRepo, notifier)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:       handlers.NewHealthHandler(db),
		Planning:     handlers.NewPlanningHandler(planningService),
		Task:         handlers.NewTaskHandler(taskService),
		Calendar:     handlers.NewCalendarHandler(calendarService),
		DayType:      handlers.NewDayTypeHandler(calendarService),
		Notification: handlers.NewNotificationHandler(notificationRepo),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
