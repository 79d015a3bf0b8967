package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/adapters/authclient"
	logger_adapter "github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/adapters/logger"
	postgres_adapter "github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/adapters/postgres"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/adapters/rest"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/adapters/webhook"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/configs"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/port"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/core/usecase"
	"github.com/dcportal07-ops/DC-Football-Portal-sub001/pkg/postgres"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	logger       port.LoggerPort
	fluentClient *fluent.Fluent
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = logger_adapter.NewFluentClient(logger_adapter.FluentConfig{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName, // Используем имя приложения как префикс
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	coachRepo, err := postgres_adapter.NewCoachRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create coach repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create coach repository: %w", err)
	}
	playerRepo, err := postgres_adapter.NewPlayerRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create player repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create player repository: %w", err)
	}
	teamRepo, err := postgres_adapter.NewTeamRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create team repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create team repository: %w", err)
	}
	evaluationRepo, err := postgres_adapter.NewEvaluationRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create evaluation repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create evaluation repository: %w", err)
	}
	homeworkRepo, err := postgres_adapter.NewHomeworkRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create homework repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create homework repository: %w", err)
	}
	drillRepo, err := postgres_adapter.NewDrillRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create drill repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create drill repository: %w", err)
	}
	announcementRepo, err := postgres_adapter.NewAnnouncementRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create announcement repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create announcement repository: %w", err)
	}
	importLogRepo, err := postgres_adapter.NewImportLogRepository(dbPool)
	if err != nil {
		appLogger.Error("Failed to create import log repository", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to create import log repository: %w", err)
	}

	// Нотификатор вебхука. Без URL работает вхолостую, ошибки доставки
	// не останавливают бизнес-операции.
	notifier := webhook.NewNotifier(webhook.Config{
		URL:     appConfig.Webhook.URL,
		Timeout: time.Duration(appConfig.Webhook.TimeoutSeconds) * time.Second,
	}, baseLogger)
	if notifier.Enabled() {
		appLogger.Info("Webhook notifier initialized.", port.Fields{"url": appConfig.Webhook.URL})
	} else {
		appLogger.Warn("Webhook notifier is disabled: AUTOMATION_WEBHOOK_URL is not set.", nil)
	}

	// --- 4. USE CASES (ядро бизнес-логики) ---
	createCoachUC := usecase.NewCreateCoachUseCase(coachRepo, notifier)
	updateCoachUC := usecase.NewUpdateCoachUseCase(coachRepo, notifier)
	deleteCoachUC := usecase.NewDeleteCoachUseCase(coachRepo, notifier)
	listCoachesUC := usecase.NewListCoachesUseCase(coachRepo)

	createPlayerUC := usecase.NewCreatePlayerUseCase(playerRepo, teamRepo, notifier)
	updatePlayerUC := usecase.NewUpdatePlayerUseCase(playerRepo, teamRepo, notifier)
	deletePlayerUC := usecase.NewDeletePlayerUseCase(playerRepo, notifier)
	getPlayerUC := usecase.NewGetPlayerUseCase(playerRepo)
	listPlayersUC := usecase.NewListPlayersUseCase(playerRepo)

	createTeamUC := usecase.NewCreateTeamUseCase(teamRepo, coachRepo, notifier)
	listTeamsUC := usecase.NewListTeamsUseCase(teamRepo)

	submitEvaluationUC := usecase.NewSubmitEvaluationUseCase(evaluationRepo, playerRepo, notifier)
	listEvaluationsUC := usecase.NewListPlayerEvaluationsUseCase(evaluationRepo)

	assignHomeworkUC := usecase.NewAssignHomeworkUseCase(homeworkRepo, playerRepo, notifier)
	listHomeworkUC := usecase.NewListPlayerHomeworkUseCase(homeworkRepo)

	createDrillUC := usecase.NewCreateDrillUseCase(drillRepo, notifier)
	listDrillsUC := usecase.NewListDrillsUseCase(drillRepo)

	createAnnouncementUC := usecase.NewCreateAnnouncementUseCase(announcementRepo, teamRepo)
	listAnnouncementsUC := usecase.NewListTeamAnnouncementsUseCase(announcementRepo)

	importRosterUC := usecase.NewImportRosterUseCase(createPlayerUC, importLogRepo)
	appLogger.Info("All use cases initialized.", nil)

	// --- 5. REST API SERVER ---
	handlers := &rest.Handlers{
		Coach:        rest.NewCoachHandler(createCoachUC, updateCoachUC, deleteCoachUC, listCoachesUC),
		Player:       rest.NewPlayerHandler(createPlayerUC, updatePlayerUC, deletePlayerUC, getPlayerUC, listPlayersUC),
		Team:         rest.NewTeamHandler(createTeamUC, listTeamsUC),
		Evaluation:   rest.NewEvaluationHandler(submitEvaluationUC, listEvaluationsUC),
		Homework:     rest.NewHomeworkHandler(assignHomeworkUC, listHomeworkUC),
		Drill:        rest.NewDrillHandler(createDrillUC, listDrillsUC),
		Announcement: rest.NewAnnouncementHandler(createAnnouncementUC, listAnnouncementsUC),
		Import:       rest.NewImportHandler(importRosterUC),
	}

	// Middleware аутентификации подключается только при наличии identity provider-а.
	var authMiddleware *rest.AuthMiddleware
	if appConfig.Auth.ServiceURL != "" {
		authMiddleware = rest.NewAuthMiddleware(authclient.NewClient(appConfig.Auth.ServiceURL))
		appLogger.Info("Authentication middleware enabled.", port.Fields{"auth_service_url": appConfig.Auth.ServiceURL})
	} else {
		appLogger.Warn("AUTH_SERVICE_URL is not set, running WITHOUT authentication. Do not use in production.", nil)
	}

	apiServer := rest.NewServer(appConfig.Rest.PORT, handlers, authMiddleware, dbPool, appConfig.Rest.AllowedOrigins, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:       appConfig,
		dbPool:       dbPool,
		apiServer:    apiServer,
		logger:       appLogger,
		fluentClient: fluentClient,
	}

	return application, nil
}

func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := a.apiServer.Stop(shutdownCtx); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)
		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("HTTP server start error: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or component error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	}

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
