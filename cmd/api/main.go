package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/reclamation-service/internal/api/http"
	"github.com/spec-kit/reclamation-service/internal/api/http/handlers"
	"github.com/spec-kit/reclamation-service/internal/config"
	"github.com/spec-kit/reclamation-service/internal/events"
	"github.com/spec-kit/reclamation-service/internal/observability"
	"github.com/spec-kit/reclamation-service/internal/persistence"
	"github.com/spec-kit/reclamation-service/internal/repository"
	"github.com/spec-kit/reclamation-service/internal/service"
	"github.com/spec-kit/reclamation-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	defer mongo.Close(context.Background())

	db := mongo.Database()
	userRepo := repository.NewUserRepository(db)
	reclamationRepo := repository.NewReclamationRepository(db)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	directoryService := service.NewDirectoryService(*cfg, service.DirectoryDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	reclamationService := service.NewReclamationService(service.ReclamationDependencies{
		ReclamationRepo: reclamationRepo,
		UserRepo:        userRepo,
		Dispatcher:      dispatcher,
	})

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.CORS)

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, mongo, metrics)
	usersHandler := handlers.NewUsersHandler(directoryService)
	reclamationsHandler := handlers.NewReclamationsHandler(reclamationService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:       healthHandler,
		Users:        usersHandler,
		Reclamations: reclamationsHandler,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
