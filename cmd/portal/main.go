package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk-portal/internal/api/http"
	"github.com/spec-kit/helpdesk-portal/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-portal/internal/backend"
	"github.com/spec-kit/helpdesk-portal/internal/config"
	"github.com/spec-kit/helpdesk-portal/internal/events"
	"github.com/spec-kit/helpdesk-portal/internal/observability"
	"github.com/spec-kit/helpdesk-portal/internal/service"
	"github.com/spec-kit/helpdesk-portal/internal/session"
	"github.com/spec-kit/helpdesk-portal/internal/worker"
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

	metrics := observability.NewMetrics()

	client := backend.NewClient(cfg.Backend, logger, metrics)
	gateway := backend.NewGateway(client)

	var store session.TokenStore = session.NewCookieStore()
	if cfg.Session.UseRedis {
		redisStore := session.NewRedisStore(cfg.Redis, logger)
		defer redisStore.Close()
		store = redisStore
	}
	decoder := session.NewDecoder(cfg.Session.JWTSecret)
	provider := session.NewProvider(decoder, store, logger)
	client.SetUnauthorizedHook(provider.UnauthorizedHook())

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(gateway, decoder, logger)
	incidentService := service.NewIncidentService(service.IncidentDependencies{
		API:        gateway,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	userService := service.NewUserService(gateway, logger)
	catalogService := service.NewCatalogService(gateway, logger)

	sessions := session.NewMiddleware(provider, cfg.Session.CookieName)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.Session.CookieName)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, gateway, metrics),
		Auth:       handlers.NewAuthHandler(authService, provider, cfg.Session.CookieName),
		UserPortal: handlers.NewUserPortalHandler(incidentService, catalogService),
		TechPortal: handlers.NewTechPortalHandler(incidentService, catalogService),
		Admin:      handlers.NewAdminHandler(userService, catalogService),
		Lookups:    handlers.NewLookupHandler(incidentService, catalogService),
		Sessions:   sessions,
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
