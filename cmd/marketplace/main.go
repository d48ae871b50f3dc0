package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gebeta-delivery/gebeta/internal/pkg/config"
	"github.com/gebeta-delivery/gebeta/internal/pkg/database"
	"github.com/gebeta-delivery/gebeta/internal/pkg/health"
	"github.com/gebeta-delivery/gebeta/internal/pkg/logger"
	"github.com/gebeta-delivery/gebeta/internal/pkg/middleware"
	natspkg "github.com/gebeta-delivery/gebeta/internal/pkg/nats"
	nrpkg "github.com/gebeta-delivery/gebeta/internal/pkg/newrelic"
	"github.com/gebeta-delivery/gebeta/internal/pkg/server"
	ws "github.com/gebeta-delivery/gebeta/internal/pkg/websocket"
	adminsHandler "github.com/gebeta-delivery/gebeta/services/admins/handler"
	adminsRepo "github.com/gebeta-delivery/gebeta/services/admins/repository"
	adminsUC "github.com/gebeta-delivery/gebeta/services/admins/usecase"
	driversGW "github.com/gebeta-delivery/gebeta/services/drivers/gateway"
	driversHandler "github.com/gebeta-delivery/gebeta/services/drivers/handler"
	driversRepo "github.com/gebeta-delivery/gebeta/services/drivers/repository"
	driversUC "github.com/gebeta-delivery/gebeta/services/drivers/usecase"
	notificationsHandler "github.com/gebeta-delivery/gebeta/services/notifications/handler"
	ordersGW "github.com/gebeta-delivery/gebeta/services/orders/gateway"
	ordersHandler "github.com/gebeta-delivery/gebeta/services/orders/handler"
	ordersRepo "github.com/gebeta-delivery/gebeta/services/orders/repository"
	ordersUC "github.com/gebeta-delivery/gebeta/services/orders/usecase"
	restaurantsGW "github.com/gebeta-delivery/gebeta/services/restaurants/gateway"
	restaurantsHandler "github.com/gebeta-delivery/gebeta/services/restaurants/handler"
	restaurantsRepo "github.com/gebeta-delivery/gebeta/services/restaurants/repository"
	restaurantsUC "github.com/gebeta-delivery/gebeta/services/restaurants/usecase"
)

func main() {
	cfg := config.InitConfig(".env")

	nrApp := nrpkg.InitNewRelic(cfg)

	zapLogger, err := logger.NewZapLogger(cfg.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Infrastructure
	postgresClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(cfg.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	db := postgresClient.GetDB()

	// Repositories
	driverRepo := driversRepo.NewDriverRepository(cfg, db, redisClient)
	creditRepo := driversRepo.NewCreditRepository(cfg, db)
	orderRepo := ordersRepo.NewOrderRepository(cfg, db)
	restaurantRepo := restaurantsRepo.NewRestaurantRepository(cfg, db)
	adminRepo := adminsRepo.NewAdminRepository(cfg, db)

	// Gateways
	driverGW := driversGW.NewDriverGW(natsClient)
	orderGW := ordersGW.NewOrderGW(natsClient)
	restaurantGW := restaurantsGW.NewRestaurantGW(natsClient)

	// Use cases
	driverUC := driversUC.NewDriverUC(cfg, driverRepo, driverGW)
	creditUC := driversUC.NewCreditUC(cfg, creditRepo, driverGW)
	restaurantUC := restaurantsUC.NewRestaurantUC(cfg, restaurantRepo, restaurantGW)
	adminUC := adminsUC.NewAdminUC(cfg, adminRepo)
	orderUC := ordersUC.NewOrderUC(cfg, orderRepo, orderGW,
		ordersGW.NewDriverAdapter(driverUC, creditUC),
		ordersGW.NewRestaurantAdapter(restaurantUC))

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(nrpkg.Middleware(nrApp))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	health.RegisterHealthEndpoints(e, cfg.App.Name, cfg.App.Version, healthService)

	driversHandler.NewHandler(driverUC, creditUC, cfg).RegisterRoutes(e)
	ordersHandler.NewHandler(orderUC, cfg).RegisterRoutes(e)
	restaurantsHandler.NewHandler(restaurantUC, cfg).RegisterRoutes(e)
	adminsHandler.NewHandler(adminUC, cfg).RegisterRoutes(e)

	// Notification fan-out
	wsManager := ws.NewManager(cfg.JWT)
	notificationsHandler.NewWebSocketHandler(wsManager).RegisterRoutes(e)
	natsHandler := notificationsHandler.NewNatsHandler(natsClient, wsManager)
	if err := natsHandler.InitSubscriptions(); err != nil {
		zapLogger.Fatal("Failed to initialize notification subscriptions", logger.Err(err))
	}
	defer natsHandler.Close()

	// Assignment retry sweep
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go orderUC.RunSweeper(sweepCtx)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		cancelSweep()
		natsHandler.Close()
		return nil
	})

	gracefulServer := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server exited with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	_ = shutdownManager.Shutdown(shutdownCtx)
}
