package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/config"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/database"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/health"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/middleware"
	natspkg "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/nats"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/server"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/websocket"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/drivers/gateway"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/drivers/handler"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/drivers/repository"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/drivers/usecase"
)

func main() {
	appName := "drivers-service"
	configs := config.InitConfig("config/drivers.env")

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer postgresClient.Close()

	// Initialize Redis connection for the live location pool
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize NATS connection
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer natsClient.Close()

	// Initialize repository, gateway, use case and handler
	driverRepo := repository.NewDriverRepository(postgresClient.GetDB(), redisClient)
	driverGW := gateway.NewDriverGW(natsClient)
	driverUC := usecase.NewDriverUC(configs, driverRepo, driverGW, zapLogger)

	// Initialize Echo router
	e := echo.New()
	e.Use(logger.EchoMiddleware(zapLogger))
	health.RegisterHealthEndpoints(e, appName)

	wsManager := websocket.NewManager(configs.JWT, zapLogger)

	auth := middleware.JWTAuthMiddleware(configs.JWT)
	h := handler.NewHandler(driverUC, wsManager, natsClient, zapLogger)
	h.RegisterRoutes(e, auth)
	if err := h.InitNATSConsumers(); err != nil {
		log.Fatalf("Failed to initialize NATS consumers: %v", err)
	}

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start %s: %v", appName, err)
	}
}
