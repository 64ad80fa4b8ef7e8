package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/config"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/database"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/health"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	natspkg "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/nats"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/server"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/match/gateway"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/match/handler"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/match/repository"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/match/usecase"
)

func main() {
	appName := "match-service"
	configs := config.InitConfig("config/match.env")

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
	matchRepo := repository.NewMatchRepository(configs, postgresClient.GetDB(), redisClient)
	matchGW := gateway.NewMatchGW(natsClient)
	matchUC := usecase.NewMatchUC(configs, matchRepo, matchGW, zapLogger)
	matchHandler := handler.NewHandler(matchUC, natsClient, matchRepo, zapLogger)

	if err := matchHandler.InitNATSConsumers(); err != nil {
		log.Fatalf("Failed to initialize NATS consumers: %v", err)
	}

	// Initialize Echo router
	e := echo.New()
	e.Use(logger.EchoMiddleware(zapLogger))
	health.RegisterHealthEndpoints(e, appName)
	matchHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start %s: %v", appName, err)
	}
}
