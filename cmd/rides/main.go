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
	pricinghandler "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/pricing/handler"
	pricingrepo "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/pricing/repository"
	pricingusecase "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/pricing/usecase"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/rides/gateway"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/rides/handler"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/rides/repository"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/rides/usecase"
)

func main() {
	appName := "rides-service"
	configs := config.InitConfig("config/rides.env")

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

	// Initialize NATS connection
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer natsClient.Close()

	// Pricing runs in-process with the ride lifecycle
	priceRepo := pricingrepo.NewPriceRepository(postgresClient.GetDB())
	pricingUC := pricingusecase.NewPricingUC(priceRepo, zapLogger)

	rideRepo := repository.NewRideRepository(configs, postgresClient.GetDB())
	rideGW, err := gateway.NewRideGW(configs, natsClient, zapLogger)
	if err != nil {
		log.Fatalf("Failed to initialize ride gateway: %v", err)
	}
	rideUC := usecase.NewRideUC(configs, rideRepo, rideGW, pricingUC, zapLogger)

	// Initialize Echo router
	e := echo.New()
	e.Use(logger.EchoMiddleware(zapLogger))
	health.RegisterHealthEndpoints(e, appName)

	auth := middleware.JWTAuthMiddleware(configs.JWT)
	handler.NewHandler(rideUC).RegisterRoutes(e, auth)
	pricinghandler.NewHandler(pricingUC).RegisterRoutes(e, auth)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start %s: %v", appName, err)
	}
}
