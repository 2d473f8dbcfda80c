package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rainwise/rainwise/internal/pkg/config"
	"github.com/rainwise/rainwise/internal/pkg/database"
	"github.com/rainwise/rainwise/internal/pkg/health"
	"github.com/rainwise/rainwise/internal/pkg/logger"
	"github.com/rainwise/rainwise/internal/pkg/middleware"
	natspkg "github.com/rainwise/rainwise/internal/pkg/nats"
	"github.com/rainwise/rainwise/services/auth/gateway"
	"github.com/rainwise/rainwise/services/auth/handler"
	httpHandler "github.com/rainwise/rainwise/services/auth/handler/http"
	"github.com/rainwise/rainwise/services/auth/repository"
	"github.com/rainwise/rainwise/services/auth/usecase"
)

func main() {
	appName := "auth-service"
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/auth.env"
	}
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Initialize repository
	authRepo := repository.NewAuthRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateways
	mailGW := gateway.NewSMTPGateway(&configs.SMTP)
	authGW := gateway.NewNATSGateway(natsClient)

	// Initialize usecase
	authUC := usecase.NewAuthUC(configs, authRepo, mailGW, authGW)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUC)
	h := handler.NewHandler(authHandler, configs)

	// Initialize Echo router
	e := echo.New()

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(middleware.IPRateLimiter(60, time.Minute, redisClient.Client))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	h.RegisterRoutes(e)

	// Start server
	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := e.Start(fmt.Sprintf(":%d", configs.Server.Port)); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
