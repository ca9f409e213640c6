package card_service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"card-fraud-system/config"
	_ "card-fraud-system/docs" // Swagger docs
	"card-fraud-system/internal/api/rest"
	"card-fraud-system/internal/grpc"
)

// StartCardService запускает сервис карт: REST API, gRPC и сервер метрик
func StartCardService() {
	cfg := config.Load()

	// Инициализация зависимостей
	deps, err := InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize dependencies: %v", err)
	}
	defer deps.Close()

	// Настройка REST API
	handlers := rest.NewHandlers(rest.Services{
		Customers:  deps.CustomerService,
		Cards:      deps.CardService,
		Operations: deps.OperationService,
		Fraud:      deps.FraudService,
		Alerts:     deps.AlertService,
		Reports:    deps.ReportService,
	})
	router := rest.SetupRouter(handlers)

	// Запуск HTTP сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.CardServicePort),
		Handler: router,
	}

	go func() {
		log.Printf("Card Service starting on port %d", cfg.Server.CardServicePort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Запуск gRPC сервера в отдельной горутине
	grpcServer := grpc.NewServer(grpc.NewCardFraudGRPCServer(
		deps.OperationService,
		deps.FraudService,
		deps.CardService,
		deps.AlertService,
	))
	go func() {
		log.Printf("Starting gRPC server on port %d...", cfg.Server.GRPCPort)
		if err := grpc.StartGRPCServer(cfg, grpcServer); err != nil {
			log.Fatalf("Failed to start gRPC server: %v", err)
		}
	}()

	metricsServer := deps.Metrics.StartMetricsServer(fmt.Sprintf(":%d", cfg.Server.MetricsPort))

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	grpcServer.GracefulStop()

	if err := deps.Metrics.Shutdown(ctx, metricsServer); err != nil {
		log.Printf("Metrics server shutdown error: %v", err)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
