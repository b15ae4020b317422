package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Antontokarchuk0302/Travelsite/internal/api"
	"github.com/Antontokarchuk0302/Travelsite/internal/config"
	"github.com/Antontokarchuk0302/Travelsite/internal/handler"
	"github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/kafka"
	"github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/redis"
	"github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/storage"
	"github.com/Antontokarchuk0302/Travelsite/internal/observability"
	core "github.com/Antontokarchuk0302/Travelsite/internal/repository/postgres"
	service "github.com/Antontokarchuk0302/Travelsite/internal/services"
	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Load()

	// Logs, metrics and traces
	shutdown, metricsHandler := observability.Setup(cfg.ServiceName, cfg.LogLevel, cfg.OTLPEndpoint)
	defer shutdown(context.Background())

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping Postgres: %v", err)
	}

	redisClient, err := redis.NewClient(redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	producer := kafka.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	// Repositories and services
	transactionRepo := core.NewPostgresTransactionRepository(db)
	packageRepo := core.NewPostgresTravelPackageRepository(db)
	galleryRepo := core.NewPostgresTravelGalleryRepository(db)
	userRepo := core.NewPostgresUserRepository(db)
	store := storage.NewLocalStore(cfg.PublicRoot)
	runner := service.NewRunner(core.NewTransactor(db))

	authSvc := service.NewAuthService(userRepo, redisClient, cfg.JWTSecret)
	transactionSvc := service.NewTransactionService(transactionRepo, runner, producer)
	gallerySvc := service.NewGalleryService(
		packageRepo,
		galleryRepo,
		store,
		runner,
		redis.NewLocker(redisClient, 10*time.Second),
		producer,
		cfg.GalleryCapacity,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orphanConsumer := kafka.NewOrphanConsumer(cfg.KafkaBrokers, cfg.ServiceName+"-storage-cleanup", store)
	go orphanConsumer.Consume(ctx)
	defer orphanConsumer.Close()

	h := handler.NewHandler(authSvc, transactionSvc, gallerySvc, cfg.MaxUploadBytes)
	router := api.SetupRouter(h, redisClient, cfg.JWTSecret, metricsHandler)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("starting server", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	slog.Info("server stopped")
}
