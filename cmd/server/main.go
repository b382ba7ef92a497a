package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"content-platform-service/internal/cache/redis"
	"content-platform-service/internal/config"
	delivery_http "content-platform-service/internal/delivery/http"
	"content-platform-service/internal/delivery/http/handlers"
	metrics_server "content-platform-service/internal/delivery/metrics"
	"content-platform-service/internal/logger"
	"content-platform-service/internal/markdown"
	prometheus_metrics "content-platform-service/internal/metrics/prometheus"
	post_postgres "content-platform-service/internal/repository/post/postgres"
	"content-platform-service/internal/repository/postgres"
	token_postgres "content-platform-service/internal/repository/token/postgres"
	user_postgres "content-platform-service/internal/repository/user/postgres"
	auth_service "content-platform-service/internal/service/auth"
	post_service "content-platform-service/internal/service/post"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	metrics.SetServiceHealth(true)

	postCache := redis.NewPostCache(redisClient, log, cfg.Redis.PostTTL)

	unitOfWork := postgres.NewPostgresUOW(pool, log)
	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	userRepo := user_postgres.NewUserRepository(pool, log)
	tokenRepo := token_postgres.NewTokenRepository(pool, log)

	originalPostService := post_service.NewPostService(postRepo, log,
		cfg.Listing.PublicPageSize, cfg.Listing.DashboardPageSize)

	postService := post_service.NewPostServiceCacheDecorator(
		originalPostService,
		postCache,
		log,
		metrics,
	)

	authService := auth_service.NewAuthService(userRepo, tokenRepo, unitOfWork, log, cfg.Auth)

	renderer := markdown.NewRenderer()

	postHandler := handlers.NewPostHandler(postService, renderer, log,
		cfg.Listing.PublicPageSize, cfg.Listing.DashboardPageSize)
	authHandler := handlers.NewAuthHandler(authService, log)

	httpServer := delivery_http.NewServer(postHandler, authHandler, authService,
		cfg.HTTPServer.Address, cfg.HTTPServer.Port, log, metrics)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}
