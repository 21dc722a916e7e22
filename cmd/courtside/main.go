package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fortuna/courtside/internal/api/rest"
	"github.com/fortuna/courtside/internal/api/websocket"
	"github.com/fortuna/courtside/internal/cache"
	"github.com/fortuna/courtside/internal/config"
	"github.com/fortuna/courtside/internal/publisher"
	"github.com/fortuna/courtside/internal/scheduler"
	"github.com/fortuna/courtside/internal/service"
	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
)

const (
	serviceName    = "courtside"
	serviceVersion = "1.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		logrus.Fatalf("Invalid logging configuration: %v", err)
	}
	log := logger.WithField("service", serviceName)
	log.Infof("Starting %s v%s - Basketball Leaderboards", serviceName, serviceVersion)

	db, err := store.NewDatabase(cfg.AtlasDSN, log)
	if err != nil {
		log.Fatalf("Failed to connect to Atlas database: %v", err)
	}
	defer db.Close()
	log.Info("✓ Connected to Atlas database")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	log.Info("✓ Database migrations applied")

	redisCache := connectRedis(cfg.RedisURL, log)
	defer redisCache.Close()
	log.Info("✓ Connected to Redis")

	streamPublisher := publisher.NewRedisStreamPublisher(redisCache.Client())

	boards := service.NewLeaderboardService(
		repository.NewLeagueLoader(db),
		redisCache,
		cfg.CurrentSeason,
		cfg.CacheTTL,
		log,
	)

	wsServer := websocket.NewServer(cfg.AllowedOrigins, log)

	sched := scheduler.NewOrchestrator(boards, streamPublisher, wsServer, &scheduler.Config{
		RefreshInterval: cfg.RefreshInterval,
		EnableRefresh:   cfg.EnableRefresh,
		MaxRetries:      3,
		RetryDelay:      5 * time.Second,
	}, log)
	go sched.Start(ctx)
	log.Info("✓ Refresh orchestrator started")

	restServer := rest.NewServer(boards, rest.Options{
		Port:           cfg.RESTPort,
		AllowedOrigins: cfg.AllowedOrigins,
		HealthChecks: map[string]rest.HealthCheck{
			"postgres": db.HealthCheck,
			"redis":    redisCache.HealthCheck,
		},
		Refresher: sched,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
	}, log)
	go func() {
		if err := restServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("REST server error: %v", err)
		}
	}()

	go func() {
		if err := wsServer.Start(cfg.WSPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("WebSocket server error: %v", err)
		}
	}()

	log.Infof("✓ %s v%s started successfully", serviceName, serviceVersion)
	log.Infof("  REST API: http://0.0.0.0:%s", cfg.RESTPort)
	log.Infof("  WebSocket: ws://0.0.0.0:%s/ws/leaderboard", cfg.WSPort)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down gracefully...")

	cancel()
	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Warnf("REST API server shutdown error: %v", err)
	}
	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		log.Warnf("WebSocket server shutdown error: %v", err)
	}

	log.Infof("%s stopped", serviceName)
}

// connectRedis retries until Redis accepts connections
func connectRedis(url string, log *logrus.Entry) *cache.RedisCache {
	const (
		maxRetries = 30
		retryDelay = 2 * time.Second
	)

	log.Info("Connecting to Redis...")
	for i := 0; ; i++ {
		rc, err := cache.NewRedisCache(url)
		if err == nil {
			return rc
		}
		if i == maxRetries-1 {
			log.Fatalf("Failed to connect to Redis after %d attempts: %v", maxRetries, err)
		}
		log.Warnf("Redis connection attempt %d/%d failed: %v (retrying in %v)", i+1, maxRetries, err, retryDelay)
		time.Sleep(retryDelay)
	}
}
