package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/jetcharter/config"
	"github.com/Domenick1991/jetcharter/internal/cache"
	"github.com/Domenick1991/jetcharter/internal/catalog"
	"github.com/Domenick1991/jetcharter/internal/email"
	"github.com/Domenick1991/jetcharter/internal/kafka"
	"github.com/Domenick1991/jetcharter/internal/logger"
	"github.com/Domenick1991/jetcharter/internal/metrics"
	"github.com/Domenick1991/jetcharter/internal/service/live"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	lg := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.NotificationsTopic != "" {
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
		defer consumer.Close()

		sender := email.NewSender(lg)
		handler := kafka.BookingEventHandler(lg, func(ctx context.Context, event kafka.BookingEvent) error {
			if err := sender.Send(ctx, event); err != nil {
				return err
			}
			metrics.NotificationsSent.Inc()
			return nil
		})

		go func() {
			if err := consumer.Consume(ctx, handler); err != nil {
				lg.Error("notifications consumer stopped", "error", err)
				stop()
			}
		}()
		lg.Info("consuming notifications", "topic", cfg.Kafka.NotificationsTopic, "group", cfg.Kafka.GroupID)
	} else {
		lg.Warn("kafka not configured, notifications are disabled")
	}

	// Refreshing only pays off when the API reads the same cache.
	if cfg.Redis.Addr == "" {
		lg.Warn("redis not configured, tracking refresh is disabled")
		<-ctx.Done()
		return
	}

	redisCache := cache.NewRedisCache(cfg.Redis)
	defer redisCache.Close()

	httpClient := &http.Client{Timeout: time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second}
	liveService := live.NewLiveService(
		live.NewOpenSkyClient(cfg.Upstream.OpenSkyURL, httpClient),
		live.NewOpenMeteoClient(cfg.Upstream.OpenMeteoURL, httpClient),
		redisCache,
		catalog.NewStore(),
		lg,
	)

	refreshTicker := time.NewTicker(time.Duration(cfg.Worker.TrackingRefreshSeconds) * time.Second)
	defer refreshTicker.Stop()

	for {
		select {
		case <-refreshTicker.C:
			if err := liveService.RefreshTracking(ctx); err != nil {
				lg.Warn("tracking refresh failed", "error", err)
			}
		case <-ctx.Done():
			lg.Info("shutting down worker")
			return
		}
	}
}
