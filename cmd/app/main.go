package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/jetcharter/api"
	"github.com/Domenick1991/jetcharter/config"
	"github.com/Domenick1991/jetcharter/internal/bootstrap"
	"github.com/Domenick1991/jetcharter/internal/cache"
	"github.com/Domenick1991/jetcharter/internal/catalog"
	"github.com/Domenick1991/jetcharter/internal/kafka"
	"github.com/Domenick1991/jetcharter/internal/logger"
	"github.com/Domenick1991/jetcharter/internal/middleware"
	"github.com/Domenick1991/jetcharter/internal/repository"
	"github.com/Domenick1991/jetcharter/internal/service/booking"
	"github.com/Domenick1991/jetcharter/internal/service/deals"
	"github.com/Domenick1991/jetcharter/internal/service/fleet"
	"github.com/Domenick1991/jetcharter/internal/service/flights"
	"github.com/Domenick1991/jetcharter/internal/service/live"
	"github.com/Domenick1991/jetcharter/internal/service/pricing"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
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
	if cfg.Log.JSON {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	healthChecks := map[string]bootstrap.HealthCheck{}

	var bookingRepo repository.BookingRepository
	if cfg.Database.Enabled() {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			fatal(lg, "connect postgres", err)
		}
		defer pool.Close()
		bookingRepo = repository.NewBookingRepository(pool)
		healthChecks["postgres"] = pool.Ping
	} else {
		lg.Warn("database not configured, bookings are kept in memory")
		bookingRepo = repository.NewMemoryBookingRepository()
	}

	// Interfaces stay nil when a backing service is not configured.
	var (
		liveCache   live.Cache
		reserver    middleware.Reserver
		producer    booking.Producer
		redisCache  *cache.RedisCache
		kafkaWriter *kafka.Producer
	)
	if cfg.Redis.Addr != "" {
		redisCache = cache.NewRedisCache(cfg.Redis)
		defer redisCache.Close()
		liveCache, reserver = redisCache, redisCache
		healthChecks["redis"] = redisCache.Ping
	}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaWriter = kafka.NewProducer(cfg.Kafka.Brokers, lg)
		defer kafkaWriter.Close()
		producer = kafkaWriter
		healthChecks["kafka"] = kafkaWriter.CheckConnection
	}

	store := catalog.NewStore()
	httpClient := &http.Client{Timeout: time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second}

	bookingService := booking.NewBookingService(
		bookingRepo,
		producer,
		cfg.Kafka.BookingTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithLogger(lg),
	)
	liveService := live.NewLiveService(
		live.NewOpenSkyClient(cfg.Upstream.OpenSkyURL, httpClient),
		live.NewOpenMeteoClient(cfg.Upstream.OpenMeteoURL, httpClient),
		liveCache,
		store,
		lg,
	)

	router := bootstrap.NewRouter(cfg, bootstrap.Options{
		Logger:       lg,
		Idempotency:  reserver,
		HealthChecks: healthChecks,
	},
		api.NewFlightHandler(flights.NewFlightService(store)),
		api.NewDealHandler(deals.NewDealService(store)),
		api.NewFleetHandler(fleet.NewFleetService(store)),
		api.NewBookingHandler(bookingService),
		api.NewPricingHandler(pricing.NewPricingService()),
		api.NewLiveHandler(liveService),
		api.NewInfoHandler(store),
	)

	if err := bootstrap.Run(ctx, cfg, router, lg); err != nil {
		fatal(lg, "server error", err)
	}
}

func fatal(lg *slog.Logger, msg string, err error) {
	lg.Error(msg, "error", err)
	os.Exit(1)
}
