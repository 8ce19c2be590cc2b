package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Domenick1991/jetcharter/config"
	"github.com/Domenick1991/jetcharter/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	swaggerDocURL   = "/swagger/jetcharter.swagger.json"
	shutdownTimeout = 5 * time.Second
)

// Handler is an API surface mounted under /api.
type Handler interface {
	Register(router *gin.RouterGroup)
}

// HealthCheck checks one backing service. A nil error means healthy.
type HealthCheck func(ctx context.Context) error

type Options struct {
	Logger *slog.Logger
	// Idempotency enables Idempotency-Key handling on /api when set.
	Idempotency  middleware.Reserver
	HealthChecks map[string]HealthCheck
}

// NewRouter builds the gin engine with the middleware chain, operational endpoints and
// every handler registered under /api.
func NewRouter(cfg *config.Config, opts Options, handlers ...Handler) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	engine := gin.New()
	engine.Use(middleware.Recovery(logger))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.CORS(cfg.HTTP.AllowOrigins))

	engine.GET("/healthz", healthz(opts.HealthChecks))
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.HTTP.SwaggerDir != "" {
		engine.Static("/swagger", cfg.HTTP.SwaggerDir)
		engine.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL(swaggerDocURL))))
	}

	api := engine.Group("/api")
	if opts.Idempotency != nil {
		api.Use(middleware.Idempotency(opts.Idempotency, logger))
	}
	for _, h := range handlers {
		h.Register(api)
	}
	return engine
}

func healthz(checks map[string]HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		results := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(c.Request.Context()); err != nil {
				results[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}

		state := "ok"
		if status != http.StatusOK {
			state = "degraded"
		}
		c.JSON(status, gin.H{"status": state, "checks": results})
	}
}

// Run serves handler on the configured address and blocks until ctx is canceled or the
// server fails. Cancellation triggers a graceful shutdown.
func Run(ctx context.Context, cfg *config.Config, handler http.Handler, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "address", cfg.HTTP.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve http %s: %w", cfg.HTTP.Address, err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
