package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Domenick1991/jetcharter/internal/cache"
	"github.com/gin-gonic/gin"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	IdempotencyTTL    = 24 * time.Hour
)

type Reserver interface {
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// Idempotency rejects a repeated state-changing request carrying an Idempotency-Key
// that has already been seen. Failed requests release their key so they can be retried.
// Requests without the header, and all requests when the store is unreachable, pass through.
func Idempotency(store Reserver, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method != http.MethodPost && method != http.MethodPut && method != http.MethodPatch {
			c.Next()
			return
		}
		header := c.GetHeader(IdempotencyHeader)
		if header == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := cache.IdempotencyKey(header)
		acquired, err := store.Reserve(ctx, key, IdempotencyTTL)
		if err != nil {
			logger.Warn("idempotency store unavailable", "error", err)
			c.Next()
			return
		}
		if !acquired {
			c.Header("X-Idempotency-Hit", "true")
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "request already processed"})
			return
		}

		// A panicking handler never wrote its 500, so the key is released before the
		// panic continues to Recovery.
		defer func() {
			rec := recover()
			if rec != nil || c.Writer.Status() >= http.StatusBadRequest {
				if err := store.Release(context.WithoutCancel(ctx), key); err != nil {
					logger.Warn("failed to release idempotency key", "error", err)
				}
			}
			if rec != nil {
				panic(rec)
			}
		}()

		c.Next()
	}
}
