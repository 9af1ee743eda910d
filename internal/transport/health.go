package transport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

type healthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// RedisChecker reports Redis reachability.
type RedisChecker struct {
	client redis.Cmdable
}

// NewRedisChecker builds a RedisChecker.
func NewRedisChecker(client redis.Cmdable) *RedisChecker {
	return &RedisChecker{client: client}
}

// Ping sends PING.
func (c *RedisChecker) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// HealthHandler serves GET /health.
type HealthHandler struct {
	checker HealthChecker
	logger  *zap.Logger
}

// NewHealthHandler builds a HealthHandler.
func NewHealthHandler(checker HealthChecker, logger *zap.Logger) (*HealthHandler, error) {
	if checker == nil {
		return nil, errors.New("health checker is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthHandler{checker: checker, logger: logger.Named("health_handler")}, nil
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.checker.Ping(ctx); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
