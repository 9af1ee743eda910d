// Package transport exposes the dashboard HTTP API and the live block stream.
package transport

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// NewRouter wires the API routes behind CORS.
func NewRouter(blocks *BlocksHandler, stream *StreamHandler, health *HealthHandler, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := mux.NewRouter()
	r.Use(requestLogger(logger.Named("http")))

	r.Handle("/api/blocks", blocks).Methods(http.MethodGet)
	r.Handle("/api/socket", stream).Methods(http.MethodGet)
	r.Handle("/health", health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		ExposedHeaders: []string{EndOfDataHeader},
	}).Handler(r)
}

func requestLogger(logger *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request served",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.Duration("duration", time.Since(started)),
			)
		})
	}
}
