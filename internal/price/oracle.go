// Package price looks up historical fiat prices of a unit.
package price

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

const (
	// DefaultCurrency is the fiat currency used when none is configured.
	DefaultCurrency = "USD"
	// DefaultTimeout bounds a single lookup.
	DefaultTimeout = 10 * time.Second
	// DefaultRPS is the outbound request rate towards the price service.
	DefaultRPS = 10

	maxResponseBytes = 1 << 20
)

var errMissingPrice = errors.New("price missing in response")

// Metrics records price lookup outcomes.
type Metrics interface {
	ObserveLookup(status string, started time.Time)
}

// Config holds the Oracle settings.
type Config struct {
	Unit     model.Unit
	BaseURL  string
	Currency string
	Timeout  time.Duration
	RPS      int
}

// Oracle fetches the fiat price of a unit at a point in time.
// Failures degrade to a zero price and are never returned.
type Oracle struct {
	client   *http.Client
	limiter  ratelimit.Limiter
	metrics  Metrics
	logger   *zap.Logger
	baseURL  string
	currency string
	timeout  time.Duration
}

// NewOracle creates an Oracle. An empty base URL selects the unit default.
func NewOracle(client *http.Client, cfg Config, metrics Metrics, logger *zap.Logger) (*Oracle, error) {
	if client == nil {
		return nil, errors.New("http client is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = cfg.Unit.PriceAPIBase()
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse price base url: %w", err)
	}
	currency := strings.ToUpper(strings.TrimSpace(cfg.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RPS <= 0 {
		cfg.RPS = DefaultRPS
	}

	return &Oracle{
		client:   client,
		limiter:  ratelimit.New(cfg.RPS),
		metrics:  metrics,
		logger:   logger.Named("price_oracle").With(zap.String("currency", currency)),
		baseURL:  baseURL,
		currency: currency,
		timeout:  cfg.Timeout,
	}, nil
}

// PriceAt returns the fiat price at timestamp, or 0 when it cannot be resolved.
func (o *Oracle) PriceAt(ctx context.Context, timestamp int64) float64 {
	started := time.Now()
	value, err := o.lookup(ctx, timestamp)
	switch {
	case errors.Is(err, errMissingPrice):
		o.metrics.ObserveLookup(metrics.PriceStatusMissing, started)
		o.logger.Warn("price missing", zap.Int64("timestamp", timestamp))
		return 0
	case err != nil:
		o.metrics.ObserveLookup(metrics.PriceStatusError, started)
		o.logger.Warn("price lookup failed", zap.Int64("timestamp", timestamp), zap.Error(err))
		return 0
	}
	o.metrics.ObserveLookup(metrics.PriceStatusSuccess, started)
	return value
}

type historicalPriceResponse struct {
	Prices []map[string]json.Number `json:"prices"`
}

func (o *Oracle) lookup(ctx context.Context, timestamp int64) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	if err := o.waitTurn(ctx); err != nil {
		return 0, err
	}

	query := url.Values{}
	query.Set("currency", o.currency)
	query.Set("timestamp", strconv.FormatInt(timestamp, 10))
	endpoint := o.baseURL + "/historical-price?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("get historical price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload historicalPriceResponse
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode historical price: %w", err)
	}
	if len(payload.Prices) == 0 {
		return 0, errMissingPrice
	}
	raw, ok := payload.Prices[0][o.currency]
	if !ok || raw == "" {
		return 0, errMissingPrice
	}
	value, err := raw.Float64()
	if err != nil {
		return 0, fmt.Errorf("parse %s price: %w", o.currency, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("negative %s price %v", o.currency, value)
	}
	return value, nil
}

// waitTurn blocks until the limiter grants a request or ctx is done. An
// abandoned wait still consumes its slot once granted.
func (o *Oracle) waitTurn(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	granted := make(chan struct{})
	go func() {
		o.limiter.Take()
		close(granted)
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-granted:
		return nil
	}
}
