package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/cache/backend"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/price"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/service"
	redisclient "github.com/goodnatureofminers/blockinsight7000-dashboard/pkg/redis"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Unit    model.Unit    `long:"unit" env:"DASHBOARD_UNIT" description:"chain unit (BTC or LTC)" default:"BTC"`
	Network model.Network `long:"network" env:"DASHBOARD_NETWORK" description:"network name" default:"mainnet" choice:"mainnet" choice:"testnet" choice:"regtest" choice:"signet"`

	Depth     uint64          `long:"depth" env:"WARMER_DEPTH" description:"number of most recent heights to warm" default:"144"`
	TimeRange model.TimeRange `long:"time-range" env:"WARMER_TIME_RANGE" description:"skip blocks older than this window (24h, 3d, 1w, 1m)"`
	Workers   int             `long:"workers" env:"WARMER_WORKERS" description:"concurrent heights" default:"8"`

	MetricsAddr string `long:"metrics-addr" env:"WARMER_METRICS_ADDR" description:"address for metrics server, empty disables it"`

	RPCURL      string        `long:"rpc-url" env:"DASHBOARD_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser     string        `long:"rpc-user" env:"DASHBOARD_RPC_USER" description:"node RPC username"`
	RPCPassword string        `long:"rpc-password" env:"DASHBOARD_RPC_PASSWORD" description:"node RPC password"`
	RPCTimeout  time.Duration `long:"rpc-timeout" env:"DASHBOARD_RPC_TIMEOUT" description:"deadline of a single node call" default:"30s"`

	PriceBaseURL  string        `long:"price-base-url" env:"DASHBOARD_PRICE_BASE_URL" description:"historical price API base URL, defaults per unit"`
	PriceCurrency string        `long:"price-currency" env:"DASHBOARD_PRICE_CURRENCY" description:"fiat currency of the price" default:"USD"`
	PriceTimeout  time.Duration `long:"price-timeout" env:"DASHBOARD_PRICE_TIMEOUT" description:"deadline of a price lookup" default:"10s"`
	PriceRPS      int           `long:"price-rps" env:"DASHBOARD_PRICE_RPS" description:"price API requests per second" default:"10"`

	RedisAddr     string `long:"redis-addr" env:"DASHBOARD_REDIS_ADDR" description:"Redis address" default:"127.0.0.1:6379"`
	RedisPassword string `long:"redis-password" env:"DASHBOARD_REDIS_PASSWORD" description:"Redis password"`
	RedisDB       int    `long:"redis-db" env:"DASHBOARD_REDIS_DB" description:"Redis database" default:"0"`

	CacheBackend  string `long:"cache-backend" env:"DASHBOARD_CACHE_BACKEND" description:"block cache backend" default:"redis" choice:"redis" choice:"clickhouse"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"DASHBOARD_CLICKHOUSE_DSN" description:"ClickHouse DSN for the clickhouse cache backend"`
}

func main() {
	_ = godotenv.Load()

	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("cache warmer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	decoder, err := bitcoin.NewScriptDecoder(cfg.Unit, cfg.Network)
	if err != nil {
		return fmt.Errorf("init script decoder: %w", err)
	}
	reader, err := bitcoin.NewChainReader(
		bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Unit, cfg.Network)),
		decoder,
		cfg.RPCTimeout,
	)
	if err != nil {
		return err
	}

	oracle, err := price.NewOracle(&http.Client{Timeout: cfg.PriceTimeout}, price.Config{
		Unit:     cfg.Unit,
		BaseURL:  cfg.PriceBaseURL,
		Currency: cfg.PriceCurrency,
		Timeout:  cfg.PriceTimeout,
		RPS:      cfg.PriceRPS,
	}, metrics.NewPriceOracle(cfg.Unit, cfg.PriceCurrency), logger)
	if err != nil {
		return fmt.Errorf("init price oracle: %w", err)
	}

	cacheCfg := backend.Config{
		Backend:       cfg.CacheBackend,
		ClickhouseDSN: cfg.ClickhouseDSN,
	}
	if cfg.CacheBackend == backend.Redis {
		redis, err := redisclient.NewClient(ctx, redisclient.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Warn("close redis", zap.Error(err))
			}
		}()
		cacheCfg.Redis = redis
	}
	blockCache, releaseCache, err := backend.Open(ctx, cacheCfg, logger)
	if err != nil {
		return err
	}
	defer releaseCache()

	enricher, err := service.NewEnricher(reader, oracle, logger)
	if err != nil {
		return err
	}
	warmer, err := service.NewCacheWarmer(
		reader,
		blockCache,
		enricher,
		metrics.NewCacheWarmer(cfg.Unit, cfg.Network),
		cfg.Unit,
		cfg.Network,
		cfg.Workers,
		logger,
	)
	if err != nil {
		return err
	}

	report, err := warmer.Warm(ctx, cfg.Depth, cfg.TimeRange)
	if err != nil {
		return err
	}
	logger.Info("done",
		zap.Uint64("depth", cfg.Depth),
		zap.Int("stored", report.Stored),
		zap.Int("cached", report.Cached),
		zap.Int("skipped", report.Skipped),
	)
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
