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
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/notify"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/price"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/service"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/transport"
	redisclient "github.com/goodnatureofminers/blockinsight7000-dashboard/pkg/redis"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const baseWriteTimeout = 30 * time.Second

type config struct {
	Unit    model.Unit    `long:"unit" env:"DASHBOARD_UNIT" description:"chain unit (BTC or LTC)" default:"BTC"`
	Network model.Network `long:"network" env:"DASHBOARD_NETWORK" description:"network name" default:"mainnet" choice:"mainnet" choice:"testnet" choice:"regtest" choice:"signet"`
	Addr    string        `long:"addr" env:"DASHBOARD_ADDR" description:"HTTP listen address" default:":8000"`

	RPCURL      string        `long:"rpc-url" env:"DASHBOARD_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser     string        `long:"rpc-user" env:"DASHBOARD_RPC_USER" description:"node RPC username"`
	RPCPassword string        `long:"rpc-password" env:"DASHBOARD_RPC_PASSWORD" description:"node RPC password"`
	RPCTimeout  time.Duration `long:"rpc-timeout" env:"DASHBOARD_RPC_TIMEOUT" description:"deadline of a single node call" default:"30s"`
	ZMQAddr     string        `long:"zmq-addr" env:"DASHBOARD_ZMQ_ADDR" description:"node zmq hashblock endpoint, wakes the tip watcher early"`

	PriceBaseURL  string        `long:"price-base-url" env:"DASHBOARD_PRICE_BASE_URL" description:"historical price API base URL, defaults per unit"`
	PriceCurrency string        `long:"price-currency" env:"DASHBOARD_PRICE_CURRENCY" description:"fiat currency of the price" default:"USD"`
	PriceTimeout  time.Duration `long:"price-timeout" env:"DASHBOARD_PRICE_TIMEOUT" description:"deadline of a price lookup" default:"10s"`
	PriceRPS      int           `long:"price-rps" env:"DASHBOARD_PRICE_RPS" description:"price API requests per second" default:"10"`

	RedisAddr     string `long:"redis-addr" env:"DASHBOARD_REDIS_ADDR" description:"Redis address" default:"127.0.0.1:6379"`
	RedisPassword string `long:"redis-password" env:"DASHBOARD_REDIS_PASSWORD" description:"Redis password"`
	RedisDB       int    `long:"redis-db" env:"DASHBOARD_REDIS_DB" description:"Redis database" default:"0"`

	CacheBackend  string `long:"cache-backend" env:"DASHBOARD_CACHE_BACKEND" description:"block cache backend" default:"redis" choice:"redis" choice:"clickhouse" choice:"memory"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"DASHBOARD_CLICKHOUSE_DSN" description:"ClickHouse DSN for the clickhouse cache backend"`

	WriteTimeout   time.Duration `long:"write-timeout" env:"DASHBOARD_WRITE_TIMEOUT" description:"HTTP write timeout, derived from the price rate and page cap when zero"`
	DefaultLimit   uint64        `long:"default-limit" env:"DASHBOARD_DEFAULT_LIMIT" description:"page size when a request has none" default:"10"`
	TipInterval    time.Duration `long:"tip-interval" env:"DASHBOARD_TIP_INTERVAL" description:"tip polling interval" default:"60s"`
	DisableWatcher bool          `long:"disable-watcher" env:"DASHBOARD_DISABLE_WATCHER" description:"serve only, another replica runs the tip watcher"`
}

func main() {
	// .env must be loaded before flags so env tags see it.
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
		logger.Fatal("dashboard api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger = logger.With(
		zap.String("unit", string(cfg.Unit)),
		zap.String("network", string(cfg.Network)),
	)

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
	rpc := bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Unit, cfg.Network))
	reader, err := bitcoin.NewChainReader(rpc, decoder, cfg.RPCTimeout)
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

	blockCache, releaseCache, err := backend.Open(ctx, backend.Config{
		Backend:       cfg.CacheBackend,
		ClickhouseDSN: cfg.ClickhouseDSN,
		Redis:         redis,
	}, logger)
	if err != nil {
		return err
	}
	defer releaseCache()

	enricher, err := service.NewEnricher(reader, oracle, logger)
	if err != nil {
		return err
	}
	aggregator, err := service.NewWindowAggregator(
		reader,
		blockCache,
		enricher,
		metrics.NewWindowAggregator(cfg.Unit),
		cfg.Unit,
		cfg.DefaultLimit,
		logger,
	)
	if err != nil {
		return err
	}

	streamMetrics := metrics.NewStream(cfg.Unit)
	hub := transport.NewHub(streamMetrics, logger)
	subscriber, err := notify.NewSubscriber(redis, cfg.Unit, streamMetrics, logger)
	if err != nil {
		return err
	}

	blocksHandler, err := transport.NewBlocksHandler(aggregator, logger)
	if err != nil {
		return err
	}
	streamHandler, err := transport.NewStreamHandler(hub, streamMetrics, logger)
	if err != nil {
		return err
	}
	healthHandler, err := transport.NewHealthHandler(transport.NewRedisChecker(redis), logger)
	if err != nil {
		return err
	}

	watcher, err := newTipWatcher(ctx, cfg, reader, enricher, blockCache, redis, logger)
	if err != nil {
		return err
	}

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           transport.NewRouter(blocksHandler, streamHandler, healthHandler, logger),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout(cfg.WriteTimeout, cfg.PriceRPS, aggregator.MaxLimit()),
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server", zap.String("addr", cfg.Addr))
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down the http server")
		hub.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
		return nil
	})
	g.Go(func() error {
		return ignoreCanceled(subscriber.Run(gctx, hub.Broadcast))
	})

	if watcher != nil {
		g.Go(func() error {
			return ignoreCanceled(watcher.Run(gctx))
		})
	}

	return g.Wait()
}

// newTipWatcher returns nil when the watcher is disabled.
func newTipWatcher(
	ctx context.Context,
	cfg config,
	reader service.ChainReader,
	enricher service.BlockEnricher,
	blockCache service.BlockCache,
	redis goredis.Cmdable,
	logger *zap.Logger,
) (*service.TipWatcher, error) {
	if cfg.DisableWatcher {
		logger.Info("tip watcher disabled")
		return nil, nil
	}
	publisher, err := notify.NewPublisher(redis, cfg.Unit, logger)
	if err != nil {
		return nil, err
	}
	blockSignal, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return nil, err
	}
	return service.NewTipWatcher(
		reader,
		enricher,
		blockCache,
		publisher,
		metrics.NewTipWatcher(cfg.Unit, cfg.Network),
		cfg.Unit,
		cfg.Network,
		cfg.TipInterval,
		logger,
		blockSignal,
	)
}

// writeTimeout leaves room for a cold full page, whose price lookups alone
// take maxLimit/priceRPS seconds behind the rate limiter.
func writeTimeout(configured time.Duration, priceRPS int, maxLimit uint64) time.Duration {
	if configured > 0 {
		return configured
	}
	if priceRPS <= 0 {
		priceRPS = price.DefaultRPS
	}
	return baseWriteTimeout + time.Duration(maxLimit)*time.Second/time.Duration(priceRPS)
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
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
