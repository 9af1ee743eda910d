// Package notify carries new block events between processes over Redis pub/sub.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/cache"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Channel returns the pub/sub channel that carries new blocks of unit.
func Channel(unit model.Unit) string {
	return fmt.Sprintf("blockinsight7000:%s:block.new", unit)
}

// Publisher sends enriched blocks to every subscriber of the unit channel.
type Publisher struct {
	client  redis.Cmdable
	channel string
	logger  *zap.Logger
}

// NewPublisher builds a Publisher for unit.
func NewPublisher(client redis.Cmdable, unit model.Unit, logger *zap.Logger) (*Publisher, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	channel := Channel(unit)
	return &Publisher{
		client:  client,
		channel: channel,
		logger:  logger.Named("publisher").With(zap.String("channel", channel)),
	}, nil
}

// Publish sends block as JSON on the unit channel.
func (p *Publisher) Publish(ctx context.Context, block model.EnrichedBlock) error {
	payload, err := cache.Encode(block)
	if err != nil {
		return err
	}
	receivers, err := p.client.Publish(ctx, p.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("%w: publish to %s: %w", model.ErrUnavailable, p.channel, err)
	}
	p.logger.Debug("block published",
		zap.String("hash", block.Hash),
		zap.Uint64("height", block.Height),
		zap.Int64("receivers", receivers),
	)
	return nil
}
