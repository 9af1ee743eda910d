package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/cache"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"go.uber.org/zap"
)

const (
	subscribeConfirmTimeout = 5 * time.Second
	resubscribeInitial      = time.Second
	resubscribeMax          = 30 * time.Second
)

var errSubscriptionClosed = errors.New("subscription channel closed")

// Handler receives every block delivered on the unit channel.
type Handler func(ctx context.Context, block model.EnrichedBlock)

// Subscriber delivers blocks published on the unit channel to a handler.
type Subscriber struct {
	client     PubSubClient
	channel    string
	metrics    SubscriberMetrics
	logger     *zap.Logger
	newBackOff func() backoff.BackOff
	sleep      func(context.Context, time.Duration) error
}

// NewSubscriber builds a Subscriber for unit.
func NewSubscriber(client PubSubClient, unit model.Unit, metrics SubscriberMetrics, logger *zap.Logger) (*Subscriber, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if metrics == nil {
		return nil, errors.New("subscriber metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	channel := Channel(unit)
	return &Subscriber{
		client:     client,
		channel:    channel,
		metrics:    metrics,
		logger:     logger.Named("subscriber").With(zap.String("channel", channel)),
		newBackOff: defaultBackOff,
		sleep:      clock.SleepWithContext,
	}, nil
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = resubscribeInitial
	b.MaxInterval = resubscribeMax
	b.MaxElapsedTime = 0
	return b
}

// Run delivers blocks to handler until ctx is canceled. A lost subscription
// is re-established with exponential backoff; handlers never see the outage.
func (s *Subscriber) Run(ctx context.Context, handler Handler) error {
	if handler == nil {
		return errors.New("handler is required")
	}

	b := s.newBackOff()
	for attempt := 1; ; attempt++ {
		err := s.receive(ctx, handler, b)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		wait := b.NextBackOff()
		if wait == backoff.Stop {
			return fmt.Errorf("subscribe to %s: %w", s.channel, err)
		}
		s.logger.Warn("subscription lost, will retry",
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", wait),
		)
		s.metrics.ObserveResubscribe()
		if err := s.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// receive runs one subscription until it fails. b is reset once the
// subscription is confirmed.
func (s *Subscriber) receive(ctx context.Context, handler Handler, b backoff.BackOff) error {
	pubsub := s.client.Subscribe(ctx, s.channel)
	defer func() {
		if err := pubsub.Close(); err != nil {
			s.logger.Debug("close subscription", zap.Error(err))
		}
	}()

	confirmCtx, cancel := context.WithTimeout(ctx, subscribeConfirmTimeout)
	_, err := pubsub.Receive(confirmCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("confirm subscription: %w", err)
	}
	b.Reset()
	s.logger.Info("subscribed")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return errSubscriptionClosed
			}
			block, err := cache.Decode([]byte(msg.Payload))
			if err != nil {
				s.logger.Warn("drop malformed message", zap.Error(err))
				continue
			}
			handler(ctx, block)
		}
	}
}
