package notify

import (
	"context"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	PubSubClient interface {
		Subscribe(ctx context.Context, channels ...string) *redis.PubSub
	}
	SubscriberMetrics interface {
		ObserveResubscribe()
	}
)
