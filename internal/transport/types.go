package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	WindowService interface {
		GetWindow(ctx context.Context, req model.WindowRequest) ([]model.EnrichedBlock, error)
		DefaultLimit() uint64
		MaxLimit() uint64
	}
	HealthChecker interface {
		Ping(ctx context.Context) error
	}
	StreamMetrics interface {
		ClientConnected()
		ClientDisconnected()
		ObserveMessage(err error)
	}
)
