package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-dashboard/internal/model"
	"github.com/puzpuzpuz/xsync/v4"
	"go.uber.org/zap"
)

// MessageTypeNewBlock tags a pushed new block.
const MessageTypeNewBlock = "newBlock"

const clientSendBuffer = 16

// ServerMessage is the envelope of every message pushed to stream clients.
type ServerMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type client struct {
	send chan ServerMessage
	// closed is closed once the hub dropped the client.
	closed chan struct{}
}

// Hub fans new blocks out to connected stream clients.
type Hub struct {
	clients *xsync.Map[*client, struct{}]
	metrics StreamMetrics
	logger  *zap.Logger
}

// NewHub builds an empty Hub.
func NewHub(metrics StreamMetrics, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients: xsync.NewMap[*client, struct{}](),
		metrics: metrics,
		logger:  logger.Named("hub"),
	}
}

// Broadcast queues block for every client. Clients whose buffer is full are
// dropped rather than blocking the others.
func (h *Hub) Broadcast(_ context.Context, block model.EnrichedBlock) {
	msg := ServerMessage{Type: MessageTypeNewBlock, Payload: block}
	h.clients.Range(func(c *client, _ struct{}) bool {
		select {
		case c.send <- msg:
		default:
			h.logger.Warn("stream client too slow, dropping")
			h.unregister(c)
		}
		return true
	})
}

// Close drops every connected client.
func (h *Hub) Close() {
	h.clients.Range(func(c *client, _ struct{}) bool {
		h.unregister(c)
		return true
	})
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	return h.clients.Size()
}

func (h *Hub) register() *client {
	c := &client{
		send:   make(chan ServerMessage, clientSendBuffer),
		closed: make(chan struct{}),
	}
	h.clients.Store(c, struct{}{})
	if h.metrics != nil {
		h.metrics.ClientConnected()
	}
	return c
}

func (h *Hub) unregister(c *client) {
	if _, loaded := h.clients.LoadAndDelete(c); !loaded {
		return
	}
	close(c.closed)
	if h.metrics != nil {
		h.metrics.ClientDisconnected()
	}
}
