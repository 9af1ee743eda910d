package transport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	defaultPingInterval = 30 * time.Second
	defaultReadTimeout  = 60 * time.Second
	writeWait           = 10 * time.Second
	maxClientMessage    = 512
)

// StreamHandler serves the /api/socket websocket. Clients only receive;
// anything they send is discarded.
type StreamHandler struct {
	hub          *Hub
	upgrader     websocket.Upgrader
	metrics      StreamMetrics
	logger       *zap.Logger
	pingInterval time.Duration
	readTimeout  time.Duration
}

// NewStreamHandler builds a StreamHandler fed by hub.
func NewStreamHandler(hub *Hub, metrics StreamMetrics, logger *zap.Logger) (*StreamHandler, error) {
	if hub == nil {
		return nil, errors.New("hub is required")
	}
	if metrics == nil {
		return nil, errors.New("stream metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StreamHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		metrics:      metrics,
		logger:       logger.Named("stream_handler"),
		pingInterval: defaultPingInterval,
		readTimeout:  defaultReadTimeout,
	}, nil
}

func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	logger := h.logger.With(zap.String("remote_addr", r.RemoteAddr))
	logger.Debug("stream client connected")

	c := h.hub.register()
	defer h.hub.unregister(c)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.writeMessages(ctx, conn, c, logger)
		// Unblock the reader.
		_ = conn.Close()
	}()

	h.readMessages(conn, logger)
	cancel()
	<-done
	logger.Debug("stream client disconnected")
}

func (h *StreamHandler) writeMessages(ctx context.Context, conn *websocket.Conn, c *client, logger *zap.Logger) {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.closed:
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(writeWait))
			return
		case msg := <-c.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := conn.WriteJSON(msg)
			h.metrics.ObserveMessage(err)
			if err != nil {
				logger.Warn("write stream message failed", zap.Error(err))
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				logger.Debug("ping failed", zap.Error(err))
				return
			}
		}
	}
}

// readMessages drains the client until the connection closes or the read
// deadline passes without a pong.
func (h *StreamHandler) readMessages(conn *websocket.Conn, logger *zap.Logger) {
	conn.SetReadLimit(maxClientMessage)
	_ = conn.SetReadDeadline(time.Now().Add(h.readTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.readTimeout))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("stream read failed", zap.Error(err))
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(h.readTimeout))
	}
}
