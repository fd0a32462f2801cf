package websocket

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/ledgerly/ledgerly-backend/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Connection timings. Pings go out well inside the pong window.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxInboundSize = 512
	sendQueueSize  = 256
)

// Client is one realtime connection of an owner. Events flow one way, from the
// hub to the browser; anything the browser sends is read and dropped so that
// pongs and close frames are processed.
type Client struct {
	id      string
	ownerID uuid.UUID
	conn    *websocket.Conn
	hub     *Hub
	logger  zerolog.Logger

	queue     chan []byte
	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

func NewClient(conn *websocket.Conn, ownerID uuid.UUID, hub *Hub) *Client {
	id := uuid.NewString()
	return &Client{
		id:      id,
		ownerID: ownerID,
		conn:    conn,
		hub:     hub,
		logger: log.With().
			Str("component", "websocket").
			Str("client_id", id).
			Str("owner_id", ownerID.String()).
			Logger(),
		queue: make(chan []byte, sendQueueSize),
	}
}

func (c *Client) ID() string         { return c.id }
func (c *Client) OwnerID() uuid.UUID { return c.ownerID }

// Send queues an encoded event without blocking. A full queue drops the event.
func (c *Client) Send(data []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}
	select {
	case c.queue <- data:
		return nil
	default:
		metrics.WebsocketDroppedEvents.Inc()
		return ErrSendBufferFull
	}
}

// Close is idempotent.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.queue)
		c.mu.Unlock()
		err = c.conn.Close()
	})
	return err
}

func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// ReadPump runs until the peer goes away, then unregisters the client.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.Close()
	}()

	c.conn.SetReadLimit(maxInboundSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn().Err(err).Msg("Realtime connection closed unexpectedly")
			}
			return
		}
	}
}

// WritePump delivers queued events and keeps the connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case data, ok := <-c.queue:
			if !ok {
				_ = c.write(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.write(websocket.TextMessage, data); err != nil {
				c.logger.Warn().Err(err).Msg("Failed to deliver event")
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) write(messageType int, data []byte) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(messageType, data)
}
