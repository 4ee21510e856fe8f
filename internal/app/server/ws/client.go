package ws

import (
	"context"
	"sync"
	"time"

	"github.com/404reese/vynk/internal/core/domain"
)

// Client is one live room member: a websocket plus the single writer
// goroutine that owns it. All outbound frames, relayed messages and pings
// alike, pass through the out channel so the connection only ever has one
// writer.
type Client struct {
	ctx    context.Context
	cancel context.CancelFunc
	ws     *WebSocket
	id     string
	room   string
	out    chan []byte
	once   sync.Once
}

func NewClient(parent context.Context, ws *WebSocket, id, room string) *Client {
	ctx, cancel := context.WithCancel(parent)
	c := &Client{
		ctx:    ctx,
		cancel: cancel,
		ws:     ws,
		id:     id,
		room:   room,
		out:    make(chan []byte, ws.opts.SendBuffer),
	}
	go c.writeLoop()
	return c
}

func (c *Client) ID() string   { return c.id }
func (c *Client) Room() string { return c.room }

// Send queues data for delivery without blocking the caller. A closed
// client reports domain.ErrClientClosed; a full queue reports
// domain.ErrSendBufferFull so the broadcaster can drop the laggard instead
// of stalling the whole room.
func (c *Client) Send(ctx context.Context, data []byte) error {
	if c.ctx.Err() != nil {
		return domain.ErrClientClosed
	}
	select {
	case c.out <- data:
		return nil
	default:
		return domain.ErrSendBufferFull
	}
}

// Close tears the client down exactly once. The out channel is never
// closed; the write loop exits through context cancellation, so late
// Sends fail cleanly instead of panicking.
func (c *Client) Close() {
	c.once.Do(func() {
		c.cancel()
		c.ws.Close()
	})
}

func (c *Client) writeLoop() {
	ticker := time.NewTicker(c.ws.opts.pingInterval())
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.ctx.Done():
			return
		case data := <-c.out:
			if err := c.ws.WriteMessage(data); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.ws.WritePing(); err != nil {
				return
			}
		}
	}
}
