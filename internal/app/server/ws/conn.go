package ws

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	defaultWriteTimeout   = 10 * time.Second
	defaultPongTimeout    = 60 * time.Second
	defaultMaxMessageSize = 512 * 1024
	defaultSendBuffer     = 256
)

// Options bound the transport: how long a write may take, how long we wait
// for a pong before declaring the peer dead, the largest inbound frame we
// accept, and how many outbound frames may queue per client.
type Options struct {
	WriteTimeout   time.Duration
	PongTimeout    time.Duration
	MaxMessageSize int64
	SendBuffer     int
}

func (o Options) withDefaults() Options {
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = defaultWriteTimeout
	}
	if o.PongTimeout <= 0 {
		o.PongTimeout = defaultPongTimeout
	}
	if o.MaxMessageSize <= 0 {
		o.MaxMessageSize = defaultMaxMessageSize
	}
	if o.SendBuffer <= 0 {
		o.SendBuffer = defaultSendBuffer
	}
	return o
}

// Pings must fire comfortably before the pong deadline expires.
func (o Options) pingInterval() time.Duration {
	return o.PongTimeout * 9 / 10
}

// WebSocket wraps a gorilla connection with the deadlines and limits from
// Options. It does not serialize writers; the owning Client does.
type WebSocket struct {
	*websocket.Conn
	opts Options
}

func NewWebSocket(conn *websocket.Conn, opts Options) *WebSocket {
	return &WebSocket{Conn: conn, opts: opts.withDefaults()}
}

// WriteMessage sends data as a single text frame, bounded by the write
// timeout.
func (w *WebSocket) WriteMessage(data []byte) error {
	_ = w.Conn.SetWriteDeadline(time.Now().Add(w.opts.WriteTimeout))
	return w.Conn.WriteMessage(websocket.TextMessage, data)
}

// WritePing sends a ping control frame. The peer's pong, through ReadLoop's
// pong handler, pushes the read deadline forward.
func (w *WebSocket) WritePing() error {
	_ = w.Conn.SetWriteDeadline(time.Now().Add(w.opts.WriteTimeout))
	return w.Conn.WriteMessage(websocket.PingMessage, nil)
}

// ReadLoop pumps inbound frames into onMsg until the connection dies and
// returns the terminal read error. onMsg runs on the loop's goroutine, so
// frames from one peer are handed over in arrival order.
func (w *WebSocket) ReadLoop(onMsg func([]byte)) error {
	defer w.Close()

	w.Conn.SetReadLimit(w.opts.MaxMessageSize)
	_ = w.Conn.SetReadDeadline(time.Now().Add(w.opts.PongTimeout))
	w.Conn.SetPongHandler(func(string) error {
		return w.Conn.SetReadDeadline(time.Now().Add(w.opts.PongTimeout))
	})

	for {
		_, data, err := w.Conn.ReadMessage()
		if err != nil {
			return err
		}
		onMsg(data)
	}
}

func (w *WebSocket) Close() {
	_ = w.Conn.Close()
}

// IsUnexpectedClose reports whether err is a close handshake with a code
// outside the ordinary goodbye set. Plain network errors and timeouts are
// not "unexpected" in this sense; they are everyday disconnects.
func IsUnexpectedClose(err error) bool {
	return websocket.IsUnexpectedCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
		websocket.CloseAbnormalClosure,
	)
}
