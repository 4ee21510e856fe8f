package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/404reese/vynk/internal/app/server/ws"
	"github.com/404reese/vynk/internal/config"
	"github.com/404reese/vynk/internal/core/services"
	"github.com/404reese/vynk/pkg/logging"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type WSHandler struct {
	relay    *services.RelayService
	upgrader websocket.Upgrader
	opts     ws.Options
}

func NewWSHandler(log *slog.Logger, relay *services.RelayService, cfg config.RelayConfig) *WSHandler {
	return &WSHandler{
		relay: relay,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     OriginChecker(log, cfg.AllowedOrigins),
		},
		opts: ws.Options{
			WriteTimeout:   cfg.WriteTimeout,
			PongTimeout:    cfg.PongTimeout,
			MaxMessageSize: cfg.MaxMessageSize,
			SendBuffer:     cfg.SendBuffer,
		},
	}
}

// Handler upgrades the request and runs the connection's whole life:
// join the room, pump inbound frames through the relay in arrival order,
// and leave exactly once when the read loop ends, however it ends.
func (h *WSHandler) Handler(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())
	span := trace.SpanFromContext(r.Context())

	room := r.PathValue("room")
	if room == "" {
		log.ErrorContext(r.Context(), "ws handler - join - missing room id")
		http.Error(w, "room id required", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("room.id", room))

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error response.
		log.ErrorContext(r.Context(), "ws handler - upgrade - failed", logging.Room(room), logging.Err(err))
		return
	}

	// The session outlives the upgrade request; keep its values (logger,
	// span) but detach from the request's cancellation.
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	socket := ws.NewWebSocket(conn, h.opts)
	client := ws.NewClient(ctx, socket, uuid.NewString(), room)
	span.SetAttributes(attribute.String("conn.id", client.ID()))

	h.relay.Connect(ctx, client)
	defer h.relay.Disconnect(ctx, client)
	defer client.Close()

	err = socket.ReadLoop(func(data []byte) {
		h.relay.Relay(ctx, client, data)
	})
	if ws.IsUnexpectedClose(err) {
		log.WarnContext(ctx, "ws handler - session - closed unexpectedly",
			logging.Room(room), logging.Conn(client.ID()), logging.Err(err))
		return
	}
	log.InfoContext(ctx, "ws handler - session - closed",
		logging.Room(room), logging.Conn(client.ID()))
}
