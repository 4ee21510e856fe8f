package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/404reese/vynk/internal/core/services"
	"github.com/404reese/vynk/pkg/logging"
)

// StatusHandler serves the read-only operational endpoints.
type StatusHandler struct {
	relay *services.RelayService
}

func NewStatusHandler(relay *services.RelayService) *StatusHandler {
	return &StatusHandler{relay: relay}
}

func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Relay server is healthy."))
}

// Rooms returns a point-in-time snapshot of rooms and member counts.
func (h *StatusHandler) Rooms(w http.ResponseWriter, r *http.Request) {
	stats := h.relay.RoomStats(r.Context())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(),
			"status handler - rooms - encode failed", logging.Err(err))
	}
}
