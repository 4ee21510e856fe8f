package registry

import (
	"context"
	"log/slog"
	"sync"

	"github.com/404reese/vynk/internal/core/contracts"
	"github.com/404reese/vynk/pkg/logging"
)

// Registry is the process-wide room table: room id -> members in join order.
// It is the only shared mutable state in the server and every access runs
// under mu. Nothing here is persisted; all rooms die with the process.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string][]contracts.Client
	log   *slog.Logger
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{
		rooms: make(map[string][]contracts.Client),
		log:   log,
	}
}

// Join appends the client to its room, creating the room on first join.
// The caller guarantees a client joins at most once.
func (r *Registry) Join(c contracts.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room := c.Room()
	r.rooms[room] = append(r.rooms[room], c)
}

// Leave removes the client from its room and deletes the room when it was
// the last member. Leaving while not registered is a no-op.
func (r *Registry) Leave(c contracts.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room := c.Room()
	members, ok := r.rooms[room]
	if !ok {
		return
	}
	for i, m := range members {
		if m == c {
			r.rooms[room] = append(members[:i], members[i+1:]...)
			if len(r.rooms[room]) == 0 {
				delete(r.rooms, room)
			}
			return
		}
	}
}

// Broadcast delivers raw to every member of the sender's room except the
// sender. The recipient list is snapshotted under the read lock and the
// sends run outside it, so a slow socket never stalls the registry. A
// sender that is no longer registered gets its frame dropped silently.
func (r *Registry) Broadcast(ctx context.Context, sender contracts.Client, raw []byte) {
	room := sender.Room()

	r.mu.RLock()
	members := r.rooms[room]
	recipients := make([]contracts.Client, 0, len(members))
	senderPresent := false
	for _, m := range members {
		if m == sender {
			senderPresent = true
			continue
		}
		recipients = append(recipients, m)
	}
	r.mu.RUnlock()

	if !senderPresent {
		return
	}

	for _, m := range recipients {
		if err := m.Send(ctx, raw); err != nil {
			// The recipient is unreachable (closed or saturated). Close it
			// and move on; its own read loop performs the Leave.
			r.log.WarnContext(ctx, "registry - broadcast - recipient dropped",
				logging.Room(room), logging.Conn(m.ID()), logging.Err(err))
			m.Close()
		}
	}
}

// Members reports the current member count of a room.
func (r *Registry) Members(room string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[room])
}

// Stats snapshots every live room and its member count.
func (r *Registry) Stats() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := make(map[string]int, len(r.rooms))
	for room, members := range r.rooms {
		stats[room] = len(members)
	}
	return stats
}

// CloseAll force-closes every registered client and empties the registry.
// Used by server shutdown; subsequent Leave calls from unwinding read loops
// hit the idempotent no-op path.
func (r *Registry) CloseAll() int {
	r.mu.Lock()
	var clients []contracts.Client
	for _, members := range r.rooms {
		clients = append(clients, members...)
	}
	r.rooms = make(map[string][]contracts.Client)
	r.mu.Unlock()

	for _, c := range clients {
		c.Close()
	}
	return len(clients)
}
