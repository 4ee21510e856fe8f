package contracts

import "context"

// Registry tracks which connections belong to which room and fans inbound
// frames out to the rest of the room.
type Registry interface {
	// Join adds a client to its room, creating the room on first join.
	Join(c Client)
	// Leave removes the client and deletes its room once empty. Unjoined
	// clients are absorbed as a no-op: disconnect handling may race with a
	// shutdown sweep that already removed the client.
	Leave(c Client)
	// Broadcast delivers raw to every member of the sender's room except the
	// sender itself. Delivery is best effort per recipient; a failed
	// recipient never blocks the others or the sender.
	Broadcast(ctx context.Context, sender Client, raw []byte)
	// Members reports the current member count of a room (0 once deleted).
	Members(room string) int
	// Stats snapshots every live room and its member count.
	Stats() map[string]int
	// CloseAll force-closes every registered client and empties the
	// registry. Returns the number of clients closed.
	CloseAll() int
}

// Client is the minimal surface the Registry needs to deliver frames to one
// websocket connection.
type Client interface {
	ID() string
	Room() string
	Send(ctx context.Context, data []byte) error
	Close()
}
