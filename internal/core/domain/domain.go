package domain

// RoomStats is the read-only registry snapshot served by the rooms endpoint.
type RoomStats struct {
	// Rooms maps each live room to its current member count. Rooms with no
	// members never appear: the registry deletes them on the last leave.
	Rooms       map[string]int `json:"rooms"`
	RoomCount   int            `json:"room_count"`
	Connections int            `json:"connections"`
}
