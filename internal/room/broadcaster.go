package room

// Broadcaster fans a message out to every peer watching a room.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
}

// ActionState is the broadcast action carrying a room Snapshot.
const ActionState = "state"

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(string, string, interface{}) {}
