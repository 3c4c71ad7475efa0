package ws

import (
	"neoblock/internal/game"
	"neoblock/internal/room"
)

type RoomManager interface {
	Get(roomCode string) (*room.Room, bool)
	Act(roomCode, playerID string, a game.Action) (bool, room.Snapshot, error)
}
