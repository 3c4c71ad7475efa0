package http

import "neoblock/internal/game"

// CreateRoomRequest is the payload for POST /rooms. A preset wins over
// explicit sizes; all fields are optional. An absent maxWalls takes the
// server default, an explicit 0 makes a match without walls.
type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
	Preset     string `json:"preset"`
	BoardSize  int    `json:"boardSize"`
	MaxWalls   *int   `json:"maxWalls"`
}

// JoinRoomRequest is the payload for POST /rooms/:code/join. PlayerID is only
// set when re-joining.
type JoinRoomRequest struct {
	PlayerName string `json:"playerName"`
	PlayerID   string `json:"playerId"`
}

type MoveRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
	Row      *int   `json:"r" binding:"required"`
	Col      *int   `json:"c" binding:"required"`
}

type WallRequest struct {
	PlayerID    string `json:"playerId" binding:"required"`
	Row         *int   `json:"r" binding:"required"`
	Col         *int   `json:"c" binding:"required"`
	Orientation string `json:"type" binding:"required"`
}

type ResetRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
}

// ReplaceStateRequest is the payload for PUT /rooms/:code/state.
type ReplaceStateRequest struct {
	PlayerID string           `json:"playerId" binding:"required"`
	State    *game.SyncRecord `json:"state" binding:"required"`
}
