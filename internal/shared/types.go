package shared

import "encoding/json"

// Websocket actions.
const (
	ActionMove  = "move"
	ActionWall  = "wall"
	ActionAck   = "ack"
	ActionState = "state"
	ActionError = "error"
)

// Envelope is every websocket frame in both directions. ID pairs a client
// request with its ack.
type Envelope struct {
	Action string          `json:"action"`
	ID     string          `json:"id,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// Move is the data of a move request and of POST /rooms/:code/move.
type Move struct {
	Row int `json:"r"`
	Col int `json:"c"`
}

// Wall is the data of a wall request and of POST /rooms/:code/wall.
type Wall struct {
	Row         int    `json:"r"`
	Col         int    `json:"c"`
	Orientation string `json:"type"`
}

// Ack answers a request. Error holds a game error code, or a plain message
// for anything else.
type Ack struct {
	ID      string `json:"id"`
	Applied bool   `json:"applied"`
	Error   string `json:"error,omitempty"`
}
