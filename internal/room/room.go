package room

import (
	"errors"
	"sync"
	"time"

	"neoblock/internal/game"
)

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomFull       = errors.New("room is full")
	ErrRoomNotPlaying = errors.New("room is not playing")
	ErrUnknownPlayer  = errors.New("player is not seated in this room")
)

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

type Seat struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Room is one match hosted by the server. Seat i plays as engine player i.
type Room struct {
	mu sync.Mutex

	Code      string
	Preset    string
	Seats     [2]Seat
	CreatedAt time.Time
	UpdatedAt time.Time
	// Version counts changes to the room.
	Version int

	engine *game.Engine
}

// Snapshot is the JSON view of a room, sent to HTTP callers and broadcast to
// websocket peers.
type Snapshot struct {
	Code      string          `json:"code"`
	Preset    string          `json:"preset,omitempty"`
	Status    Status          `json:"status"`
	Seats     [2]Seat         `json:"seats"`
	CreatedAt time.Time       `json:"createdAt"`
	Version   int             `json:"version"`
	State     game.SyncRecord `json:"state"`
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	// SaveRoomIfAbsent stores r unless its code is taken and reports whether
	// it did.
	SaveRoomIfAbsent(r *Room) bool
	DeleteRoom(code string)
	ListRooms() []*Room
}

func newRoom(code string, host Seat, boardSize, maxWalls int, now time.Time) (*Room, error) {
	e := game.NewEngine(game.WithAuthorizer(game.SeatAuthorizer{}))
	e.SetPlayerID(0, host.ID)
	if _, err := e.InitSession(boardSize, maxWalls); err != nil {
		return nil, err
	}
	return &Room{
		Code:      code,
		Seats:     [2]Seat{host},
		CreatedAt: now,
		UpdatedAt: now,
		engine:    e,
	}, nil
}

// status must be called with mu held.
func (r *Room) status() Status {
	switch {
	case r.engine.Session().Phase() == game.PhaseTerminal:
		return StatusFinished
	case r.Seats[1].ID == "":
		return StatusWaiting
	default:
		return StatusPlaying
	}
}

func (r *Room) snapshot() Snapshot {
	return Snapshot{
		Code:      r.Code,
		Preset:    r.Preset,
		Status:    r.status(),
		Seats:     r.Seats,
		CreatedAt: r.CreatedAt,
		Version:   r.Version,
		State:     game.ToSync(r.engine.Session()),
	}
}

// touch records a change. mu must be held.
func (r *Room) touch(now time.Time) {
	r.UpdatedAt = now
	r.Version++
}

func (r *Room) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot()
}

// WithSnapshot calls fn with the current snapshot while holding the room lock,
// so no broadcast of a later change can overtake whatever fn sends.
func (r *Room) WithSnapshot(fn func(Snapshot)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.snapshot())
}

func (r *Room) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status()
}

// seatOf returns the seat index held by id, or -1.
func (r *Room) seatOf(id string) int {
	if id == "" {
		return -1
	}
	for i, s := range r.Seats {
		if s.ID == id {
			return i
		}
	}
	return -1
}
