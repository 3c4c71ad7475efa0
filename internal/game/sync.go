package game

import "fmt"

// SyncRecord is the plain form of a Session handed to a remote store.
type SyncRecord struct {
	BoardSize     int      `json:"boardSize"`
	MaxWalls      int      `json:"maxWalls"`
	Players       []Player `json:"players"`
	Walls         []Wall   `json:"walls"`
	CurrentPlayer int      `json:"currentPlayer"`
	Winner        *int     `json:"winner"`
	HasPlacedWall bool     `json:"hasPlacedWall"`
}

func ToSync(s Session) SyncRecord {
	c := s.Clone()
	walls := c.Walls
	if walls == nil {
		walls = []Wall{}
	}
	return SyncRecord{
		BoardSize:     c.BoardSize,
		MaxWalls:      c.MaxWalls,
		Players:       []Player{c.Players[0], c.Players[1]},
		Walls:         walls,
		CurrentPlayer: c.CurrentPlayer,
		Winner:        c.Winner,
		HasPlacedWall: c.TurnHasPlacedWall,
	}
}

// Session converts the record back. Only the shape is checked; game rules
// are not re-validated.
func (r SyncRecord) Session() (Session, error) {
	if r.BoardSize < MinBoardSize || r.BoardSize > MaxBoardSize {
		return Session{}, fmt.Errorf("%w: board size %d", ErrMalformedRecord, r.BoardSize)
	}
	if len(r.Players) != 2 {
		return Session{}, fmt.Errorf("%w: %d players", ErrMalformedRecord, len(r.Players))
	}
	if r.CurrentPlayer != 0 && r.CurrentPlayer != 1 {
		return Session{}, fmt.Errorf("%w: current player %d", ErrMalformedRecord, r.CurrentPlayer)
	}
	if r.Winner != nil && *r.Winner != 0 && *r.Winner != 1 {
		return Session{}, fmt.Errorf("%w: winner %d", ErrMalformedRecord, *r.Winner)
	}
	for _, w := range r.Walls {
		if !w.Orientation.Valid() {
			return Session{}, fmt.Errorf("%w: wall orientation %q", ErrMalformedRecord, w.Orientation)
		}
		if !WallInBounds(w, r.BoardSize) {
			return Session{}, fmt.Errorf("%w: wall slot (%d,%d)", ErrMalformedRecord, w.Row, w.Col)
		}
	}

	s := Session{
		BoardSize:         r.BoardSize,
		MaxWalls:          r.MaxWalls,
		Players:           [2]Player{r.Players[0], r.Players[1]},
		Walls:             append([]Wall{}, r.Walls...),
		CurrentPlayer:     r.CurrentPlayer,
		TurnHasPlacedWall: r.HasPlacedWall,
	}
	if r.Winner != nil {
		w := *r.Winner
		s.Winner = &w
	}
	return s, nil
}
