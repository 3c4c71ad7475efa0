package game

import "slices"

const (
	MinBoardSize = 2
	MaxBoardSize = 32
)

type Phase int

const (
	PhaseSetup Phase = iota
	PhasePlaying
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

type Player struct {
	ID             string `json:"uid"`
	Row            int    `json:"r"`
	Col            int    `json:"c"`
	WallsRemaining int    `json:"walls"`
	GoalRow        int    `json:"goalRow"`
}

func (p Player) Pos() Pos {
	return Pos{Row: p.Row, Col: p.Col}
}

// Session is the complete state of one match. The zero value is a session
// still in setup.
type Session struct {
	BoardSize         int
	MaxWalls          int
	Players           [2]Player
	Walls             []Wall
	CurrentPlayer     int
	Winner            *int
	TurnHasPlacedWall bool
}

// NewSession builds a fresh match. Player 0 starts on the bottom row heading
// for row 0, player 1 starts on the top row heading for the bottom row.
func NewSession(boardSize, maxWalls int) (Session, error) {
	if boardSize < MinBoardSize || boardSize > MaxBoardSize {
		return Session{}, ErrInvalidBoardSize
	}
	if maxWalls < 0 {
		return Session{}, ErrInvalidWallCount
	}

	center := boardSize / 2
	return Session{
		BoardSize: boardSize,
		MaxWalls:  maxWalls,
		Players: [2]Player{
			{Row: boardSize - 1, Col: center, WallsRemaining: maxWalls, GoalRow: 0},
			{Row: 0, Col: center, WallsRemaining: maxWalls, GoalRow: boardSize - 1},
		},
		Walls: []Wall{},
	}, nil
}

func (s Session) Phase() Phase {
	switch {
	case s.BoardSize == 0:
		return PhaseSetup
	case s.Winner != nil:
		return PhaseTerminal
	default:
		return PhasePlaying
	}
}

func (s Session) Current() Player {
	return s.Players[s.CurrentPlayer]
}

func (s Session) Opponent() Player {
	return s.Players[1-s.CurrentPlayer]
}

// Clone returns a copy that shares no memory with s.
func (s Session) Clone() Session {
	out := s
	out.Walls = slices.Clone(s.Walls)
	if s.Winner != nil {
		w := *s.Winner
		out.Winner = &w
	}
	return out
}

// PlayerIndex returns the seat held by id, or -1.
func (s Session) PlayerIndex(id string) int {
	if id == "" {
		return -1
	}
	for i, p := range s.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}
