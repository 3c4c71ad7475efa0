package game

import "slices"

// Authorizer decides whether caller may act for the player whose turn it is.
type Authorizer interface {
	AuthorizedForCurrentTurn(caller string, s Session) bool
}

// LocalAuthorizer allows everyone. Used for two players sharing one device.
type LocalAuthorizer struct{}

func (LocalAuthorizer) AuthorizedForCurrentTurn(string, Session) bool { return true }

// SeatAuthorizer only allows the caller seated as the current player.
type SeatAuthorizer struct{}

func (SeatAuthorizer) AuthorizedForCurrentTurn(caller string, s Session) bool {
	return caller != "" && s.Current().ID == caller
}

type Option func(*Engine)

func WithAuthorizer(a Authorizer) Option {
	return func(e *Engine) { e.auth = a }
}

// WithIdentity sets the caller used by AttemptMove, AttemptWallPlacement and
// Attempt.
func WithIdentity(id string) Option {
	return func(e *Engine) { e.identity = id }
}

// Engine owns a Session and is the only thing that mutates it. It is not safe
// for concurrent use.
type Engine struct {
	session     Session
	auth        Authorizer
	identity    string
	orientation Orientation
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		auth:        LocalAuthorizer{},
		orientation: Horizontal,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// InitSession starts a new match, discarding any previous state.
func (e *Engine) InitSession(boardSize, maxWalls int) (Session, error) {
	s, err := NewSession(boardSize, maxWalls)
	if err != nil {
		return Session{}, err
	}
	// seats survive a restart
	s.Players[0].ID = e.session.Players[0].ID
	s.Players[1].ID = e.session.Players[1].ID
	e.session = s
	return e.Session(), nil
}

// Session returns a snapshot of the current state.
func (e *Engine) Session() Session {
	return e.session.Clone()
}

// ReplaceSession overwrites the whole state without validation. It is the
// reconciliation path for an authoritative copy held elsewhere.
func (e *Engine) ReplaceSession(s Session) {
	e.session = s.Clone()
}

// SetPlayerID seats id as player idx.
func (e *Engine) SetPlayerID(idx int, id string) {
	e.session.Players[idx].ID = id
}

func (e *Engine) Identity() string {
	return e.identity
}

func (e *Engine) Orientation() Orientation {
	return e.orientation
}

// ToggleOrientation flips the selected wall orientation and returns it.
func (e *Engine) ToggleOrientation() Orientation {
	e.orientation = e.orientation.Flip()
	return e.orientation
}

func (e *Engine) AttemptMove(r, c int) (Session, error) {
	_, err := e.MoveAs(e.identity, r, c)
	return e.Session(), err
}

func (e *Engine) AttemptWallPlacement(r, c int, o Orientation) (Session, error) {
	_, err := e.PlaceWallAs(e.identity, Wall{Row: r, Col: c, Orientation: o})
	return e.Session(), err
}

// PlaceSelectedWall places a wall using the selected orientation.
func (e *Engine) PlaceSelectedWall(r, c int) (Session, error) {
	return e.AttemptWallPlacement(r, c, e.orientation)
}

// MoveAs moves the current player to (r,c) on behalf of caller. The bool
// reports whether the state changed; illegal clicks are ignored without an
// error.
func (e *Engine) MoveAs(caller string, r, c int) (bool, error) {
	s := &e.session
	if s.Phase() != PhasePlaying {
		return false, nil
	}
	if !e.auth.AuthorizedForCurrentTurn(caller, *s) {
		return false, ErrNotYourTurn
	}
	if !IsOnBoard(r, c, s.BoardSize) {
		return false, nil
	}

	p := &s.Players[s.CurrentPlayer]
	if !IsAdjacent(p.Row, p.Col, r, c) {
		return false, nil
	}
	if opp := s.Opponent(); opp.Row == r && opp.Col == c {
		return false, nil
	}
	if IsBlocked(p.Row, p.Col, r, c, s.Walls) {
		return false, nil
	}

	p.Row, p.Col = r, c
	if r == p.GoalRow {
		winner := s.CurrentPlayer
		s.Winner = &winner
		return true, nil
	}
	s.CurrentPlayer = 1 - s.CurrentPlayer
	s.TurnHasPlacedWall = false
	return true, nil
}

// PlaceWallAs places w for the current player on behalf of caller. The turn
// does not pass; the player still has to move.
func (e *Engine) PlaceWallAs(caller string, w Wall) (bool, error) {
	s := &e.session
	if s.Phase() != PhasePlaying {
		return false, nil
	}
	if !e.auth.AuthorizedForCurrentTurn(caller, *s) {
		return false, ErrNotYourTurn
	}
	if s.TurnHasPlacedWall {
		return false, ErrWallAlreadyPlacedThisTurn
	}
	if s.Current().WallsRemaining <= 0 {
		return false, ErrNoWallsRemaining
	}
	if !WallInBounds(w, s.BoardSize) {
		return false, nil
	}
	if Overlaps(w, s.Walls) {
		return false, ErrInvalidPlacement
	}

	candidate := append(slices.Clone(s.Walls), w)
	for _, p := range s.Players {
		if !HasPath(p.Row, p.Col, p.GoalRow, candidate, s.BoardSize) {
			return false, ErrPathBlocked
		}
	}

	s.Walls = candidate
	s.Players[s.CurrentPlayer].WallsRemaining--
	s.TurnHasPlacedWall = true
	return true, nil
}
