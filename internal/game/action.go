package game

type ActionKind string

const (
	ActionMove ActionKind = "move"
	ActionWall ActionKind = "wall"
)

// Action is a player intent as it travels between client and server.
type Action struct {
	Kind        ActionKind  `json:"kind"`
	Row         int         `json:"r"`
	Col         int         `json:"c"`
	Orientation Orientation `json:"type,omitempty"`
}

func MoveAction(r, c int) Action {
	return Action{Kind: ActionMove, Row: r, Col: c}
}

func WallAction(r, c int, o Orientation) Action {
	return Action{Kind: ActionWall, Row: r, Col: c, Orientation: o}
}

// Apply dispatches a to MoveAs or PlaceWallAs.
func (e *Engine) Apply(caller string, a Action) (bool, error) {
	switch a.Kind {
	case ActionMove:
		return e.MoveAs(caller, a.Row, a.Col)
	case ActionWall:
		return e.PlaceWallAs(caller, Wall{Row: a.Row, Col: a.Col, Orientation: a.Orientation})
	default:
		return false, ErrUnknownAction
	}
}

// Attempt applies a as the engine's own identity.
func (e *Engine) Attempt(a Action) (bool, error) {
	return e.Apply(e.identity, a)
}
