package game

import "errors"

var (
	ErrNotYourTurn               = errors.New("not your turn")
	ErrWallAlreadyPlacedThisTurn = errors.New("wall already placed this turn")
	ErrNoWallsRemaining          = errors.New("no walls remaining")
	ErrInvalidPlacement          = errors.New("invalid wall placement")
	ErrPathBlocked               = errors.New("wall would block a path to goal")

	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrInvalidWallCount = errors.New("invalid wall count")
	ErrMalformedRecord  = errors.New("malformed sync record")
	ErrUnknownAction    = errors.New("unknown action")
)

// Stable codes for the rule errors, used on the wire.
const (
	CodeNotYourTurn        = "not_your_turn"
	CodeWallAlreadyPlaced  = "wall_already_placed"
	CodeNoWallsRemaining   = "no_walls_remaining"
	CodeInvalidPlacement   = "invalid_placement"
	CodePathBlocked        = "path_blocked"
	CodeUnknownAction      = "unknown_action"
	CodeInvalidBoardConfig = "invalid_board"
)

var codes = []struct {
	err  error
	code string
}{
	{ErrNotYourTurn, CodeNotYourTurn},
	{ErrWallAlreadyPlacedThisTurn, CodeWallAlreadyPlaced},
	{ErrNoWallsRemaining, CodeNoWallsRemaining},
	{ErrInvalidPlacement, CodeInvalidPlacement},
	{ErrPathBlocked, CodePathBlocked},
	{ErrUnknownAction, CodeUnknownAction},
	{ErrInvalidBoardSize, CodeInvalidBoardConfig},
	{ErrInvalidWallCount, CodeInvalidBoardConfig},
}

// ErrorCode returns the wire code for a rule error, or "" when err is not one.
func ErrorCode(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}

// ErrorFromCode is the inverse of ErrorCode. Unknown codes yield nil.
func ErrorFromCode(code string) error {
	for _, c := range codes {
		if c.code == code {
			return c.err
		}
	}
	return nil
}

// Advisory returns the short message shown to a player for err.
func Advisory(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotYourTurn):
		return "Not your turn!"
	case errors.Is(err, ErrWallAlreadyPlacedThisTurn):
		return "You can only place 1 wall per turn! Move now."
	case errors.Is(err, ErrNoWallsRemaining):
		return "Energy Depleted!"
	case errors.Is(err, ErrInvalidPlacement):
		return "Invalid Placement!"
	case errors.Is(err, ErrPathBlocked):
		return "Cannot completely block path!"
	default:
		return "Something went wrong, try again."
	}
}

// AdvisoryWallPlaced is shown after a wall is committed.
const AdvisoryWallPlaced = "Wall placed! Now make your move."
