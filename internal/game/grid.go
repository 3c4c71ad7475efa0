package game

// Pos addresses a cell on the board.
type Pos struct {
	Row int `json:"r"`
	Col int `json:"c"`
}

// Direction is a unit step on the grid.
type Direction struct {
	DR int
	DC int
}

// Directions lists the four cardinal steps. Diagonal moves are never legal.
var Directions = [4]Direction{
	{DR: -1, DC: 0}, // up
	{DR: 1, DC: 0},  // down
	{DR: 0, DC: -1}, // left
	{DR: 0, DC: 1},  // right
}

func IsOnBoard(r, c, size int) bool {
	return r >= 0 && r < size && c >= 0 && c < size
}

// IsAdjacent reports whether two cells are exactly one orthogonal step apart.
func IsAdjacent(r1, c1, r2, c2 int) bool {
	return abs(r1-r2)+abs(c1-c2) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
