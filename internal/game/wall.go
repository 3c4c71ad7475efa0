package game

type Orientation string

const (
	Horizontal Orientation = "h"
	Vertical   Orientation = "v"
)

func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

// Flip returns the other orientation.
func (o Orientation) Flip() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Wall is anchored at a slot and spans two unit edges.
//
// A horizontal wall at (r,c) severs the edges between rows r and r+1 at
// columns c and c+1. A vertical wall at (r,c) severs the edges between
// columns c and c+1 at rows r and r+1.
type Wall struct {
	Row         int         `json:"r"`
	Col         int         `json:"c"`
	Orientation Orientation `json:"type"`
}

// IsBlocked reports whether a single step from (r1,c1) to the adjacent cell
// (r2,c2) crosses a wall.
func IsBlocked(r1, c1, r2, c2 int, walls []Wall) bool {
	switch {
	case r2 > r1:
		return hasSpan(walls, Horizontal, r1, c1)
	case r2 < r1:
		return hasSpan(walls, Horizontal, r2, c1)
	case c2 > c1:
		return hasSpan(walls, Vertical, c1, r1)
	case c2 < c1:
		return hasSpan(walls, Vertical, c2, r1)
	}
	return false
}

// hasSpan looks for a wall of orientation o on the given line whose two-edge
// span covers offset at. For horizontal walls line is a row and at a column;
// for vertical walls line is a column and at a row.
func hasSpan(walls []Wall, o Orientation, line, at int) bool {
	for _, w := range walls {
		if w.Orientation != o {
			continue
		}
		wl, wa := w.Row, w.Col
		if o == Vertical {
			wl, wa = w.Col, w.Row
		}
		if wl == line && (wa == at || wa == at-1) {
			return true
		}
	}
	return false
}

// WallInBounds applies the boundary rule: a wall needs two full cells along
// its length and must sit between cells, never on the outer edge. Only slots
// with both coordinates below size-1 qualify, whatever the orientation.
func WallInBounds(w Wall, size int) bool {
	if !w.Orientation.Valid() {
		return false
	}
	return w.Row >= 0 && w.Col >= 0 && w.Row < size-1 && w.Col < size-1
}

// Overlaps reports whether w collides with any placed wall: same slot with
// either orientation, or a collinear neighbour sharing an edge.
func Overlaps(w Wall, walls []Wall) bool {
	for _, e := range walls {
		if e.Row == w.Row && e.Col == w.Col {
			return true
		}
		if e.Orientation != w.Orientation {
			continue
		}
		if w.Orientation == Horizontal && e.Row == w.Row && abs(e.Col-w.Col) <= 1 {
			return true
		}
		if w.Orientation == Vertical && e.Col == w.Col && abs(e.Row-w.Row) <= 1 {
			return true
		}
	}
	return false
}
