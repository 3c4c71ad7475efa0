package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOnBoardAndAdjacent(t *testing.T) {
	assert.True(t, IsOnBoard(0, 0, 3))
	assert.True(t, IsOnBoard(2, 2, 3))
	assert.False(t, IsOnBoard(3, 0, 3))
	assert.False(t, IsOnBoard(0, -1, 3))

	assert.True(t, IsAdjacent(1, 1, 0, 1))
	assert.True(t, IsAdjacent(1, 1, 1, 2))
	assert.False(t, IsAdjacent(1, 1, 2, 2), "diagonal")
	assert.False(t, IsAdjacent(1, 1, 1, 1), "same cell")
	assert.False(t, IsAdjacent(1, 1, 3, 1), "two steps")
}

func TestIsBlocked(t *testing.T) {
	h := []Wall{{Row: 3, Col: 3, Orientation: Horizontal}}
	v := []Wall{{Row: 3, Col: 3, Orientation: Vertical}}

	cases := []struct {
		name           string
		walls          []Wall
		r1, c1, r2, c2 int
		want           bool
	}{
		{"down under left half", h, 3, 3, 4, 3, true},
		{"down under right half", h, 3, 4, 4, 4, true},
		{"down past the end", h, 3, 5, 4, 5, false},
		{"down before the start", h, 3, 2, 4, 2, false},
		{"up across left half", h, 4, 3, 3, 3, true},
		{"up across right half", h, 4, 4, 3, 4, true},
		{"down on another row", h, 2, 3, 3, 3, false},
		{"sideways ignores horizontal", h, 3, 3, 3, 4, false},

		{"right along top half", v, 3, 3, 3, 4, true},
		{"right along bottom half", v, 4, 3, 4, 4, true},
		{"right past the end", v, 5, 3, 5, 4, false},
		{"left along top half", v, 3, 4, 3, 3, true},
		{"left along bottom half", v, 4, 4, 4, 3, true},
		{"right on another column", v, 3, 2, 3, 3, false},
		{"vertical move ignores vertical", v, 3, 3, 4, 3, false},

		{"no walls", nil, 0, 0, 1, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsBlocked(tc.r1, tc.c1, tc.r2, tc.c2, tc.walls))
		})
	}
}

func TestWallInBounds(t *testing.T) {
	assert.True(t, WallInBounds(Wall{Row: 6, Col: 6, Orientation: Horizontal}, 8))
	assert.True(t, WallInBounds(Wall{Row: 6, Col: 6, Orientation: Vertical}, 8))
	assert.False(t, WallInBounds(Wall{Row: 0, Col: 7, Orientation: Horizontal}, 8))
	assert.False(t, WallInBounds(Wall{Row: 7, Col: 0, Orientation: Vertical}, 8))
	// outer edges
	assert.False(t, WallInBounds(Wall{Row: 7, Col: 0, Orientation: Horizontal}, 8))
	assert.False(t, WallInBounds(Wall{Row: 0, Col: 7, Orientation: Vertical}, 8))
	assert.False(t, WallInBounds(Wall{Row: -1, Col: 0, Orientation: Horizontal}, 8))
	assert.False(t, WallInBounds(Wall{Row: 0, Col: 0, Orientation: "x"}, 8))
}

func TestOverlaps(t *testing.T) {
	placed := []Wall{
		{Row: 3, Col: 3, Orientation: Horizontal},
		{Row: 1, Col: 5, Orientation: Vertical},
	}

	cases := []struct {
		name string
		w    Wall
		want bool
	}{
		{"duplicate", Wall{3, 3, Horizontal}, true},
		{"crossing", Wall{3, 3, Vertical}, true},
		{"collinear right", Wall{3, 4, Horizontal}, true},
		{"collinear left", Wall{3, 2, Horizontal}, true},
		{"collinear gap", Wall{3, 5, Horizontal}, false},
		{"parallel row", Wall{4, 3, Horizontal}, false},
		{"vertical below", Wall{2, 5, Vertical}, true},
		{"vertical above", Wall{0, 5, Vertical}, true},
		{"vertical gap", Wall{3, 5, Vertical}, false},
		{"vertical next column", Wall{1, 6, Vertical}, false},
		{"perpendicular neighbour", Wall{3, 4, Vertical}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.w, placed))
		})
	}
}

func TestOrientationFlip(t *testing.T) {
	assert.Equal(t, Vertical, Horizontal.Flip())
	assert.Equal(t, Horizontal, Vertical.Flip())
	assert.Equal(t, "horizontal", Horizontal.String())
}
