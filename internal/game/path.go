package game

import (
	"github.com/gammazero/deque"
	"github.com/zyedidia/generic/mapset"
)

// HasPath reports whether any cell on goalRow is reachable from the start
// cell without crossing a wall.
func HasPath(startR, startC, goalRow int, walls []Wall, size int) bool {
	return ShortestPathLen(startR, startC, goalRow, walls, size) >= 0
}

// ShortestPathLen returns the number of steps from the start cell to the
// nearest cell on goalRow, or -1 when the goal row is unreachable.
func ShortestPathLen(startR, startC, goalRow int, walls []Wall, size int) int {
	if !IsOnBoard(startR, startC, size) {
		return -1
	}

	type node struct {
		pos  Pos
		dist int
	}

	start := Pos{Row: startR, Col: startC}
	visited := mapset.New[Pos]()
	visited.Put(start)
	var queue deque.Deque[node]
	queue.PushBack(node{pos: start})

	for queue.Len() > 0 {
		cur := queue.PopFront()
		if cur.pos.Row == goalRow {
			return cur.dist
		}
		for _, d := range Directions {
			next := Pos{Row: cur.pos.Row + d.DR, Col: cur.pos.Col + d.DC}
			if !IsOnBoard(next.Row, next.Col, size) || visited.Has(next) {
				continue
			}
			if IsBlocked(cur.pos.Row, cur.pos.Col, next.Row, next.Col, walls) {
				continue
			}
			visited.Put(next)
			queue.PushBack(node{pos: next, dist: cur.dist + 1})
		}
	}
	return -1
}
