// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver finds shortest move sequences for Ricochet Robots
// positions by breadth-first search over robot placements.
package solver

import (
	"errors"
	"fmt"

	"github.com/rrobots/ricochet/board"
)

// ErrUnsolvable is returned when no move sequence reaches the target.
var ErrUnsolvable = errors.New("solver: no solution")

// Move is one robot slide.
type Move struct {
	Robot board.Color     `desc:"robot that moves"`
	Dir   board.Direction `desc:"slide direction"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s", board.ColorNames[m.Robot], board.DirectionNames[m.Dir])
}

// Solution is an optimal move sequence from Start to End. Path is empty
// when the target is already satisfied at Start.
type Solution struct {
	Start board.Robots `desc:"robot placement the search began from"`
	End   board.Robots `desc:"placement after the final move"`
	Path  []Move       `desc:"moves in play order"`
}

// visit records how a placement was first reached, for path
// reconstruction. Placements are comparable value arrays, so they key
// the visited map directly.
type visit struct {
	prev board.Robots
	move Move
}

// expansion order: robots in color order, directions up, down, right,
// left. Ties between equal-length solutions resolve deterministically.
var searchDirs = [board.DirectionN]board.Direction{board.Up, board.Down, board.Right, board.Left}

// Solve returns a shortest move sequence on b from the given placement
// to a state where a matching robot sits on the target cell. The moved
// robot itself must satisfy the target, mirroring episode termination.
// Fails with ErrUnsolvable when the reachable state space is exhausted.
func Solve(b *board.Board, robots board.Robots, tg board.Target) (Solution, error) {
	sol := Solution{Start: robots, End: robots}
	for c := board.Red; c < board.ColorsN; c++ {
		if tg.ReachedBy(c, robots[c]) {
			return sol, nil
		}
	}

	seen := map[board.Robots]visit{robots: {}}
	frontier := []board.Robots{robots}
	for len(frontier) > 0 {
		var next []board.Robots
		for _, cur := range frontier {
			for c := board.Red; c < board.ColorsN; c++ {
				for _, dir := range searchDirs {
					moved := cur.Moved(b, c, dir)
					if moved == cur {
						continue
					}
					if _, ok := seen[moved]; ok {
						continue
					}
					seen[moved] = visit{prev: cur, move: Move{Robot: c, Dir: dir}}
					if tg.ReachedBy(c, moved[c]) {
						sol.End = moved
						sol.Path = reconstruct(seen, robots, moved)
						return sol, nil
					}
					next = append(next, moved)
				}
			}
		}
		frontier = next
	}
	return Solution{}, fmt.Errorf("%w for %s target at row %d col %d",
		ErrUnsolvable, board.TargetColorNames[tg.Color], tg.Pos.Row, tg.Pos.Col)
}

// reconstruct walks the visited map backwards from end to start and
// reverses the collected moves into play order.
func reconstruct(seen map[board.Robots]visit, start, end board.Robots) []Move {
	var path []Move
	for cur := end; cur != start; {
		v := seen[cur]
		path = append(path, v.move)
		cur = v.prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
