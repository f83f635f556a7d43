// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import "fmt"

// Robots holds the four robot positions, indexed by Color. The value
// is a plain array so a Robots is comparable and can key a map, which
// the solver relies on. Invariant: no two robots share a cell.
type Robots [ColorsN]Position

// NewRobots returns the robots at the given positions, in the fixed
// color order red, blue, green, yellow. Positions must be distinct.
func NewRobots(positions [ColorsN]Position) (Robots, error) {
	rs := Robots(positions)
	for c := Red; c < ColorsN; c++ {
		for o := Red; o < c; o++ {
			if rs[c] == rs[o] {
				return rs, fmt.Errorf("robots %s and %s overlap at %v", ColorNames[o], ColorNames[c], rs[c])
			}
		}
	}
	return rs, nil
}

// ContainsAny reports whether any robot occupies pos.
func (rs *Robots) ContainsAny(pos Position) bool {
	return pos == rs[Red] || pos == rs[Blue] || pos == rs[Green] || pos == rs[Yellow]
}

// Contains reports whether the robot of the given color occupies pos.
func (rs *Robots) Contains(c Color, pos Position) bool {
	return rs[c] == pos
}

// canEnter reports whether the adjacent cell in the given direction is
// enterable from pos: no wall segment in between and no robot on it.
func (rs *Robots) canEnter(b *Board, pos Position, dir Direction) bool {
	return !b.Blocks(pos, dir) && !rs.ContainsAny(pos.Moved(dir))
}

// Moved slides the robot of the given color as far as possible in the
// given direction and returns the resulting robot positions. The robot
// advances one cell at a time while the next cell is inside the board,
// not cut off by a wall segment, and not occupied by another robot; it
// stops on the last legal cell. If the first step is already blocked
// the result equals the input: a legal no-op.
func (rs Robots) Moved(b *Board, c Color, dir Direction) Robots {
	pos := rs[c]
	for rs.canEnter(b, pos, dir) {
		pos = pos.Moved(dir)
	}
	rs[c] = pos
	return rs
}
