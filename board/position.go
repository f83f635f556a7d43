// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import (
	"github.com/goki/ki/kit"
)

// Position is a cell on the board, with row 0 at the top and col 0 at the left.
type Position struct {
	Row int `desc:"row of the cell, 0 at the top"`
	Col int `desc:"column of the cell, 0 at the left"`
}

// Pos is shorthand for constructing a Position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// In reports whether the position is within a size x size board.
func (p Position) In(size int) bool {
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

// Moved returns the adjacent position in the given direction, without
// bounds checking -- Board.Blocks treats the board edge as a wall, so
// movement code never steps outside.
func (p Position) Moved(dir Direction) Position {
	switch dir {
	case Up:
		p.Row--
	case Right:
		p.Col++
	case Down:
		p.Row++
	case Left:
		p.Col--
	}
	return p
}

// Direction is a sliding direction for a robot.
type Direction int

//go:generate stringer -type=Direction

var KiT_Direction = kit.Enums.AddEnum(DirectionN, false, nil)

// The directions, in the order used by the action encoding.
const (
	Up Direction = iota
	Right
	Down
	Left

	DirectionN
)

// DirectionNames are human-readable names for the directions.
var DirectionNames = []string{"Up", "Right", "Down", "Left"}
