// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package board holds the Ricochet Robots data model: the walled grid,
// the four robots, targets and markers, the sliding movement rule, and
// the catalog of board variants assembled from the physical quadrant
// templates.
package board

// DefaultSize is the side length of the standard physical board.
const DefaultSize = 16

// Board is a square grid of cells with wall segments on cell edges.
// A wall segment is stored once: right[r][c] blocks movement between
// (r,c) and (r,c+1) in both directions, down[r][c] between (r,c) and
// (r+1,c). The outer boundary is implicit and always blocks.
type Board struct {
	Size  int `desc:"side length of the board"`
	right [][]bool
	down  [][]bool
}

// New returns an empty board of the given side length, with only the
// implicit boundary walls.
func New(size int) *Board {
	b := &Board{Size: size}
	b.right = make([][]bool, size)
	b.down = make([][]bool, size)
	for r := 0; r < size; r++ {
		b.right[r] = make([]bool, size)
		b.down[r] = make([]bool, size)
	}
	return b
}

// SetRightWall places a wall segment between (r,c) and (r,c+1).
func (b *Board) SetRightWall(r, c int) {
	b.right[r][c] = true
}

// SetDownWall places a wall segment between (r,c) and (r+1,c).
func (b *Board) SetDownWall(r, c int) {
	b.down[r][c] = true
}

// ClearRightWall removes the wall segment between (r,c) and (r,c+1).
func (b *Board) ClearRightWall(r, c int) {
	b.right[r][c] = false
}

// ClearDownWall removes the wall segment between (r,c) and (r+1,c).
func (b *Board) ClearDownWall(r, c int) {
	b.down[r][c] = false
}

// RightWall reports a wall between (r,c) and (r,c+1).
func (b *Board) RightWall(r, c int) bool {
	return b.right[r][c]
}

// DownWall reports a wall between (r,c) and (r+1,c).
func (b *Board) DownWall(r, c int) bool {
	return b.down[r][c]
}

// Blocks reports whether a robot at pos is blocked from moving one cell
// in the given direction, either by a stored wall segment or by the
// board edge.
func (b *Board) Blocks(pos Position, dir Direction) bool {
	switch dir {
	case Up:
		return pos.Row == 0 || b.down[pos.Row-1][pos.Col]
	case Right:
		return pos.Col == b.Size-1 || b.right[pos.Row][pos.Col]
	case Down:
		return pos.Row == b.Size-1 || b.down[pos.Row][pos.Col]
	case Left:
		return pos.Col == 0 || b.right[pos.Row][pos.Col-1]
	}
	return true
}

// CenterRect returns the row and column range [lo,hi] of the center
// block of cells reserved for the central obstacle of the physical
// game: the 2x2 block in the middle of the board.
func (b *Board) CenterRect() (lo, hi int) {
	return b.Size/2 - 1, b.Size / 2
}

// InCenter reports whether pos lies in the center block.
func (b *Board) InCenter(pos Position) bool {
	lo, hi := b.CenterRect()
	return pos.Row >= lo && pos.Row <= hi && pos.Col >= lo && pos.Col <= hi
}

// EncloseCenter walls off the center block on all sides, the central
// obstacle convention of the physical board.
func (b *Board) EncloseCenter() {
	lo, hi := b.CenterRect()
	for c := lo; c <= hi; c++ {
		b.down[lo-1][c] = true
		b.down[hi][c] = true
	}
	for r := lo; r <= hi; r++ {
		b.right[r][lo-1] = true
		b.right[r][hi] = true
	}
}

// Connected reports whether every cell is reachable from every other
// cell when treating wall segments as removed edges of the grid graph
// and ignoring robots. Cells inside a fully walled-off center block are
// exempt: the catalog boards enclose the center 2x2 by construction.
func (b *Board) Connected() bool {
	n := b.Size
	seen := make([]bool, n*n)
	queue := make([]Position, 0, n*n)
	queue = append(queue, Position{})
	seen[0] = true
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		for dir := Up; dir < DirectionN; dir++ {
			if b.Blocks(pos, dir) {
				continue
			}
			nxt := pos.Moved(dir)
			if !seen[nxt.Row*n+nxt.Col] {
				seen[nxt.Row*n+nxt.Col] = true
				queue = append(queue, nxt)
			}
		}
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if !seen[r*n+c] && !b.InCenter(Pos(r, c)) {
				return false
			}
		}
	}
	return true
}

// WallMatrices returns freshly allocated copies of the right-wall and
// down-wall boolean matrices, indexed [row][col], for use as a wall
// observation.
func (b *Board) WallMatrices() (right, down [][]bool) {
	right = make([][]bool, b.Size)
	down = make([][]bool, b.Size)
	for r := 0; r < b.Size; r++ {
		right[r] = make([]bool, b.Size)
		down[r] = make([]bool, b.Size)
		copy(right[r], b.right[r])
		copy(down[r], b.down[r])
	}
	return right, down
}

// WallCount returns the number of stored wall segments, not counting
// the implicit boundary.
func (b *Board) WallCount() int {
	n := 0
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if b.right[r][c] {
				n++
			}
			if b.down[r][c] {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := New(b.Size)
	for r := 0; r < b.Size; r++ {
		copy(nb.right[r], b.right[r])
		copy(nb.down[r], b.down[r])
	}
	return nb
}
