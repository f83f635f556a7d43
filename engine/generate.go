// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"

	"github.com/rrobots/ricochet/board"
)

// generateBoard produces the wall grid for a new episode per the wall
// mode. Catalog boards also yield the admissible-target marker list and
// carry the center obstacle.
func (en *Engine) generateBoard() error {
	switch en.cfg.Walls {
	case FixedWalls:
		if en.cfg.Size == board.DefaultSize {
			en.board, en.markers = board.FixedBoard()
			en.hasCenter = true
		} else {
			en.board = board.New(en.cfg.Size)
			en.markers = nil
			en.hasCenter = false
		}
	case VariantWalls:
		idx := en.rng.IntN(en.cfg.Variants)
		b, markers, err := board.CatalogBoard(idx)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrGenerate, err)
		}
		en.board, en.markers, en.hasCenter = b, markers, true
	case RandomWalls:
		b, err := en.randomBoard()
		if err != nil {
			return err
		}
		en.board, en.markers, en.hasCenter = b, nil, false
	}
	return nil
}

// randomBoard procedurally places wall segments at the configured
// density. A segment placement is kept only if the grid graph stays
// connected, and segments never touch the center block. If a full
// board cannot be filled within the bounded attempt count the attempt
// is restarted from an empty board, and after MaxGenTries restarts the
// generation fails.
func (en *Engine) randomBoard() (*board.Board, error) {
	n := en.cfg.Size
	segments := int(en.cfg.WallDensity * float64(2*n*(n-1)))
	for try := 0; try < en.cfg.MaxGenTries; try++ {
		b := board.New(n)
		if en.fillWalls(b, segments) && b.Connected() {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: no connected %dx%d board with %d wall segments after %d attempts",
		ErrGenerate, n, n, segments, en.cfg.MaxGenTries)
}

// fillWalls places count segments on b, drawing orientation and cell
// for each placement. Draws that hit an occupied slot, touch the center
// block, or would disconnect the grid are discarded. The draw budget
// bounds the total number of attempts so a dense board cannot loop
// forever.
func (en *Engine) fillWalls(b *board.Board, count int) bool {
	n := en.cfg.Size
	budget := 16 * (count + 1)
	placed := 0
	for placed < count && budget > 0 {
		budget--
		if en.rng.IntN(2) == 0 { // right wall between (r,c) and (r,c+1)
			r, c := en.rng.IntN(n), en.rng.IntN(n-1)
			if b.RightWall(r, c) || b.InCenter(board.Pos(r, c)) || b.InCenter(board.Pos(r, c+1)) {
				continue
			}
			b.SetRightWall(r, c)
			if !b.Connected() {
				b.ClearRightWall(r, c)
				continue
			}
		} else { // down wall between (r,c) and (r+1,c)
			r, c := en.rng.IntN(n-1), en.rng.IntN(n)
			if b.DownWall(r, c) || b.InCenter(board.Pos(r, c)) || b.InCenter(board.Pos(r+1, c)) {
				continue
			}
			b.SetDownWall(r, c)
			if !b.Connected() {
				b.ClearDownWall(r, c)
				continue
			}
		}
		placed++
	}
	return placed == count
}

// generateTarget picks the episode target per the target mode.
func (en *Engine) generateTarget() error {
	switch en.cfg.Targets {
	case VariantTargets:
		if len(en.markers) == 0 {
			return fmt.Errorf("%w: board has no admissible targets", ErrGenerate)
		}
		pm := en.markers[en.rng.IntN(len(en.markers))]
		en.target = pm.Target()
	case ListTargets:
		en.target = en.cfg.TargetList[en.rng.IntN(len(en.cfg.TargetList))]
	}
	return nil
}

// generateRobots places the four robots per the robot mode. Random
// placement rejection-samples cells, avoiding the target cell, cells of
// earlier robots, and the center obstacle of catalog boards.
func (en *Engine) generateRobots() error {
	if en.cfg.Robots == ListRobots {
		var positions [board.ColorsN]board.Position
		copy(positions[:], en.cfg.RobotList)
		rs, err := board.NewRobots(positions)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrGenerate, err)
		}
		en.robots = rs
		return nil
	}

	n := en.cfg.Size
	var rs board.Robots
	for c := board.Red; c < board.ColorsN; c++ {
		placed := false
		for try := 0; try < 16*en.cfg.MaxGenTries; try++ {
			pos := board.Pos(en.rng.IntN(n), en.rng.IntN(n))
			if pos == en.target.Pos {
				continue
			}
			if en.hasCenter && en.board.InCenter(pos) {
				continue
			}
			taken := false
			for o := board.Red; o < c; o++ {
				if rs[o] == pos {
					taken = true
					break
				}
			}
			if taken {
				continue
			}
			rs[c] = pos
			placed = true
			break
		}
		if !placed {
			return fmt.Errorf("%w: no free cell for the %s robot on a %dx%d board",
				ErrGenerate, board.ColorNames[c], n, n)
		}
	}
	en.robots = rs
	return nil
}
