// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import "strings"

// Render returns a multi-line text depiction of the board, with one
// bordered cell per grid cell, wall segments drawn on cell edges,
// robots as their color letters, and the target cell marked with a *.
// Robots and target may be nil to draw the bare board.
func Render(b *Board, rs *Robots, tg *Target) string {
	var sb strings.Builder
	n := b.Size

	sb.WriteString("+")
	sb.WriteString(strings.Repeat("---+", n))
	sb.WriteString("\n")

	for r := 0; r < n; r++ {
		sb.WriteString("|")
		for c := 0; c < n; c++ {
			sb.WriteString(cellText(Pos(r, c), rs, tg))
			if c == n-1 || b.RightWall(r, c) {
				sb.WriteString("|")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")

		sb.WriteString("+")
		for c := 0; c < n; c++ {
			if r == n-1 || b.DownWall(r, c) {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// cellText renders the 3-character interior of one cell. A robot letter
// wins over the target mark; a robot standing on the target keeps its
// letter and gains * as a suffix.
func cellText(pos Position, rs *Robots, tg *Target) string {
	onTarget := tg != nil && tg.Pos == pos
	if rs != nil {
		for c := Red; c < ColorsN; c++ {
			if rs[c] == pos {
				if onTarget {
					return " " + ColorCode[c] + "*"
				}
				return " " + ColorCode[c] + " "
			}
		}
	}
	if onTarget {
		return " * "
	}
	return "   "
}

// String renders the bare board without robots or target.
func (b *Board) String() string {
	return Render(b, nil, nil)
}
