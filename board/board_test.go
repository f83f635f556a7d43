// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallsBlockBothSides(t *testing.T) {
	b := New(8)
	b.SetRightWall(3, 3)
	b.SetDownWall(5, 2)

	tests := []struct {
		name    string
		pos     Position
		dir     Direction
		blocked bool
	}{
		{"right wall blocks rightward", Pos(3, 3), Right, true},
		{"right wall blocks leftward entry", Pos(3, 4), Left, true},
		{"down wall blocks downward", Pos(5, 2), Down, true},
		{"down wall blocks upward entry", Pos(6, 2), Up, true},
		{"open cell moves right", Pos(0, 0), Right, false},
		{"open cell moves down", Pos(0, 0), Down, false},
		{"top boundary", Pos(0, 4), Up, true},
		{"left boundary", Pos(4, 0), Left, true},
		{"bottom boundary", Pos(7, 4), Down, true},
		{"right boundary", Pos(4, 7), Right, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.blocked, b.Blocks(tt.pos, tt.dir))
		})
	}
}

func TestEmptyBoardConnected(t *testing.T) {
	for _, size := range []int{2, 5, 16} {
		b := New(size)
		assert.True(t, b.Connected(), "empty %dx%d board", size)
	}
}

func TestDisconnectedBoard(t *testing.T) {
	// wall off the top-left cell completely
	b := New(4)
	b.SetRightWall(0, 0)
	b.SetDownWall(0, 0)
	assert.False(t, b.Connected())
}

func TestEnclosedCenterIsExempt(t *testing.T) {
	b := New(16)
	b.EncloseCenter()
	assert.True(t, b.Connected())
	assert.Equal(t, 8, b.WallCount())
	assert.True(t, b.InCenter(Pos(7, 7)))
	assert.True(t, b.InCenter(Pos(8, 8)))
	assert.False(t, b.InCenter(Pos(6, 7)))
	assert.False(t, b.InCenter(Pos(9, 8)))
}

func TestWallMatricesAreCopies(t *testing.T) {
	b := New(4)
	b.SetRightWall(1, 2)
	right, down := b.WallMatrices()
	require.True(t, right[1][2])
	right[1][2] = false
	down[0][0] = true
	assert.True(t, b.RightWall(1, 2))
	assert.False(t, b.DownWall(0, 0))
}

// fixtureBoard is a 16x16 movement fixture: a right wall stopping a
// rightward slide along row 5 at column 9, a down wall stopping a
// downward slide in column 0 at row 11, and a down wall above (5,0).
func fixtureBoard() *Board {
	b := New(16)
	b.SetRightWall(5, 9)
	b.SetDownWall(11, 0)
	b.SetDownWall(4, 0)
	return b
}

func TestSlideUntilWall(t *testing.T) {
	b := fixtureBoard()
	rs, err := NewRobots([ColorsN]Position{Pos(0, 5), Pos(15, 15), Pos(5, 0), Pos(15, 0)})
	require.NoError(t, err)

	tests := []struct {
		name string
		dir  Direction
		want Position
	}{
		{"right stops at wall", Right, Pos(5, 9)},
		{"down stops at wall", Down, Pos(11, 0)},
		{"left already at boundary", Left, Pos(5, 0)},
		{"up blocked by wall", Up, Pos(5, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moved := rs.Moved(b, Green, tt.dir)
			assert.Equal(t, tt.want, moved[Green])
			// the other robots never move
			assert.Equal(t, rs[Red], moved[Red])
			assert.Equal(t, rs[Blue], moved[Blue])
			assert.Equal(t, rs[Yellow], moved[Yellow])
		})
	}
}

func TestSlideBlockedByRobot(t *testing.T) {
	b := New(5)
	rs, err := NewRobots([ColorsN]Position{Pos(0, 0), Pos(4, 4), Pos(0, 4), Pos(4, 0)})
	require.NoError(t, err)

	// red slides right along row 0 until the cell before green
	moved := rs.Moved(b, Red, Right)
	assert.Equal(t, Pos(0, 3), moved[Red])

	// a robot directly adjacent does not move at all
	again := moved.Moved(b, Red, Right)
	assert.Equal(t, moved, again)
}

func TestSlideFullSpan(t *testing.T) {
	b := New(16)
	rs, err := NewRobots([ColorsN]Position{Pos(3, 0), Pos(15, 15), Pos(15, 14), Pos(15, 13)})
	require.NoError(t, err)

	moved := rs.Moved(b, Red, Right)
	assert.Equal(t, Pos(3, 15), moved[Red])
}

func TestNoOverlapAfterMoves(t *testing.T) {
	b, _ := FixedBoard()
	rs, err := NewRobots([ColorsN]Position{Pos(1, 0), Pos(4, 5), Pos(1, 7), Pos(15, 7)})
	require.NoError(t, err)

	for c := Red; c < ColorsN; c++ {
		for d := Up; d < DirectionN; d++ {
			moved := rs.Moved(b, c, d)
			for a := Red; a < ColorsN; a++ {
				for o := Red; o < a; o++ {
					assert.NotEqual(t, moved[a], moved[o], "robots %s and %s overlap after %s %s",
						ColorNames[o], ColorNames[a], ColorNames[c], DirectionNames[d])
				}
			}
		}
	}
}

func TestNewRobotsRejectsOverlap(t *testing.T) {
	_, err := NewRobots([ColorsN]Position{Pos(0, 0), Pos(0, 0), Pos(1, 1), Pos(2, 2)})
	assert.Error(t, err)
}

func TestTargetReachedBy(t *testing.T) {
	tg := Target{Pos: Pos(3, 4), Color: TargetRed}
	assert.True(t, tg.ReachedBy(Red, Pos(3, 4)))
	assert.False(t, tg.ReachedBy(Blue, Pos(3, 4)))
	assert.False(t, tg.ReachedBy(Red, Pos(3, 5)))

	any := Target{Pos: Pos(3, 4), Color: TargetAny}
	assert.True(t, any.ReachedBy(Blue, Pos(3, 4)))
}

func TestMarkerIndexRoundTrip(t *testing.T) {
	for i := 0; i < MarkerCount; i++ {
		m, err := MarkerFromIndex(i)
		require.NoError(t, err)
		assert.Equal(t, i, m.Index())
	}
	_, err := MarkerFromIndex(17)
	assert.Error(t, err)
	_, err = MarkerFromIndex(-1)
	assert.Error(t, err)

	m, _ := MarkerFromIndex(1)
	assert.Equal(t, Marker{TargetRed, Triangle}, m)
	m, _ = MarkerFromIndex(16)
	assert.Equal(t, Marker{TargetAny, Spiral}, m)
}
