// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

// The physical board is built from four 8x8 quadrant pieces. Each piece
// carries a color printed near its center, each color has three known
// pieces, and every piece can be rotated into any of the four corners.
// The wall and marker coordinates below are (col,row) pairs on the
// unrotated piece, matching the published layouts of the game.

// QuadrantSize is the side length of one quadrant piece.
const QuadrantSize = DefaultSize / 2

// quadWall is a wall segment on an unrotated quadrant, (col,row).
type quadWall struct {
	Col, Row int
}

// quadMarker is a target marker on an unrotated quadrant, (col,row).
type quadMarker struct {
	Col, Row int
	Marker   Marker
}

// Quadrant is one 8x8 piece of the physical board.
type Quadrant struct {
	Color      Color        `desc:"color printed near the center of the piece"`
	DownWalls  []quadWall   `desc:"wall segments at the bottom edge of a cell"`
	RightWalls []quadWall   `desc:"wall segments at the right edge of a cell"`
	Markers    []quadMarker `desc:"target markers on the piece"`
}

// rotated returns a copy of the quadrant rotated clockwise the given
// number of quarter turns. Rotating clockwise turns a right wall at
// (c,r) into a down wall at (7-r,c), a down wall at (c,r) into a right
// wall at (6-r,c), and moves a marker at (c,r) to (7-r,c).
func (q Quadrant) rotated(turns int) Quadrant {
	for ; turns > 0; turns-- {
		nq := Quadrant{Color: q.Color}
		nq.DownWalls = make([]quadWall, len(q.RightWalls))
		for i, w := range q.RightWalls {
			nq.DownWalls[i] = quadWall{Col: QuadrantSize - 1 - w.Row, Row: w.Col}
		}
		nq.RightWalls = make([]quadWall, len(q.DownWalls))
		for i, w := range q.DownWalls {
			nq.RightWalls[i] = quadWall{Col: QuadrantSize - 2 - w.Row, Row: w.Col}
		}
		nq.Markers = make([]quadMarker, len(q.Markers))
		for i, m := range q.Markers {
			nq.Markers[i] = quadMarker{Col: QuadrantSize - 1 - m.Row, Row: m.Col, Marker: m.Marker}
		}
		q = nq
	}
	return q
}

// Compose assembles a full board from four quadrants placed clockwise
// from the upper left: quads[0] upper left, quads[1] upper right,
// quads[2] bottom right, quads[3] bottom left. Each quadrant is rotated
// into its corner, the center 2x2 block is enclosed, and the markers
// are returned as the admissible-target list of the board.
func Compose(quads [4]Quadrant) (*Board, []PlacedMarker) {
	offsets := [4][2]int{{0, 0}, {QuadrantSize, 0}, {QuadrantSize, QuadrantSize}, {0, QuadrantSize}}
	b := New(DefaultSize)
	markers := make([]PlacedMarker, 0, MarkerCount)
	for i, q := range quads {
		q = q.rotated(i)
		colAdd, rowAdd := offsets[i][0], offsets[i][1]
		for _, w := range q.DownWalls {
			b.SetDownWall(w.Row+rowAdd, w.Col+colAdd)
		}
		for _, w := range q.RightWalls {
			b.SetRightWall(w.Row+rowAdd, w.Col+colAdd)
		}
		for _, m := range q.Markers {
			markers = append(markers, PlacedMarker{
				Marker: m.Marker,
				Pos:    Pos(m.Row+rowAdd, m.Col+colAdd),
			})
		}
	}
	b.EncloseCenter()
	return b, markers
}

// Quadrants returns the twelve known quadrant pieces, three per color,
// in the order red, blue, green, yellow.
func Quadrants() []Quadrant {
	return []Quadrant{
		// red pieces
		{
			Color:      Red,
			DownWalls:  []quadWall{{0, 5}, {1, 3}, {3, 6}, {4, 0}, {5, 4}},
			RightWalls: []quadWall{{0, 3}, {1, 0}, {3, 6}, {4, 1}, {4, 5}},
			Markers: []quadMarker{
				{1, 3, Marker{TargetRed, Triangle}},
				{3, 6, Marker{TargetBlue, Hexagon}},
				{4, 1, Marker{TargetGreen, Circle}},
				{5, 5, Marker{TargetYellow, Square}},
			},
		},
		{
			Color:      Red,
			DownWalls:  []quadWall{{0, 5}, {1, 1}, {2, 4}, {6, 1}, {7, 4}},
			RightWalls: []quadWall{{0, 1}, {2, 4}, {3, 0}, {6, 2}, {6, 5}},
			Markers: []quadMarker{
				{1, 1, Marker{TargetRed, Triangle}},
				{2, 4, Marker{TargetBlue, Hexagon}},
				{6, 2, Marker{TargetGreen, Circle}},
				{7, 5, Marker{TargetYellow, Square}},
			},
		},
		{
			Color:      Red,
			DownWalls:  []quadWall{{0, 4}, {1, 5}, {2, 3}, {5, 2}, {7, 5}},
			RightWalls: []quadWall{{0, 6}, {2, 4}, {3, 0}, {5, 2}, {6, 5}},
			Markers: []quadMarker{
				{1, 6, Marker{TargetYellow, Square}},
				{2, 4, Marker{TargetGreen, Circle}},
				{5, 2, Marker{TargetBlue, Hexagon}},
				{7, 5, Marker{TargetRed, Triangle}},
			},
		},
		// blue pieces
		{
			Color:      Blue,
			DownWalls:  []quadWall{{0, 3}, {2, 3}, {3, 1}, {4, 5}, {5, 3}},
			RightWalls: []quadWall{{2, 2}, {2, 4}, {4, 3}, {4, 5}, {5, 0}},
			Markers: []quadMarker{
				{2, 4, Marker{TargetRed, Square}},
				{3, 2, Marker{TargetYellow, Circle}},
				{4, 5, Marker{TargetGreen, Hexagon}},
				{5, 3, Marker{TargetBlue, Triangle}},
			},
		},
		{
			Color:      Blue,
			DownWalls:  []quadWall{{0, 3}, {1, 2}, {2, 5}, {5, 1}, {6, 3}},
			RightWalls: []quadWall{{0, 2}, {2, 6}, {3, 0}, {5, 1}, {5, 4}},
			Markers: []quadMarker{
				{1, 2, Marker{TargetRed, Square}},
				{2, 6, Marker{TargetBlue, Triangle}},
				{5, 1, Marker{TargetGreen, Hexagon}},
				{6, 4, Marker{TargetYellow, Circle}},
			},
		},
		{
			Color:      Blue,
			DownWalls:  []quadWall{{0, 4}, {1, 6}, {2, 0}, {4, 4}, {6, 3}},
			RightWalls: []quadWall{{1, 1}, {1, 6}, {4, 0}, {4, 5}, {5, 3}},
			Markers: []quadMarker{
				{1, 6, Marker{TargetGreen, Hexagon}},
				{2, 1, Marker{TargetYellow, Circle}},
				{4, 5, Marker{TargetRed, Square}},
				{6, 3, Marker{TargetBlue, Triangle}},
			},
		},
		// green pieces
		{
			Color:      Green,
			DownWalls:  []quadWall{{0, 6}, {1, 4}, {3, 0}, {4, 5}, {6, 3}},
			RightWalls: []quadWall{{0, 4}, {1, 0}, {2, 1}, {4, 6}, {6, 3}},
			Markers: []quadMarker{
				{1, 4, Marker{TargetRed, Circle}},
				{3, 1, Marker{TargetGreen, Triangle}},
				{4, 6, Marker{TargetBlue, Square}},
				{6, 3, Marker{TargetYellow, Hexagon}},
			},
		},
		{
			Color:      Green,
			DownWalls:  []quadWall{{0, 5}, {1, 1}, {3, 6}, {4, 0}, {6, 3}},
			RightWalls: []quadWall{{1, 0}, {1, 2}, {2, 6}, {3, 1}, {6, 3}},
			Markers: []quadMarker{
				{1, 2, Marker{TargetGreen, Triangle}},
				{3, 6, Marker{TargetBlue, Square}},
				{4, 1, Marker{TargetRed, Circle}},
				{6, 3, Marker{TargetYellow, Hexagon}},
			},
		},
		{
			Color:      Green,
			DownWalls:  []quadWall{{0, 5}, {1, 1}, {3, 6}, {6, 1}, {6, 4}},
			RightWalls: []quadWall{{0, 2}, {2, 6}, {4, 0}, {6, 1}, {6, 5}},
			Markers: []quadMarker{
				{1, 2, Marker{TargetGreen, Triangle}},
				{3, 6, Marker{TargetRed, Circle}},
				{6, 1, Marker{TargetYellow, Hexagon}},
				{6, 5, Marker{TargetBlue, Square}},
			},
		},
		// yellow pieces -- each carries the spiral in one of its layouts
		{
			Color:      Yellow,
			DownWalls:  []quadWall{{0, 3}, {1, 5}, {3, 4}, {5, 1}, {6, 4}, {7, 2}},
			RightWalls: []quadWall{{1, 6}, {2, 0}, {3, 4}, {4, 1}, {5, 5}, {7, 2}},
			Markers: []quadMarker{
				{1, 6, Marker{TargetYellow, Triangle}},
				{3, 4, Marker{TargetRed, Hexagon}},
				{5, 1, Marker{TargetBlue, Circle}},
				{6, 5, Marker{TargetGreen, Square}},
				{7, 2, Marker{TargetAny, Spiral}},
			},
		},
		{
			Color:      Yellow,
			DownWalls:  []quadWall{{0, 4}, {1, 3}, {2, 1}, {3, 7}, {5, 5}, {6, 3}},
			RightWalls: []quadWall{{0, 3}, {2, 1}, {3, 7}, {4, 0}, {5, 4}, {5, 6}},
			Markers: []quadMarker{
				{1, 3, Marker{TargetGreen, Square}},
				{3, 1, Marker{TargetRed, Hexagon}},
				{3, 7, Marker{TargetAny, Spiral}},
				{5, 6, Marker{TargetBlue, Circle}},
				{6, 4, Marker{TargetYellow, Triangle}},
			},
		},
		{
			Color:      Yellow,
			DownWalls:  []quadWall{{0, 6}, {1, 2}, {2, 5}, {5, 3}, {6, 1}, {7, 5}},
			RightWalls: []quadWall{{1, 3}, {2, 5}, {3, 0}, {4, 4}, {5, 1}, {7, 5}},
			Markers: []quadMarker{
				{1, 3, Marker{TargetYellow, Triangle}},
				{2, 5, Marker{TargetRed, Hexagon}},
				{5, 4, Marker{TargetGreen, Square}},
				{6, 1, Marker{TargetBlue, Circle}},
				{7, 5, Marker{TargetAny, Spiral}},
			},
		},
	}
}
