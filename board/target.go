// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import (
	"fmt"

	"github.com/goki/ki/kit"
)

// Target is the cell a robot must reach to end the episode, plus the
// color of the robot that must reach it.
type Target struct {
	Pos   Position    `desc:"cell of the target"`
	Color TargetColor `desc:"robot color required to satisfy the target"`
}

// ReachedBy reports whether the target is satisfied by a robot of the
// given color standing on the given position.
func (t Target) ReachedBy(c Color, pos Position) bool {
	return pos == t.Pos && t.Color.Matches(c)
}

// Symbol is the printed shape of a target marker on the physical board.
type Symbol int

//go:generate stringer -type=Symbol

var KiT_Symbol = kit.Enums.AddEnum(SymbolN, false, nil)

// The marker symbols. Each color has one marker of each of the first
// four symbols; the spiral is the single any-color marker.
const (
	Circle Symbol = iota
	Triangle
	Square
	Hexagon
	Spiral

	SymbolN
)

// SymbolNames are human-readable names for the marker symbols.
var SymbolNames = []string{"Circle", "Triangle", "Square", "Hexagon", "Spiral"}

// MarkerCount is the number of distinct target markers printed on the
// physical board: four symbols in each of the four colors, plus the
// any-color spiral.
const MarkerCount = 17

// Marker names one of the 17 printed target markers.
type Marker struct {
	Color  TargetColor `desc:"color of the marker, TargetAny for the spiral"`
	Symbol Symbol      `desc:"printed shape of the marker"`
}

// MarkerFromIndex returns the marker with the given index in [0,17).
// Indices 0-3 are the red circle, triangle, square and hexagon, 4-7
// blue, 8-11 green, 12-15 yellow, and 16 the spiral.
func MarkerFromIndex(idx int) (Marker, error) {
	switch {
	case idx >= 0 && idx < 16:
		return Marker{Color: TargetColor(idx / 4), Symbol: Symbol(idx % 4)}, nil
	case idx == 16:
		return Marker{Color: TargetAny, Symbol: Spiral}, nil
	default:
		return Marker{}, fmt.Errorf("marker index %d outside [0,%d)", idx, MarkerCount)
	}
}

// Index returns the index of the marker, the inverse of MarkerFromIndex.
func (m Marker) Index() int {
	if m.Color == TargetAny {
		return 16
	}
	return int(m.Color)*4 + int(m.Symbol)
}

func (m Marker) String() string {
	if m.Color == TargetAny {
		return "Spiral"
	}
	return TargetColorNames[m.Color] + " " + SymbolNames[m.Symbol]
}

// PlacedMarker is a marker at its cell on a composed board. The list
// of placed markers on a board is the admissible-target list used by
// variant target selection.
type PlacedMarker struct {
	Marker
	Pos Position `desc:"cell of the marker"`
}

// Target returns the target corresponding to reaching this marker.
func (pm PlacedMarker) Target() Target {
	return Target{Pos: pm.Pos, Color: pm.Color}
}
