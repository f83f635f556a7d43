// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import (
	"github.com/goki/ki/kit"
)

// Color identifies one of the four robots.
type Color int

//go:generate stringer -type=Color

var KiT_Color = kit.Enums.AddEnum(ColorsN, false, nil)

// The robot colors, in the order used by the action encoding and by
// robot placement.
const (
	Red Color = iota
	Blue
	Green
	Yellow

	ColorsN
)

// ColorNames are human-readable names for the robot colors.
var ColorNames = []string{"Red", "Blue", "Green", "Yellow"}

// ColorCode are single-letter codes for the robot colors, used by the
// text renderer and the CLI.
var ColorCode = []string{"R", "B", "G", "Y"}

// Target returns the target color requiring this specific robot.
func (c Color) Target() TargetColor {
	return TargetColor(c)
}

// TargetColor is the robot color a target requires, or TargetAny for
// the spiral target which any robot satisfies.
type TargetColor int

//go:generate stringer -type=TargetColor

var KiT_TargetColor = kit.Enums.AddEnum(TargetColorN, false, nil)

// The target colors. The integer values are the observation encoding
// of the target color.
const (
	TargetRed TargetColor = iota
	TargetBlue
	TargetGreen
	TargetYellow
	TargetAny

	TargetColorN
)

// TargetColorNames are human-readable names for the target colors.
var TargetColorNames = []string{"Red", "Blue", "Green", "Yellow", "Any"}

// Matches reports whether a robot of the given color satisfies this
// target color.
func (tc TargetColor) Matches(c Color) bool {
	return tc == TargetAny || int(tc) == int(c)
}

// Robot returns the robot color this target color requires, and false
// for TargetAny which has no single robot.
func (tc TargetColor) Robot() (Color, bool) {
	if tc == TargetAny {
		return 0, false
	}
	return Color(tc), true
}
