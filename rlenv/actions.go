// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rlenv

import (
	"github.com/goki/ki/kit"

	"github.com/rrobots/ricochet/board"
)

// Actions is the discrete action space of the model: one action per
// robot and direction. The integer value of each action is the engine
// action index (robot = value/4, direction = value%4).
type Actions int

//go:generate stringer -type=Actions

var KiT_Actions = kit.Enums.AddEnum(ActionsN, false, nil)

// The available actions.
const (
	RedUp Actions = iota
	RedRight
	RedDown
	RedLeft
	BlueUp
	BlueRight
	BlueDown
	BlueLeft
	GreenUp
	GreenRight
	GreenDown
	GreenLeft
	YellowUp
	YellowRight
	YellowDown
	YellowLeft

	ActionsN
)

// NoAction marks the absence of an externally-supplied action.
const NoAction Actions = -1

// ActionsCode are short code strings for the actions, robot letter then
// direction letter.
var ActionsCode = []string{
	"RU", "RR", "RD", "RL",
	"BU", "BR", "BD", "BL",
	"GU", "GR", "GD", "GL",
	"YU", "YR", "YD", "YL",
}

// Robot returns the robot the action moves.
func (a Actions) Robot() board.Color {
	return board.Color(a / 4)
}

// Dir returns the slide direction of the action.
func (a Actions) Dir() board.Direction {
	return board.Direction(a % 4)
}

// ActionFor returns the action moving the given robot in the given
// direction.
func ActionFor(c board.Color, dir board.Direction) Actions {
	return Actions(int(c)*4 + int(dir))
}
