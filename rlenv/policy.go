// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rlenv

import (
	"math/rand"

	"github.com/emer/emergent/erand"

	"github.com/rrobots/ricochet/board"
)

// Policy provides a parameterized default exploration policy: random
// slides with biases toward repeating the last move and toward moving
// the same robot again, optionally deferring to an externally-supplied
// action from the model.
type Policy struct {
	PRepeat    float64 `desc:"probability of repeating the previous action"`
	PSameRobot float64 `desc:"probability of moving the previous robot in a fresh direction"`
	UseExtAct  float64 `desc:"probability of using the externally-supplied action from the model"`
	PrvAct     Actions `inactive:"+" desc:"previous action chosen"`
}

func (pl *Policy) Defaults() {
	pl.PRepeat = 0.2
	pl.PSameRobot = 0.3
	pl.UseExtAct = 0.2
	pl.PrvAct = NoAction
}

// Act selects the next action given the external action from the model,
// if any.
func (pl *Policy) Act(ext Actions) Actions {
	act := pl.choose(ext)
	pl.PrvAct = act
	return act
}

func (pl *Policy) choose(ext Actions) Actions {
	if ext > NoAction && ext < ActionsN && erand.BoolProb(pl.UseExtAct, -1) {
		return ext
	}
	if pl.PrvAct > NoAction {
		if erand.BoolProb(pl.PRepeat, -1) {
			return pl.PrvAct
		}
		if erand.BoolProb(pl.PSameRobot, -1) {
			return ActionFor(pl.PrvAct.Robot(), randDir())
		}
	}
	return Actions(rand.Intn(int(ActionsN)))
}

func randDir() board.Direction {
	return board.Direction(rand.Intn(int(board.DirectionN)))
}
