// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"

	"github.com/goki/ki/kit"

	"github.com/rrobots/ricochet/board"
)

// WallMode selects how the wall grid is produced on reset.
type WallMode int

//go:generate stringer -type=WallMode

var KiT_WallMode = kit.Enums.AddEnum(WallModeN, false, nil)

// The wall modes.
const (
	// FixedWalls uses the canonical board: catalog entry 0 for the
	// standard size, a boundary-only board otherwise. No RNG draws.
	FixedWalls WallMode = iota

	// VariantWalls draws one entry uniformly from the first Variants
	// entries of the board catalog.
	VariantWalls

	// RandomWalls places wall segments procedurally at the configured
	// density, keeping the board connected.
	RandomWalls

	WallModeN
)

// WallModeNames are human-readable names for the wall modes.
var WallModeNames = []string{"Fixed", "Variants", "Random"}

// TargetMode selects how the target is chosen on reset.
type TargetMode int

//go:generate stringer -type=TargetMode

var KiT_TargetMode = kit.Enums.AddEnum(TargetModeN, false, nil)

// The target modes.
const (
	// VariantTargets draws uniformly from the marker list of the
	// generated board. Requires a catalog board, so it cannot be
	// combined with RandomWalls.
	VariantTargets TargetMode = iota

	// ListTargets draws uniformly from a caller-supplied candidate list.
	ListTargets

	TargetModeN
)

// TargetModeNames are human-readable names for the target modes.
var TargetModeNames = []string{"Variants", "List"}

// RobotMode selects how robot starting positions are chosen on reset.
type RobotMode int

//go:generate stringer -type=RobotMode

var KiT_RobotMode = kit.Enums.AddEnum(RobotModeN, false, nil)

// The robot modes.
const (
	// RandomRobots rejection-samples four distinct cells avoiding the
	// target cell and the center obstacle of catalog boards.
	RandomRobots RobotMode = iota

	// ListRobots uses exactly four caller-supplied positions, assigned
	// in the fixed color order red, blue, green, yellow.
	ListRobots

	RobotModeN
)

// RobotModeNames are human-readable names for the robot modes.
var RobotModeNames = []string{"Random", "List"}

// Config holds the construction-time parameters of an Engine.
type Config struct {
	Size        int              `desc:"side length of the board"`
	Walls       WallMode         `desc:"wall generation mode"`
	Targets     TargetMode       `desc:"target selection mode"`
	Robots      RobotMode        `desc:"robot placement mode"`
	Variants    int              `desc:"number of catalog entries to draw from in VariantWalls mode"`
	WallDensity float64          `desc:"fraction of interior wall slots to fill in RandomWalls mode"`
	MaxGenTries int              `desc:"bounded attempt count for random generation before ErrGenerate"`
	Seed        int64            `desc:"RNG seed -- 0 draws a nondeterministic seed from the clock"`
	TargetList  []board.Target   `desc:"candidate targets for ListTargets mode"`
	RobotList   []board.Position `desc:"the four robot positions for ListRobots mode, in color order"`
}

// Defaults sets default values: the standard 16x16 fixed board with
// variant targets and random robots.
func (cf *Config) Defaults() {
	cf.Size = board.DefaultSize
	cf.Walls = FixedWalls
	cf.Targets = VariantTargets
	cf.Robots = RandomRobots
	cf.Variants = board.CatalogSize
	cf.WallDensity = 0.1
	cf.MaxGenTries = 32
	cf.Seed = 0
}

// Validate checks the mode combination and the explicit lists, and
// returns an ErrConfig-wrapped error for anything an Engine cannot run
// with. All failures here are construction-time failures.
func (cf *Config) Validate() error {
	if cf.Size < 2 {
		return fmt.Errorf("%w: board size %d, must be at least 2", ErrConfig, cf.Size)
	}
	if cf.Walls < 0 || cf.Walls >= WallModeN {
		return fmt.Errorf("%w: unknown wall mode %d", ErrConfig, cf.Walls)
	}
	if cf.Targets < 0 || cf.Targets >= TargetModeN {
		return fmt.Errorf("%w: unknown target mode %d", ErrConfig, cf.Targets)
	}
	if cf.Robots < 0 || cf.Robots >= RobotModeN {
		return fmt.Errorf("%w: unknown robot mode %d", ErrConfig, cf.Robots)
	}
	if cf.MaxGenTries < 1 {
		return fmt.Errorf("%w: MaxGenTries %d, must be positive", ErrConfig, cf.MaxGenTries)
	}

	if cf.Targets == VariantTargets {
		if cf.Walls == RandomWalls {
			return fmt.Errorf("%w: variant targets need a catalog board, not random walls", ErrConfig)
		}
		if cf.Size != board.DefaultSize {
			return fmt.Errorf("%w: variant targets need the %dx%d catalog board, size is %d",
				ErrConfig, board.DefaultSize, board.DefaultSize, cf.Size)
		}
	}

	switch cf.Walls {
	case VariantWalls:
		if cf.Size != board.DefaultSize {
			return fmt.Errorf("%w: the board catalog is %dx%d, size is %d",
				ErrConfig, board.DefaultSize, board.DefaultSize, cf.Size)
		}
		if cf.Variants < 1 || cf.Variants > board.CatalogSize {
			return fmt.Errorf("%w: variants %d outside [1,%d]", ErrConfig, cf.Variants, board.CatalogSize)
		}
	case RandomWalls:
		if cf.WallDensity <= 0 || cf.WallDensity >= 1 {
			return fmt.Errorf("%w: wall density %g outside (0,1)", ErrConfig, cf.WallDensity)
		}
	}

	if cf.Targets == ListTargets {
		if len(cf.TargetList) == 0 {
			return fmt.Errorf("%w: empty target list", ErrConfig)
		}
		for i, tg := range cf.TargetList {
			if !tg.Pos.In(cf.Size) {
				return fmt.Errorf("%w: target %d at %v outside the board", ErrConfig, i, tg.Pos)
			}
			if tg.Color < 0 || tg.Color >= board.TargetColorN {
				return fmt.Errorf("%w: target %d has unknown color %d", ErrConfig, i, tg.Color)
			}
		}
	}

	if cf.Robots == ListRobots {
		if len(cf.RobotList) != int(board.ColorsN) {
			return fmt.Errorf("%w: robot list has %d positions, need %d",
				ErrConfig, len(cf.RobotList), board.ColorsN)
		}
		var positions [board.ColorsN]board.Position
		for i, p := range cf.RobotList {
			if !p.In(cf.Size) {
				return fmt.Errorf("%w: robot %s at %v outside the board", ErrConfig, board.ColorNames[i], p)
			}
			positions[i] = p
		}
		if _, err := board.NewRobots(positions); err != nil {
			return fmt.Errorf("%w: %v", ErrConfig, err)
		}
	}
	return nil
}
