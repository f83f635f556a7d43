// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine is the Ricochet Robots episode controller: it owns the
// board, robots, target and the single seeded RNG stream of one episode
// instance, and exposes the reset / step / render / state operations.
// An Engine is single-threaded; run one instance per worker for
// data-parallel training.
package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/rrobots/ricochet/board"
)

// ActionCount is the size of the discrete action space: four robots
// times four directions. Action a moves robot a/4 (in the color order
// red, blue, green, yellow) in direction a%4 (up, right, down, left).
const ActionCount = int(board.ColorsN) * int(board.DirectionN)

// DecodeAction splits an action index into robot color and direction.
func DecodeAction(action int) (board.Color, board.Direction, error) {
	if action < 0 || action >= ActionCount {
		return 0, 0, fmt.Errorf("%w: %d outside [0,%d)", ErrInvalidAction, action, ActionCount)
	}
	return board.Color(action / 4), board.Direction(action % 4), nil
}

// Observation is the full state returned to the caller on every reset
// and step. The wall matrices are shared with the engine and must be
// treated as read-only; they are only replaced, never mutated, between
// resets.
type Observation struct {
	RightWalls  [][]bool                      `desc:"right-wall matrix, indexed [row][col]"`
	DownWalls   [][]bool                      `desc:"down-wall matrix, indexed [row][col]"`
	Robots      [board.ColorsN]board.Position `desc:"robot positions in color order"`
	Target      board.Position                `desc:"target cell"`
	TargetColor int                           `desc:"target color index, 4 = any"`
}

// Snapshot is a deep copy of the episode state for external inspection
// or serialization.
type Snapshot struct {
	Size       int          `desc:"side length of the board"`
	RightWalls [][]bool     `desc:"right-wall matrix copy"`
	DownWalls  [][]bool     `desc:"down-wall matrix copy"`
	Robots     board.Robots `desc:"robot positions"`
	Target     board.Target `desc:"episode target"`
	Steps      int          `desc:"moves taken this episode"`
	Done       bool         `desc:"episode terminated"`
}

// Engine simulates one Ricochet Robots episode at a time.
type Engine struct {
	cfg       Config
	rng       *rand.Rand
	board     *board.Board
	markers   []board.PlacedMarker // admissible targets of catalog boards
	robots    board.Robots
	target    board.Target
	rightObs  [][]bool // wall observation, rebuilt on reset
	downObs   [][]bool
	steps     int
	done      bool
	hasCenter bool // board carries the walled-off center obstacle
}

// New validates the configuration, seeds the RNG stream and generates
// the first episode, returning a ready engine. Construction fails with
// ErrConfig on an invalid configuration and with ErrGenerate when the
// first episode cannot be generated within the bounded attempts.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	en := &Engine{
		cfg: cfg,
		rng: newRNG(cfg.Seed),
	}
	if _, err := en.Reset(); err != nil {
		return nil, err
	}
	return en, nil
}

// Config returns a copy of the engine configuration.
func (en *Engine) Config() Config {
	return en.cfg
}

// BoardSize returns the configured side length.
func (en *Engine) BoardSize() int {
	return en.cfg.Size
}

// Reset generates a new episode: board, then target, then robots, in
// that fixed RNG consumption order, and returns the initial
// observation.
func (en *Engine) Reset() (Observation, error) {
	if err := en.generateBoard(); err != nil {
		return Observation{}, err
	}
	if err := en.generateTarget(); err != nil {
		return Observation{}, err
	}
	if err := en.generateRobots(); err != nil {
		return Observation{}, err
	}
	en.rightObs, en.downObs = en.board.WallMatrices()
	en.steps = 0
	en.done = false
	return en.observation(), nil
}

// Step decodes the action, slides the robot, and reports whether the
// moved robot satisfied the target. Reward is 1 exactly on the
// transition into done. Stepping a finished episode is a no-op that
// returns the terminal observation with done still true; an action
// outside [0,ActionCount) fails with ErrInvalidAction and leaves the
// state untouched.
func (en *Engine) Step(action int) (Observation, float64, bool, error) {
	robot, dir, err := DecodeAction(action)
	if err != nil {
		return Observation{}, 0, en.done, err
	}
	if en.done {
		return en.observation(), 0, true, nil
	}

	en.robots = en.robots.Moved(en.board, robot, dir)
	en.steps++

	reward := 0.0
	if en.target.ReachedBy(robot, en.robots[robot]) {
		en.done = true
		reward = 1
	}
	return en.observation(), reward, en.done, nil
}

// observation assembles the observation from cached state. No
// allocation: the wall matrices are shared and the robot positions are
// a value array.
func (en *Engine) observation() Observation {
	return Observation{
		RightWalls:  en.rightObs,
		DownWalls:   en.downObs,
		Robots:      en.robots,
		Target:      en.target.Pos,
		TargetColor: int(en.target.Color),
	}
}

// Render returns a text depiction of the board, robots and target.
// Purely presentational.
func (en *Engine) Render() string {
	return board.Render(en.board, &en.robots, &en.target)
}

// State returns a deep-copied snapshot of the full episode state.
func (en *Engine) State() Snapshot {
	right, down := en.board.WallMatrices()
	return Snapshot{
		Size:       en.cfg.Size,
		RightWalls: right,
		DownWalls:  down,
		Robots:     en.robots,
		Target:     en.target,
		Steps:      en.steps,
		Done:       en.done,
	}
}

// Board returns the current wall grid. Shared state: callers must not
// modify it.
func (en *Engine) Board() *board.Board {
	return en.board
}

// Robots returns the current robot positions.
func (en *Engine) Robots() board.Robots {
	return en.robots
}

// Target returns the current episode target.
func (en *Engine) Target() board.Target {
	return en.target
}

// Steps returns the number of moves taken this episode.
func (en *Engine) Steps() int {
	return en.steps
}

// Done reports whether the episode has terminated.
func (en *Engine) Done() bool {
	return en.done
}
