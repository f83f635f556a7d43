// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrobots/ricochet/board"
)

// scenarioConfig is the 5x5 fixed-board scenario: boundary-only walls,
// robots in the four corners plus green in the top-right, and a red
// target on green's cell.
func scenarioConfig() Config {
	var cfg Config
	cfg.Defaults()
	cfg.Size = 5
	cfg.Walls = FixedWalls
	cfg.Targets = ListTargets
	cfg.TargetList = []board.Target{{Pos: board.Pos(0, 4), Color: board.TargetRed}}
	cfg.Robots = ListRobots
	cfg.RobotList = []board.Position{
		board.Pos(0, 0), // red
		board.Pos(4, 4), // blue
		board.Pos(0, 4), // green
		board.Pos(4, 0), // yellow
	}
	cfg.Seed = 1
	return cfg
}

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		action int
		robot  board.Color
		dir    board.Direction
	}{
		{0, board.Red, board.Up},
		{1, board.Red, board.Right},
		{5, board.Blue, board.Right},
		{10, board.Green, board.Down},
		{14, board.Yellow, board.Down},
		{15, board.Yellow, board.Left},
	}
	for _, tt := range tests {
		robot, dir, err := DecodeAction(tt.action)
		require.NoError(t, err)
		assert.Equal(t, tt.robot, robot, "action %d", tt.action)
		assert.Equal(t, tt.dir, dir, "action %d", tt.action)
	}

	for _, bad := range []int{-1, 16, 100} {
		_, _, err := DecodeAction(bad)
		assert.ErrorIs(t, err, ErrInvalidAction, "action %d", bad)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"non-positive size", func(cfg *Config) { cfg.Size = 0 }},
		{"size one", func(cfg *Config) { cfg.Size = 1 }},
		{"random walls with variant targets", func(cfg *Config) { cfg.Walls = RandomWalls }},
		{"variant targets off catalog size", func(cfg *Config) { cfg.Size = 8 }},
		{"variant count zero", func(cfg *Config) { cfg.Walls = VariantWalls; cfg.Variants = 0 }},
		{"variant count too large", func(cfg *Config) { cfg.Walls = VariantWalls; cfg.Variants = board.CatalogSize + 1 }},
		{"density zero", func(cfg *Config) {
			cfg.Walls = RandomWalls
			cfg.Targets = ListTargets
			cfg.TargetList = []board.Target{{Pos: board.Pos(0, 0), Color: board.TargetAny}}
			cfg.WallDensity = 0
		}},
		{"empty target list", func(cfg *Config) { cfg.Targets = ListTargets }},
		{"target off board", func(cfg *Config) {
			cfg.Targets = ListTargets
			cfg.TargetList = []board.Target{{Pos: board.Pos(16, 0), Color: board.TargetRed}}
		}},
		{"short robot list", func(cfg *Config) {
			cfg.Robots = ListRobots
			cfg.RobotList = []board.Position{board.Pos(0, 0)}
		}},
		{"overlapping robot list", func(cfg *Config) {
			cfg.Robots = ListRobots
			cfg.RobotList = []board.Position{board.Pos(0, 0), board.Pos(0, 0), board.Pos(1, 1), board.Pos(2, 2)}
		}},
		{"zero generation attempts", func(cfg *Config) { cfg.MaxGenTries = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			cfg.Defaults()
			tt.mutate(&cfg)
			_, err := New(cfg)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestScenarioFixedBoard(t *testing.T) {
	en, err := New(scenarioConfig())
	require.NoError(t, err)
	require.Equal(t, 5, en.BoardSize())

	const (
		redRight  = 1  // red x right
		greenDown = 10 // green x down
	)

	// red slides right and stops next to green
	obs, reward, done, err := en.Step(redRight)
	require.NoError(t, err)
	assert.Equal(t, board.Pos(0, 3), obs.Robots[board.Red])
	assert.Equal(t, 0.0, reward)
	assert.False(t, done)

	// green moves out of the way, stopping above blue
	obs, reward, done, err = en.Step(greenDown)
	require.NoError(t, err)
	assert.Equal(t, board.Pos(3, 4), obs.Robots[board.Green])
	assert.Equal(t, 0.0, reward)
	assert.False(t, done)

	// now red reaches the target
	obs, reward, done, err = en.Step(redRight)
	require.NoError(t, err)
	assert.Equal(t, board.Pos(0, 4), obs.Robots[board.Red])
	assert.Equal(t, obs.Target, obs.Robots[board.Red])
	assert.Equal(t, 1.0, reward)
	assert.True(t, done)
}

func TestPostTerminalStepIsNoOp(t *testing.T) {
	en, err := New(scenarioConfig())
	require.NoError(t, err)
	_, _, _, err = en.Step(1)
	require.NoError(t, err)
	_, _, _, err = en.Step(10)
	require.NoError(t, err)
	obs, _, done, err := en.Step(1)
	require.NoError(t, err)
	require.True(t, done)

	for action := 0; action < ActionCount; action++ {
		after, reward, done2, err := en.Step(action)
		require.NoError(t, err)
		assert.Equal(t, obs.Robots, after.Robots, "action %d moved a robot after done", action)
		assert.Equal(t, 0.0, reward)
		assert.True(t, done2)
	}
}

func TestInvalidActionLeavesStateUntouched(t *testing.T) {
	en, err := New(scenarioConfig())
	require.NoError(t, err)

	before := en.State()
	_, _, _, err = en.Step(ActionCount)
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.Equal(t, before, en.State())

	_, _, _, err = en.Step(-1)
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.Equal(t, before, en.State())
}

func TestTerminationRequiresMatchingColor(t *testing.T) {
	var cfg Config
	cfg.Defaults()
	cfg.Size = 5
	cfg.Targets = ListTargets
	cfg.TargetList = []board.Target{{Pos: board.Pos(0, 4), Color: board.TargetBlue}}
	cfg.Robots = ListRobots
	cfg.RobotList = []board.Position{
		board.Pos(0, 0), board.Pos(4, 4), board.Pos(2, 2), board.Pos(4, 0),
	}
	cfg.Seed = 1
	en, err := New(cfg)
	require.NoError(t, err)

	// red lands on the blue target: no termination
	obs, reward, done, err := en.Step(1) // red right
	require.NoError(t, err)
	require.Equal(t, board.Pos(0, 4), obs.Robots[board.Red])
	assert.Equal(t, 0.0, reward)
	assert.False(t, done)
}

func TestAnyTargetSatisfiedByAnyRobot(t *testing.T) {
	var cfg Config
	cfg.Defaults()
	cfg.Size = 5
	cfg.Targets = ListTargets
	cfg.TargetList = []board.Target{{Pos: board.Pos(4, 2), Color: board.TargetAny}}
	cfg.Robots = ListRobots
	cfg.RobotList = []board.Position{
		board.Pos(0, 0), board.Pos(4, 4), board.Pos(0, 4), board.Pos(0, 2),
	}
	cfg.Seed = 1
	en, err := New(cfg)
	require.NoError(t, err)

	// yellow slides down onto the spiral
	obs, reward, done, err := en.Step(14) // yellow down
	require.NoError(t, err)
	require.Equal(t, board.Pos(4, 2), obs.Robots[board.Yellow])
	assert.Equal(t, 1.0, reward)
	assert.True(t, done)
}

func TestReproducibleEpisodes(t *testing.T) {
	var cfg Config
	cfg.Defaults()
	cfg.Walls = VariantWalls
	cfg.Seed = 42

	a, err := New(cfg)
	require.NoError(t, err)
	b, err := New(cfg)
	require.NoError(t, err)
	require.Equal(t, a.State(), b.State())

	actions := []int{1, 7, 10, 3, 14, 0, 5, 9, 12, 2, 6, 11, 15, 4, 8, 13}
	for _, action := range actions {
		obsA, rewA, doneA, errA := a.Step(action)
		obsB, rewB, doneB, errB := b.Step(action)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, obsA, obsB)
		assert.Equal(t, rewA, rewB)
		assert.Equal(t, doneA, doneB)
	}

	// the streams stay in lockstep across further resets
	obsA, err := a.Reset()
	require.NoError(t, err)
	obsB, err := b.Reset()
	require.NoError(t, err)
	assert.Equal(t, obsA, obsB)
	assert.Equal(t, a.State(), b.State())
}

func TestRandomBoardGeneration(t *testing.T) {
	var cfg Config
	cfg.Defaults()
	cfg.Walls = RandomWalls
	cfg.Targets = ListTargets
	cfg.TargetList = []board.Target{{Pos: board.Pos(0, 0), Color: board.TargetAny}}
	cfg.Seed = 7

	en, err := New(cfg)
	require.NoError(t, err)

	n := cfg.Size
	segments := int(cfg.WallDensity * float64(2*n*(n-1)))
	for episode := 0; episode < 10; episode++ {
		b := en.Board()
		require.True(t, b.Connected(), "episode %d board not connected", episode)
		require.Equal(t, segments, b.WallCount(), "episode %d wall count", episode)

		// no wall segment touches the center block
		lo, hi := b.CenterRect()
		for r := lo - 1; r <= hi; r++ {
			for c := lo; c <= hi; c++ {
				assert.False(t, b.DownWall(r, c), "down wall into center at %d,%d", r, c)
			}
		}
		for r := lo; r <= hi; r++ {
			for c := lo - 1; c <= hi; c++ {
				assert.False(t, b.RightWall(r, c), "right wall into center at %d,%d", r, c)
			}
		}

		// robots are distinct and off the target cell
		rs := en.Robots()
		for a := board.Red; a < board.ColorsN; a++ {
			assert.NotEqual(t, en.Target().Pos, rs[a])
			for o := board.Red; o < a; o++ {
				assert.NotEqual(t, rs[o], rs[a])
			}
		}

		_, err = en.Reset()
		require.NoError(t, err)
	}
}

func TestGenerationFailureSurfaces(t *testing.T) {
	// a 2x2 board cannot hold four robots and a distinct target cell
	var cfg Config
	cfg.Defaults()
	cfg.Size = 2
	cfg.Targets = ListTargets
	cfg.TargetList = []board.Target{{Pos: board.Pos(0, 0), Color: board.TargetRed}}
	cfg.Seed = 3

	_, err := New(cfg)
	assert.ErrorIs(t, err, ErrGenerate)
}

func TestRenderMarksTargetAndRobots(t *testing.T) {
	en, err := New(scenarioConfig())
	require.NoError(t, err)
	out := en.Render()
	assert.Contains(t, out, " R ")
	assert.Contains(t, out, " Y ")
	assert.Contains(t, out, "G*") // green starts on the target cell
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	en, err := New(scenarioConfig())
	require.NoError(t, err)
	snap := en.State()
	snap.RightWalls[0][0] = true
	assert.False(t, en.Board().RightWall(0, 0))
}

func BenchmarkStep(b *testing.B) {
	var cfg Config
	cfg.Defaults()
	cfg.Seed = 42
	en, err := New(cfg)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, done, _ := en.Step(i % ActionCount); done {
			b.StopTimer()
			if _, err := en.Reset(); err != nil {
				b.Fatal(err)
			}
			b.StartTimer()
		}
	}
}

func BenchmarkReset(b *testing.B) {
	var cfg Config
	cfg.Defaults()
	cfg.Walls = VariantWalls
	cfg.Seed = 42
	en, err := New(cfg)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := en.Reset(); err != nil {
			b.Fatal(err)
		}
	}
}
