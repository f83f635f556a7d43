// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ricochet runs Ricochet Robots episodes from the terminal.
//
// Subcommands:
//
//	show   generate an episode and print the board
//	play   step episodes interactively from stdin
//	solve  find an optimal move sequence for an episode
//	bench  measure raw stepping throughput
//
// Flags control the seed, board size and wall generation; RICOCHET_SEED
// and RICOCHET_SIZE (or a .env file) provide defaults.
package main

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/rrobots/ricochet/board"
	"github.com/rrobots/ricochet/engine"
	"github.com/rrobots/ricochet/solver"
)

func main() {
	// load .env defaults if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("could not load .env file")
	}

	cmd := &cli.Command{
		Name:  "ricochet",
		Usage: "Ricochet Robots episode simulator",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "seed",
				Usage:   "RNG seed, 0 seeds from the clock",
				Sources: cli.EnvVars("RICOCHET_SEED"),
			},
			&cli.IntFlag{
				Name:    "size",
				Usage:   "board side length",
				Value:   board.DefaultSize,
				Sources: cli.EnvVars("RICOCHET_SIZE"),
			},
			&cli.StringFlag{
				Name:  "walls",
				Usage: "wall generation: fixed, variants or random",
				Value: "fixed",
			},
			&cli.IntFlag{
				Name:  "variants",
				Usage: "number of catalog variants to draw from",
				Value: board.CatalogSize,
			},
			&cli.FloatFlag{
				Name:  "density",
				Usage: "wall density for random boards",
				Value: 0.1,
			},
			&cli.StringFlag{
				Name:  "target",
				Usage: "fixed target as row,col,color (color: red, blue, green, yellow or any)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "generate an episode and print the board",
				Action: runShow,
			},
			{
				Name:   "play",
				Usage:  "step episodes interactively",
				Action: runPlay,
			},
			{
				Name:   "solve",
				Usage:  "find an optimal move sequence for an episode",
				Action: runSolve,
			},
			{
				Name:  "bench",
				Usage: "measure raw stepping throughput",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "steps",
						Usage: "number of random actions to take",
						Value: 1000000,
					},
				},
				Action: runBench,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// buildConfig assembles the engine configuration from the global flags.
func buildConfig(cmd *cli.Command) (engine.Config, error) {
	var cfg engine.Config
	cfg.Defaults()
	cfg.Seed = int64(cmd.Int("seed"))
	cfg.Size = int(cmd.Int("size"))
	cfg.Variants = int(cmd.Int("variants"))
	cfg.WallDensity = cmd.Float("density")

	if cmd.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	}

	switch walls := cmd.String("walls"); walls {
	case "fixed":
		cfg.Walls = engine.FixedWalls
	case "variants":
		cfg.Walls = engine.VariantWalls
	case "random":
		cfg.Walls = engine.RandomWalls
	default:
		return cfg, fmt.Errorf("%w: unknown wall mode %q", engine.ErrConfig, walls)
	}

	if spec := cmd.String("target"); spec != "" {
		tg, err := parseTarget(spec)
		if err != nil {
			return cfg, err
		}
		cfg.Targets = engine.ListTargets
		cfg.TargetList = []board.Target{tg}
	} else if cfg.Size != board.DefaultSize || cfg.Walls == engine.RandomWalls {
		// no catalog markers to draw targets from: default to a corner
		cfg.Targets = engine.ListTargets
		cfg.TargetList = []board.Target{{Pos: board.Pos(0, cfg.Size-1), Color: board.TargetAny}}
	}
	return cfg, nil
}

// parseTarget parses a row,col,color target spec such as "12,9,yellow".
func parseTarget(spec string) (board.Target, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return board.Target{}, fmt.Errorf("%w: target %q is not row,col,color", engine.ErrConfig, spec)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return board.Target{}, fmt.Errorf("%w: target row %q", engine.ErrConfig, parts[0])
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return board.Target{}, fmt.Errorf("%w: target col %q", engine.ErrConfig, parts[1])
	}
	name := strings.ToLower(strings.TrimSpace(parts[2]))
	for tc := board.TargetRed; tc < board.TargetColorN; tc++ {
		if name == strings.ToLower(board.TargetColorNames[tc]) {
			return board.Target{Pos: board.Pos(row, col), Color: tc}, nil
		}
	}
	return board.Target{}, fmt.Errorf("%w: unknown target color %q", engine.ErrConfig, parts[2])
}

func newEngine(cmd *cli.Command) (*engine.Engine, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, err
	}
	return engine.New(cfg)
}

func describeTarget(tg board.Target) string {
	return fmt.Sprintf("%s target at row %d col %d",
		board.TargetColorNames[tg.Color], tg.Pos.Row, tg.Pos.Col)
}

func runShow(ctx context.Context, cmd *cli.Command) error {
	en, err := newEngine(cmd)
	if err != nil {
		return err
	}
	fmt.Print(en.Render())
	fmt.Println(describeTarget(en.Target()))
	return nil
}

func runPlay(ctx context.Context, cmd *cli.Command) error {
	en, err := newEngine(cmd)
	if err != nil {
		return err
	}
	fmt.Print(en.Render())
	fmt.Println(describeTarget(en.Target()))
	fmt.Println(`moves: "red right", "b u" or an action number 0-15; "q" quits`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" || line == "quit" {
			return nil
		}
		action, err := parseMove(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		_, reward, done, err := en.Step(action)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Print(en.Render())
		if done {
			fmt.Printf("solved in %d moves, reward %g\n", en.Steps(), reward)
			if _, err := en.Reset(); err != nil {
				return err
			}
			fmt.Println("new episode:")
			fmt.Print(en.Render())
			fmt.Println(describeTarget(en.Target()))
		}
	}
}

// parseMove turns user input into an action index: either the bare
// index, or robot and direction words ("red right"), or their initials
// ("r r").
func parseMove(line string) (int, error) {
	if action, err := strconv.Atoi(line); err == nil {
		if action < 0 || action >= engine.ActionCount {
			return 0, fmt.Errorf("action %d outside [0,%d)", action, engine.ActionCount)
		}
		return action, nil
	}

	fields := strings.Fields(strings.ToLower(line))
	if len(fields) != 2 {
		return 0, fmt.Errorf("cannot parse move %q", line)
	}
	robot := -1
	for c, name := range board.ColorNames {
		if strings.HasPrefix(strings.ToLower(name), fields[0]) {
			robot = c
			break
		}
	}
	if robot < 0 {
		return 0, fmt.Errorf("unknown robot %q", fields[0])
	}
	dir := -1
	for d, name := range board.DirectionNames {
		if strings.HasPrefix(strings.ToLower(name), fields[1]) {
			dir = d
			break
		}
	}
	if dir < 0 {
		return 0, fmt.Errorf("unknown direction %q", fields[1])
	}
	return robot*4 + dir, nil
}

func runSolve(ctx context.Context, cmd *cli.Command) error {
	en, err := newEngine(cmd)
	if err != nil {
		return err
	}
	fmt.Print(en.Render())
	fmt.Println(describeTarget(en.Target()))

	started := time.Now()
	sol, err := solver.Solve(en.Board(), en.Robots(), en.Target())
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"moves":   len(sol.Path),
		"elapsed": time.Since(started).Round(time.Microsecond),
	}).Info("solved")

	fmt.Println("Step  Robot   Direction")
	for i, mv := range sol.Path {
		fmt.Printf("%4d  %-6s  %s\n", i+1, board.ColorNames[mv.Robot], board.DirectionNames[mv.Dir])
	}
	return nil
}

func runBench(ctx context.Context, cmd *cli.Command) error {
	en, err := newEngine(cmd)
	if err != nil {
		return err
	}
	steps := int(cmd.Int("steps"))

	started := time.Now()
	resets := 0
	for i := 0; i < steps; i++ {
		_, _, done, err := en.Step(rand.Intn(engine.ActionCount))
		if err != nil {
			return err
		}
		if done {
			if _, err := en.Reset(); err != nil {
				return err
			}
			resets++
		}
	}
	elapsed := time.Since(started)
	log.WithFields(log.Fields{
		"steps":     steps,
		"episodes":  resets,
		"elapsed":   elapsed.Round(time.Millisecond),
		"steps/sec": fmt.Sprintf("%.0f", float64(steps)/elapsed.Seconds()),
	}).Info("bench complete")
	return nil
}
