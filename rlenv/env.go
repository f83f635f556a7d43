// Copyright (c) 2026, The Ricochet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rlenv adapts the Ricochet Robots engine to the emergent env
// interface, turning observations into state tensors suitable as layer
// inputs for a model.
package rlenv

import (
	"fmt"
	"math"

	"github.com/emer/emergent/env"
	"github.com/emer/emergent/popcode"
	"github.com/emer/etable/etensor"
	"github.com/goki/mat32"

	"github.com/rrobots/ricochet/board"
	"github.com/rrobots/ricochet/engine"
)

// Env manages Ricochet Robots episodes for a model. Each Trial is one
// slide; each Epoch is one episode, ending when the target is reached.
// On episode end the engine resets itself, so stepping never stalls.
type Env struct {
	Nm     string        `desc:"name of this environment"`
	Dsc    string        `desc:"description of this environment"`
	Cfg    engine.Config `desc:"engine configuration, applied at Init"`
	Eng    *engine.Engine
	Policy Policy  `desc:"default exploration policy"`
	Run    env.Ctr `view:"inline" desc:"current run of model as provided during Init"`
	Epoch  env.Ctr `view:"inline" desc:"episodes completed"`
	Trial  env.Ctr `view:"inline" desc:"slides taken within the episode"`

	CurAct     Actions         `inactive:"+" desc:"action taken this step"`
	PrvAct     Actions         `inactive:"+" desc:"action taken last step"`
	ExtAct     Actions         `inactive:"+" desc:"externally-supplied action from the model"`
	LastReward float64         `inactive:"+" desc:"reward of the last step"`
	RightWalls etensor.Float32 `desc:"right-wall matrix as a binary tensor"`
	DownWalls  etensor.Float32 `desc:"down-wall matrix as a binary tensor"`
	RobotMap   etensor.Float32 `desc:"robot positions, one plane of 1-hot cells per color"`
	TargetMap  etensor.Float32 `desc:"target cell as a gaussian bump"`
	ColorMap   etensor.Float32 `desc:"target color as a 1-hot tensor"`
	ActMap     etensor.Float32 `desc:"current action as a 1-hot tensor"`
	Reward     etensor.Float32 `desc:"reward of the last step"`

	pop2D popcode.TwoD
}

var _ env.Env = (*Env)(nil)

func (ev *Env) Name() string { return ev.Nm }
func (ev *Env) Desc() string { return ev.Dsc }

// String returns the current counter state as a string.
func (ev *Env) String() string {
	return fmt.Sprintf("Run %d Epoch %d Trial %d", ev.Run.Cur, ev.Epoch.Cur, ev.Trial.Cur)
}

func (ev *Env) Validate() error {
	return ev.Cfg.Validate()
}

func (ev *Env) Defaults() {
	ev.Cfg.Defaults()
	ev.Policy.Defaults()
}

// Init builds the engine from Cfg and sizes the state tensors. Config
// or generation errors panic: the environment cannot run without an
// engine, and Init has no error return.
func (ev *Env) Init(run int) {
	en, err := engine.New(ev.Cfg)
	if err != nil {
		panic(err)
	}
	ev.Eng = en
	n := en.BoardSize()

	ev.pop2D = popcode.TwoD{}
	ev.pop2D.Code = popcode.GaussBump
	ev.pop2D.Min.Set(0.0, 0.0)
	ev.pop2D.Max.Set(float32(n), float32(n))
	sigma := float32(0.001)
	ev.pop2D.Sigma.Set(sigma, sigma)
	ev.pop2D.Thr = 0.1
	ev.pop2D.Clip = true
	ev.pop2D.MinSum = 0.2

	ev.Policy.Defaults()
	ev.ExtAct = NoAction
	ev.CurAct = NoAction
	ev.PrvAct = NoAction

	ev.Run.Scale = env.Run
	ev.Epoch.Scale = env.Epoch
	ev.Trial.Scale = env.Trial
	ev.Run.Init()
	ev.Epoch.Init()
	ev.Trial.Init()
	ev.Run.Cur = run
	ev.Trial.Cur = -1 // init state -- key so that first Step() = 0

	ev.RightWalls.SetShape([]int{n, n}, nil, []string{"Y", "X"})
	ev.DownWalls.SetShape([]int{n, n}, nil, []string{"Y", "X"})
	ev.RobotMap.SetShape([]int{int(board.ColorsN), n, n}, nil, []string{"Color", "Y", "X"})
	ev.TargetMap.SetShape([]int{n, n}, nil, []string{"Y", "X"})
	ev.ColorMap.SetShape([]int{int(board.TargetColorN)}, nil, []string{"TargetColor"})
	ev.ActMap.SetShape([]int{int(ActionsN)}, nil, []string{"ActionsN"})
	ev.Reward.SetShape([]int{1}, nil, nil)

	ev.UpdateState(en.Robots(), en.Target(), 0)
}

// Step takes one slide: the policy picks an action (possibly the
// externally-supplied one), the engine applies it, and the state
// tensors are refreshed. A finished episode bumps Epoch and starts the
// next one immediately.
func (ev *Env) Step() bool {
	ev.Epoch.Same() // good idea to just reset all non-inner-most counters at start
	ev.PrvAct = ev.CurAct
	ev.CurAct = ev.Policy.Act(ev.ExtAct)

	obs, reward, done, err := ev.Eng.Step(int(ev.CurAct))
	if err != nil {
		return false
	}
	ev.LastReward = reward
	ev.Trial.Incr()
	ev.UpdateState(obs.Robots, ev.Eng.Target(), reward)

	if done {
		ev.Epoch.Incr()
		ev.Trial.Init()
		ev.Trial.Cur = -1
		if _, err := ev.Eng.Reset(); err != nil {
			return false
		}
		ev.UpdateState(ev.Eng.Robots(), ev.Eng.Target(), reward)
	}
	return true
}

func (ev *Env) States() env.Elements {
	n := ev.Cfg.Size
	els := env.Elements{
		{Name: "RightWalls", Shape: []int{n, n}, DimNames: []string{"Y", "X"}},
		{Name: "DownWalls", Shape: []int{n, n}, DimNames: []string{"Y", "X"}},
		{Name: "RobotMap", Shape: []int{int(board.ColorsN), n, n}, DimNames: []string{"Color", "Y", "X"}},
		{Name: "TargetMap", Shape: []int{n, n}, DimNames: []string{"Y", "X"}},
		{Name: "ColorMap", Shape: []int{int(board.TargetColorN)}, DimNames: []string{"TargetColor"}},
		{Name: "ActMap", Shape: []int{int(ActionsN)}, DimNames: []string{"ActionsN"}},
		{Name: "Reward", Shape: []int{1}, DimNames: nil},
	}
	return els
}

func (ev *Env) State(element string) etensor.Tensor {
	switch element {
	case "RightWalls":
		return &ev.RightWalls
	case "DownWalls":
		return &ev.DownWalls
	case "RobotMap":
		return &ev.RobotMap
	case "TargetMap":
		return &ev.TargetMap
	case "ColorMap":
		return &ev.ColorMap
	case "ActMap":
		return &ev.ActMap
	case "Reward":
		return &ev.Reward
	default:
		return nil
	}
}

func (ev *Env) Actions() env.Elements {
	els := env.Elements{
		{Name: "Action", Shape: []int{1}, DimNames: nil},
	}
	return els
}

// Action accepts an externally-supplied action as a scalar tensor
// holding the action index.
func (ev *Env) Action(element string, input etensor.Tensor) {
	if input == nil || input.Len() == 0 {
		return
	}
	act := Actions(int(math.Round(input.FloatVal1D(0))))
	if act >= 0 && act < ActionsN {
		ev.ExtAct = act
	}
}

func (ev *Env) Counters() []env.TimeScales {
	return []env.TimeScales{env.Run, env.Epoch, env.Trial}
}

func (ev *Env) Counter(scale env.TimeScales) (cur, prv int, chg bool) {
	switch scale {
	case env.Run:
		return ev.Run.Query()
	case env.Epoch:
		return ev.Epoch.Query()
	case env.Trial:
		return ev.Trial.Query()
	}
	return -1, -1, false
}

// UpdateWalls refreshes the wall tensors from the engine board. Walls
// only change across resets, so Step skips this within an episode.
func (ev *Env) UpdateWalls() {
	n := ev.Eng.BoardSize()
	b := ev.Eng.Board()
	ev.RightWalls.SetZeros()
	ev.DownWalls.SetZeros()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b.RightWall(r, c) {
				ev.RightWalls.SetFloat1D(r*n+c, 1.0)
			}
			if b.DownWall(r, c) {
				ev.DownWalls.SetFloat1D(r*n+c, 1.0)
			}
		}
	}
}

// UpdateState refreshes the per-step state tensors: robots, target,
// action and reward.
func (ev *Env) UpdateState(robots board.Robots, tg board.Target, reward float64) {
	n := ev.Eng.BoardSize()
	if ev.RightWalls.Len() == 0 {
		return // Init not run yet
	}
	if ev.Trial.Cur <= 0 {
		ev.UpdateWalls()
	}

	ev.RobotMap.SetZeros()
	for c := board.Red; c < board.ColorsN; c++ {
		pos := robots[c]
		ev.RobotMap.SetFloat1D((int(c)*n+pos.Row)*n+pos.Col, 1.0)
	}

	vec := mat32.Vec2{
		X: float32(tg.Pos.Col),
		Y: float32(tg.Pos.Row),
	}
	ev.pop2D.Encode(&ev.TargetMap, vec, false)

	ev.ColorMap.SetZeros()
	ev.ColorMap.SetFloat1D(int(tg.Color), 1.0)

	ev.ActMap.SetZeros()
	if ev.CurAct > NoAction && ev.CurAct < ActionsN {
		ev.ActMap.SetFloat1D(int(ev.CurAct), 1.0)
	}

	ev.Reward.SetFloat1D(0, reward)
}
