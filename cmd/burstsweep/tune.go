package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/sketchbook/config"
)

// maxTuneFrames caps a single evaluation so a near-zero gravity does not
// stall the search.
const maxTuneFrames = 200000

// TuneResult is the gravity found for a target burst height.
type TuneResult struct {
	Gravity     float64
	BurstHeight float64
	Evaluations int
}

// tuneGravity searches for the gravity that makes a shell launched at v0
// burst at height target. Gravity is parameterized as -exp(x) so every
// candidate is valid.
func tuneGravity(cfg config.FireworksConfig, v0, target float64) (TuneResult, error) {
	if target <= 0 || v0 <= 0 {
		return TuneResult{}, fmt.Errorf("target height and launch speed must be positive (got %g, %g)", target, v0)
	}
	cfg.FragmentCount = 0

	height := func(x []float64) float64 {
		g := -math.Exp(x[0])
		if riseBound(v0, g) > maxTuneFrames {
			return math.Inf(1)
		}
		c := cfg
		c.Gravity = g
		run, err := measureBurst(c, v0)
		if err != nil {
			return math.Inf(1)
		}
		return run.BurstHeight
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			h := height(x)
			if math.IsInf(h, 1) {
				return h
			}
			d := (h - target) / target
			return d * d
		},
	}

	// Ballistic estimate h = v0²/(2|g|) as the starting point
	x0 := []float64{math.Log(v0 * v0 / (2 * target))}
	settings := &optimize.Settings{FuncEvaluations: 400}

	result, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if err != nil && result == nil {
		return TuneResult{}, fmt.Errorf("tuning gravity: %w", err)
	}

	return TuneResult{
		Gravity:     -math.Exp(result.X[0]),
		BurstHeight: height(result.X),
		Evaluations: result.Stats.FuncEvaluations,
	}, nil
}
