package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/sketchbook/config"
	"github.com/pthm-cable/sketchbook/systems"
)

// errNoBurst is returned when a shell fails to burst within its bound.
var errNoBurst = errors.New("shell did not burst")

// BurstRun is one row of the sweep.
type BurstRun struct {
	V0          float64 `csv:"v0"`
	RiseFrames  int     `csv:"rise_frames"`
	RiseBound   int     `csv:"rise_bound"`
	BurstHeight float64 `csv:"burst_height"`
	TotalFrames int     `csv:"total_frames"`
}

// riseBound is the frame by which a shell launched at v0 must burst. The
// slack absorbs rounding when v0 is an exact multiple of gravity.
func riseBound(v0, gravity float64) int {
	return int(math.Floor(v0/-gravity+1e-9)) + 1
}

// measureBurst launches a single firework straight up at v0 and runs it
// to completion.
func measureBurst(cfg config.FireworksConfig, v0 float64) (BurstRun, error) {
	cfg.SpawnChance = 0
	if err := cfg.Validate(); err != nil {
		return BurstRun{}, err
	}
	if v0 < 0 {
		return BurstRun{}, fmt.Errorf("%w: negative launch speed %g", config.ErrInvalidSpawnRequest, v0)
	}

	scene := systems.NewScene()
	fw, err := systems.NewFireworks(cfg, scene, rand.New(rand.NewSource(1)))
	if err != nil {
		return BurstRun{}, err
	}
	defer fw.Close()

	run := BurstRun{V0: v0, RiseBound: riseBound(v0, cfg.Gravity)}
	f := fw.Launch(r3.Vec{}, r3.Vec{Y: v0})

	limit := run.RiseBound + int(math.Floor(1/cfg.FadeStep)) + 2
	for frame := 1; frame <= limit; frame++ {
		report := fw.Step()
		if report.Bursts > 0 {
			run.RiseFrames = frame
			run.BurstHeight = f.Shell().Pos.Y
		}
		if f.State() == systems.Done {
			run.TotalFrames = frame
			break
		}
	}

	if run.RiseFrames == 0 || run.RiseFrames > run.RiseBound {
		return run, fmt.Errorf("%w: v0 %g after %d frames", errNoBurst, v0, run.RiseFrames)
	}
	return run, nil
}

// sweep measures steps evenly spaced launch speeds in [lo, hi].
func sweep(cfg config.FireworksConfig, lo, hi float64, steps int) ([]BurstRun, error) {
	if steps < 1 || hi < lo {
		return nil, fmt.Errorf("invalid sweep range [%g, %g] in %d steps", lo, hi, steps)
	}
	speeds := make([]float64, steps)
	if steps == 1 {
		speeds[0] = lo
	} else {
		floats.Span(speeds, lo, hi)
	}

	runs := make([]BurstRun, 0, steps)
	for _, v0 := range speeds {
		run, err := measureBurst(cfg, v0)
		if err != nil {
			return runs, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// SweepSummary aggregates a sweep.
type SweepSummary struct {
	Runs            int
	MeanRiseFrames  float64
	MaxRiseFrames   float64
	MeanBurstHeight float64
	MaxBurstHeight  float64
	MaxTotalFrames  float64
}

func summarize(runs []BurstRun) SweepSummary {
	if len(runs) == 0 {
		return SweepSummary{}
	}
	rise := make([]float64, len(runs))
	height := make([]float64, len(runs))
	total := make([]float64, len(runs))
	for i, r := range runs {
		rise[i] = float64(r.RiseFrames)
		height[i] = r.BurstHeight
		total[i] = float64(r.TotalFrames)
	}
	return SweepSummary{
		Runs:            len(runs),
		MeanRiseFrames:  stat.Mean(rise, nil),
		MaxRiseFrames:   floats.Max(rise),
		MeanBurstHeight: stat.Mean(height, nil),
		MaxBurstHeight:  floats.Max(height),
		MaxTotalFrames:  floats.Max(total),
	}
}
