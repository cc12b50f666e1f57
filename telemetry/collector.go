// Package telemetry collects windowed sketch statistics and writes them to CSV.
package telemetry

import "github.com/pthm-cable/sketchbook/systems"

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	sketch              string
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	windowStartTick int32

	// Event counters for current window
	launched          int
	bursts            int
	fragmentsReleased int
	completed         int
	toggles           int
	circlesSpawned    int
	circlesEvicted    int
}

// NewCollector creates a stats collector for the named sketch.
// windowDurationSec is the window length in simulated seconds; dt is
// seconds per tick.
func NewCollector(sketch string, windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		sketch:              sketch,
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordStep adds one fireworks step to the window.
func (c *Collector) RecordStep(r systems.StepReport) {
	c.launched += r.Spawned
	c.bursts += r.Bursts
	c.fragmentsReleased += r.FragmentsReleased
	c.completed += r.Completed
}

// RecordToggles records boxes flipped by one click.
func (c *Collector) RecordToggles(n int) {
	c.toggles += n
}

// RecordCircle records a circle spawned by pointer movement.
func (c *Collector) RecordCircle() {
	c.circlesSpawned++
}

// RecordEvictions records circles dropped by the FIFO bound.
func (c *Collector) RecordEvictions(n int) {
	c.circlesEvicted += n
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Gauges is the state sampled at window end.
type Gauges struct {
	Fireworks, Rising, Bursting, Fragments, Sprites int
	ShellHeights                                     []float64
	FragmentOpacities                                []float64

	Boxes, ActiveBoxes, Circles int
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, g Gauges) WindowStats {
	heights := Summarize(g.ShellHeights)
	opacity := Summarize(g.FragmentOpacities)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,
		Sketch:          c.sketch,

		Fireworks: g.Fireworks,
		Rising:    g.Rising,
		Bursting:  g.Bursting,
		Fragments: g.Fragments,
		Sprites:   g.Sprites,

		Launched:          c.launched,
		Bursts:            c.bursts,
		FragmentsReleased: c.fragmentsReleased,
		Completed:         c.completed,

		ShellHeightMean:     heights.Mean,
		ShellHeightP90:      heights.P90,
		FragmentOpacityMean: opacity.Mean,
		FragmentOpacityP10:  opacity.P10,
		FragmentOpacityP50:  opacity.P50,
		FragmentOpacityP90:  opacity.P90,

		Boxes:       g.Boxes,
		ActiveBoxes: g.ActiveBoxes,
		Circles:     g.Circles,

		Toggles:        c.toggles,
		CirclesSpawned: c.circlesSpawned,
		CirclesEvicted: c.circlesEvicted,
	}

	c.windowStartTick = currentTick
	c.launched = 0
	c.bursts = 0
	c.fragmentsReleased = 0
	c.completed = 0
	c.toggles = 0
	c.circlesSpawned = 0
	c.circlesEvicted = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
