package game

import "github.com/pthm-cable/sketchbook/telemetry"

// Update handles input then runs one frame of the sketch.
func (g *Game) Update() {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseInput)
	g.handleInput()

	g.step()
	g.perfCollector.EndTick()
}

// UpdateHeadless runs one frame without input or drawing. The simulation
// cores are the same as in windowed mode.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartTick()
	g.step()
	g.perfCollector.EndTick()
}

// step advances the sketch by one frame and flushes telemetry.
func (g *Game) step() {
	switch g.sketch {
	case SketchPlayground:
		g.perfCollector.StartPhase(telemetry.PhaseSimulate)
		g.collector.RecordEvictions(g.playground.Update())

	case SketchFireworks:
		g.perfCollector.StartPhase(telemetry.PhaseSimulate)
		g.rig.Drive()
		report := g.fireworks.Step()
		g.collector.RecordStep(report)
		if g.sound != nil {
			g.sound.Pop(report.Bursts)
		}

	case SketchViewer:
		g.perfCollector.StartPhase(telemetry.PhaseAnimate)
		g.viewer.Update(g.cfg.Physics.DT)
		pos, yaw := g.viewer.CameraGoal()
		g.rig.GlideTo(pos, yaw, g.cfg.Viewer.GlideFactor)
	}

	g.tick++

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
}

// Click toggles the playground boxes under (x, y). Returns how many
// boxes flipped.
func (g *Game) Click(x, y float32) int {
	if g.playground == nil {
		return 0
	}
	n := g.playground.ToggleAt(x, y)
	g.collector.RecordToggles(n)
	return n
}

// PointerMove feeds pointer motion to the playground. Returns true when a
// circle was spawned.
func (g *Game) PointerMove(x, y float32) bool {
	if g.playground == nil {
		return false
	}
	if !g.playground.OnPointerMove(x, y) {
		return false
	}
	g.collector.RecordCircle()
	return true
}
