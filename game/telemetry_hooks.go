package game

import (
	"log/slog"

	"github.com/pthm-cable/sketchbook/telemetry"
)

// flushTelemetry closes the stats window when it is due and hands the
// result to the log, the callback and the CSV writers.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.sampleGauges())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// sampleGauges reads the sketch state at window end.
func (g *Game) sampleGauges() telemetry.Gauges {
	var gauges telemetry.Gauges

	switch g.sketch {
	case SketchPlayground:
		s := g.playground.Stats()
		gauges.Boxes = s.Boxes
		gauges.ActiveBoxes = s.ActiveBoxes
		gauges.Circles = s.Circles

	case SketchFireworks:
		live := g.fireworks.Live()
		gauges.Fireworks = len(live)
		gauges.Rising, gauges.Bursting, gauges.Fragments = g.fireworks.Counts()
		gauges.Sprites = g.scene.Len()
		for _, f := range live {
			if frags := f.Fragments(); len(frags) > 0 {
				for _, p := range frags {
					gauges.FragmentOpacities = append(gauges.FragmentOpacities, p.Opacity)
				}
				continue
			}
			gauges.ShellHeights = append(gauges.ShellHeights, f.Shell().Pos.Y)
		}
	}
	return gauges
}
