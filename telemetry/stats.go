package telemetry

import (
	"context"
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`
	Sketch          string  `csv:"sketch"`

	// Fireworks gauges at window end
	Fireworks int `csv:"fireworks"`
	Rising    int `csv:"rising"`
	Bursting  int `csv:"bursting"`
	Fragments int `csv:"fragments"`
	Sprites   int `csv:"sprites"`

	// Fireworks events during window
	Launched          int `csv:"launched"`
	Bursts            int `csv:"bursts"`
	FragmentsReleased int `csv:"fragments_released"`
	Completed         int `csv:"completed"`

	// Distributions sampled at window end
	ShellHeightMean     float64 `csv:"shell_height_mean"`
	ShellHeightP90      float64 `csv:"shell_height_p90"`
	FragmentOpacityMean float64 `csv:"fragment_opacity_mean"`
	FragmentOpacityP10  float64 `csv:"fragment_opacity_p10"`
	FragmentOpacityP50  float64 `csv:"fragment_opacity_p50"`
	FragmentOpacityP90  float64 `csv:"fragment_opacity_p90"`

	// Playground gauges at window end
	Boxes       int `csv:"boxes"`
	ActiveBoxes int `csv:"active_boxes"`
	Circles     int `csv:"circles"`

	// Playground events during window
	Toggles        int `csv:"toggles"`
	CirclesSpawned int `csv:"circles_spawned"`
	CirclesEvicted int `csv:"circles_evicted"`
}

// Summary is the mean and spread of a sample.
type Summary struct {
	Mean, P10, P50, P90 float64
}

// Summarize computes the mean and empirical percentiles of values.
// An empty sample summarizes to zeros.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Summary{
		Mean: stat.Mean(sorted, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(s.attrs()...)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.LogAttrs(context.Background(), slog.LevelInfo, "stats", s.attrs()...)
}

func (s WindowStats) attrs() []slog.Attr {
	attrs := []slog.Attr{
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.String("sketch", s.Sketch),
	}
	switch s.Sketch {
	case "fireworks":
		attrs = append(attrs,
			slog.Int("fireworks", s.Fireworks),
			slog.Int("rising", s.Rising),
			slog.Int("bursting", s.Bursting),
			slog.Int("fragments", s.Fragments),
			slog.Int("sprites", s.Sprites),
			slog.Int("launched", s.Launched),
			slog.Int("bursts", s.Bursts),
			slog.Int("fragments_released", s.FragmentsReleased),
			slog.Int("completed", s.Completed),
			slog.Float64("shell_height_mean", s.ShellHeightMean),
			slog.Float64("shell_height_p90", s.ShellHeightP90),
			slog.Float64("fragment_opacity_mean", s.FragmentOpacityMean),
			slog.Float64("fragment_opacity_p50", s.FragmentOpacityP50),
		)
	case "playground":
		attrs = append(attrs,
			slog.Int("boxes", s.Boxes),
			slog.Int("active_boxes", s.ActiveBoxes),
			slog.Int("circles", s.Circles),
			slog.Int("toggles", s.Toggles),
			slog.Int("circles_spawned", s.CirclesSpawned),
			slog.Int("circles_evicted", s.CirclesEvicted),
		)
	}
	return attrs
}
