package game

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/sketchbook/config"
	"github.com/pthm-cable/sketchbook/telemetry"
)

func newHeadless(t *testing.T, sketch string, mutate func(*config.Config)) *Game {
	t.Helper()
	cfg := config.Defaults()
	if mutate != nil {
		mutate(cfg)
	}
	g, err := NewGameWithOptions(Options{
		Sketch:   sketch,
		Seed:     7,
		Headless: true,
		Config:   cfg,
	})
	if err != nil {
		t.Fatalf("NewGameWithOptions(%q): %v", sketch, err)
	}
	t.Cleanup(g.Unload)
	return g
}

func TestUnknownSketch(t *testing.T) {
	_, err := NewGameWithOptions(Options{Sketch: "teapot", Headless: true, Config: config.Defaults()})
	if err == nil {
		t.Fatal("expected error for unknown sketch")
	}
	for _, name := range Sketches {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not list %q", err, name)
		}
	}
}

func TestHeadlessTicks(t *testing.T) {
	for _, sketch := range Sketches {
		t.Run(sketch, func(t *testing.T) {
			g := newHeadless(t, sketch, nil)
			for i := 0; i < 30; i++ {
				g.UpdateHeadless()
			}
			if g.Tick() != 30 {
				t.Errorf("expected tick 30, got %d", g.Tick())
			}
		})
	}
}

func TestFireworksSpritesMatchParticles(t *testing.T) {
	g := newHeadless(t, SketchFireworks, nil)

	for i := 0; i < 300; i++ {
		g.UpdateHeadless()

		rising, _, fragments := g.Fireworks().Counts()
		if want := rising + fragments; g.Scene().Len() != want {
			t.Fatalf("tick %d: %d sprites for %d particles", g.Tick(), g.Scene().Len(), want)
		}
	}

	g.Unload()
	if n := g.Scene().Len(); n != 0 {
		t.Errorf("expected no sprites after Unload, got %d", n)
	}
}

func TestPlaygroundGateOpensWhenAllActive(t *testing.T) {
	g := newHeadless(t, SketchPlayground, func(c *config.Config) {
		c.Playground.Rows = 1
		c.Playground.Cols = 1
	})
	cx, cy := g.width/2, g.height/2

	if g.PointerMove(10, 10) {
		t.Fatal("circle spawned while the box is inactive")
	}
	if n := g.Click(cx, cy); n != 1 {
		t.Fatalf("expected 1 toggled box, got %d", n)
	}
	if !g.PointerMove(10, 10) {
		t.Fatal("expected a circle once every box is active")
	}

	g.UpdateHeadless()
	if s := g.Playground().Stats(); s.Circles != 1 || s.ActiveBoxes != 1 {
		t.Errorf("unexpected stats %+v", s)
	}
}

func TestInputOnOtherSketchesIsIgnored(t *testing.T) {
	g := newHeadless(t, SketchShape, nil)
	if g.Click(0, 0) != 0 || g.PointerMove(0, 0) {
		t.Error("shape sketch should ignore pointer input")
	}
}

func TestViewerCameraGlides(t *testing.T) {
	g := newHeadless(t, SketchViewer, nil)
	cfg := g.cfg.Viewer

	g.Viewer().ToggleCamera()
	for i := 0; i < 1500; i++ {
		g.UpdateHeadless()
	}

	want := cfg.CameraTarget
	got := g.Rig().Position
	if math.Abs(got.X-want[0]) > 1e-3 || math.Abs(got.Y-want[1]) > 1e-3 || math.Abs(got.Z-want[2]) > 1e-3 {
		t.Errorf("expected camera near %v, got %v", want, got)
	}
}

func TestViewerAnimationRunsToCompletion(t *testing.T) {
	g := newHeadless(t, SketchViewer, nil)

	if !g.Viewer().AnimateCube() {
		t.Fatal("expected animation to start")
	}
	// delay plus six seconds of tweens
	for i := 0; i < 420; i++ {
		g.UpdateHeadless()
	}

	v := g.Viewer()
	if v.Animating() {
		t.Fatal("expected animation to have finished")
	}
	if v.Cube.ScaleX != 1 || v.Cube.PositionY != 0 || v.Cube.RotationZ != 0 {
		t.Errorf("expected cube back at rest, got %+v", v.Cube)
	}
}

func TestStatsCallbackAndOutput(t *testing.T) {
	dir := t.TempDir()
	var windows []telemetry.WindowStats

	g, err := NewGameWithOptions(Options{
		Sketch:         SketchFireworks,
		Seed:           3,
		Headless:       true,
		StatsWindowSec: 0.5,
		OutputDir:      dir,
		Config:         config.Defaults(),
		StatsCallback: func(s telemetry.WindowStats) {
			windows = append(windows, s)
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 90; i++ {
		g.UpdateHeadless()
	}
	g.Unload()

	if len(windows) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(windows))
	}
	if windows[0].Sketch != SketchFireworks {
		t.Errorf("expected sketch %q, got %q", SketchFireworks, windows[0].Sketch)
	}
	for _, name := range []string{"config.yaml", "telemetry.csv", "perf.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}
