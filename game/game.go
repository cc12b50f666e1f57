package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sketchbook/audio"
	"github.com/pthm-cable/sketchbook/camera"
	"github.com/pthm-cable/sketchbook/config"
	"github.com/pthm-cable/sketchbook/renderer"
	"github.com/pthm-cable/sketchbook/systems"
	"github.com/pthm-cable/sketchbook/telemetry"
	"github.com/pthm-cable/sketchbook/ui"
)

// Sketch names accepted by NewGameWithOptions.
const (
	SketchPlayground = "playground"
	SketchFireworks  = "fireworks"
	SketchViewer     = "viewer"
	SketchShape      = "shape"
)

// Sketches lists every runnable sketch.
var Sketches = []string{SketchPlayground, SketchFireworks, SketchViewer, SketchShape}

// ErrNoSurface is returned when a graphical game is created before the
// window is ready.
var ErrNoSurface = errors.New("no drawing surface")

// Options configures a Game.
type Options struct {
	Sketch         string
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	Sound          bool

	// Config overrides the global config when set.
	Config *config.Config

	// StatsCallback receives every flushed window.
	StatsCallback func(telemetry.WindowStats)
}

// Game drives one sketch: input, update, draw and telemetry.
type Game struct {
	cfg      *config.Config
	sketch   string
	rng      *rand.Rand
	headless bool
	tick     int32

	width, height float32

	// Simulation cores, only the ones the sketch needs are set
	playground *systems.Playground
	scene      *systems.Scene
	fireworks  *systems.Fireworks
	viewer     *systems.Viewer
	rig        *camera.Rig

	// Rendering, nil when headless
	canvas     *renderer.CanvasRenderer
	points     *renderer.PointRenderer
	viewerView *renderer.ViewerRenderer
	shape      *renderer.ShapeRenderer
	buttons    *ui.ButtonBar
	hud        *ui.HUD

	sound *audio.PopPlayer

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
}

// NewGameWithOptions creates a game for opts.Sketch.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	if !validSketch(opts.Sketch) {
		return nil, fmt.Errorf("unknown sketch %q (valid: %s)", opts.Sketch, strings.Join(Sketches, ", "))
	}
	if !opts.Headless && !rl.IsWindowReady() {
		return nil, ErrNoSurface
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	g := &Game{
		cfg:           cfg,
		sketch:        opts.Sketch,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		headless:      opts.Headless,
		width:         cfg.Derived.ScreenW32,
		height:        cfg.Derived.ScreenH32,
		collector:     telemetry.NewCollector(opts.Sketch, statsWindow, cfg.Physics.DT),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
	}

	if err := g.setupSketch(); err != nil {
		return nil, err
	}
	if !g.headless {
		g.setupRendering()
	}
	if opts.Sound && g.sketch == SketchFireworks {
		g.setupSound()
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			g.Unload()
			return nil, fmt.Errorf("creating output manager: %w", err)
		}
		g.outputManager = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config", "error", err)
		}
	}

	return g, nil
}

func validSketch(name string) bool {
	for _, s := range Sketches {
		if s == name {
			return true
		}
	}
	return false
}

// setupSketch builds the simulation cores for the selected sketch.
func (g *Game) setupSketch() error {
	switch g.sketch {
	case SketchPlayground:
		p, err := systems.NewPlaygroundGrid(g.cfg.Playground, g.width, g.height, g.rng)
		if err != nil {
			return fmt.Errorf("creating playground: %w", err)
		}
		g.playground = p

	case SketchFireworks:
		g.scene = systems.NewScene()
		f, err := systems.NewFireworks(g.cfg.Fireworks, g.scene, g.rng)
		if err != nil {
			return fmt.Errorf("creating fireworks: %w", err)
		}
		g.fireworks = f
		g.rig = camera.New(g.cfg.Camera)

	case SketchViewer:
		g.viewer = systems.NewViewer(g.cfg.Viewer)
		g.rig = camera.New(g.cfg.Camera)
		pos, yaw := g.viewer.CameraGoal()
		g.rig.Pitch = 0
		g.rig.GlideTo(pos, yaw, 1)

	case SketchShape:
		// static, nothing to simulate
	}
	return nil
}

// setupRendering creates the renderers and UI. Requires an open window.
func (g *Game) setupRendering() {
	w, h := int32(g.width), int32(g.height)
	g.hud = ui.NewHUD(220)

	switch g.sketch {
	case SketchPlayground:
		pc := g.cfg.Playground
		g.canvas = renderer.NewCanvasRenderer(w, pc.Title, pc.TitleFraction, pc.Background)

	case SketchFireworks:
		g.points = renderer.NewPointRenderer(g.cfg.Screen.Background)

	case SketchViewer:
		viewH := int32(float64(h) * g.cfg.Viewer.HeightFraction)
		g.viewerView = renderer.NewViewerRenderer(w, viewH, g.cfg.Viewer)
		g.viewerView.Init()
		g.buttons = g.viewerButtons(float32(g.viewerView.Height()))

	case SketchShape:
		g.shape = renderer.NewShapeRenderer(w, h, g.cfg.Shape.Fraction, g.cfg.Shape.Color)
	}
}

// viewerButtons builds the four viewer controls below the 3D view.
func (g *Game) viewerButtons(top float32) *ui.ButtonBar {
	onOff := func(on bool) string {
		if on {
			return "on"
		}
		return "off"
	}
	v := g.viewer
	return ui.NewButtonBar(0, top, g.width, g.height-top,
		ui.Button{
			Label:   func() string { return "Ambient: " + onOff(v.AmbientOn()) },
			OnClick: func() { v.ToggleAmbient() },
		},
		ui.Button{
			Label:   func() string { return "Directional: " + onOff(v.DirectionalOn()) },
			OnClick: func() { v.ToggleDirectional() },
		},
		ui.Button{
			Label: func() string {
				if v.AtOrigin() {
					return "Camera: origin"
				}
				return "Camera: target"
			},
			OnClick: func() { v.ToggleCamera() },
		},
		ui.Button{
			Label: func() string {
				if v.Animating() {
					return "Animating..."
				}
				return "Animate cube"
			},
			OnClick: func() { v.AnimateCube() },
		},
	)
}

// setupSound opens the speaker. Failure only disables sound.
func (g *Game) setupSound() {
	p := audio.NewPopPlayer(g.cfg.Audio)
	if err := p.Initialize(); err != nil {
		slog.Warn("sound disabled", "error", err)
		return
	}
	g.sound = p
}

// Tick returns the number of frames simulated so far.
func (g *Game) Tick() int32 {
	return g.tick
}

// Sketch returns the running sketch name.
func (g *Game) Sketch() string {
	return g.sketch
}

// Playground returns the playground core, or nil for other sketches.
func (g *Game) Playground() *systems.Playground {
	return g.playground
}

// Fireworks returns the fireworks core, or nil for other sketches.
func (g *Game) Fireworks() *systems.Fireworks {
	return g.fireworks
}

// Scene returns the sprite scene of the fireworks sketch.
func (g *Game) Scene() *systems.Scene {
	return g.scene
}

// Viewer returns the viewer core, or nil for other sketches.
func (g *Game) Viewer() *systems.Viewer {
	return g.viewer
}

// Rig returns the 3D camera rig, or nil for 2D sketches.
func (g *Game) Rig() *camera.Rig {
	return g.rig
}

// Unload releases sprites, GPU resources, the speaker and output files.
func (g *Game) Unload() {
	if g.fireworks != nil {
		g.fireworks.Close()
	}
	if g.viewerView != nil {
		g.viewerView.Unload()
	}
	if g.sound != nil {
		g.sound.Cleanup()
	}
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			slog.Error("failed to close output files", "error", err)
		}
		g.outputManager = nil
	}
}
