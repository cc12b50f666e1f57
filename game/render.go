package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sketchbook/camera"
	"github.com/pthm-cable/sketchbook/ui"
)

// Draw renders the current frame.
func (g *Game) Draw() {
	rl.BeginDrawing()

	switch g.sketch {
	case SketchPlayground:
		g.canvas.Draw(g.playground)
	case SketchFireworks:
		g.points.Draw(g.scene, g.rig)
	case SketchViewer:
		rl.ClearBackground(rl.DarkGray)
		g.viewerView.Draw(g.viewer, g.rig)
		g.buttons.Draw()
	case SketchShape:
		g.shape.Draw()
	}

	g.hud.Draw(g.hudData())
	if g.sketch != SketchViewer {
		g.hud.DrawControls(int32(g.height), g.controls())
	}

	rl.EndDrawing()
	g.perfCollector.RecordFrame()
}

// controls returns the key legend for the running sketch.
func (g *Game) controls() string {
	switch g.sketch {
	case SketchPlayground:
		return "click: toggle box | move: spawn circles when all active | H: HUD"
	case SketchFireworks:
		return "W/S: move | I/K: tilt | H: HUD"
	}
	return "H: HUD"
}

// hudData collects the rows shown by the HUD.
func (g *Game) hudData() ui.HUDData {
	data := ui.HUDData{
		Sketch: g.sketch,
		Tick:   g.tick,
		FPS:    rl.GetFPS(),
	}

	switch g.sketch {
	case SketchPlayground:
		s := g.playground.Stats()
		data.Rows = []ui.Row{
			{Label: "active", N: s.ActiveBoxes, Max: s.Boxes},
			{Label: "circles", N: s.Circles, Max: g.cfg.Playground.CircleCapacity},
			{Label: "spawned", Value: fmt.Sprint(s.CirclesSpawned)},
			{Label: "evicted", Value: fmt.Sprint(s.CirclesEvicted)},
		}

	case SketchFireworks:
		rising, bursting, fragments := g.fireworks.Counts()
		data.Rows = []ui.Row{
			{Label: "rising", Value: fmt.Sprint(rising)},
			{Label: "bursting", Value: fmt.Sprint(bursting)},
			{Label: "fragments", Value: fmt.Sprint(fragments)},
			{Label: "sprites", Value: fmt.Sprint(g.scene.Len())},
			{Label: "camera z", Value: fmt.Sprintf("%.1f", g.rig.Position.Z)},
			{Label: "drive", Value: driveLabel(g.rig)},
		}

	case SketchViewer:
		c := g.viewer.Cube
		data.Rows = []ui.Row{
			{Label: "cube", Value: fmt.Sprintf("sx %.2f y %.2f rz %.2f", c.ScaleX, c.PositionY, c.RotationZ)},
			{Label: "camera", Value: fmt.Sprintf("%.2f %.2f %.2f", g.rig.Position.X, g.rig.Position.Y, g.rig.Position.Z)},
		}
	}
	return data
}

func driveLabel(rig *camera.Rig) string {
	name := func(d camera.Direction) string {
		switch d {
		case camera.Forward:
			return "+"
		case camera.Backwards:
			return "-"
		}
		return "0"
	}
	return "move " + name(rig.Direction(camera.AxisMove)) + " tilt " + name(rig.Direction(camera.AxisRotate))
}
