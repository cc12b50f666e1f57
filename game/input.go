package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sketchbook/camera"
)

// driveKeys maps a key to the rig axis and direction it holds.
var driveKeys = []struct {
	key  int32
	axis camera.Axis
	dir  camera.Direction
}{
	{rl.KeyW, camera.AxisMove, camera.Forward},
	{rl.KeyS, camera.AxisMove, camera.Backwards},
	{rl.KeyI, camera.AxisRotate, camera.Forward},
	{rl.KeyK, camera.AxisRotate, camera.Backwards},
}

// handleInput processes mouse and keyboard input for the running sketch.
func (g *Game) handleInput() {
	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyH) {
		g.hud.Toggle()
	}

	switch g.sketch {
	case SketchPlayground:
		g.handlePointerInput()
	case SketchFireworks:
		g.handleDriveInput()
	}
	// Viewer buttons fire from Draw, raygui is immediate mode
}

// handlePointerInput forwards clicks and pointer motion to the playground.
func (g *Game) handlePointerInput() {
	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		g.Click(mouse.X, mouse.Y)
	}
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		g.PointerMove(mouse.X, mouse.Y)
	}
}

// handleDriveInput holds a rig direction while its key is down.
func (g *Game) handleDriveInput() {
	for _, k := range driveKeys {
		if rl.IsKeyPressed(k.key) {
			g.rig.SetDirection(k.axis, k.dir)
		}
		if rl.IsKeyReleased(k.key) {
			g.rig.SetDirection(k.axis, camera.Neutral)
		}
	}
}
