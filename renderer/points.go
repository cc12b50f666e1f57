package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sketchbook/camera"
	"github.com/pthm-cable/sketchbook/systems"
)

// Camera3D builds the raylib camera for a rig.
func Camera3D(rig *camera.Rig) rl.Camera3D {
	return rl.Camera3D{
		Position:   Vec3(rig.Position),
		Target:     Vec3(rig.Target()),
		Up:         Vec3(rig.Up()),
		Fovy:       float32(rig.FOV),
		Projection: rl.CameraPerspective,
	}
}

// PointRenderer draws the sprite scene as small opacity-faded cubes.
type PointRenderer struct {
	background rl.Color
}

// NewPointRenderer creates a sprite renderer clearing to background.
func NewPointRenderer(background uint32) *PointRenderer {
	return &PointRenderer{background: Hex(background)}
}

// Draw renders every live sprite from the rig's point of view.
func (r *PointRenderer) Draw(scene *systems.Scene, rig *camera.Rig) {
	rl.ClearBackground(r.background)

	rl.BeginMode3D(Camera3D(rig))
	scene.Each(func(pos r3.Vec, c color.RGBA, opacity, size float64) {
		s := float32(size)
		rl.DrawCube(Vec3(pos), s, s, s, rl.Fade(RGBA(c), float32(opacity)))
	})
	rl.EndMode3D()
}
