package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sketchbook/camera"
	"github.com/pthm-cable/sketchbook/config"
	"github.com/pthm-cable/sketchbook/systems"
)

// ViewerRenderer draws the cube viewer into an offscreen target sized to
// the top part of the window. Buttons go underneath.
type ViewerRenderer struct {
	target      rl.RenderTexture2D
	width       int32
	height      int32
	cube        rl.Color
	ground      rl.Color
	initialized bool
}

// NewViewerRenderer creates a viewer renderer. height is the pixel height
// of the 3D view.
func NewViewerRenderer(width, height int32, cfg config.ViewerConfig) *ViewerRenderer {
	return &ViewerRenderer{
		width:  width,
		height: height,
		cube:   Hex(cfg.CubeColor),
		ground: Hex(cfg.GroundColor),
	}
}

// Init allocates the render target (must be called after the window exists).
func (r *ViewerRenderer) Init() {
	if r.initialized {
		return
	}
	r.target = rl.LoadRenderTexture(r.width, r.height)
	r.initialized = true
}

// Height returns the pixel height of the 3D view.
func (r *ViewerRenderer) Height() int32 {
	return r.height
}

// Draw renders the lit cube and ground, then blits the view to the window.
func (r *ViewerRenderer) Draw(v *systems.Viewer, rig *camera.Rig) {
	if !r.initialized {
		r.Init()
	}

	rl.BeginTextureMode(r.target)
	rl.ClearBackground(rl.Black)
	rl.BeginMode3D(Camera3D(rig))

	// Unlit surfaces stay black
	facing := r3.Scale(-1, rig.Forward())
	rl.DrawPlane(rl.NewVector3(0, -0.5, 0), rl.NewVector2(20, 20), Lit(r.ground, v.LightLevel(r3.Vec{Y: 1})))

	c := v.Cube
	rl.PushMatrix()
	rl.Translatef(0, float32(c.PositionY), 0)
	rl.Rotatef(float32(c.RotationZ)*rl.Rad2deg, 0, 0, 1)
	rl.Scalef(float32(c.ScaleX), 1, 1)
	rl.DrawCube(rl.NewVector3(0, 0, 0), 1, 1, 1, Lit(r.cube, v.LightLevel(facing)))
	rl.PopMatrix()

	rl.EndMode3D()
	rl.EndTextureMode()

	// Render textures are stored upside down
	src := rl.NewRectangle(0, 0, float32(r.width), -float32(r.height))
	rl.DrawTextureRec(r.target.Texture, src, rl.NewVector2(0, 0), rl.White)
}

// Unload frees the render target.
func (r *ViewerRenderer) Unload() {
	if r.initialized {
		rl.UnloadRenderTexture(r.target)
		r.initialized = false
	}
}
