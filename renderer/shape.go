package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// ShapeRenderer draws a single filled rectangle centered on the screen.
type ShapeRenderer struct {
	rec   rl.Rectangle
	color rl.Color
}

// NewShapeRenderer sizes the rectangle to fraction of each screen axis.
func NewShapeRenderer(screenW, screenH int32, fraction float64, rgb uint32) *ShapeRenderer {
	w := float32(float64(screenW) * fraction)
	h := float32(float64(screenH) * fraction)
	return &ShapeRenderer{
		rec:   rl.NewRectangle((float32(screenW)-w)/2, (float32(screenH)-h)/2, w, h),
		color: Hex(rgb),
	}
}

// Draw clears to black and draws the rectangle.
func (r *ShapeRenderer) Draw() {
	rl.ClearBackground(rl.Black)
	rl.DrawRectangleRec(r.rec, r.color)
}
