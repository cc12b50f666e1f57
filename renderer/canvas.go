package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sketchbook/systems"
)

// CanvasRenderer draws the box/circle playground.
type CanvasRenderer struct {
	title      string
	fontSize   int32
	background rl.Color
	screenW    int32
}

// NewCanvasRenderer creates a playground renderer. The title font size is
// titleFraction of the screen width.
func NewCanvasRenderer(screenW int32, title string, titleFraction float64, background uint32) *CanvasRenderer {
	return &CanvasRenderer{
		title:      title,
		fontSize:   int32(float64(screenW) * titleFraction),
		background: Hex(background),
		screenW:    screenW,
	}
}

// Draw clears the canvas and draws title, boxes, then circles.
func (r *CanvasRenderer) Draw(p *systems.Playground) {
	rl.ClearBackground(r.background)

	if r.title != "" {
		w := rl.MeasureText(r.title, r.fontSize)
		rl.DrawText(r.title, (r.screenW-w)/2, r.fontSize/2, r.fontSize, rl.RayWhite)
	}

	for _, b := range p.Boxes() {
		rec := rl.NewRectangle(b.Transform.X, b.Transform.Y, b.Extent.W, b.Extent.H)
		origin := rl.NewVector2(b.Extent.W/2, b.Extent.H/2)
		rl.DrawRectanglePro(rec, origin, b.Transform.Angle*rl.Rad2deg, RGBA(b.Color))
	}

	for _, c := range p.Circles() {
		rl.DrawCircleLines(int32(c.X), int32(c.Y), c.Radius, RGBA(c.Color))
	}
}
