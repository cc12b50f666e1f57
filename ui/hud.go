package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Row is one labelled HUD line. A row with Max > 0 is drawn as a bar.
type Row struct {
	Label string
	Value string
	N     int
	Max   int
}

// HUDData holds what the heads-up panel shows for the current sketch.
type HUDData struct {
	Sketch string
	Tick   int32
	FPS    int32
	Rows   []Row
}

// HUD renders the heads-up panel in the top-left corner.
type HUD struct {
	renderer *Renderer
	width    int32
	visible  bool
}

// NewHUD creates a hidden HUD of the given panel width.
func NewHUD(width int32) *HUD {
	return &HUD{renderer: NewRenderer(), width: width}
}

// Toggle switches HUD visibility and returns the new state.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// Draw renders the panel if visible.
func (h *HUD) Draw(data HUDData) {
	if !h.visible {
		return
	}
	r := h.renderer
	pad := r.Theme.Padding
	height := pad*2 + r.Theme.TitleSize + 4 + int32(len(data.Rows)+1)*(r.Theme.LineHeight+2)

	x, y := pad, pad
	r.DrawPanel(x, y, h.width, height)
	x += pad
	y += pad

	rl.DrawText(data.Sketch, x, y, r.Theme.TitleSize, r.Theme.TitleColor)
	y += r.Theme.TitleSize + 4
	y = r.DrawLabelValue(x, y, "tick", fmt.Sprintf("%d  (%d fps)", data.Tick, data.FPS))

	for _, row := range data.Rows {
		if row.Max > 0 {
			y = r.DrawRatioBar(x, y, row.Label, row.N, row.Max, h.width-2*pad)
			continue
		}
		y = r.DrawLabelValue(x, y, row.Label, row.Value)
	}
}

// DrawControls renders the key legend along the bottom edge.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, h.renderer.Theme.Padding, screenHeight-25, 14, h.renderer.Theme.HintColor)
}
