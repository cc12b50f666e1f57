package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button is one entry of a ButtonBar. Label is evaluated every frame so it
// can reflect current state.
type Button struct {
	Label   func() string
	OnClick func()
}

// ButtonBar lays buttons out in a single row filling a horizontal strip.
type ButtonBar struct {
	Buttons []Button

	x, y, width, height float32
	gap                 float32
}

// NewButtonBar creates a bar occupying the strip at (x, y) of the given size.
func NewButtonBar(x, y, width, height float32, buttons ...Button) *ButtonBar {
	return &ButtonBar{
		Buttons: buttons,
		x:       x,
		y:       y,
		width:   width,
		height:  height,
		gap:     8,
	}
}

// Bounds returns the rectangle of button i.
func (b *ButtonBar) Bounds(i int) rl.Rectangle {
	n := float32(len(b.Buttons))
	w := (b.width - b.gap*(n+1)) / n
	return rl.Rectangle{
		X:      b.x + b.gap + float32(i)*(w+b.gap),
		Y:      b.y + b.gap,
		Width:  w,
		Height: b.height - 2*b.gap,
	}
}

// Draw draws every button and fires OnClick for the one pressed this frame.
func (b *ButtonBar) Draw() {
	for i, btn := range b.Buttons {
		if gui.Button(b.Bounds(i), btn.Label()) && btn.OnClick != nil {
			btn.OnClick()
		}
	}
}
