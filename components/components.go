// Package components defines ECS components for the sketches.
package components

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"
)

// SpinKind selects how an active box rotates.
type SpinKind uint8

const (
	SpinPositive SpinKind = iota // counter-rotating boxes in the top row
	SpinNegative
)

// String returns the kind name used in logs.
func (k SpinKind) String() string {
	switch k {
	case SpinPositive:
		return "spin-positive"
	case SpinNegative:
		return "spin-negative"
	}
	return "unknown"
}

// Transform is a 2D center position and rotation in radians.
type Transform struct {
	X, Y  float32
	Angle float32
}

// Extent is the full width and height of an axis-aligned box.
type Extent struct {
	W, H float32
}

// Contains reports whether (px, py) lies strictly inside the box centered at t.
func (e Extent) Contains(t Transform, px, py float32) bool {
	left := t.X - e.W/2
	top := t.Y - e.H/2
	return px > left && px < left+e.W && py > top && py < top+e.H
}

// Spin fixes a box's kinematic kind at creation.
type Spin struct {
	Kind SpinKind
}

// Tint is the fill or point color of an entity.
type Tint struct {
	Color color.RGBA
}

// Toggle is the click-controlled active flag of a box.
type Toggle struct {
	Active bool
}

// Point is the 3D position of a point sprite.
type Point struct {
	Pos r3.Vec
}

// Fade is the opacity of a point sprite in [0,1].
type Fade struct {
	Opacity float64
}

// PointSize is the world-space size of a point sprite.
type PointSize struct {
	Size float64
}
