// Package renderer draws the sketches with raylib.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"
)

// Hex converts a 0xRRGGBB config color to an opaque raylib color.
func Hex(rgb uint32) rl.Color {
	return rl.NewColor(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb), 255)
}

// RGBA converts a simulation color to a raylib color.
func RGBA(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// Lit scales the RGB channels of c by level in [0,1].
func Lit(c rl.Color, level float64) rl.Color {
	scale := func(v uint8) uint8 { return uint8(float64(v) * level) }
	return rl.NewColor(scale(c.R), scale(c.G), scale(c.B), c.A)
}

// Vec3 converts a gonum vector to a raylib vector.
func Vec3(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}
