// Package camera provides a 3D camera rig for the perspective sketches.
package camera

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sketchbook/config"
)

// Direction is the held state of one drive axis.
type Direction int8

const (
	Backwards Direction = -1
	Neutral   Direction = 0
	Forward   Direction = 1
)

// Axis selects which drive axis a Direction applies to.
type Axis uint8

const (
	AxisMove   Axis = iota // translate along z
	AxisRotate             // pitch about x
)

var (
	unitX = r3.Vec{X: 1}
	unitY = r3.Vec{Y: 1}
	ahead = r3.Vec{Z: -1}
)

// Rig is a perspective camera driven by held keys or glided towards a goal.
type Rig struct {
	Position r3.Vec
	// Orientation is the yaw part of the rotation, as a unit quaternion.
	Orientation quat.Number
	// Pitch is applied after Orientation, in radians.
	Pitch float64
	// FOV is the vertical field of view in degrees.
	FOV float64

	move       Direction
	rotate     Direction
	moveStep   float64
	rotateStep float64
}

// New creates a rig from config, looking down -z.
func New(cfg config.CameraConfig) *Rig {
	return &Rig{
		Position:    r3.Vec{X: cfg.Position[0], Y: cfg.Position[1], Z: cfg.Position[2]},
		Orientation: quat.Number{Real: 1},
		Pitch:       cfg.Pitch,
		FOV:         cfg.FOV,
		moveStep:    cfg.MoveStep,
		rotateStep:  cfg.RotateStep,
	}
}

// SetDirection records the held direction of an axis. Releasing a key
// sets it back to Neutral.
func (r *Rig) SetDirection(axis Axis, d Direction) {
	switch axis {
	case AxisMove:
		r.move = d
	case AxisRotate:
		r.rotate = d
	}
}

// Direction returns the held direction of an axis.
func (r *Rig) Direction(axis Axis) Direction {
	if axis == AxisRotate {
		return r.rotate
	}
	return r.move
}

// Drive applies one frame of the held directions. Moving forward
// decreases z; rotating forward pitches up.
func (r *Rig) Drive() {
	r.Position.Z -= float64(r.move) * r.moveStep
	r.Pitch += float64(r.rotate) * r.rotateStep
}

// GlideTo moves the rig a fraction t of the way towards pos and the yaw
// rotation about +y. Called every frame it converges on the goal.
func (r *Rig) GlideTo(pos r3.Vec, yaw, t float64) {
	r.Position = Lerp(r.Position, pos, t)
	r.Orientation = Slerp(r.Orientation, AxisAngle(unitY, yaw), t)
}

// Rotation returns the full rotation, yaw then pitch.
func (r *Rig) Rotation() quat.Number {
	return quat.Mul(r.Orientation, AxisAngle(unitX, r.Pitch))
}

// Forward returns the unit view direction.
func (r *Rig) Forward() r3.Vec {
	return Rotate(r.Rotation(), ahead)
}

// Up returns the unit up direction.
func (r *Rig) Up() r3.Vec {
	return Rotate(r.Rotation(), unitY)
}

// Target returns a point one unit ahead of the rig.
func (r *Rig) Target() r3.Vec {
	return r3.Add(r.Position, r.Forward())
}

// AxisAngle returns the unit quaternion rotating angle radians about axis.
func AxisAngle(axis r3.Vec, angle float64) quat.Number {
	axis = r3.Unit(axis)
	s, c := math.Sincos(angle / 2)
	return quat.Number{Real: c, Imag: axis.X * s, Jmag: axis.Y * s, Kmag: axis.Z * s}
}

// Rotate applies the unit quaternion q to v.
func Rotate(q quat.Number, v r3.Vec) r3.Vec {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	out := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vec{X: out.Imag, Y: out.Jmag, Z: out.Kmag}
}

// Slerp interpolates between unit quaternions a and b along the shorter arc.
func Slerp(a, b quat.Number, t float64) quat.Number {
	if dot(a, b) < 0 {
		b = quat.Scale(-1, b)
	}
	delta := quat.Mul(quat.Inv(a), b)
	return quat.Mul(a, quat.Pow(delta, quat.Number{Real: t}))
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

func dot(a, b quat.Number) float64 {
	return a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
}
