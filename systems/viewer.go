package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sketchbook/config"
)

// CubeTransform holds the animated properties of the viewer cube.
type CubeTransform struct {
	ScaleX    float64
	PositionY float64
	RotationZ float64
}

// Viewer holds the state of the cube viewer: light switches, the camera
// destination and the scripted cube animation.
type Viewer struct {
	cfg config.ViewerConfig

	ambientOn     bool
	directionalOn bool
	atOrigin      bool
	animating     bool

	Cube     CubeTransform
	timeline *Timeline
}

// NewViewer creates a viewer with both lights off and the camera at its origin.
func NewViewer(cfg config.ViewerConfig) *Viewer {
	return &Viewer{
		cfg:      cfg,
		atOrigin: true,
		Cube:     CubeTransform{ScaleX: 1},
	}
}

// ToggleAmbient switches the ambient light and returns its new state.
func (v *Viewer) ToggleAmbient() bool {
	v.ambientOn = !v.ambientOn
	return v.ambientOn
}

// ToggleDirectional switches the directional light and returns its new state.
func (v *Viewer) ToggleDirectional() bool {
	v.directionalOn = !v.directionalOn
	return v.directionalOn
}

// ToggleCamera swaps the camera destination between origin and target.
// Returns true when the camera is now heading to its origin.
func (v *Viewer) ToggleCamera() bool {
	v.atOrigin = !v.atOrigin
	return v.atOrigin
}

// AnimateCube starts the scripted cube animation. Returns false and does
// nothing while an animation is already running.
func (v *Viewer) AnimateCube() bool {
	if v.animating {
		return false
	}
	v.animating = true

	c := &v.Cube
	v.timeline = NewTimeline(v.cfg.TimelineDelay).
		To(&c.ScaleX, 2, 1, ExpoOut).
		To(&c.ScaleX, 1, 1, ExpoOut).
		To(&c.PositionY, 1.5, 1, ExpoOut).
		To(&c.RotationZ, math.Pi, 2, ExpoOut).
		Then(func() { c.RotationZ = 0 }).
		To(&c.PositionY, 0, 1, ExpoOut).
		Then(func() { v.animating = false })
	return true
}

// Update advances the cube animation by dt seconds.
func (v *Viewer) Update(dt float64) {
	if v.timeline == nil {
		return
	}
	if v.timeline.Update(dt) {
		v.timeline = nil
	}
}

// CameraGoal returns where the camera should glide to and the yaw it
// should settle at.
func (v *Viewer) CameraGoal() (pos r3.Vec, yaw float64) {
	if v.atOrigin {
		return vec3(v.cfg.CameraOrigin), 0
	}
	return vec3(v.cfg.CameraTarget), v.cfg.TargetYaw
}

// LightLevel returns the brightness applied to lit surfaces, in [0,1].
// A surface facing normal receives ambient light plus the Lambert term of
// the directional light.
func (v *Viewer) LightLevel(normal r3.Vec) float64 {
	level := 0.0
	if v.ambientOn {
		level += v.cfg.AmbientIntensity
	}
	if v.directionalOn {
		dir := r3.Unit(vec3(v.cfg.LightDirection))
		if lambert := r3.Dot(dir, r3.Unit(normal)); lambert > 0 {
			level += v.cfg.DirectionalIntensity * lambert
		}
	}
	return math.Min(level, 1)
}

// AmbientOn reports whether the ambient light is on.
func (v *Viewer) AmbientOn() bool { return v.ambientOn }

// DirectionalOn reports whether the directional light is on.
func (v *Viewer) DirectionalOn() bool { return v.directionalOn }

// AtOrigin reports whether the camera is heading to its origin.
func (v *Viewer) AtOrigin() bool { return v.atOrigin }

// Animating reports whether the cube animation is running.
func (v *Viewer) Animating() bool { return v.animating }

func vec3(a [3]float64) r3.Vec {
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}
}
