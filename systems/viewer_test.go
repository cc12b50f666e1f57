package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sketchbook/config"
)

func newTestViewer() *Viewer {
	return NewViewer(config.Defaults().Viewer)
}

func TestViewerToggles(t *testing.T) {
	v := newTestViewer()

	if v.AmbientOn() || v.DirectionalOn() {
		t.Fatal("expected lights off initially")
	}
	if !v.ToggleAmbient() || !v.AmbientOn() {
		t.Error("expected ambient on after toggle")
	}
	if v.ToggleAmbient() {
		t.Error("expected ambient off after second toggle")
	}
	if !v.ToggleDirectional() {
		t.Error("expected directional on after toggle")
	}
}

func TestViewerCameraGoal(t *testing.T) {
	v := newTestViewer()

	pos, yaw := v.CameraGoal()
	if pos != (r3.Vec{Z: 4}) || yaw != 0 {
		t.Errorf("expected origin goal, got %v yaw %f", pos, yaw)
	}

	if v.ToggleCamera() {
		t.Error("expected camera heading to target")
	}
	pos, yaw = v.CameraGoal()
	if pos != (r3.Vec{X: 2, Z: 3}) || !approx(yaw, math.Pi/10) {
		t.Errorf("expected target goal, got %v yaw %f", pos, yaw)
	}

	v.ToggleCamera()
	if !v.AtOrigin() {
		t.Error("expected camera back at origin")
	}
}

func TestViewerLightLevel(t *testing.T) {
	v := newTestViewer()
	up := r3.Vec{Y: 1}
	facing := r3.Vec{X: -1, Y: 1, Z: 0.3}
	away := r3.Scale(-1, facing)

	if got := v.LightLevel(up); got != 0 {
		t.Errorf("expected darkness with lights off, got %f", got)
	}

	v.ToggleAmbient()
	if got := v.LightLevel(away); !approx(got, 0.5) {
		t.Errorf("expected ambient only, got %f", got)
	}

	v.ToggleDirectional()
	if got := v.LightLevel(facing); got != 1 {
		t.Errorf("expected clamped full light, got %f", got)
	}
	if got := v.LightLevel(away); !approx(got, 0.5) {
		t.Errorf("expected back faces to get ambient only, got %f", got)
	}

	v.ToggleAmbient()
	if got := v.LightLevel(facing); !approx(got, 1) {
		t.Errorf("expected full directional light, got %f", got)
	}
}

func TestAnimateCubeRunsOnceAtATime(t *testing.T) {
	v := newTestViewer()

	if !v.AnimateCube() {
		t.Fatal("expected animation to start")
	}
	if v.AnimateCube() {
		t.Error("expected second request to be ignored while animating")
	}

	// Delay plus the first stretch
	v.Update(1.3)
	if math.Abs(v.Cube.ScaleX-2) > 1e-6 {
		t.Errorf("expected scale 2 after first stretch, got %f", v.Cube.ScaleX)
	}

	maxRotation := 0.0
	for i := 0; i < 100 && v.Animating(); i++ {
		v.Update(0.1)
		maxRotation = math.Max(maxRotation, v.Cube.RotationZ)
	}

	if v.Animating() {
		t.Fatal("expected animation to finish")
	}
	if v.Cube.ScaleX != 1 || v.Cube.PositionY != 0 || v.Cube.RotationZ != 0 {
		t.Errorf("expected cube back at rest, got %+v", v.Cube)
	}
	if maxRotation < 3 {
		t.Errorf("expected cube to rotate close to pi, max %f", maxRotation)
	}

	if !v.AnimateCube() {
		t.Error("expected animation to restart once finished")
	}
}
