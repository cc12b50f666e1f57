package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sketchbook/config"
)

func near(a, b r3.Vec) bool {
	return r3.Norm(r3.Sub(a, b)) < 1e-9
}

func TestNew(t *testing.T) {
	rig := New(config.Defaults().Camera)

	if rig.Position != (r3.Vec{Y: 8, Z: 10}) {
		t.Errorf("expected rig at (0, 8, 10), got %v", rig.Position)
	}
	if rig.FOV != 75 {
		t.Errorf("expected fov 75, got %f", rig.FOV)
	}
	if !near(rig.Forward(), r3.Vec{Z: -1}) {
		t.Errorf("expected to look down -z, got %v", rig.Forward())
	}
	if !near(rig.Up(), r3.Vec{Y: 1}) {
		t.Errorf("expected +y up, got %v", rig.Up())
	}
}

func TestDrive(t *testing.T) {
	tests := []struct {
		name      string
		move      Direction
		rotate    Direction
		wantZ     float64
		wantPitch float64
	}{
		{"neutral", Neutral, Neutral, 10, 0},
		{"forward", Forward, Neutral, 9, 0},
		{"backwards", Backwards, Neutral, 11, 0},
		{"pitch up", Neutral, Forward, 10, 0.01},
		{"pitch down", Neutral, Backwards, 10, -0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig := New(config.Defaults().Camera)
			rig.SetDirection(AxisMove, tt.move)
			rig.SetDirection(AxisRotate, tt.rotate)
			rig.Drive()

			if rig.Position.Z != tt.wantZ {
				t.Errorf("expected z %f, got %f", tt.wantZ, rig.Position.Z)
			}
			if math.Abs(rig.Pitch-tt.wantPitch) > 1e-12 {
				t.Errorf("expected pitch %f, got %f", tt.wantPitch, rig.Pitch)
			}
		})
	}
}

func TestDriveStopsOnRelease(t *testing.T) {
	rig := New(config.Defaults().Camera)
	rig.SetDirection(AxisMove, Forward)
	rig.Drive()
	rig.Drive()
	rig.SetDirection(AxisMove, Neutral)
	rig.Drive()

	if rig.Position.Z != 8 {
		t.Errorf("expected z 8 after two frames held, got %f", rig.Position.Z)
	}
	if rig.Direction(AxisMove) != Neutral {
		t.Errorf("expected neutral, got %d", rig.Direction(AxisMove))
	}
}

func TestPitchTiltsForwardUp(t *testing.T) {
	rig := New(config.Defaults().Camera)
	rig.Pitch = math.Pi / 2

	if !near(rig.Forward(), r3.Vec{Y: 1}) {
		t.Errorf("expected to look straight up, got %v", rig.Forward())
	}
}

func TestRotateAboutY(t *testing.T) {
	q := AxisAngle(r3.Vec{Y: 1}, math.Pi/2)
	got := Rotate(q, r3.Vec{Z: -1})
	if !near(got, r3.Vec{X: -1}) {
		t.Errorf("expected (-1, 0, 0), got %v", got)
	}
}

func TestSlerpHalfway(t *testing.T) {
	a := quat.Number{Real: 1}
	b := AxisAngle(r3.Vec{Y: 1}, math.Pi/2)
	want := AxisAngle(r3.Vec{Y: 1}, math.Pi/4)

	got := Slerp(a, b, 0.5)
	if quat.Abs(quat.Sub(got, want)) > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Endpoints
	if quat.Abs(quat.Sub(Slerp(a, b, 0), a)) > 1e-9 {
		t.Error("expected a at t=0")
	}
	if quat.Abs(quat.Sub(Slerp(a, b, 1), b)) > 1e-9 {
		t.Error("expected b at t=1")
	}
}

func TestSlerpTakesShortArc(t *testing.T) {
	a := quat.Number{Real: 1}
	b := quat.Scale(-1, AxisAngle(r3.Vec{Y: 1}, 0.2))

	got := Slerp(a, b, 0.5)
	want := AxisAngle(r3.Vec{Y: 1}, 0.1)
	if quat.Abs(quat.Sub(got, want)) > 1e-9 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGlideConverges(t *testing.T) {
	rig := New(config.Defaults().Camera)
	goal := r3.Vec{X: 2, Z: 3}
	yaw := math.Pi / 10

	start := r3.Norm(r3.Sub(goal, rig.Position))
	rig.GlideTo(goal, yaw, 0.01)
	if d := r3.Norm(r3.Sub(goal, rig.Position)); math.Abs(d-0.99*start) > 1e-9 {
		t.Errorf("expected one glide to close 1%%, distance %f of %f", d, start)
	}

	for i := 0; i < 3000; i++ {
		rig.GlideTo(goal, yaw, 0.01)
	}
	if !near(rig.Position, goal) {
		t.Errorf("expected rig at goal, got %v", rig.Position)
	}
	want := AxisAngle(r3.Vec{Y: 1}, yaw)
	if quat.Abs(quat.Sub(rig.Orientation, want)) > 1e-6 {
		t.Errorf("expected orientation %v, got %v", want, rig.Orientation)
	}
}
