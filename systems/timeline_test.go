package systems

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTimelineDelayAndLinearTween(t *testing.T) {
	x := 0.0
	tl := NewTimeline(0.3).To(&x, 10, 1, Linear)

	tl.Update(0.2)
	if x != 0 {
		t.Fatalf("expected no movement during delay, got %f", x)
	}

	tl.Update(0.6) // 0.1 of delay, then half the tween
	if !approx(x, 5) {
		t.Fatalf("expected 5 halfway, got %f", x)
	}

	if done := tl.Update(0.6); !done {
		t.Error("expected timeline done")
	}
	if x != 10 {
		t.Errorf("expected final value 10, got %f", x)
	}
}

func TestTimelineCapturesStartWhenTweenBegins(t *testing.T) {
	x := 1.0
	tl := NewTimeline(0).
		To(&x, 3, 1, Linear).
		To(&x, 1, 1, Linear)

	tl.Update(1)
	if x != 3 {
		t.Fatalf("expected 3 after first tween, got %f", x)
	}
	tl.Update(0.5)
	if !approx(x, 2) {
		t.Errorf("expected second tween to start from 3, got %f", x)
	}
}

func TestTimelineCarriesLeftoverTime(t *testing.T) {
	a, b := 0.0, 0.0
	calls := 0
	tl := NewTimeline(0).
		To(&a, 1, 1, Linear).
		Then(func() { calls++ }).
		To(&b, 1, 1, Linear)

	tl.Update(1.5)
	if a != 1 {
		t.Errorf("expected a finished, got %f", a)
	}
	if !approx(b, 0.5) {
		t.Errorf("expected b halfway, got %f", b)
	}
	if calls != 1 {
		t.Errorf("expected callback once, got %d", calls)
	}

	tl.Update(10)
	if calls != 1 {
		t.Errorf("expected callback to stay at once, got %d", calls)
	}
	if !tl.Done() {
		t.Error("expected done")
	}
}

func TestExpoOut(t *testing.T) {
	if ExpoOut(0) != 0 {
		t.Errorf("expected 0 at start, got %f", ExpoOut(0))
	}
	if ExpoOut(1) != 1 {
		t.Errorf("expected 1 at end, got %f", ExpoOut(1))
	}
	if !approx(ExpoOut(0.5), 1-1.0/32) {
		t.Errorf("unexpected midpoint %f", ExpoOut(0.5))
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := ExpoOut(float64(i) / 100)
		if v < prev {
			t.Fatalf("not monotonic at %d", i)
		}
		prev = v
	}
}
