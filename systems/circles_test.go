package systems

import (
	"errors"
	"testing"

	"github.com/pthm-cable/sketchbook/config"
)

func TestCircleQueueTrimIsFIFO(t *testing.T) {
	q, err := NewCircleQueue(3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		q.Push(Circle{X: float32(i)})
	}
	if q.Len() != 5 {
		t.Fatalf("expected queue to overshoot to 5 before trim, got %d", q.Len())
	}

	if n := q.Trim(); n != 2 {
		t.Fatalf("expected 2 evictions, got %d", n)
	}
	items := q.Items()
	for i, want := range []uint64{2, 3, 4} {
		if items[i].Seq != want {
			t.Errorf("slot %d: expected seq %d, got %d", i, want, items[i].Seq)
		}
	}

	// Within capacity: nothing to do
	if n := q.Trim(); n != 0 {
		t.Errorf("expected no evictions, got %d", n)
	}
	if q.Evicted() != 2 {
		t.Errorf("expected 2 total evictions, got %d", q.Evicted())
	}
}

func TestCircleQueueZeroCapacity(t *testing.T) {
	q, err := NewCircleQueue(0)
	if err != nil {
		t.Fatal(err)
	}
	q.Push(Circle{})
	q.Push(Circle{})
	q.Trim()
	if q.Len() != 0 {
		t.Errorf("expected empty queue, got %d", q.Len())
	}
}

func TestCircleQueueAdvance(t *testing.T) {
	q, _ := NewCircleQueue(10)
	q.Push(Circle{X: 1, Y: 2, VelX: 0.5, VelY: -1})
	q.Advance()
	q.Advance()

	c := q.Items()[0]
	if c.X != 2 || c.Y != 0 {
		t.Errorf("expected (2, 0), got (%f, %f)", c.X, c.Y)
	}
}

func TestCircleQueueRejectsNegativeCapacity(t *testing.T) {
	if _, err := NewCircleQueue(-1); !errors.Is(err, config.ErrInvalidSpawnRequest) {
		t.Errorf("expected ErrInvalidSpawnRequest, got %v", err)
	}
}
