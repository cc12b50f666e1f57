package systems

import (
	"fmt"
	"image/color"

	"github.com/pthm-cable/sketchbook/config"
)

// Circle is a transient ring spawned by pointer movement.
type Circle struct {
	X, Y       float32
	Radius     float32
	VelX, VelY float32
	Color      color.RGBA // straight alpha
	Seq        uint64     // creation order, starting at 0
}

// CircleQueue is a bounded FIFO of circles. Pushes may overshoot the
// capacity between frames; Trim evicts the oldest entries back down.
type CircleQueue struct {
	items    []Circle
	capacity int
	nextSeq  uint64
	evicted  int
}

// NewCircleQueue creates a queue holding at most capacity circles after each trim.
func NewCircleQueue(capacity int) (*CircleQueue, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: negative circle capacity %d", config.ErrInvalidSpawnRequest, capacity)
	}
	return &CircleQueue{
		items:    make([]Circle, 0, capacity+1),
		capacity: capacity,
	}, nil
}

// Push appends a circle, stamping its sequence number.
func (q *CircleQueue) Push(c Circle) {
	c.Seq = q.nextSeq
	q.nextSeq++
	q.items = append(q.items, c)
}

// Advance moves every circle by its velocity.
func (q *CircleQueue) Advance() {
	for i := range q.items {
		c := &q.items[i]
		c.X += c.VelX
		c.Y += c.VelY
	}
}

// Trim removes the oldest circles, one per excess element, until the
// queue is within capacity. Returns the number evicted.
func (q *CircleQueue) Trim() int {
	excess := len(q.items) - q.capacity
	if excess <= 0 {
		return 0
	}
	n := copy(q.items, q.items[excess:])
	clear(q.items[n:])
	q.items = q.items[:n]
	q.evicted += excess
	return excess
}

// Items returns the live circles, oldest first. The slice is only valid
// until the next Push or Trim.
func (q *CircleQueue) Items() []Circle {
	return q.items
}

// Len returns the number of live circles.
func (q *CircleQueue) Len() int {
	return len(q.items)
}

// Capacity returns the trim bound.
func (q *CircleQueue) Capacity() int {
	return q.capacity
}

// Evicted returns the total number of circles evicted so far.
func (q *CircleQueue) Evicted() int {
	return q.evicted
}
