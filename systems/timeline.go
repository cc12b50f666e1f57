package systems

import "math"

// Ease maps linear progress in [0,1] to eased progress.
type Ease func(t float64) float64

// Linear is the identity ease.
func Linear(t float64) float64 { return t }

// ExpoOut decelerates exponentially towards the end.
func ExpoOut(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// Tween moves a float towards a value over a duration in seconds.
// The start value is captured when the tween begins, not when it is built.
type Tween struct {
	target   *float64
	to       float64
	duration float64
	ease     Ease
	onDone   []func()

	from    float64
	elapsed float64
	started bool
}

// Timeline plays tweens one after another after an initial delay.
type Timeline struct {
	delay  float64
	tweens []*Tween
	index  int
}

// NewTimeline creates an empty timeline that waits delay seconds before
// the first tween.
func NewTimeline(delay float64) *Timeline {
	return &Timeline{delay: delay}
}

// To appends a tween of *target to value over duration seconds.
func (tl *Timeline) To(target *float64, value, duration float64, ease Ease) *Timeline {
	if ease == nil {
		ease = Linear
	}
	tl.tweens = append(tl.tweens, &Tween{
		target:   target,
		to:       value,
		duration: duration,
		ease:     ease,
	})
	return tl
}

// Then runs fn when the most recently appended tween completes.
func (tl *Timeline) Then(fn func()) *Timeline {
	if len(tl.tweens) == 0 {
		return tl
	}
	last := tl.tweens[len(tl.tweens)-1]
	last.onDone = append(last.onDone, fn)
	return tl
}

// Update advances the timeline by dt seconds. Time left over after a
// tween completes carries into the next one. Returns true once every
// tween has completed.
func (tl *Timeline) Update(dt float64) bool {
	if tl.delay > 0 {
		if dt < tl.delay {
			tl.delay -= dt
			return tl.Done()
		}
		dt -= tl.delay
		tl.delay = 0
	}

	for tl.index < len(tl.tweens) {
		tw := tl.tweens[tl.index]
		if !tw.started {
			tw.from = *tw.target
			tw.started = true
		}

		remaining := tw.duration - tw.elapsed
		finished := dt >= remaining
		if finished {
			dt -= remaining
			tw.elapsed = tw.duration
			*tw.target = tw.to
		} else {
			tw.elapsed += dt
			dt = 0
			progress := tw.ease(tw.elapsed / tw.duration)
			*tw.target = tw.from + (tw.to-tw.from)*progress
			break
		}

		for _, fn := range tw.onDone {
			fn()
		}
		tl.index++
	}

	return tl.Done()
}

// Done reports whether every tween has completed.
func (tl *Timeline) Done() bool {
	return tl.delay <= 0 && tl.index >= len(tl.tweens)
}
