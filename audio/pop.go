// Package audio plays a short synthesized pop for every firework burst.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/sketchbook/config"
)

// decay fades a stream out exponentially over total samples.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-5 * float64(d.position) / float64(d.total))
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// NewPop builds one pop: a sine tone at freq cut to the configured
// duration, decayed and attenuated.
func NewPop(cfg config.AudioConfig, freq float64) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("creating pop tone: %w", err)
	}
	n := rate.N(time.Duration(cfg.PopDurationMS) * time.Millisecond)

	shaped := &decay{streamer: beep.Take(n, tone), total: n}
	return &effects.Volume{Streamer: shaped, Base: 2, Volume: cfg.Volume}, nil
}

// PopPlayer mixes burst pops onto the speaker.
type PopPlayer struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// NewPopPlayer creates a player. Nothing is audible until Initialize.
func NewPopPlayer(cfg config.AudioConfig) *PopPlayer {
	return &PopPlayer{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (p *PopPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker.
func (p *PopPlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Pop queues up to MaxPopsPerFrame pops for n bursts and returns how many
// were queued. Each extra pop is pitched a little higher so simultaneous
// bursts stay distinct.
func (p *PopPlayer) Pop(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || n <= 0 {
		return 0
	}
	n = min(n, p.cfg.MaxPopsPerFrame)

	queued := 0
	for i := 0; i < n; i++ {
		s, err := NewPop(p.cfg, p.cfg.PopFrequency*(1+0.12*float64(i)))
		if err != nil {
			continue
		}
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
		queued++
	}
	return queued
}
