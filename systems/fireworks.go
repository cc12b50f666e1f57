package systems

import (
	"image/color"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sketchbook/config"
)

// ParticleKind distinguishes the rising shell from burst fragments.
type ParticleKind uint8

const (
	KindShell ParticleKind = iota
	KindFragment
)

// FireworkState is the lifecycle stage of a firework.
type FireworkState uint8

const (
	Rising FireworkState = iota
	Bursting
	Done
)

// String returns the state name used in logs.
func (s FireworkState) String() string {
	switch s {
	case Rising:
		return "rising"
	case Bursting:
		return "bursting"
	case Done:
		return "done"
	}
	return "unknown"
}

var shellColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Particle is a point mass with an owned sprite.
type Particle struct {
	Kind    ParticleKind
	Pos     r3.Vec
	Vel     r3.Vec
	Acc     r3.Vec
	Opacity float64

	sprite Sprite
}

// ApplyForce accumulates a force into the acceleration for this frame.
func (p *Particle) ApplyForce(f r3.Vec) {
	p.Acc = r3.Add(p.Acc, f)
}

// Integrate advances velocity and position, then clears the acceleration.
// Fragments lose fade opacity per call.
func (p *Particle) Integrate(fade float64) {
	p.Vel = r3.Add(p.Vel, p.Acc)
	p.Pos = r3.Add(p.Pos, p.Vel)
	p.Acc = r3.Vec{}

	switch p.Kind {
	case KindFragment:
		p.Opacity -= fade
	case KindShell:
		// full opacity until the burst
	}
}

// Complete reports whether a fragment has faded out.
func (p *Particle) Complete() bool {
	return p.Kind == KindFragment && p.Opacity < 0
}

// Firework owns one shell and, after bursting, its fragments.
type Firework struct {
	shell     Particle
	fragments []Particle
	bursted   bool
}

// State returns the lifecycle stage.
func (f *Firework) State() FireworkState {
	switch {
	case !f.bursted:
		return Rising
	case len(f.fragments) > 0:
		return Bursting
	default:
		return Done
	}
}

// Shell returns the shell particle. After the burst it holds the last
// position the shell reached.
func (f *Firework) Shell() Particle {
	return f.shell
}

// Fragments returns the live fragments.
func (f *Firework) Fragments() []Particle {
	return f.fragments
}

// StepReport summarizes what happened during one Step.
type StepReport struct {
	Spawned           int
	Bursts            int
	FragmentsReleased int
	Completed         int
}

// add merges another report into r.
func (r *StepReport) add(o StepReport) {
	r.Spawned += o.Spawned
	r.Bursts += o.Bursts
	r.FragmentsReleased += o.FragmentsReleased
	r.Completed += o.Completed
}

// Fireworks drives the set of live fireworks.
type Fireworks struct {
	cfg     config.FireworksConfig
	scene   *Scene
	rng     *rand.Rand
	gravity r3.Vec

	live []*Firework
}

// NewFireworks creates a firework driver drawing into scene.
func NewFireworks(cfg config.FireworksConfig, scene *Scene, rng *rand.Rand) (*Fireworks, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Fireworks{
		cfg:     cfg,
		scene:   scene,
		rng:     rng,
		gravity: r3.Vec{Y: cfg.Gravity},
	}, nil
}

// Launch creates a rising firework with the given shell state.
func (s *Fireworks) Launch(pos, vel r3.Vec) *Firework {
	f := &Firework{
		shell: Particle{
			Kind:    KindShell,
			Pos:     pos,
			Vel:     vel,
			Opacity: 1,
		},
	}
	f.shell.sprite = s.scene.Add(pos, shellColor, s.cfg.ShellSize)
	s.live = append(s.live, f)
	return f
}

// Spawn launches a firework from a random ground position with a random
// upward speed.
func (s *Fireworks) Spawn() *Firework {
	pos := r3.Vec{
		X: s.rng.Float64() * s.cfg.ShellSpreadX * randSign(s.rng),
		Y: 0,
		Z: s.rng.Float64() * s.cfg.ShellSpreadZ * randSign(s.rng),
	}
	vel := r3.Vec{Y: s.rng.Float64() * s.cfg.ShellMaxSpeed}
	return s.Launch(pos, vel)
}

// Step runs one frame: maybe spawn a batch, advance every firework and
// drop the finished ones.
func (s *Fireworks) Step() StepReport {
	var report StepReport

	if s.rng.Float64() < s.cfg.SpawnChance {
		for i := 0; i < s.cfg.SpawnBatch; i++ {
			s.Spawn()
			report.Spawned++
		}
	}

	// Back-to-front so removal does not skip entries
	for i := len(s.live) - 1; i >= 0; i-- {
		f := s.live[i]
		report.add(s.advance(f))
		if f.State() == Done {
			s.live = append(s.live[:i], s.live[i+1:]...)
			report.Completed++
		}
	}

	return report
}

// advance moves one firework forward a frame.
func (s *Fireworks) advance(f *Firework) StepReport {
	var report StepReport

	if !f.bursted {
		f.shell.ApplyForce(s.gravity)
		f.shell.Integrate(s.cfg.FadeStep)
		s.scene.Sync(f.shell.sprite, f.shell.Pos, f.shell.Opacity)

		// Apex passed
		if f.shell.Vel.Y < 0 {
			s.burst(f)
			report.Bursts++
		}
	}

	for i := len(f.fragments) - 1; i >= 0; i-- {
		p := &f.fragments[i]
		p.ApplyForce(s.gravity)
		p.Integrate(s.cfg.FadeStep)
		if p.Complete() {
			s.scene.Release(p.sprite)
			f.fragments = append(f.fragments[:i], f.fragments[i+1:]...)
			report.FragmentsReleased++
			continue
		}
		s.scene.Sync(p.sprite, p.Pos, p.Opacity)
	}

	return report
}

// burst releases the shell sprite and replaces the shell with fragments
// at its last position.
func (s *Fireworks) burst(f *Firework) {
	f.bursted = true
	s.scene.Release(f.shell.sprite)
	f.shell.sprite = Sprite{}

	f.fragments = make([]Particle, 0, s.cfg.FragmentCount)
	for i := 0; i < s.cfg.FragmentCount; i++ {
		vel := r3.Vec{
			X: s.rng.Float64() * s.cfg.FragmentSpeed * randSign(s.rng),
			Y: s.rng.Float64() * s.cfg.FragmentSpeed * randSign(s.rng),
			Z: s.rng.Float64() * s.cfg.FragmentSpeed * randSign(s.rng),
		}
		vel = r3.Scale(s.rng.Float64()*s.cfg.FragmentScale*randSign(s.rng), vel)

		p := Particle{
			Kind:    KindFragment,
			Pos:     f.shell.Pos,
			Vel:     vel,
			Opacity: 1,
		}
		p.sprite = s.scene.Add(p.Pos, randRGB(s.rng, 255), s.cfg.FragmentSize)
		f.fragments = append(f.fragments, p)
	}
}

// Live returns the live fireworks in launch order.
func (s *Fireworks) Live() []*Firework {
	return s.live
}

// Counts returns the number of rising and bursting fireworks and the
// total number of live fragments.
func (s *Fireworks) Counts() (rising, bursting, fragments int) {
	for _, f := range s.live {
		switch f.State() {
		case Rising:
			rising++
		case Bursting:
			bursting++
		}
		fragments += len(f.fragments)
	}
	return rising, bursting, fragments
}

// Close releases every sprite still owned by a live firework.
func (s *Fireworks) Close() {
	for _, f := range s.live {
		s.scene.Release(f.shell.sprite)
		for i := range f.fragments {
			s.scene.Release(f.fragments[i].sprite)
		}
		f.fragments = nil
	}
	s.live = nil
}
