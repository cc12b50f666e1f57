package systems

import (
	"image/color"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/sketchbook/components"
)

// Sprite is a handle to a point sprite owned by exactly one particle.
// The zero Sprite refers to nothing.
type Sprite struct {
	entity ecs.Entity
	valid  bool
}

// Scene is the container of drawable point sprites. Each sprite is an
// ECS entity; releasing a sprite removes the entity.
type Scene struct {
	world *ecs.World

	spriteMapper *ecs.Map4[
		components.Point,
		components.Tint,
		components.Fade,
		components.PointSize,
	]
	spriteFilter *ecs.Filter4[
		components.Point,
		components.Tint,
		components.Fade,
		components.PointSize,
	]

	live     int
	added    int
	released int
}

// NewScene creates an empty sprite scene.
func NewScene() *Scene {
	world := ecs.NewWorld()
	return &Scene{
		world: world,
		spriteMapper: ecs.NewMap4[
			components.Point,
			components.Tint,
			components.Fade,
			components.PointSize,
		](world),
		spriteFilter: ecs.NewFilter4[
			components.Point,
			components.Tint,
			components.Fade,
			components.PointSize,
		](world),
	}
}

// Add creates a fully opaque sprite and returns its handle.
func (s *Scene) Add(pos r3.Vec, c color.RGBA, size float64) Sprite {
	p := components.Point{Pos: pos}
	t := components.Tint{Color: c}
	f := components.Fade{Opacity: 1}
	sz := components.PointSize{Size: size}

	entity := s.spriteMapper.NewEntity(&p, &t, &f, &sz)
	s.live++
	s.added++
	return Sprite{entity: entity, valid: true}
}

// Sync copies a particle's position and opacity onto its sprite.
func (s *Scene) Sync(h Sprite, pos r3.Vec, opacity float64) {
	if !s.Alive(h) {
		return
	}
	p, _, f, _ := s.spriteMapper.Get(h.entity)
	p.Pos = pos
	f.Opacity = opacity
}

// Release removes a sprite. Releasing a dead or zero handle is a no-op.
func (s *Scene) Release(h Sprite) {
	if !s.Alive(h) {
		return
	}
	s.world.RemoveEntity(h.entity)
	s.live--
	s.released++
}

// Alive reports whether the handle refers to a live sprite.
func (s *Scene) Alive(h Sprite) bool {
	return h.valid && s.world.Alive(h.entity)
}

// Len returns the number of live sprites.
func (s *Scene) Len() int {
	return s.live
}

// Released returns the total number of sprites released so far.
func (s *Scene) Released() int {
	return s.released
}

// Each calls fn for every live sprite. fn must not add or release sprites.
func (s *Scene) Each(fn func(pos r3.Vec, c color.RGBA, opacity, size float64)) {
	query := s.spriteFilter.Query()
	for query.Next() {
		p, t, f, sz := query.Get()
		fn(p.Pos, t.Color, f.Opacity, sz.Size)
	}
}
