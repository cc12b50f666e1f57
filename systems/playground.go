package systems

import (
	"image/color"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/sketchbook/components"
	"github.com/pthm-cable/sketchbook/config"
)

// BoxView is a read-only snapshot of a box for drawing and inspection.
type BoxView struct {
	Entity    ecs.Entity
	Transform components.Transform
	Extent    components.Extent
	Kind      components.SpinKind
	Color     color.RGBA
	Active    bool
}

// PlaygroundStats summarizes the playground state for telemetry.
type PlaygroundStats struct {
	Boxes          int
	ActiveBoxes    int
	Circles        int
	CirclesSpawned int
	CirclesEvicted int
}

// Playground holds the toggleable box grid and the circle spawner.
// Boxes live in an ECS world; circles in a bounded FIFO.
type Playground struct {
	world *ecs.World
	rng   *rand.Rand

	boxMapper *ecs.Map5[
		components.Transform,
		components.Extent,
		components.Spin,
		components.Tint,
		components.Toggle,
	]
	boxFilter *ecs.Filter5[
		components.Transform,
		components.Extent,
		components.Spin,
		components.Tint,
		components.Toggle,
	]

	// Creation order, used for stable drawing
	order []ecs.Entity

	circles   *CircleQueue
	maxRadius float32
	spawned   int

	spinRate        float32
	reverseSpinRate float32
	boxAlpha        uint8
}

// NewPlayground creates an empty playground. Use NewPlaygroundGrid for the
// standard layout.
func NewPlayground(cfg config.PlaygroundConfig, rng *rand.Rand) (*Playground, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	circles, err := NewCircleQueue(cfg.CircleCapacity)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	return &Playground{
		world: world,
		rng:   rng,
		boxMapper: ecs.NewMap5[
			components.Transform,
			components.Extent,
			components.Spin,
			components.Tint,
			components.Toggle,
		](world),
		boxFilter: ecs.NewFilter5[
			components.Transform,
			components.Extent,
			components.Spin,
			components.Tint,
			components.Toggle,
		](world),
		circles:         circles,
		maxRadius:       float32(cfg.CircleMaxRadius),
		spinRate:        float32(cfg.SpinRate),
		reverseSpinRate: float32(cfg.ReverseSpinRate),
		boxAlpha:        alpha8(cfg.BoxAlpha),
	}, nil
}

// NewPlaygroundGrid creates a playground with rows x cols boxes evenly
// spread over a width x height surface. The first row spins positive,
// the others negative.
func NewPlaygroundGrid(cfg config.PlaygroundConfig, width, height float32, rng *rand.Rand) (*Playground, error) {
	p, err := NewPlayground(cfg, rng)
	if err != nil {
		return nil, err
	}

	size := width * float32(cfg.BoxFraction)
	cellW := width / float32(max(cfg.Cols, 1))
	cellH := height / float32(max(cfg.Rows, 1))
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			kind := components.SpinNegative
			if row == 0 {
				kind = components.SpinPositive
			}
			x := cellW*float32(col) + cellW/2
			y := cellH*float32(row) + cellH/2
			p.AddBox(x, y, size, size, kind)
		}
	}
	return p, nil
}

// AddBox creates an inactive box centered at (x, y) with a random color.
func (p *Playground) AddBox(x, y, w, h float32, kind components.SpinKind) ecs.Entity {
	t := components.Transform{X: x, Y: y}
	e := components.Extent{W: w, H: h}
	s := components.Spin{Kind: kind}
	tint := components.Tint{Color: randRGB(p.rng, p.boxAlpha)}
	tog := components.Toggle{}

	entity := p.boxMapper.NewEntity(&t, &e, &s, &tint, &tog)
	p.order = append(p.order, entity)
	return entity
}

// ToggleAt flips the active flag of every box containing (px, py).
// Overlapping boxes all toggle. Returns the number of boxes flipped.
func (p *Playground) ToggleAt(px, py float32) int {
	flipped := 0
	query := p.boxFilter.Query()
	for query.Next() {
		t, e, _, _, tog := query.Get()
		if e.Contains(*t, px, py) {
			tog.Active = !tog.Active
			flipped++
		}
	}
	return flipped
}

// AllActive reports whether every box is active. True when there are no boxes.
func (p *Playground) AllActive() bool {
	all := true
	query := p.boxFilter.Query()
	for query.Next() {
		_, _, _, _, tog := query.Get()
		if !tog.Active {
			all = false
		}
	}
	return all
}

// OnPointerMove spawns a circle at (px, py) if every box is active.
// Returns whether a circle was spawned.
func (p *Playground) OnPointerMove(px, py float32) bool {
	if !p.AllActive() {
		return false
	}
	p.circles.Push(p.newCircle(px, py))
	p.spawned++
	return true
}

// newCircle builds a circle with random radius, velocity and color.
// Each velocity axis is either -1 or uniform in [-1, 1).
func (p *Playground) newCircle(x, y float32) Circle {
	velX := p.rng.Float64()*float64(p.rng.Intn(2))*2 - 1
	velY := p.rng.Float64()*float64(p.rng.Intn(2))*2 - 1
	return Circle{
		X:      x,
		Y:      y,
		Radius: p.maxRadius * p.rng.Float32(),
		VelX:   float32(velX),
		VelY:   float32(velY),
		Color:  randRGB(p.rng, alpha8(p.rng.Float64())),
	}
}

// Update advances one frame: active boxes spin, circles move, and the
// circle queue is trimmed to capacity. Returns the number of circles evicted.
func (p *Playground) Update() int {
	query := p.boxFilter.Query()
	for query.Next() {
		t, _, s, _, tog := query.Get()
		if !tog.Active {
			continue
		}
		switch s.Kind {
		case components.SpinPositive:
			t.Angle = normalizeAngle(t.Angle + p.spinRate)
		case components.SpinNegative:
			t.Angle = normalizeAngle(t.Angle + p.reverseSpinRate)
		}
	}

	p.circles.Advance()
	return p.circles.Trim()
}

// Boxes returns a snapshot of all boxes in creation order.
func (p *Playground) Boxes() []BoxView {
	views := make([]BoxView, 0, len(p.order))
	for _, entity := range p.order {
		t, e, s, tint, tog := p.boxMapper.Get(entity)
		views = append(views, BoxView{
			Entity:    entity,
			Transform: *t,
			Extent:    *e,
			Kind:      s.Kind,
			Color:     tint.Color,
			Active:    tog.Active,
		})
	}
	return views
}

// Circles returns the live circles, oldest first.
func (p *Playground) Circles() []Circle {
	return p.circles.Items()
}

// Stats returns the current playground counters.
func (p *Playground) Stats() PlaygroundStats {
	active := 0
	for _, b := range p.Boxes() {
		if b.Active {
			active++
		}
	}
	return PlaygroundStats{
		Boxes:          len(p.order),
		ActiveBoxes:    active,
		Circles:        p.circles.Len(),
		CirclesSpawned: p.spawned,
		CirclesEvicted: p.circles.Evicted(),
	}
}
