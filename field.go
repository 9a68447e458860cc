package starfield

import (
	"fmt"
	"math/rand/v2"
	"os"
)

// Field owns the star population, the shooting stars, the timers and the
// pause flag. A Field is not safe for concurrent use; one goroutine (the
// backend's game loop) drives it.
type Field struct {
	cfg     Config
	heading float64
	width   float64
	height  float64
	rng     *rand.Rand

	stars    []Star
	shooting []*ShootingStar
	nextID   uint64

	tick          uint64
	spawnTicks    uint64
	lifetimeTicks uint64
	events        scheduler

	paused bool
	debug  bool
	sink   EventSink
}

// NewField validates cfg and populates a field of the given size with every
// layer's background stars. No shooting stars exist until the spawn timer
// fires or SpawnShootingStar is called.
func NewField(cfg Config, width, height float64) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %gx%g", ErrInvalidConfig, width, height)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	layers := make([]Layer, len(cfg.Layers))
	copy(layers, cfg.Layers)
	cfg.Layers = layers

	f := &Field{
		cfg:           cfg,
		heading:       DegToRad(cfg.Heading),
		width:         width,
		height:        height,
		rng:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		spawnTicks:    cfg.ticks(cfg.SpawnInterval),
		lifetimeTicks: cfg.ticks(cfg.ShootingStarLifetime),
	}
	f.populate()
	return f, nil
}

// populate creates every layer's stars at uniformly random positions.
func (f *Field) populate() {
	total := 0
	for _, l := range f.cfg.Layers {
		total += l.Count
	}
	f.stars = make([]Star, 0, total)
	for i, l := range f.cfg.Layers {
		for range l.Count {
			p := NewParticle(
				Range{0, f.width}.Random(f.rng),
				Range{0, f.height}.Random(f.rng),
				l.Speed, f.heading,
			)
			p.Radius = f.cfg.StarBaseRadius * l.Scale
			f.stars = append(f.stars, Star{Particle: p, Layer: i})
		}
	}
}

// Config returns a copy of the field's configuration.
func (f *Field) Config() Config {
	return f.cfg
}

// Size returns the current wrap bounds.
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// Resize changes the wrap and spawn bounds. Existing stars keep their
// positions; they are not redistributed.
func (f *Field) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// Stars returns the background stars. The returned slice MUST NOT be mutated.
func (f *Field) Stars() []Star {
	return f.stars
}

// ShootingStars returns the active shooting stars. The returned slice MUST
// NOT be mutated.
func (f *Field) ShootingStars() []*ShootingStar {
	return f.shooting
}

// Tick returns the number of Update calls so far.
func (f *Field) Tick() uint64 {
	return f.tick
}

// PendingEvents returns the number of deferred Dying transitions not yet fired.
func (f *Field) PendingEvents() int {
	return f.events.pending()
}

// Pause stops the simulation; timers keep counting but do no work.
func (f *Field) Pause() {
	f.paused = true
}

// Resume restarts the simulation.
func (f *Field) Resume() {
	f.paused = false
}

// SetFocused maps window focus onto the pause flag: losing focus pauses,
// regaining it resumes.
func (f *Field) SetFocused(focused bool) {
	f.paused = !focused
}

// Paused reports whether the simulation is paused.
func (f *Field) Paused() bool {
	return f.paused
}

// SetDebugMode enables per-second stats on stderr.
func (f *Field) SetDebugMode(enabled bool) {
	f.debug = enabled
}

// SpawnShootingStar creates one shooting star in the upper-right quadrant,
// invisible and fading in, and returns it.
func (f *Field) SpawnShootingStar() *ShootingStar {
	f.nextID++
	p := NewParticle(
		Range{f.width / 2, f.width}.Random(f.rng),
		Range{0, f.height / 2}.Random(f.rng),
		f.cfg.ShootingStarSpeed.Random(f.rng),
		f.heading,
	)
	p.Radius = f.cfg.ShootingStarRadius
	s := &ShootingStar{
		Particle: p,
		ID:       f.nextID,
		State:    StateSpawning,
	}
	f.shooting = append(f.shooting, s)
	f.emit(s)
	return s
}

// Update advances the field by one tick. Deferred events and the spawn timer
// are evaluated on every call, like wall-clock timers; the spawn timer does
// nothing while paused, and the simulation body is skipped entirely.
func (f *Field) Update() {
	f.tick++

	f.events.fire(f.tick, f.startDying)

	if f.spawnTicks > 0 && f.tick%f.spawnTicks == 0 && !f.paused {
		f.SpawnShootingStar()
	}

	if f.paused {
		return
	}

	f.updateStars()
	f.updateShootingStars()
	f.removeDead()

	if f.debug && f.tick%uint64(f.cfg.TPS) == 0 {
		_, _ = fmt.Fprintf(os.Stderr, "[starfield] tick: %d | stars: %d | shooting: %d | pending: %d\n",
			f.tick, len(f.stars), len(f.shooting), f.events.pending())
	}
}

// updateStars moves every background star and wraps it to the opposite edge
// when it leaves the field.
func (f *Field) updateStars() {
	for i := range f.stars {
		s := &f.stars[i]
		s.Update()
		if s.X > f.width {
			s.X = 0
		}
		if s.X < 0 {
			s.X = f.width
		}
		if s.Y > f.height {
			s.Y = 0
		}
		if s.Y < 0 {
			s.Y = f.height
		}
	}
}

// updateShootingStars runs the lifecycle of every shooting star and
// schedules the Dying transition for stars that just became fully visible.
func (f *Field) updateShootingStars() {
	for _, s := range f.shooting {
		prev := s.State
		if s.step(f.cfg.OpacityDelta, f.cfg.TrailLengthDelta) {
			f.events.after(f.tick, f.lifetimeTicks, s.ID)
		}
		if s.State != prev {
			f.emit(s)
		}
	}
}

// startDying is the deferred event handler. A target that no longer exists
// is ignored.
func (f *Field) startDying(id uint64) {
	for _, s := range f.shooting {
		if s.ID == id {
			if s.State == StateAlive {
				s.die()
				f.emit(s)
			}
			return
		}
	}
}

// removeDead rebuilds the active collection without Dead entries.
func (f *Field) removeDead() {
	f.shooting = removeDead(f.shooting)
}

func removeDead(stars []*ShootingStar) []*ShootingStar {
	dead := 0
	for _, s := range stars {
		if s.State == StateDead {
			dead++
		}
	}
	if dead == 0 {
		return stars
	}
	next := make([]*ShootingStar, 0, len(stars)-dead)
	for _, s := range stars {
		if s.State != StateDead {
			next = append(next, s)
		}
	}
	return next
}
