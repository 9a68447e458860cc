package starfield

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate and NewField.
var ErrInvalidConfig = errors.New("starfield: invalid config")

// Layer describes one parallax band of background stars.
type Layer struct {
	// Speed is the distance travelled per tick, in pixels.
	Speed float64
	// Scale multiplies Config.StarBaseRadius.
	Scale float64
	// Count is the number of stars in the layer.
	Count int
}

// DefaultLayers returns the three stock layers: many small slow stars in the
// back, a few larger fast ones in front.
func DefaultLayers() []Layer {
	return []Layer{
		{Speed: 0.015, Scale: 0.2, Count: 320},
		{Speed: 0.03, Scale: 0.5, Count: 50},
		{Speed: 0.05, Scale: 0.75, Count: 30},
	}
}

// Config controls population, timing and colors of a Field.
type Config struct {
	// Layers is read once by NewField.
	Layers []Layer
	// Heading is the shared direction of travel in degrees, for every layer
	// and every shooting star.
	Heading float64
	// ShootingStarSpeed is the range of shooting-star speeds in pixels per tick.
	ShootingStarSpeed Range
	// OpacityDelta is the per-tick opacity change while fading in or out.
	OpacityDelta float64
	// TrailLengthDelta is the per-tick growth of the trail factor.
	TrailLengthDelta float64
	// SpawnInterval is the period of the shooting-star timer. Zero disables it.
	SpawnInterval time.Duration
	// ShootingStarLifetime is how long a shooting star stays fully visible.
	ShootingStarLifetime time.Duration
	// MaxTrailLength is the trail length at a trail factor of 1.
	MaxTrailLength float64
	// StarBaseRadius is the radius of a background star before layer scaling.
	StarBaseRadius float64
	// ShootingStarRadius is stored on each shooting star.
	ShootingStarRadius float64
	// GlyphSize is the outer radius of the shooting-star glyph.
	GlyphSize float64
	// TPS is the tick rate used to convert durations into ticks.
	TPS int

	Background        Color
	StarColor         Color
	ShootingStarColor Color

	// Seed seeds the field's random source. Zero picks a random seed.
	Seed uint64
}

// DefaultConfig returns the stock starfield settings.
func DefaultConfig() Config {
	return Config{
		Layers:               DefaultLayers(),
		Heading:              145,
		ShootingStarSpeed:    Range{Min: 15, Max: 20},
		OpacityDelta:         0.01,
		TrailLengthDelta:     0.01,
		SpawnInterval:        2000 * time.Millisecond,
		ShootingStarLifetime: 500 * time.Millisecond,
		MaxTrailLength:       300,
		StarBaseRadius:       2,
		ShootingStarRadius:   3,
		GlyphSize:            5,
		TPS:                  60,
		Background:           ColorBlack,
		StarColor:            ColorWarmWhite,
		ShootingStarColor:    ColorWhite,
	}
}

// Validate reports the first problem found in c.
func (c *Config) Validate() error {
	if len(c.Layers) == 0 {
		return fmt.Errorf("%w: no layers", ErrInvalidConfig)
	}
	for i, l := range c.Layers {
		if l.Count < 0 {
			return fmt.Errorf("%w: layer %d: negative count %d", ErrInvalidConfig, i, l.Count)
		}
		if l.Speed < 0 || l.Scale < 0 {
			return fmt.Errorf("%w: layer %d: negative speed or scale", ErrInvalidConfig, i)
		}
	}
	if c.ShootingStarSpeed.Min < 0 || c.ShootingStarSpeed.Max < c.ShootingStarSpeed.Min {
		return fmt.Errorf("%w: shooting star speed range [%g, %g]",
			ErrInvalidConfig, c.ShootingStarSpeed.Min, c.ShootingStarSpeed.Max)
	}
	if c.OpacityDelta <= 0 || c.OpacityDelta > 1 {
		return fmt.Errorf("%w: opacity delta %g not in (0, 1]", ErrInvalidConfig, c.OpacityDelta)
	}
	if c.TrailLengthDelta < 0 || c.MaxTrailLength < 0 {
		return fmt.Errorf("%w: negative trail settings", ErrInvalidConfig)
	}
	if c.SpawnInterval < 0 || c.ShootingStarLifetime < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidConfig)
	}
	if c.StarBaseRadius < 0 || c.ShootingStarRadius < 0 || c.GlyphSize < 0 {
		return fmt.Errorf("%w: negative radius", ErrInvalidConfig)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: TPS %d must be positive", ErrInvalidConfig, c.TPS)
	}
	return nil
}

// ticks converts d to a whole number of ticks at c.TPS, rounding to nearest.
// A positive duration is never shorter than one tick.
func (c *Config) ticks(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	n := uint64(math.Round(d.Seconds() * float64(c.TPS)))
	if n == 0 {
		n = 1
	}
	return n
}
