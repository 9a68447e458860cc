package starfield

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a surface submits the color.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorBlack is the default background.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorWhite is the default shooting-star glyph color.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorWarmWhite is rgb(255,221,157), used for background stars and trails.
	ColorWarmWhite = Color{1, 221.0 / 255, 157.0 / 255, 1}
)

// WithAlpha returns a copy of c with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// toRGBA converts to premultiplied 8-bit color.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// toNRGBA converts to straight-alpha 8-bit color.
func (c Color) toNRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and polygon vertices.
type Vec2 struct {
	X, Y float64
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max] drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees / 180 * math.Pi
}

// lineToAngle returns the point length units away from (x, y) along the
// given angle. A negative length projects backward.
func lineToAngle(x, y, length, radians float64) Vec2 {
	return Vec2{
		X: x + length*math.Cos(radians),
		Y: y + length*math.Sin(radians),
	}
}
