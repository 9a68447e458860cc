package starfield

import "math"

// Particle is a point mass with a Cartesian velocity. Heading and speed are
// derived from VX and VY.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// NewParticle creates a particle at (x, y) moving at speed along heading
// (radians).
func NewParticle(x, y, speed, heading float64) Particle {
	return Particle{
		X:  x,
		Y:  y,
		VX: math.Cos(heading) * speed,
		VY: math.Sin(heading) * speed,
	}
}

// Speed returns the magnitude of the velocity.
func (p *Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

// SetSpeed changes the magnitude of the velocity, keeping the heading.
func (p *Particle) SetSpeed(speed float64) {
	heading := p.Heading()
	p.VX = math.Cos(heading) * speed
	p.VY = math.Sin(heading) * speed
}

// Heading returns the direction of travel in radians, in (-π, π].
func (p *Particle) Heading() float64 {
	return math.Atan2(p.VY, p.VX)
}

// SetHeading changes the direction of travel, keeping the speed.
func (p *Particle) SetHeading(heading float64) {
	speed := p.Speed()
	p.VX = math.Cos(heading) * speed
	p.VY = math.Sin(heading) * speed
}

// Update advances the position by one tick of velocity. No bounds are applied.
func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
}
