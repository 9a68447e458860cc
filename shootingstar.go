package starfield

// State is a shooting star's lifecycle stage.
type State uint8

const (
	StateSpawning State = iota // fading in
	StateAlive                 // fully visible, waiting for its lifetime to elapse
	StateDying                 // fading out
	StateDead                  // invisible; removed at the end of the tick
)

func (s State) String() string {
	switch s {
	case StateSpawning:
		return "spawning"
	case StateAlive:
		return "alive"
	case StateDying:
		return "dying"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Star is a background particle belonging to one parallax layer.
type Star struct {
	Particle
	Layer int
}

// ShootingStar is a short-lived particle that fades in, lingers, fades out and
// leaves a growing trail behind it.
type ShootingStar struct {
	Particle
	// ID is stable for the star's whole life and is used by deferred events.
	ID               uint64
	Opacity          float64
	TrailLengthDelta float64
	State            State

	fade *fade
}

// step applies one tick of the lifecycle and motion. It reports whether the
// star became fully visible during this tick.
func (s *ShootingStar) step(opacityDelta, trailDelta float64) (reachedFull bool) {
	switch s.State {
	case StateSpawning:
		if s.fade == nil {
			s.fade = newFade(s.Opacity, 1, opacityDelta)
		}
		var done bool
		s.Opacity, done = s.fade.step()
		if done || s.Opacity >= 1 {
			s.Opacity = 1
			s.State = StateAlive
			s.fade = nil
			reachedFull = true
		}
	case StateDying:
		if s.fade == nil {
			s.fade = newFade(s.Opacity, 0, opacityDelta)
		}
		var done bool
		s.Opacity, done = s.fade.step()
		if done || s.Opacity <= 0 {
			s.Opacity = 0
			s.State = StateDead
			s.fade = nil
		}
	}

	s.TrailLengthDelta += trailDelta
	s.Update()
	return reachedFull
}

// die starts the fade-out. Only a fully visible star can start dying.
func (s *ShootingStar) die() {
	if s.State != StateAlive {
		return
	}
	s.State = StateDying
	s.fade = nil
}

// Tail returns the far end of the trail, projected backward along the
// current heading by maxTrailLength scaled by the trail factor.
func (s *ShootingStar) Tail(maxTrailLength float64) Vec2 {
	return lineToAngle(s.X, s.Y, -maxTrailLength*s.TrailLengthDelta, s.Heading())
}
