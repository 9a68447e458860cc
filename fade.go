package starfield

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fade animates an opacity value linearly over a whole number of ticks.
// The tween clock counts ticks, not seconds, so a delta of 0.01 reaches its
// target on exactly the 100th step with no float accumulation drift.
type fade struct {
	tween *gween.Tween
	from  float64
	to    float64
	done  bool
}

// newFade creates a fade from one opacity to another, changing by delta per tick.
func newFade(from, to, delta float64) *fade {
	frames := float32(math.Abs(to-from) / delta)
	return &fade{
		tween: gween.New(float32(from), float32(to), frames, ease.Linear),
		from:  from,
		to:    to,
	}
}

// step advances the fade by one tick and returns the new value, clamped to
// the [from, to] interval, and whether the target has been reached.
func (f *fade) step() (float64, bool) {
	if f.done {
		return f.to, true
	}
	v, finished := f.tween.Update(1)
	val := float64(v)
	lo, hi := math.Min(f.from, f.to), math.Max(f.from, f.to)
	if val <= lo {
		val = lo
	}
	if val >= hi {
		val = hi
	}
	if val == f.to {
		finished = true
	}
	f.done = finished
	if finished {
		val = f.to
	}
	return val, finished
}
