package starfield

// EventSink is the interface for optional ECS integration.
// When set on a Field, shooting-star lifecycle transitions are forwarded to it.
type EventSink interface {
	EmitEvent(event LifecycleEvent)
}

// LifecycleEvent reports that a shooting star entered State.
type LifecycleEvent struct {
	ID    uint64
	State State
	Tick  uint64
	X, Y  float64
}

// SetEventSink sets the optional lifecycle bridge. Nil disables it.
func (f *Field) SetEventSink(sink EventSink) {
	f.sink = sink
}

func (f *Field) emit(s *ShootingStar) {
	if f.sink == nil {
		return
	}
	f.sink.EmitEvent(LifecycleEvent{
		ID:    s.ID,
		State: s.State,
		Tick:  f.tick,
		X:     s.X,
		Y:     s.Y,
	})
}
