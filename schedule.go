package starfield

// deferredEvent marks a shooting star to start dying at a given tick.
type deferredEvent struct {
	at     uint64
	target uint64
}

// scheduler holds pending deferred events. Events refer to their target by
// ID so an event for a star that is already gone is simply dropped.
type scheduler struct {
	events []deferredEvent
}

// after schedules target to fire delay ticks after now.
func (s *scheduler) after(now, delay, target uint64) {
	s.events = append(s.events, deferredEvent{at: now + delay, target: target})
}

// fire calls fn for every event due at or before now, in scheduling order,
// and keeps the rest.
func (s *scheduler) fire(now uint64, fn func(target uint64)) {
	if len(s.events) == 0 {
		return
	}
	kept := s.events[:0]
	var due []deferredEvent
	for _, ev := range s.events {
		if ev.at <= now {
			due = append(due, ev)
		} else {
			kept = append(kept, ev)
		}
	}
	s.events = kept
	for _, ev := range due {
		fn(ev.target)
	}
}

// pending returns the number of events not yet fired.
func (s *scheduler) pending() int {
	return len(s.events)
}

// pendingFor reports whether an event for target is waiting.
func (s *scheduler) pendingFor(target uint64) bool {
	for _, ev := range s.events {
		if ev.target == target {
			return true
		}
	}
	return false
}
