package starfield

import "testing"

type mockSink struct {
	events []LifecycleEvent
}

func (m *mockSink) EmitEvent(e LifecycleEvent) {
	m.events = append(m.events, e)
}

func TestEventSinkLifecycle(t *testing.T) {
	f := newTestField(t, quietConfig(), 800, 600)
	sink := &mockSink{}
	f.SetEventSink(sink)

	s := f.SpawnShootingStar()
	for range 300 {
		f.Update()
	}

	want := []struct {
		state State
		tick  uint64
	}{
		{StateSpawning, 0},
		{StateAlive, 100},
		{StateDying, 130},
		{StateDead, 229},
	}
	if len(sink.events) != len(want) {
		t.Fatalf("events = %+v, want %d", sink.events, len(want))
	}
	for i, w := range want {
		e := sink.events[i]
		if e.ID != s.ID || e.State != w.state || e.Tick != w.tick {
			t.Errorf("event %d = %+v, want id %d %v at tick %d", i, e, s.ID, w.state, w.tick)
		}
	}
}

func TestEventSinkNil(t *testing.T) {
	f := newTestField(t, quietConfig(), 100, 100)
	f.SetEventSink(nil)
	f.SpawnShootingStar()
	for range 10 {
		f.Update()
	}
}
