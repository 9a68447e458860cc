package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/starfield"
)

func newTestDisplay(t *testing.T, cols, rows int) (*Display, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)

	cfg := starfield.DefaultConfig()
	cfg.Seed = 7
	cfg.SpawnInterval = 0
	d, err := NewDisplay(screen, Config{Field: cfg})
	if err != nil {
		t.Fatalf("NewDisplay: %v", err)
	}
	return d, screen
}

func TestNewDisplaySizesField(t *testing.T) {
	d, _ := newTestDisplay(t, 80, 24)
	w, h := d.Field().Size()
	if w != 320 || h != 192 {
		t.Errorf("field size = %vx%v, want 320x192", w, h)
	}
}

func TestDrawFillsCellsWithHalfBlocks(t *testing.T) {
	d, screen := newTestDisplay(t, 20, 6)
	d.Draw()

	black := tcell.NewRGBColor(0, 0, 0)
	lit := 0
	for y := range 6 {
		for x := range 20 {
			r, _, style, _ := screen.GetContent(x, y)
			if r != halfBlock {
				t.Fatalf("cell (%d,%d) = %q, want %q", x, y, r, halfBlock)
			}
			fg, bg, _ := style.Decompose()
			if fg != black || bg != black {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("no cell shows a star")
	}
}

func TestDrawStatusLine(t *testing.T) {
	d, screen := newTestDisplay(t, 40, 4)
	d.status = true
	d.Field().Pause()
	d.Draw()

	var line []rune
	for x := range 40 {
		r, _, _, _ := screen.GetContent(x, 0)
		line = append(line, r)
	}
	want := " shooting: 0  tick: 0 [paused] "
	if got := string(line[:len([]rune(want))]); got != want {
		t.Errorf("status = %q, want %q", got, want)
	}
}

func TestHandleEventKeys(t *testing.T) {
	d, _ := newTestDisplay(t, 20, 6)

	if d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)) {
		t.Fatal("p quit the display")
	}
	if !d.Field().Paused() {
		t.Error("p did not pause")
	}
	d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	if d.Field().Paused() {
		t.Error("second p did not resume")
	}

	d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if n := len(d.Field().ShootingStars()); n != 1 {
		t.Errorf("shooting stars = %d after space, want 1", n)
	}

	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		if !d.HandleEvent(ev) {
			t.Errorf("key %v did not quit", ev.Name())
		}
	}
}

func TestHandleEventFocus(t *testing.T) {
	d, _ := newTestDisplay(t, 20, 6)
	d.HandleEvent(tcell.NewEventFocus(false))
	if !d.Field().Paused() {
		t.Error("focus loss did not pause")
	}
	d.HandleEvent(tcell.NewEventFocus(true))
	if d.Field().Paused() {
		t.Error("focus gain did not resume")
	}
}

func TestHandleEventResize(t *testing.T) {
	d, _ := newTestDisplay(t, 20, 6)
	d.HandleEvent(tcell.NewEventResize(30, 10))

	w, h := d.Field().Size()
	if w != 120 || h != 80 {
		t.Errorf("field size = %vx%v, want 120x80", w, h)
	}
	if b := d.canvas.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("canvas = %v, want 30x20", b)
	}
}

func TestFrameAdvancesField(t *testing.T) {
	d, _ := newTestDisplay(t, 20, 6)
	d.Frame()
	d.Frame()
	if d.Field().Tick() != 2 {
		t.Errorf("Tick = %d, want 2", d.Field().Tick())
	}
}
