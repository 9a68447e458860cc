// Package term runs a starfield in a terminal. Each cell shows two vertical
// pixels with the upper half block glyph: the foreground colors the top pixel
// and the background colors the bottom one.
package term

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/starfield"
)

const halfBlock = '▀'

// Config configures a terminal display.
type Config struct {
	// Field is the simulation config. Its TPS sets the redraw rate.
	Field starfield.Config
	// PixelsPerCell is the number of field pixels per half-block pixel.
	// Zero means 4.
	PixelsPerCell float64
	// ShowStatus draws a one-line status in the top-left corner.
	ShowStatus bool
}

// Display binds a Field to a tcell screen.
type Display struct {
	screen  tcell.Screen
	field   *starfield.Field
	scale   float64
	canvas  *image.RGBA
	surface *starfield.ScaledSurface
	status  bool
}

// NewDisplay creates a field sized to screen. The screen must already be
// initialized; the caller keeps ownership of it.
func NewDisplay(screen tcell.Screen, cfg Config) (*Display, error) {
	scale := cfg.PixelsPerCell
	if scale <= 0 {
		scale = 4
	}
	cols, rows := screen.Size()
	field, err := starfield.NewField(cfg.Field, float64(cols)*scale, float64(rows*2)*scale)
	if err != nil {
		return nil, err
	}
	d := &Display{
		screen: screen,
		field:  field,
		scale:  scale,
		status: cfg.ShowStatus,
	}
	d.allocate(cols, rows)
	return d, nil
}

// Field returns the simulated field.
func (d *Display) Field() *starfield.Field {
	return d.field
}

// allocate sizes the pixel canvas to cols×(rows*2).
func (d *Display) allocate(cols, rows int) {
	d.canvas = image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	d.surface = starfield.NewScaledSurface(starfield.NewRasterSurface(d.canvas), d.scale, 0.5)
}

// HandleEvent applies one terminal event and reports whether the display
// should quit.
func (d *Display) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return true
			case 'p':
				if d.field.Paused() {
					d.field.Resume()
				} else {
					d.field.Pause()
				}
			case ' ':
				d.field.SpawnShootingStar()
			}
		}

	case *tcell.EventFocus:
		d.field.SetFocused(ev.Focused)

	case *tcell.EventResize:
		cols, rows := ev.Size()
		d.allocate(cols, rows)
		d.field.Resize(float64(cols)*d.scale, float64(rows*2)*d.scale)
		d.screen.Sync()
	}
	return false
}

// Frame advances the field one tick and redraws.
func (d *Display) Frame() {
	d.field.Update()
	d.Draw()
}

// Draw renders the field into the canvas and copies it to the screen.
func (d *Display) Draw() {
	d.field.Draw(d.surface)

	b := d.canvas.Bounds()
	cols, rows := b.Dx(), b.Dy()/2
	for y := range rows {
		for x := range cols {
			top := d.canvas.RGBAAt(x, y*2)
			bottom := d.canvas.RGBAAt(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			d.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	if d.status {
		d.drawStatus()
	}
	d.screen.Show()
}

func (d *Display) drawStatus() {
	line := fmt.Sprintf(" shooting: %d  tick: %d ", len(d.field.ShootingStars()), d.field.Tick())
	if d.field.Paused() {
		line += "[paused] "
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range line {
		d.screen.SetContent(i, 0, r, nil, style)
	}
}

// Run redraws at the field's TPS until ctx is done or a quit key is pressed.
// Events are read by a separate goroutine that exits once the screen is
// finalized.
func (d *Display) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(d.field.Config().TPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if d.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			d.Frame()
		}
	}
}

// Run opens the terminal, runs a display and restores the terminal on exit.
func Run(ctx context.Context, cfg Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableFocus()
	screen.HideCursor()

	d, err := NewDisplay(screen, cfg)
	if err != nil {
		return err
	}
	return d.Run(ctx)
}
