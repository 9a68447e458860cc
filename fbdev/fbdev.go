// Package fbdev runs a starfield directly on a Linux framebuffer device, for
// kiosks and consoles without a window system.
package fbdev

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"time"

	fb "github.com/gonutz/framebuffer"

	"github.com/phanxgames/starfield"
)

// DefaultDevice is the framebuffer opened when Config.Device is empty.
const DefaultDevice = "/dev/fb0"

// Config configures a framebuffer run.
type Config struct {
	// Device is the framebuffer device path.
	Device string
	// Field is the simulation config. Its TPS sets the redraw rate.
	Field starfield.Config
	// Focus, when non-nil, delivers focus changes: false pauses the field,
	// true resumes it.
	Focus <-chan bool
}

// Presenter renders a field into an offscreen canvas and copies each frame
// onto its destination, which is usually a framebuffer device.
type Presenter struct {
	dst     draw.Image
	field   *starfield.Field
	canvas  *image.RGBA
	surface *starfield.RasterSurface
}

// NewPresenter creates a field sized to dst.
func NewPresenter(dst draw.Image, cfg starfield.Config) (*Presenter, error) {
	b := dst.Bounds()
	field, err := starfield.NewField(cfg, float64(b.Dx()), float64(b.Dy()))
	if err != nil {
		return nil, err
	}
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	return &Presenter{
		dst:     dst,
		field:   field,
		canvas:  canvas,
		surface: starfield.NewRasterSurface(canvas),
	}, nil
}

// Field returns the simulated field.
func (p *Presenter) Field() *starfield.Field {
	return p.field
}

// Frame advances the field one tick, renders it and copies it to dst.
func (p *Presenter) Frame() {
	p.field.Update()
	p.field.Draw(p.surface)
	draw.Draw(p.dst, p.dst.Bounds(), p.canvas, image.Point{}, draw.Src)
}

// Run redraws at the field's TPS until ctx is done.
func (p *Presenter) Run(ctx context.Context, focus <-chan bool) error {
	ticker := time.NewTicker(time.Second / time.Duration(p.field.Config().TPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case focused := <-focus:
			p.field.SetFocused(focused)
		case <-ticker.C:
			p.Frame()
		}
	}
}

// Run opens the framebuffer and runs a presenter on it until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	path := cfg.Device
	if path == "" {
		path = DefaultDevice
	}
	dev, err := fb.Open(path)
	if err != nil {
		return fmt.Errorf("fbdev: open %s: %w", path, err)
	}
	defer dev.Close()

	p, err := NewPresenter(dev, cfg.Field)
	if err != nil {
		return err
	}
	return p.Run(ctx, cfg.Focus)
}
