package starfield

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS overlays FPS, TPS and the shooting-star count.
	ShowFPS bool
	// Fullscreen starts the window fullscreen.
	Fullscreen bool
}

// Game adapts a Field to ebiten.Game. Window focus drives the field's pause
// flag and the outside size drives its bounds.
type Game struct {
	field   *Field
	surface *EbitenSurface
	focused bool
	showFPS bool
	width   int
	height  int
}

// NewGame wraps field. The field starts focused.
func NewGame(field *Field) *Game {
	w, h := field.Size()
	return &Game{
		field:   field,
		surface: &EbitenSurface{Antialias: true},
		focused: true,
		width:   int(w),
		height:  int(h),
	}
}

// Field returns the wrapped field.
func (g *Game) Field() *Field {
	return g.field
}

// SetShowFPS toggles the debug overlay.
func (g *Game) SetShowFPS(show bool) {
	g.showFPS = show
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.setFocused(ebiten.IsFocused())
	g.field.Update()
	return nil
}

// setFocused forwards focus transitions to the field. Repeated reports of the
// same state are ignored so a manual Pause is not undone every tick.
func (g *Game) setFocused(focused bool) {
	if focused == g.focused {
		return
	}
	g.focused = focused
	g.field.SetFocused(focused)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	g.field.Draw(g.surface)

	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nShooting: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), len(g.field.ShootingStars())))
	}
}

// Layout implements ebiten.Game. A new outside size resizes the field's
// bounds; stars are not redistributed.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.field.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and runs field until the window is closed.
func Run(field *Field, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		w, h := field.Size()
		cfg.Width, cfg.Height = int(w), int(h)
	}
	if cfg.Title == "" {
		cfg.Title = "Starfield"
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetTPS(field.Config().TPS)

	g := NewGame(field)
	g.SetShowFPS(cfg.ShowFPS)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
