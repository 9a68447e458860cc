package starfield

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// --- White pixel singleton (drawing is single-threaded, so no sync.Once) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source texture for untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// EbitenSurface draws onto an *ebiten.Image. Triangles go through
// DrawTriangles with a white pixel source; circles through ebiten/vector.
type EbitenSurface struct {
	dst   *ebiten.Image
	verts []ebiten.Vertex
	triOp ebiten.DrawTrianglesOptions
	// Antialias smooths circle edges.
	Antialias bool
}

// NewEbitenSurface wraps dst.
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst, Antialias: true}
}

// SetTarget retargets the surface, typically to the screen image passed to
// ebiten.Game.Draw each frame. The vertex buffer is kept.
func (s *EbitenSurface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// Size implements Surface.
func (s *EbitenSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

// Fill implements Surface. ebiten's Fill replaces pixels, so no Clear is needed.
func (s *EbitenSurface) Fill(c Color) {
	s.dst.Fill(c.toRGBA())
}

// FillCircle implements Surface.
func (s *EbitenSurface) FillCircle(cx, cy, radius float64, c Color) {
	if radius <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), c.toRGBA(), s.Antialias)
}

// FillTriangles implements Surface. Vertex colors are straight alpha, which
// is DrawTriangles' default color scale mode.
func (s *EbitenSurface) FillTriangles(vertices []Vec2, indices []uint16, c Color) {
	if len(vertices) == 0 || len(indices) == 0 || c.A <= 0 {
		return
	}
	s.verts = ensureVertices(s.verts, len(vertices))
	cr, cg, cb, ca := float32(c.R), float32(c.G), float32(c.B), float32(clamp01(c.A))
	for i, p := range vertices {
		s.verts[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}
	s.triOp.Blend = ebiten.BlendSourceOver
	s.dst.DrawTriangles(s.verts, indices, ensureWhitePixel(), &s.triOp)
}

// ensureVertices grows buf to n using a high-water-mark strategy (never
// shrinks) and returns the resliced buffer.
func ensureVertices(buf []ebiten.Vertex, n int) []ebiten.Vertex {
	if cap(buf) < n {
		buf = make([]ebiten.Vertex, n)
	}
	return buf[:n]
}
