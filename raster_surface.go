package starfield

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// RasterSurface draws onto any draw.Image with an anti-aliasing software
// rasterizer. It backs PNG capture, the terminal and the framebuffer
// backends, and needs no GPU.
type RasterSurface struct {
	dst     draw.Image
	z       *vector.Rasterizer
	hasPath bool
	circle  []Vec2
}

// NewRasterSurface wraps dst. Surface coordinates are relative to
// dst.Bounds().Min.
func NewRasterSurface(dst draw.Image) *RasterSurface {
	b := dst.Bounds()
	return &RasterSurface{dst: dst, z: vector.NewRasterizer(b.Dx(), b.Dy())}
}

// Image returns the wrapped image.
func (s *RasterSurface) Image() draw.Image {
	return s.dst
}

// Size implements Surface.
func (s *RasterSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

// Fill implements Surface.
func (s *RasterSurface) Fill(c Color) {
	draw.Draw(s.dst, s.dst.Bounds(), image.NewUniform(c.toRGBA()), image.Point{}, draw.Src)
}

// FillCircle implements Surface. The circle is approximated by a polygon
// with roughly one edge per pixel of circumference.
func (s *RasterSurface) FillCircle(cx, cy, radius float64, c Color) {
	if radius <= 0 || c.A <= 0 {
		return
	}
	n := int(math.Ceil(2 * math.Pi * radius))
	n = max(8, min(n, 64))
	s.circle = s.circle[:0]
	for i := range n {
		a := float64(i) / float64(n) * 2 * math.Pi
		s.circle = append(s.circle, Vec2{cx + math.Cos(a)*radius, cy + math.Sin(a)*radius})
	}
	s.begin()
	s.addPolygon(s.circle)
	s.flush(c)
}

// FillTriangles implements Surface. All triangles are accumulated into a
// single coverage mask before compositing, so shared edges blend once.
func (s *RasterSurface) FillTriangles(vertices []Vec2, indices []uint16, c Color) {
	if c.A <= 0 {
		return
	}
	s.begin()
	var tri [3]Vec2
	for i := 0; i+2 < len(indices); i += 3 {
		tri[0] = vertices[indices[i]]
		tri[1] = vertices[indices[i+1]]
		tri[2] = vertices[indices[i+2]]
		s.addPolygon(tri[:])
	}
	s.flush(c)
}

func (s *RasterSurface) begin() {
	w, h := s.Size()
	s.z.Reset(w, h)
	s.z.DrawOp = draw.Over
	s.hasPath = false
}

// addPolygon clips pts to the surface and appends it to the current path.
func (s *RasterSurface) addPolygon(pts []Vec2) {
	w, h := s.Size()
	if w == 0 || h == 0 {
		return
	}
	clipped := clipPolygon(pts, float64(w), float64(h))
	if len(clipped) < 3 {
		return
	}
	s.z.MoveTo(float32(clipped[0].X), float32(clipped[0].Y))
	for _, p := range clipped[1:] {
		s.z.LineTo(float32(p.X), float32(p.Y))
	}
	s.z.ClosePath()
	s.hasPath = true
}

func (s *RasterSurface) flush(c Color) {
	if !s.hasPath {
		return
	}
	s.z.Draw(s.dst, s.dst.Bounds(), image.NewUniform(c.toNRGBA()), image.Point{})
	s.hasPath = false
}

// clipEdge is one side of the clip rectangle.
type clipEdge struct {
	vertical bool // compares X when true, Y otherwise
	bound    float64
	keepMore bool // inside is >= bound when true, <= bound otherwise
}

func (e clipEdge) coord(p Vec2) float64 {
	if e.vertical {
		return p.X
	}
	return p.Y
}

func (e clipEdge) inside(p Vec2) bool {
	if e.keepMore {
		return e.coord(p) >= e.bound
	}
	return e.coord(p) <= e.bound
}

func (e clipEdge) intersect(a, b Vec2) Vec2 {
	t := (e.bound - e.coord(a)) / (e.coord(b) - e.coord(a))
	p := Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
	if e.vertical {
		p.X = e.bound
	} else {
		p.Y = e.bound
	}
	return p
}

// clipPolygon clips a polygon to the rectangle [0,w]×[0,h]
// (Sutherland–Hodgman). Winding is preserved. The input is not modified.
func clipPolygon(pts []Vec2, w, h float64) []Vec2 {
	edges := [4]clipEdge{
		{vertical: true, bound: 0, keepMore: true},
		{vertical: true, bound: w, keepMore: false},
		{vertical: false, bound: 0, keepMore: true},
		{vertical: false, bound: h, keepMore: false},
	}
	out := pts
	for _, e := range edges {
		if len(out) == 0 {
			return nil
		}
		in := out
		out = make([]Vec2, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			curIn, prevIn := e.inside(cur), e.inside(prev)
			switch {
			case curIn && !prevIn:
				out = append(out, e.intersect(prev, cur), cur)
			case curIn:
				out = append(out, cur)
			case prevIn:
				out = append(out, e.intersect(prev, cur))
			}
			prev = cur
		}
	}
	return out
}
