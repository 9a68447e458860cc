package starfield

// ScaledSurface maps field coordinates onto a smaller (or larger) Surface by
// dividing every coordinate by Scale. Low-resolution targets such as
// terminal cells use it so the field keeps its pixel-based speeds.
type ScaledSurface struct {
	Surface
	// Scale is the number of field pixels per target pixel.
	Scale float64
	// MinRadius keeps tiny stars visible after scaling.
	MinRadius float64

	verts []Vec2
}

// NewScaledSurface wraps s. A scale <= 0 is treated as 1.
func NewScaledSurface(s Surface, scale, minRadius float64) *ScaledSurface {
	if scale <= 0 {
		scale = 1
	}
	return &ScaledSurface{Surface: s, Scale: scale, MinRadius: minRadius}
}

// Size returns the target size in field pixels.
func (s *ScaledSurface) Size() (int, int) {
	w, h := s.Surface.Size()
	return int(float64(w) * s.Scale), int(float64(h) * s.Scale)
}

// FillCircle implements Surface.
func (s *ScaledSurface) FillCircle(cx, cy, radius float64, c Color) {
	r := radius / s.Scale
	if r > 0 && r < s.MinRadius {
		r = s.MinRadius
	}
	s.Surface.FillCircle(cx/s.Scale, cy/s.Scale, r, c)
}

// FillTriangles implements Surface.
func (s *ScaledSurface) FillTriangles(vertices []Vec2, indices []uint16, c Color) {
	s.verts = s.verts[:0]
	for _, v := range vertices {
		s.verts = append(s.verts, Vec2{v.X / s.Scale, v.Y / s.Scale})
	}
	s.Surface.FillTriangles(s.verts, indices, c)
}
