package starfield

// glyphIndices fans the eight glyph points around a hub vertex at index 8.
// The outline is concave, so the hub sits at the star's center rather than
// on the outline.
var glyphIndices = []uint16{
	8, 0, 1,
	8, 1, 2,
	8, 2, 3,
	8, 3, 4,
	8, 4, 5,
	8, 5, 6,
	8, 6, 7,
	8, 7, 0,
}

var trailIndices = []uint16{0, 1, 2}

// glyphPoints writes the four-pointed shooting-star outline centered on
// (x, y), followed by the hub vertex, into buf and returns it. size is the
// distance from the center to each tip.
func glyphPoints(buf []Vec2, x, y, size float64) []Vec2 {
	buf = append(buf[:0],
		Vec2{x - 1, y + 1},
		Vec2{x, y + size},
		Vec2{x + 1, y + 1},
		Vec2{x + size, y},
		Vec2{x + 1, y - 1},
		Vec2{x, y - size},
		Vec2{x - 1, y - 1},
		Vec2{x - size, y},
		Vec2{x, y},
	)
	return buf
}

// trailPoints writes the trail triangle of s into buf and returns it: a thin
// wedge from the head's diagonal to the projected tail.
func trailPoints(buf []Vec2, s *ShootingStar, maxTrailLength float64) []Vec2 {
	tail := s.Tail(maxTrailLength)
	buf = append(buf[:0],
		Vec2{s.X - 1, s.Y - 1},
		tail,
		Vec2{s.X + 1, s.Y + 1},
	)
	return buf
}

// Draw renders the field onto dst: the background, every star, then every
// shooting star that is at least partly visible.
func (f *Field) Draw(dst Surface) {
	dst.Fill(f.cfg.Background)

	for i := range f.stars {
		s := &f.stars[i]
		dst.FillCircle(s.X, s.Y, s.Radius, f.cfg.StarColor)
	}

	var buf [9]Vec2
	for _, s := range f.shooting {
		if s.Opacity <= 0 {
			continue
		}
		glyph := glyphPoints(buf[:0], s.X, s.Y, f.cfg.GlyphSize)
		dst.FillTriangles(glyph, glyphIndices, f.cfg.ShootingStarColor.WithAlpha(s.Opacity))

		trail := trailPoints(buf[:0], s, f.cfg.MaxTrailLength)
		dst.FillTriangles(trail, trailIndices, f.cfg.StarColor.WithAlpha(s.Opacity))
	}
}
