package starfield

// Surface is a 2D drawing target. Coordinates are in pixels with the origin at
// the top-left and Y increasing downward. Colors are straight alpha and are
// composited over existing content, except for Fill which replaces it.
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() (width, height int)
	// Fill replaces every pixel with c.
	Fill(c Color)
	// FillCircle draws a filled circle.
	FillCircle(cx, cy, radius float64, c Color)
	// FillTriangles draws the triangle list described by indices into
	// vertices. Triangles sharing an edge must not double-blend along it.
	FillTriangles(vertices []Vec2, indices []uint16, c Color)
}
