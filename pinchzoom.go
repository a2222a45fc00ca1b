package pinchzoom

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Transform is the projected output of a Zoomable: a translation by (X, Y)
// composed with a uniform scale by Scale about the element's center, in that
// order. The translation itself is not scaled; see Transform.Matrix.
type Transform struct {
	X, Y  float64
	Scale float64
}

// IdentityTransform is the resting transform: no translation, scale 1.
var IdentityTransform = Transform{Scale: 1}
