package pinchzoom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"
)

var identityMatrix = [6]float64{1, 0, 0, 1, 0, 0}

// Matrix returns the affine matrix of t for an element of size (w, h):
//
//	Translate(cx+X, cy+Y) * Scale(s) * Translate(-cx, -cy)
//
// where (cx, cy) is the element's center. Layout is [a b c d tx ty] with
// x' = a*x + c*y + tx and y' = b*x + d*y + ty.
//
// The scale is applied about the center first and the translation after it,
// so (X, Y) is measured in screen units, not in pre-scale units. Only in this
// order does the pinch focal formula keep the point under the fingers fixed
// and a double-tap bring the tapped point to the center.
func (t Transform) Matrix(w, h float64) [6]float64 {
	cx, cy := w/2, h/2
	s := t.Scale
	return [6]float64{
		s, 0, 0, s,
		cx + t.X - s*cx,
		cy + t.Y - s*cy,
	}
}

// GeoM returns t as an ebiten.GeoM for an element of size (w, h).
func (t Transform) GeoM(w, h float64) ebiten.GeoM {
	var g ebiten.GeoM
	cx, cy := w/2, h/2
	g.Translate(-cx, -cy)
	g.Scale(t.Scale, t.Scale)
	g.Translate(cx+t.X, cy+t.Y)
	return g
}

// Aff3 returns t as a row-major f64.Aff3 for an element of size (w, h),
// suitable for golang.org/x/image/draw transformers.
func (t Transform) Aff3(w, h float64) f64.Aff3 {
	m := t.Matrix(w, h)
	return f64.Aff3{
		m[0], m[2], m[4],
		m[1], m[3], m[5],
	}
}

// Apply composes t into opts.GeoM after whatever opts already holds. The
// element is assumed to be drawn at the origin of its own (w, h) box.
func (t Transform) Apply(opts *ebiten.DrawImageOptions, w, h float64) {
	g := t.GeoM(w, h)
	opts.GeoM.Concat(g)
}

// LocalToScreen maps an element-local point through t.
func (t Transform) LocalToScreen(w, h, x, y float64) (float64, float64) {
	return transformPoint(t.Matrix(w, h), x, y)
}

// ScreenToLocal maps a point in the transformed space back to element-local
// coordinates. A zero scale maps through the identity.
func (t Transform) ScreenToLocal(w, h, x, y float64) (float64, float64) {
	return transformPoint(invertAffine(t.Matrix(w, h)), x, y)
}

// invertAffine computes the inverse of an affine matrix.
// Returns identity if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityMatrix
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// markDirty flags the projection for recomputation and schedules OnChange
// handlers for the next flush.
func (z *Zoomable) markDirty() {
	z.dirty = true
	z.changed = true
}

// Transform returns the current projected transform. It is recomputed from
// the state cells whenever they have changed since the last call.
func (z *Zoomable) Transform() Transform {
	if z.dirty {
		z.dirty = false
		z.projected = z.state.current()
	}
	return z.projected
}

// Target returns the transform the element is settling toward: the
// animation end values while a double-tap animation runs, otherwise the
// current transform.
func (z *Zoomable) Target() Transform {
	return z.state.targets()
}

// GeoM is shorthand for z.Transform().GeoM at the recorded layout size.
func (z *Zoomable) GeoM() ebiten.GeoM {
	return z.Transform().GeoM(z.state.viewWidth, z.state.viewHeight)
}
