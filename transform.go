package pinchzoom

import (
	"fmt"
	"math"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transform is the zoom applied to the displayed image: a uniform scale
// about the element origin followed by a translation in unscaled units,
// equivalent to CSS "scale(s) translate(x, y)".
type Transform struct {
	Scale     float64
	Translate Vec2
}

// Matrix returns the transform as an affine matrix [a, b, c, d, tx, ty].
//
//	| a  c  tx |   | s  0  s*x |
//	| b  d  ty | = | 0  s  s*y |
//	| 0  0   1 |   | 0  0   1  |
func (t Transform) Matrix() [6]float64 {
	s := t.Scale
	return [6]float64{s, 0, 0, s, s * t.Translate.X, s * t.Translate.Y}
}

// Apply maps a point from display-size image space to container space.
func (t Transform) Apply(p Vec2) Vec2 {
	x, y := transformPoint(t.Matrix(), p.X, p.Y)
	return Vec2{x, y}
}

// Invert maps a point from container space back to display-size image space.
func (t Transform) Invert(p Vec2) Vec2 {
	x, y := transformPoint(invertAffine(t.Matrix()), p.X, p.Y)
	return Vec2{x, y}
}

func (t Transform) String() string {
	return fmt.Sprintf("scale(%g) translate(%gpx, %gpx)", t.Scale, t.Translate.X, t.Translate.Y)
}

// multiplyAffine multiplies two 2D affine matrices: result = p * c.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
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

// display recomputes the centering translation for the current scale, pushes
// the transform and content size to the host, and re-syncs the scroll offset
// around the focal point.
func (z *Zoomer) display() {
	real := z.image.Scale(z.scale)

	z.position = Vec2{
		X: math.Max((z.viewport.Width-real.Width)/(2*z.scale), 0),
		Y: math.Max((z.viewport.Height-real.Height)/(2*z.scale), 0),
	}

	if z.host.Image != nil {
		z.host.Image.SetTransform(z.Transform())
	}
	if z.host.Container != nil {
		z.host.Container.SetContentSize(real)
	}
	z.syncScroll(real)
	z.notifyScale()
}

// ScreenToImage converts a viewport point to native image pixels, taking
// scroll, centering, and zoom into account. Returns false if no image is
// loaded or the point falls outside the image.
func (z *Zoomer) ScreenToImage(p Vec2) (Vec2, bool) {
	if !z.Loaded() || z.image.Empty() {
		return Vec2{}, false
	}
	local := z.Transform().Invert(p.Add(z.scroll))
	if local.X < 0 || local.Y < 0 || local.X > z.image.Width || local.Y > z.image.Height {
		return Vec2{}, false
	}
	return Vec2{
		X: local.X * z.native.Width / z.image.Width,
		Y: local.Y * z.native.Height / z.image.Height,
	}, true
}
