package pinchzoom

import "math"

// setCenter captures the focal point of a gesture. centerStart is the point
// relative to the image's rendered origin; centerRatio is the same point as
// a fraction of the scaled image, which stays valid across scale changes.
func (z *Zoomer) setCenter(center Vec2) {
	real := z.image.Scale(z.scale)

	z.centerStart = Vec2{
		X: math.Max(center.X-z.position.X*z.scale, 0),
		Y: math.Max(center.Y-z.position.Y*z.scale, 0),
	}
	z.centerRatio = Vec2{
		X: extentRatio(z.centerStart.X+z.scroll.X, real.Width),
		Y: extentRatio(z.centerStart.Y+z.scroll.Y, real.Height),
	}
}

// extentRatio returns v/extent clamped to [0, 1], or 0 for an empty extent.
func extentRatio(v, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	return clamp(v/extent, 0, 1)
}

// syncScroll solves for the scroll offset that keeps the captured focal
// point under the same screen position at the new scaled extent, writes it
// to the container, and reads back whatever the container accepted.
func (z *Zoomer) syncScroll(real Size) {
	z.scroll = Vec2{
		X: z.centerRatio.X*real.Width - z.centerStart.X,
		Y: z.centerRatio.Y*real.Height - z.centerStart.Y,
	}
	if z.scrollEl == nil {
		return
	}
	z.scrollEl.SetScrollOffset(z.scroll)
	z.scroll = z.scrollEl.ScrollOffset()
}

// onScroll tracks user-driven scrolling of the container.
func (z *Zoomer) onScroll(offset Vec2) {
	z.scroll = offset
}

func (z *Zoomer) attachScroll() {
	if z.host.Container == nil {
		return
	}
	el := z.host.Container.ScrollElement()
	if el == nil {
		return
	}
	z.scrollEl = el
	z.scroll = el.ScrollOffset()
	z.unlisten = el.Listen(z.onScroll)
}

func (z *Zoomer) detachScroll() {
	if z.unlisten != nil {
		z.unlisten()
		z.unlisten = nil
	}
	z.scrollEl = nil
}
