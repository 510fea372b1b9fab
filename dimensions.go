package pinchzoom

import "math"

// FitToViewport returns the displayed size of an image so that it spans the
// viewport along its dominant axis while keeping the native aspect ratio.
// Wider-than-viewport images take the viewport width; all others take the
// viewport height. Returns a zero Size if either input is empty.
func FitToViewport(native, viewport Size) Size {
	if native.Empty() || viewport.Empty() {
		return Size{}
	}
	if native.Aspect() > viewport.Aspect() {
		return Size{
			Width:  viewport.Width,
			Height: native.Height / native.Width * viewport.Width,
		}
	}
	return Size{
		Width:  native.Width / native.Height * viewport.Height,
		Height: viewport.Height,
	}
}

// MaxScaleFor returns the largest legal zoom for an image displayed at
// displayedWidth: the scale at which it reaches native resolution, less the
// bounce allowance, never below floor.
func MaxScaleFor(nativeWidth, displayedWidth, bounce, floor float64) float64 {
	if displayedWidth <= 0 {
		return floor
	}
	return math.Max(nativeWidth/displayedWidth-bounce, floor)
}

// resolveDimensions fits the loaded image to the current viewport, derives
// maxScale, and pushes the displayed size to the image element.
func (z *Zoomer) resolveDimensions() {
	z.image = FitToViewport(z.native, z.viewport)
	z.maxScale = MaxScaleFor(z.native.Width, z.image.Width, z.cfg.MaxScaleBounce, z.cfg.MaxScaleFloor)
	if z.host.Image != nil {
		z.host.Image.SetDisplaySize(z.image)
	}
	z.debugf("fit %gx%g into %gx%g: display %gx%g, maxScale %g",
		z.native.Width, z.native.Height, z.viewport.Width, z.viewport.Height,
		z.image.Width, z.image.Height, z.maxScale)
}
