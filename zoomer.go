package pinchzoom

import (
	"errors"
	"fmt"
)

var (
	// ErrNoLoader is returned by SetSource when the Host has no ImageLoader.
	ErrNoLoader = errors.New("pinchzoom: no image loader")
	// ErrNoViewport is reported when an image loads before a viewport is set.
	ErrNoViewport = errors.New("pinchzoom: viewport not set")
	// ErrInvalidDimensions is reported when a loaded image has no area.
	ErrInvalidDimensions = errors.New("pinchzoom: invalid image dimensions")
)

// ImageElement is the host element that displays the image.
type ImageElement interface {
	// SetDisplaySize sets the unscaled, viewport-fitted image size.
	SetDisplaySize(size Size)
	// SetTransform applies the zoom transform on top of the display size.
	SetTransform(t Transform)
}

// ScrollContainer is the scrollable host element wrapping the image.
type ScrollContainer interface {
	// SetContentSize resizes the scrollable content to the zoomed extent.
	SetContentSize(size Size)
	// ScrollElement returns the element carrying the live scroll offsets,
	// or nil if the container is not ready.
	ScrollElement() ScrollElement
}

// ScrollElement exposes a container's live scroll offsets.
type ScrollElement interface {
	ScrollOffset() Vec2
	SetScrollOffset(offset Vec2)
	// Listen registers fn for every scroll offset change and returns a
	// function that unregisters it.
	Listen(fn func(offset Vec2)) (remove func())
}

// ImageLoader resolves an image source to its native pixel size. done must
// be called exactly once, on the same thread that drives the Zoomer.
type ImageLoader interface {
	Load(src string, done func(native Size, err error))
}

// Host bundles the capabilities a Zoomer drives. Any field may be nil; a nil
// Frames gets a private FrameQueue, reachable through Zoomer.Frames.
type Host struct {
	Image     ImageElement
	Container ScrollContainer
	Loader    ImageLoader
	Frames    FrameScheduler
}

// Zoomer is the pinch/double-tap zoom engine for one image in a scrollable
// viewport. It is not safe for concurrent use: gestures, scroll callbacks,
// and frame callbacks must all arrive on one goroutine.
type Zoomer struct {
	cfg  Config
	host Host

	scale      float64
	scaleStart float64
	maxScale   float64

	viewport Size
	native   Size
	image    Size

	position    Vec2
	scroll      Vec2
	centerStart Vec2
	centerRatio Vec2

	lastScale  float64
	animGen    uint64
	animating  bool
	animTarget float64
	pinching   bool
	loadGen    uint64
	src        string

	scrollEl ScrollElement
	unlisten func()

	handlers handlerRegistry
	sink     EventSink
	closed   bool
}

// NewZoomer validates cfg and creates a Zoomer at scale 1. The scroll
// listener is attached immediately if the container is ready.
func NewZoomer(cfg Config, host Host) (*Zoomer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if host.Frames == nil {
		host.Frames = NewFrameQueue()
	}
	z := &Zoomer{
		cfg:        cfg,
		host:       host,
		scale:      1,
		scaleStart: 1,
		maxScale:   defaultMaxScale,
		lastScale:  1,
	}
	z.attachScroll()
	return z, nil
}

// Scale returns the current zoom factor.
func (z *Zoomer) Scale() float64 { return z.scale }

// MaxScale returns the hard upper zoom bound for the loaded image.
func (z *Zoomer) MaxScale() float64 { return z.maxScale }

// MinScale returns the hard lower zoom bound.
func (z *Zoomer) MinScale() float64 { return z.cfg.MinScale }

// ImageSize returns the unscaled displayed image size.
func (z *Zoomer) ImageSize() Size { return z.image }

// NativeSize returns the loaded image's pixel size.
func (z *Zoomer) NativeSize() Size { return z.native }

// Viewport returns the current viewport size.
func (z *Zoomer) Viewport() Size { return z.viewport }

// Position returns the centering translation, in unscaled units.
func (z *Zoomer) Position() Vec2 { return z.position }

// Scroll returns the last known container scroll offset.
func (z *Zoomer) Scroll() Vec2 { return z.scroll }

// Focus returns the focal point captured by the last pinch start or double
// tap: its pixel offset from the image's rendered origin and its position as
// a fraction of the scaled image.
func (z *Zoomer) Focus() (start, ratio Vec2) { return z.centerStart, z.centerRatio }

// Loaded reports whether an image has been measured.
func (z *Zoomer) Loaded() bool { return !z.native.Empty() }

// Frames returns the scheduler driving animations.
func (z *Zoomer) Frames() FrameScheduler { return z.host.Frames }

// Transform returns the transform currently applied to the image element.
func (z *Zoomer) Transform() Transform {
	return Transform{Scale: z.scale, Translate: z.position}
}

// SetViewport sets the viewport size without refitting. Call it before the
// image loads; use Resize afterwards.
func (z *Zoomer) SetViewport(size Size) {
	z.viewport = size
}

// Resize sets a new viewport size and, if an image is loaded, refits it and
// redisplays at the current scale.
func (z *Zoomer) Resize(size Size) {
	if size == z.viewport {
		return
	}
	z.viewport = size
	if !z.Loaded() || size.Empty() {
		return
	}
	z.resolveDimensions()
	z.display()
	z.settleScale()
}

// SetSource starts loading src through the Host's ImageLoader. Results for
// an older source are discarded.
func (z *Zoomer) SetSource(src string) error {
	if z.host.Loader == nil {
		return ErrNoLoader
	}
	z.loadGen++
	gen := z.loadGen
	z.src = src
	z.debugf("load %q", src)
	z.host.Loader.Load(src, func(native Size, err error) {
		if gen != z.loadGen || z.closed {
			return
		}
		if err != nil {
			z.loadFailed(fmt.Errorf("load %q: %w", src, err))
			return
		}
		z.imageLoaded(native)
	})
	return nil
}

// Source returns the last source passed to SetSource.
func (z *Zoomer) Source() string { return z.src }

// SetNativeSize supplies the image size directly, for hosts that measure
// images themselves. It runs the same path as a completed load.
func (z *Zoomer) SetNativeSize(native Size) error {
	z.loadGen++
	return z.imageLoaded(native)
}

func (z *Zoomer) imageLoaded(native Size) error {
	var err error
	switch {
	case native.Empty():
		err = fmt.Errorf("%w: %gx%g", ErrInvalidDimensions, native.Width, native.Height)
	case z.viewport.Empty():
		err = ErrNoViewport
	}
	if err != nil {
		z.loadFailed(err)
		return err
	}
	// A new image starts from its top-left corner.
	z.centerStart = Vec2{}
	z.centerRatio = Vec2{}
	z.native = native
	z.resolveDimensions()
	z.display()
	z.emit(ZoomEvent{Type: EventImageLoaded, Scale: z.scale, Image: z.image})
	z.settleScale()
	return nil
}

// settleScale brings the scale, or the target of a running animation, back
// inside the hard limits after they changed. A live pinch is left alone;
// PinchEnd settles it.
func (z *Zoomer) settleScale() {
	if z.pinching {
		return
	}
	target := z.scale
	if z.animating {
		target = z.animTarget
	}
	settled := z.clampScale(target)
	if settled == target {
		return
	}
	z.debugf("limits changed: settling %g -> %g", target, settled)
	z.checkScroll(settled)
	z.animateScale(settled)
}

func (z *Zoomer) loadFailed(err error) {
	z.debugf("%v", err)
	for _, h := range z.handlers.loadError {
		h.fn(err)
	}
	z.emit(ZoomEvent{Type: EventLoadFailed, Scale: z.scale, Err: err})
}

// --- Gestures ---

// HandleGesture dispatches ev to the matching gesture method.
func (z *Zoomer) HandleGesture(ev *GestureEvent) {
	if z.closed {
		return
	}
	switch ev.Type {
	case GesturePinchStart:
		z.PinchStart(ev)
	case GesturePinch:
		z.Pinch(ev)
	case GesturePinchEnd:
		z.PinchEnd(ev)
	case GestureDoubleTap:
		z.DoubleTap(ev)
	}
}

// PinchStart records the baseline scale and captures the focal point. Any
// running animation is cancelled; the fingers take over.
func (z *Zoomer) PinchStart(ev *GestureEvent) {
	z.cancelAnimation()
	z.pinching = true
	z.scaleStart = z.scale
	z.setCenter(ev.Center)
}

// Pinch rescales relative to the pinch start, rubber-banding past the hard
// limits, and redisplays.
func (z *Zoomer) Pinch(ev *GestureEvent) {
	z.scale = BounceScale(z.scaleStart*ev.Scale, z.cfg.MinScale, z.maxScale,
		z.cfg.MinScaleBounce, z.cfg.MaxScaleBounce)
	z.display()
	ev.PreventDefault()
}

// PinchEnd updates the scroll gate and animates back inside the hard limits
// if the pinch ended in the bounce region.
func (z *Zoomer) PinchEnd(ev *GestureEvent) {
	z.pinching = false
	target := z.clampScale(z.scale)
	z.checkScroll(target)
	if target != z.scale {
		z.animateScale(target)
	}
}

// DoubleTap toggles between unzoomed and DoubleTapScale (capped at the max
// scale), animating around the tap point.
func (z *Zoomer) DoubleTap(ev *GestureEvent) {
	z.setCenter(ev.Center)

	target := z.cfg.DoubleTapScale
	if z.scale > z.cfg.MinScale {
		target = z.cfg.MinScale
	}
	if target > z.maxScale {
		target = z.maxScale
	}

	z.animateScale(target)
	z.checkScroll(target)
	ev.PreventDefault()
}

// BounceScale maps a raw pinch scale into the elastic range
// (lo-loBounce, hi+hiBounce). Inside [lo, hi] it is the identity; outside,
// it approaches the bounce limit asymptotically and is continuous at lo and
// hi.
func BounceScale(raw, lo, hi, loBounce, hiBounce float64) float64 {
	switch {
	case raw > hi:
		return hi + (1-hi/raw)*hiBounce
	case raw < lo:
		return lo - (1-raw/lo)*loBounce
	default:
		return raw
	}
}

func (z *Zoomer) clampScale(s float64) float64 {
	return clamp(s, z.cfg.MinScale, z.maxScale)
}

// Close detaches the scroll listener and stops animations and pending
// loads. Safe to call on a Zoomer whose container never became ready, and
// safe to call twice.
func (z *Zoomer) Close() {
	if z.closed {
		return
	}
	z.closed = true
	z.cancelAnimation()
	z.loadGen++
	z.detachScroll()
}
