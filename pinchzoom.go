package pinchzoom

import "math"

// Vec2 is a 2D vector used for points, offsets, and focal ratios throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by f.
func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Aspect returns Width/Height, or 0 for an empty size.
func (s Size) Aspect() float64 {
	if s.Empty() {
		return 0
	}
	return s.Width / s.Height
}

// Scale returns the size multiplied by f on both axes.
func (s Size) Scale(f float64) Size {
	return Size{s.Width * f, s.Height * f}
}

// Center returns the midpoint of a box of this size anchored at the origin.
func (s Size) Center() Vec2 {
	return Vec2{s.Width / 2, s.Height / 2}
}

// GestureType identifies a kind of gesture event.
type GestureType uint8

const (
	GesturePinchStart GestureType = iota // two pointers went down
	GesturePinch                         // pinch distance changed
	GesturePinchEnd                      // one of the pinch pointers was released
	GestureDoubleTap                     // two quick taps at roughly the same spot
)

func (g GestureType) String() string {
	switch g {
	case GesturePinchStart:
		return "pinchstart"
	case GesturePinch:
		return "pinch"
	case GesturePinchEnd:
		return "pinchend"
	case GestureDoubleTap:
		return "doubletap"
	default:
		return "unknown"
	}
}

// GestureEvent is a single recognized gesture.
type GestureEvent struct {
	Type GestureType
	// Scale is the pinch distance relative to the distance at pinch start.
	// Always 1 for pinch start and double tap.
	Scale float64
	// Center is the gesture focal point in viewport coordinates.
	Center Vec2

	defaultPrevented bool
}

// PreventDefault marks the event as consumed so the host skips its own
// default handling (page pan/zoom and the like).
func (e *GestureEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *GestureEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
