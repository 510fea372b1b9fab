package pinchzoom

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FrameScheduler runs a callback on the next display frame. dt is the frame
// duration in seconds.
type FrameScheduler interface {
	RequestFrame(fn func(dt float32))
}

// FrameQueue is a FrameScheduler driven by explicit ticks. Hosts call Tick
// once per frame; tests call it to step animations one frame at a time.
type FrameQueue struct {
	pending []func(float32)
	running []func(float32)
}

// NewFrameQueue creates an empty FrameQueue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame queues fn for the next Tick.
func (q *FrameQueue) RequestFrame(fn func(dt float32)) {
	q.pending = append(q.pending, fn)
}

// Len returns the number of callbacks waiting for the next Tick.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}

// Tick runs every callback queued before the call and returns how many ran.
// Callbacks queued while ticking wait for the next Tick.
func (q *FrameQueue) Tick(dt float32) int {
	q.running, q.pending = q.pending, q.running[:0]
	n := len(q.running)
	for i, fn := range q.running {
		fn(dt)
		q.running[i] = nil
	}
	q.running = q.running[:0]
	return n
}

// approachScale performs one ease-out step: it closes 1/divisor of the gap
// to target and snaps once within snap of it.
func approachScale(scale, target, divisor, snap float64) (next float64, done bool) {
	next = scale + (target-scale)/divisor
	if math.Abs(next-target) <= snap {
		return target, true
	}
	return next, false
}

// AnimationSteps returns how many frames the step animation takes to travel
// from one scale to another with the given tuning.
func AnimationSteps(from, to, divisor, snap float64) int {
	steps := 0
	for s, done := from, false; !done; steps++ {
		s, done = approachScale(s, to, divisor, snap)
	}
	return steps
}

// Animating reports whether a zoom animation is in flight.
func (z *Zoomer) Animating() bool {
	return z.animating
}

// cancelAnimation invalidates any in-flight animation; its next frame
// callback becomes a no-op.
func (z *Zoomer) cancelAnimation() {
	z.animGen++
	z.animating = false
}

// beginAnimation cancels any running animation and returns the generation
// of the new one.
func (z *Zoomer) beginAnimation(target float64) uint64 {
	z.cancelAnimation()
	z.animating = true
	z.animTarget = target
	return z.animGen
}

// animateScale starts the step animation toward target. The first step runs
// immediately; the rest run one per frame.
func (z *Zoomer) animateScale(target float64) {
	z.stepScale(z.beginAnimation(target), target)
}

func (z *Zoomer) stepScale(gen uint64, target float64) {
	if gen != z.animGen || z.closed {
		return
	}
	next, done := approachScale(z.scale, target, z.cfg.ApproachDivisor, z.cfg.SnapThreshold)
	z.scale = next
	z.display()
	if done {
		z.animating = false
		return
	}
	z.host.Frames.RequestFrame(func(float32) { z.stepScale(gen, target) })
}

// ZoomTo animates to target (clamped to the hard limits) around a viewport
// point. A positive duration with an easing function runs a timed tween;
// otherwise the step animation is used.
func (z *Zoomer) ZoomTo(center Vec2, target float64, duration float32, fn ease.TweenFunc) {
	if z.closed {
		return
	}
	z.setCenter(center)
	target = z.clampScale(target)

	if duration <= 0 || fn == nil {
		z.animateScale(target)
		z.checkScroll(target)
		return
	}

	gen := z.beginAnimation(target)
	tw := gween.New(float32(z.scale), float32(target), duration, fn)
	z.checkScroll(target)
	z.host.Frames.RequestFrame(func(dt float32) { z.tweenScale(gen, tw, target, dt) })
}

func (z *Zoomer) tweenScale(gen uint64, tw *gween.Tween, target float64, dt float32) {
	if gen != z.animGen || z.closed {
		return
	}
	val, done := tw.Update(dt)
	if done {
		z.scale = target
	} else {
		z.scale = float64(val)
	}
	z.display()
	if done {
		z.animating = false
		return
	}
	z.host.Frames.RequestFrame(func(dt float32) { z.tweenScale(gen, tw, target, dt) })
}

// Reset animates back to the minimum scale around the last focal point.
func (z *Zoomer) Reset() {
	if z.closed {
		return
	}
	z.animateScale(z.cfg.MinScale)
	z.checkScroll(z.cfg.MinScale)
}
