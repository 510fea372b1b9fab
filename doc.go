// Package pinchzoom implements pinch-to-zoom and double-tap zoom for a single
// image shown inside a scrollable viewport, with an [Ebitengine] viewer on top.
//
// # Zoomer
//
// [Zoomer] is the engine. It owns the zoom scale, the viewport-fitted image
// size, the centering translation, and the focal point of the current
// gesture. It drives three host capabilities:
//
//   - an [ImageElement] that receives the display size and [Transform]
//   - a [ScrollContainer] whose content size tracks the zoomed image and
//     whose [ScrollElement] scroll offset keeps the focal point under the
//     fingers
//   - a [FrameScheduler] that runs animation steps once per frame
//
// Feed it gestures with [Zoomer.HandleGesture] or the individual
// [Zoomer.PinchStart], [Zoomer.Pinch], [Zoomer.PinchEnd], and
// [Zoomer.DoubleTap] methods:
//
//	z, err := pinchzoom.NewZoomer(pinchzoom.DefaultConfig(), pinchzoom.Host{
//		Image:     element,
//		Container: container,
//		Frames:    frames,
//	})
//	z.SetViewport(pinchzoom.Size{Width: 1000, Height: 800})
//	z.SetNativeSize(pinchzoom.Size{Width: 4000, Height: 2000})
//	z.OnDisableScroll(func() { parent.LockScroll() })
//	z.OnEnableScroll(func() { parent.UnlockScroll() })
//
// # Bounce and settling
//
// A live pinch may overshoot the hard limits into a rubber-band region (see
// [BounceScale]). When the pinch ends the zoomer animates back inside
// the hard limits with an ease-out step per frame. A double tap toggles
// between 1 and DoubleTapScale. Starting a new animation, or a new pinch,
// cancels the one in flight.
//
// # Viewer
//
// [Viewer] implements [ebiten.Game]: it reads touches and the mouse through a
// [Recognizer], scrolls with single-finger drags, loads images in the
// background, and draws the zoomed image. [Run] opens a window:
//
//	cfg := pinchzoom.DefaultConfig()
//	if err := pinchzoom.Run("photo.jpg", cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Gestures can be scripted with [Viewer.InjectPinch], [Viewer.InjectDoubleTap],
// and JSON or YAML scripts loaded by [LoadTestScript].
//
// [Ebitengine]: https://ebitengine.org
package pinchzoom
