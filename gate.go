package pinchzoom

// Signal tells the parent UI whether its own scrolling should run.
type Signal uint8

const (
	SignalEnableScroll  Signal = iota // image is unzoomed; parent may scroll
	SignalDisableScroll               // image is zoomed; the zoomer owns panning
)

func (s Signal) String() string {
	if s == SignalDisableScroll {
		return "disable-scroll"
	}
	return "enable-scroll"
}

// ScrollGate returns the ambient scroll signal for a scale: disable above 1,
// enable at or below it.
func ScrollGate(scale float64) Signal {
	if scale > 1 {
		return SignalDisableScroll
	}
	return SignalEnableScroll
}

// checkScroll emits the ambient scroll signal for the scale the image is
// settling at.
func (z *Zoomer) checkScroll(scale float64) {
	sig := ScrollGate(scale)
	z.debugf("%v at scale %g", sig, scale)
	if sig == SignalDisableScroll {
		for _, h := range z.handlers.disableScroll {
			h.fn()
		}
		z.emit(ZoomEvent{Type: EventScrollDisabled, Scale: scale})
		return
	}
	for _, h := range z.handlers.enableScroll {
		h.fn()
	}
	z.emit(ZoomEvent{Type: EventScrollEnabled, Scale: scale})
}
