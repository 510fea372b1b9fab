package pinchzoom

// EventSink receives every ZoomEvent a Zoomer produces. Use it to bridge
// zoom state into another system (see the ecs subpackage).
type EventSink interface {
	EmitEvent(event ZoomEvent)
}

// ZoomEventType identifies a kind of ZoomEvent.
type ZoomEventType uint8

const (
	EventScaleChanged   ZoomEventType = iota // a display pass changed the scale
	EventScrollDisabled                      // ambient scroll should stop
	EventScrollEnabled                       // ambient scroll may resume
	EventImageLoaded                         // the image was measured and fitted
	EventLoadFailed                          // the image could not be loaded
)

// ZoomEvent carries zoom state changes for an EventSink.
type ZoomEvent struct {
	Type  ZoomEventType
	Scale float64
	// Image is the displayed size (valid for EventImageLoaded).
	Image Size
	// Err is the load failure (valid for EventLoadFailed).
	Err error
}

// --- Handler registry ---

type handler[F any] struct {
	id uint32
	fn F
}

type handlerKind uint8

const (
	kindDisableScroll handlerKind = iota
	kindEnableScroll
	kindScaleChange
	kindLoadError
)

type handlerRegistry struct {
	disableScroll []handler[func()]
	enableScroll  []handler[func()]
	scaleChange   []handler[func(float64)]
	loadError     []handler[func(error)]
	nextID        uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handlerKind
}

// Remove unregisters the callback. Removing twice, or removing a zero
// handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case kindDisableScroll:
		h.reg.disableScroll = removeHandler(h.reg.disableScroll, h.id)
	case kindEnableScroll:
		h.reg.enableScroll = removeHandler(h.reg.enableScroll, h.id)
	case kindScaleChange:
		h.reg.scaleChange = removeHandler(h.reg.scaleChange, h.id)
	case kindLoadError:
		h.reg.loadError = removeHandler(h.reg.loadError, h.id)
	}
}

func removeHandler[F any](s []handler[F], id uint32) []handler[F] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[F]{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) handle(kind handlerKind) CallbackHandle {
	return CallbackHandle{id: r.nextID, reg: r, kind: kind}
}

// OnDisableScroll registers a callback fired when the image settles zoomed
// in after a pinch or double tap.
func (z *Zoomer) OnDisableScroll(fn func()) CallbackHandle {
	r := &z.handlers
	r.nextID++
	r.disableScroll = append(r.disableScroll, handler[func()]{id: r.nextID, fn: fn})
	return r.handle(kindDisableScroll)
}

// OnEnableScroll registers a callback fired when the image settles
// unzoomed after a pinch or double tap.
func (z *Zoomer) OnEnableScroll(fn func()) CallbackHandle {
	r := &z.handlers
	r.nextID++
	r.enableScroll = append(r.enableScroll, handler[func()]{id: r.nextID, fn: fn})
	return r.handle(kindEnableScroll)
}

// OnScaleChange registers a callback fired whenever a display pass changes
// the scale.
func (z *Zoomer) OnScaleChange(fn func(scale float64)) CallbackHandle {
	r := &z.handlers
	r.nextID++
	r.scaleChange = append(r.scaleChange, handler[func(float64)]{id: r.nextID, fn: fn})
	return r.handle(kindScaleChange)
}

// OnLoadError registers a callback fired when the image fails to load or
// has unusable dimensions.
func (z *Zoomer) OnLoadError(fn func(err error)) CallbackHandle {
	r := &z.handlers
	r.nextID++
	r.loadError = append(r.loadError, handler[func(error)]{id: r.nextID, fn: fn})
	return r.handle(kindLoadError)
}

// SetEventSink sets the optional event bridge. Pass nil to clear it.
func (z *Zoomer) SetEventSink(sink EventSink) {
	z.sink = sink
}

func (z *Zoomer) emit(ev ZoomEvent) {
	if z.sink != nil {
		z.sink.EmitEvent(ev)
	}
}

// notifyScale fires scale change callbacks if the scale moved since the
// last display pass.
func (z *Zoomer) notifyScale() {
	if z.scale == z.lastScale {
		return
	}
	z.lastScale = z.scale
	for _, h := range z.handlers.scaleChange {
		h.fn(z.scale)
	}
	z.emit(ZoomEvent{Type: EventScaleChanged, Scale: z.scale})
}
