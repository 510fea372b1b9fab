package pinchzoom

import "github.com/hajimehoshi/ebiten/v2"

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// PointerSample is one pressed pointer in one frame. Pointers missing from a
// frame's samples are treated as released.
type PointerSample struct {
	ID  int // 0 = mouse, 1-9 = touch slots
	Pos Vec2
}

// --- Per-pointer state ---

type pointerState struct {
	down      bool
	seen      bool
	start     Vec2
	prev      Vec2
	last      Vec2
	downFrame uint64
	dragging  bool
	pinched   bool // took part in a pinch; never a tap or drag
}

type pinchState struct {
	active      bool
	pair        [2]int // pointer slots forming the pinch
	initialDist float64
	lastCenter  Vec2
	lastScale   float64
}

type tapState struct {
	valid bool
	frame uint64
	pos   Vec2
}

// Recognizer turns per-frame pointer samples into gesture events: two
// pointers make a pinch, two quick taps make a double tap, and a single held
// pointer past the dead zone makes drag deltas.
type Recognizer struct {
	cfg      InputConfig
	frame    uint64
	pointers [maxPointers]pointerState
	pinch    pinchState
	lastTap  tapState

	// OnGesture receives recognized gestures. The event is only valid for
	// the duration of the call.
	OnGesture func(ev *GestureEvent)
	// OnDrag receives single-pointer movement deltas in viewport pixels.
	OnDrag func(delta Vec2)
}

// NewRecognizer creates a Recognizer with the given thresholds.
func NewRecognizer(cfg InputConfig) *Recognizer {
	return &Recognizer{cfg: cfg}
}

// Pinching reports whether a pinch is in progress.
func (r *Recognizer) Pinching() bool {
	return r.pinch.active
}

// Update advances the recognizer by one frame.
func (r *Recognizer) Update(samples []PointerSample) {
	r.frame++

	for i := range r.pointers {
		r.pointers[i].seen = false
	}
	for _, s := range samples {
		if s.ID < 0 || s.ID >= maxPointers {
			continue
		}
		ps := &r.pointers[s.ID]
		ps.seen = true
		if !ps.down {
			*ps = pointerState{
				down: true, seen: true,
				start: s.Pos, prev: s.Pos, last: s.Pos,
				downFrame: r.frame,
			}
			continue
		}
		ps.prev = ps.last
		ps.last = s.Pos
	}

	for i := range r.pointers {
		ps := &r.pointers[i]
		if ps.down && !ps.seen {
			r.release(ps)
		}
	}

	r.detectPinch()
	r.detectDrag()
}

// release ends a pointer's press and checks for a tap.
func (r *Recognizer) release(ps *pointerState) {
	ps.down = false
	if ps.pinched || ps.dragging {
		return
	}
	if r.frame-ps.downFrame > uint64(r.cfg.TapMaxFrames) {
		return
	}
	if ps.last.Sub(ps.start).Len() > r.cfg.DoubleTapSlop {
		return
	}
	r.tap(ps.last)
}

func (r *Recognizer) tap(pos Vec2) {
	if r.lastTap.valid &&
		r.frame-r.lastTap.frame <= uint64(r.cfg.DoubleTapFrames) &&
		pos.Sub(r.lastTap.pos).Len() <= r.cfg.DoubleTapSlop {
		r.lastTap.valid = false
		r.fire(GestureEvent{Type: GestureDoubleTap, Scale: 1, Center: pos})
		return
	}
	r.lastTap = tapState{valid: true, frame: r.frame, pos: pos}
}

// --- Pinch detection ---

func (r *Recognizer) detectPinch() {
	var pair [2]int
	count := 0
	for i := range r.pointers {
		if !r.pointers[i].down {
			continue
		}
		if count < 2 {
			pair[count] = i
		}
		count++
	}

	// A different finger pair is a new pinch; its distance must not be
	// measured against the old pair's.
	if r.pinch.active && (count != 2 || pair != r.pinch.pair) {
		r.pinch.active = false
		r.fire(GestureEvent{Type: GesturePinchEnd, Scale: r.pinch.lastScale, Center: r.pinch.lastCenter})
	}
	if count != 2 {
		return
	}
	p0, p1 := &r.pointers[pair[0]], &r.pointers[pair[1]]

	// Pinch pointers never produce taps or drags.
	p0.pinched, p1.pinched = true, true
	p0.dragging, p1.dragging = false, false
	r.lastTap.valid = false

	center := p0.last.Add(p1.last).Scale(0.5)
	dist := p1.last.Sub(p0.last).Len()

	if !r.pinch.active {
		r.pinch = pinchState{active: true, pair: pair, initialDist: dist, lastCenter: center, lastScale: 1}
		r.fire(GestureEvent{Type: GesturePinchStart, Scale: 1, Center: center})
		return
	}

	scale := 1.0
	if r.pinch.initialDist > 0 {
		scale = dist / r.pinch.initialDist
	}
	if scale == r.pinch.lastScale && center == r.pinch.lastCenter {
		return
	}
	r.pinch.lastScale = scale
	r.pinch.lastCenter = center
	r.fire(GestureEvent{Type: GesturePinch, Scale: scale, Center: center})
}

// --- Drag detection ---

func (r *Recognizer) detectDrag() {
	var ps *pointerState
	for i := range r.pointers {
		if r.pointers[i].down {
			if ps != nil {
				return
			}
			ps = &r.pointers[i]
		}
	}
	if ps == nil || ps.pinched || ps.last == ps.prev {
		return
	}
	if !ps.dragging {
		if ps.last.Sub(ps.start).Len() <= r.cfg.DragDeadZone {
			return
		}
		ps.dragging = true
		ps.prev = ps.start
	}
	if r.OnDrag != nil {
		r.OnDrag(ps.last.Sub(ps.prev))
	}
}

func (r *Recognizer) fire(ev GestureEvent) {
	if r.OnGesture != nil {
		r.OnGesture(&ev)
	}
}

// --- Ebitengine input ---

// touchReader maps Ebitengine touch IDs onto pointer slots 1-9 and the left
// mouse button onto slot 0.
type touchReader struct {
	touchMap  [maxPointers]ebiten.TouchID
	touchUsed [maxPointers]bool
	ids       []ebiten.TouchID
	samples   []PointerSample
}

// read returns the pointers pressed this frame. The slice is reused.
func (t *touchReader) read() []PointerSample {
	t.samples = t.samples[:0]

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		t.samples = append(t.samples, PointerSample{ID: 0, Pos: Vec2{float64(mx), float64(my)}})
	}

	t.ids = ebiten.AppendTouchIDs(t.ids[:0])
	var active [maxPointers]bool
	for _, tid := range t.ids {
		slot := t.slot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		t.samples = append(t.samples, PointerSample{ID: slot, Pos: Vec2{float64(tx), float64(ty)}})
	}

	for i := 1; i < maxPointers; i++ {
		if t.touchUsed[i] && !active[i] {
			t.touchUsed[i] = false
			t.touchMap[i] = 0
		}
	}
	return t.samples
}

// slot returns the existing slot for tid or allocates one. Returns -1 if all
// touch slots are taken.
func (t *touchReader) slot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if t.touchUsed[i] && t.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !t.touchUsed[i] {
			t.touchUsed[i] = true
			t.touchMap[i] = tid
			return i
		}
	}
	return -1
}
