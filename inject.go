package pinchzoom

// Synthetic input uses viewport coordinates and the same touch slots real
// touches get. Each queued frame replaces real input for one Update.

const (
	injectSlotA = 1
	injectSlotB = 2
)

// InjectFrame queues one frame in which exactly the given pointers are
// pressed. An empty frame releases everything.
func (v *Viewer) InjectFrame(samples ...PointerSample) {
	frame := make([]PointerSample, len(samples))
	copy(frame, samples)
	v.injectQueue = append(v.injectQueue, frame)
}

// InjectTap queues a press and release at p. Consumes two frames.
func (v *Viewer) InjectTap(p Vec2) {
	v.InjectFrame(PointerSample{ID: injectSlotA, Pos: p})
	v.InjectFrame()
}

// InjectDoubleTap queues two taps at p. Consumes four frames.
func (v *Viewer) InjectDoubleTap(p Vec2) {
	v.InjectTap(p)
	v.InjectTap(p)
}

// InjectPinch queues a horizontal two-finger pinch around center whose
// finger distance goes linearly from fromDist to toDist over frames frames,
// followed by a release frame. Minimum frames is 2.
func (v *Viewer) InjectPinch(center Vec2, fromDist, toDist float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		half := (fromDist + (toDist-fromDist)*t) / 2
		v.InjectFrame(
			PointerSample{ID: injectSlotA, Pos: Vec2{center.X - half, center.Y}},
			PointerSample{ID: injectSlotB, Pos: Vec2{center.X + half, center.Y}},
		)
	}
	v.InjectFrame()
}

// InjectDrag queues a single-finger drag from one point to another over
// frames frames, followed by a release frame. Minimum frames is 2.
func (v *Viewer) InjectDrag(from, to Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		p := from.Add(to.Sub(from).Scale(t))
		v.InjectFrame(PointerSample{ID: injectSlotA, Pos: p})
	}
	v.InjectFrame()
}

// nextInjected pops one queued frame. Returns false if the queue is empty
// and real input should be read instead.
func (v *Viewer) nextInjected() ([]PointerSample, bool) {
	if len(v.injectQueue) == 0 {
		return nil, false
	}
	frame := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue[len(v.injectQueue)-1] = nil
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]
	return frame, true
}
