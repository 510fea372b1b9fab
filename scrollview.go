package pinchzoom

import "math"

// ScrollView is an in-process scroll container. It clamps its offset to the
// scrollable range and notifies listeners whenever the offset changes.
type ScrollView struct {
	viewport  Size
	content   Size
	offset    Vec2
	listeners []handler[func(Vec2)]
	nextID    uint32
}

// NewScrollView creates a ScrollView with the given visible size.
func NewScrollView(viewport Size) *ScrollView {
	return &ScrollView{viewport: viewport}
}

// Viewport returns the visible size.
func (s *ScrollView) Viewport() Size { return s.viewport }

// SetViewport changes the visible size and re-clamps the offset.
func (s *ScrollView) SetViewport(size Size) {
	s.viewport = size
	s.SetScrollOffset(s.offset)
}

// ContentSize returns the scrollable content size.
func (s *ScrollView) ContentSize() Size { return s.content }

// SetContentSize changes the content size and re-clamps the offset.
func (s *ScrollView) SetContentSize(size Size) {
	s.content = size
	s.SetScrollOffset(s.offset)
}

// ScrollElement returns the view itself.
func (s *ScrollView) ScrollElement() ScrollElement { return s }

// MaxOffset returns the largest reachable scroll offset on each axis.
func (s *ScrollView) MaxOffset() Vec2 {
	return Vec2{
		X: math.Max(s.content.Width-s.viewport.Width, 0),
		Y: math.Max(s.content.Height-s.viewport.Height, 0),
	}
}

// ScrollOffset returns the current scroll offset.
func (s *ScrollView) ScrollOffset() Vec2 { return s.offset }

// SetScrollOffset moves to offset, clamped to [0, MaxOffset].
func (s *ScrollView) SetScrollOffset(offset Vec2) {
	m := s.MaxOffset()
	offset = Vec2{clamp(offset.X, 0, m.X), clamp(offset.Y, 0, m.Y)}
	if offset == s.offset {
		return
	}
	s.offset = offset
	for _, l := range s.listeners {
		l.fn(offset)
	}
}

// ScrollBy moves the offset by delta.
func (s *ScrollView) ScrollBy(delta Vec2) {
	s.SetScrollOffset(s.offset.Add(delta))
}

// Listen registers fn for offset changes.
func (s *ScrollView) Listen(fn func(offset Vec2)) (remove func()) {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, handler[func(Vec2)]{id: id, fn: fn})
	return func() {
		s.listeners = removeHandler(s.listeners, id)
	}
}
