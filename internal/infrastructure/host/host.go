// Package host provides the per-frame callback mechanisms that drive the
// runtime: a manual host for tests and tools, and an ebiten host for real
// windows.
package host

// FrameFunc is called once per animation frame with a non-decreasing
// timestamp in milliseconds.
type FrameFunc func(timestampMs float64)

// FrameID identifies a registered frame callback.
type FrameID uint64

// Host registers one-shot frame callbacks. A callback that wants to keep
// running re-registers itself.
type Host interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// Manual is a Host whose frames are fired explicitly with Step.
type Manual struct {
	nextID  FrameID
	pending map[FrameID]FrameFunc
	order   []FrameID
}

// NewManual creates a manual host with no pending callbacks.
func NewManual() *Manual {
	return &Manual{pending: make(map[FrameID]FrameFunc)}
}

// RequestFrame implements Host.
func (m *Manual) RequestFrame(fn FrameFunc) FrameID {
	m.nextID++
	m.pending[m.nextID] = fn
	m.order = append(m.order, m.nextID)
	return m.nextID
}

// CancelFrame implements Host.
func (m *Manual) CancelFrame(id FrameID) {
	delete(m.pending, id)
}

// Pending reports whether a callback is waiting for the next frame.
func (m *Manual) Pending() bool {
	return len(m.pending) > 0
}

// Step fires every callback registered before the call, in registration
// order. Callbacks registered while stepping wait for the next Step.
func (m *Manual) Step(timestampMs float64) {
	due := m.order
	m.order = nil
	for _, id := range due {
		fn, ok := m.pending[id]
		if !ok {
			continue
		}
		delete(m.pending, id)
		fn(timestampMs)
	}
}
