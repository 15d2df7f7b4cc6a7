package widget

// DragLock hands the drag to at most one slider at a time. Sliders sharing
// a lock never drag together.
type DragLock struct {
	owner *Slider
}

// Acquire gives the drag to s unless another slider holds it.
func (l *DragLock) Acquire(s *Slider) bool {
	if l.owner != nil && l.owner != s {
		return false
	}
	l.owner = s
	return true
}

// Release frees the lock if s holds it. It is safe to call from a slider
// that never acquired it.
func (l *DragLock) Release(s *Slider) {
	if l.owner == s {
		l.owner = nil
	}
}

// Owner returns the slider being dragged, or nil.
func (l *DragLock) Owner() *Slider { return l.owner }
