package worm

import (
	"github.com/gammazero/deque"

	"github.com/vovakirdan/tui-worm/internal/core"
)

// Body is the ordered list of segment centers, oldest first and head last.
// Segments are only ever appended at the head end and trimmed at the
// origin end.
type Body struct {
	q deque.Deque[core.Vec]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return b.q.Len()
}

// Push appends a new head segment.
func (b *Body) Push(p core.Vec) {
	b.q.PushBack(p)
}

// Head returns the newest segment. The body must not be empty.
func (b *Body) Head() core.Vec {
	return b.q.Back()
}

// At returns segment i, counting from the oldest.
func (b *Body) At(i int) core.Vec {
	return b.q.At(i)
}

// TrimOldest drops up to n segments from the origin end and returns how
// many were removed.
func (b *Body) TrimOldest(n int) int {
	removed := 0
	for removed < n && b.q.Len() > 0 {
		b.q.PopFront()
		removed++
	}
	return removed
}

// Clear removes every segment.
func (b *Body) Clear() {
	b.q.Clear()
}

// Positions returns a copy of the segments, oldest first.
func (b *Body) Positions() []core.Vec {
	out := make([]core.Vec, b.q.Len())
	for i := range out {
		out[i] = b.q.At(i)
	}
	return out
}
