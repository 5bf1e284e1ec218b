package entity

import "snake-grid/game/types"

// Body is a ring-buffer deque of segments. Index 0 is the segment nearest the head.
type Body struct {
	buf   []types.Point
	start int
	size  int
}

// NewBody returns a body holding segments, nearest the head first.
func NewBody(segments ...types.Point) *Body {
	b := &Body{}
	for _, p := range segments {
		b.PushBack(p)
	}
	return b
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return b.size
}

// At returns the i-th segment counting from the head.
func (b *Body) At(i int) types.Point {
	if i < 0 || i >= b.size {
		panic("entity: body index out of range")
	}
	return b.buf[(b.start+i)%len(b.buf)]
}

func (b *Body) PushFront(p types.Point) {
	b.grow()
	b.start = (b.start - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.start] = p
	b.size++
}

func (b *Body) PushBack(p types.Point) {
	b.grow()
	b.buf[(b.start+b.size)%len(b.buf)] = p
	b.size++
}

// PopBack removes the tail segment. It returns false on an empty body.
func (b *Body) PopBack() (types.Point, bool) {
	if b.size == 0 {
		return types.Point{}, false
	}
	i := (b.start + b.size - 1) % len(b.buf)
	p := b.buf[i]
	b.buf[i] = types.Point{}
	b.size--
	return p, true
}

func (b *Body) Contains(p types.Point) bool {
	for i := 0; i < b.size; i++ {
		if b.buf[(b.start+i)%len(b.buf)] == p {
			return true
		}
	}
	return false
}

// Points copies the segments out in head-to-tail order.
func (b *Body) Points() []types.Point {
	out := make([]types.Point, b.size)
	for i := range out {
		out[i] = b.buf[(b.start+i)%len(b.buf)]
	}
	return out
}

func (b *Body) grow() {
	if b.size < len(b.buf) {
		return
	}
	n := len(b.buf) * 2
	if n == 0 {
		n = 8
	}
	buf := make([]types.Point, n)
	for i := 0; i < b.size; i++ {
		buf[i] = b.buf[(b.start+i)%len(b.buf)]
	}
	b.buf = buf
	b.start = 0
}
