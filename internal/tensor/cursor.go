package tensor

import "iter"

// Cursor walks every element of a View in row-major order (last dimension
// fastest), exposing the index vector and the matching buffer position.
//
// The index vector is a mixed-radix counter with radix Shape[d] in dimension d.
// Advancing increments the last digit and carries into more significant digits,
// resetting each overflowing digit to zero. The position is kept in step with
// the index so no per-element dot product is needed.
//
//	for c := tensor.NewCursor(v); c.Valid(); c.Next() {
//	    dst[c.Count()] = src[c.Pos()]
//	}
//
// Rank 0 yields exactly one position (the offset); any zero extent yields none.
type Cursor struct {
	shape   Shape
	strides Strides
	index   []int
	pos     int
	count   int
	total   int
}

// NewCursor positions a cursor on the first element of v.
func NewCursor(v View) *Cursor {
	c := &Cursor{}
	c.Reset(v)
	return c
}

// Reset rewinds the cursor onto the first element of v, reusing its index storage.
func (c *Cursor) Reset(v View) {
	c.shape = v.Shape
	c.strides = v.Strides
	if cap(c.index) >= len(v.Shape) {
		c.index = c.index[:len(v.Shape)]
		clear(c.index)
	} else {
		c.index = make([]int, len(v.Shape))
	}
	c.pos = v.Offset
	c.count = 0
	c.total = v.Shape.NumElements()
}

// Valid reports whether the cursor points at an element.
func (c *Cursor) Valid() bool {
	return c.count < c.total
}

// Pos returns the buffer position of the current element.
func (c *Cursor) Pos() int {
	return c.pos
}

// Count returns how many elements were visited before the current one,
// which is also the current element's position in compact order.
func (c *Cursor) Count() int {
	return c.count
}

// Index returns the current index vector. The slice is owned by the cursor
// and changes on Next.
func (c *Cursor) Index() []int {
	return c.index
}

// Next advances to the following element.
func (c *Cursor) Next() {
	c.count++
	for d := len(c.index) - 1; d >= 0; d-- {
		c.index[d]++
		c.pos += c.strides[d]
		if c.index[d] < c.shape[d] {
			return
		}
		// Carry: undo this digit's contribution and move to the next one.
		c.pos -= c.index[d] * c.strides[d]
		c.index[d] = 0
	}
}

// Positions returns the buffer positions of every element of v in row-major order.
func Positions(v View) []int {
	out := make([]int, 0, v.NumElements())
	for c := NewCursor(v); c.Valid(); c.Next() {
		out = append(out, c.Pos())
	}
	return out
}

// All yields (count, position) pairs for every element of v in row-major order.
func (v View) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for c := NewCursor(v); c.Valid(); c.Next() {
			if !yield(c.Count(), c.Pos()) {
				return
			}
		}
	}
}
