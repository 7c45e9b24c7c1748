package tensor

import "fmt"

// View describes a logical array over a Buffer: element (i0, ..., in) lives at
// Offset + i0*Strides[0] + ... + in*Strides[n].
//
// A View never owns memory and is never stored by the kernels; it is supplied
// with every call.
type View struct {
	Shape   Shape
	Strides Strides
	Offset  int
}

// NewView creates a view from explicit layout metadata.
// The slices are copied so later changes by the caller do not leak in.
func NewView(shape Shape, strides Strides, offset int) View {
	if len(shape) != len(strides) {
		panic(fmt.Sprintf("view: shape rank %d != strides rank %d", len(shape), len(strides)))
	}
	return View{Shape: shape.Clone(), Strides: strides.Clone(), Offset: offset}
}

// CompactView returns the canonical row-major, zero-offset view of shape.
func CompactView(shape Shape) View {
	return View{Shape: shape.Clone(), Strides: shape.ComputeStrides(), Offset: 0}
}

// Rank returns the number of dimensions.
func (v View) Rank() int {
	return len(v.Shape)
}

// NumElements returns the number of logical elements.
func (v View) NumElements() int {
	return v.Shape.NumElements()
}

// IsCompact reports whether v is row-major with zero offset.
// Strides of size-1 dimensions are ignored since they are never applied.
func (v View) IsCompact() bool {
	if v.Offset != 0 {
		return false
	}
	want := v.Shape.ComputeStrides()
	for i, st := range v.Strides {
		if v.Shape[i] != 1 && st != want[i] {
			return false
		}
	}
	return true
}

// Position returns the buffer index of the element at index.
func (v View) Position(index []int) int {
	pos := v.Offset
	for d, i := range index {
		pos += i * v.Strides[d]
	}
	return pos
}

// Permute returns a view with dimensions reordered by axes.
// No data moves; only the layout metadata is rearranged.
func (v View) Permute(axes ...int) View {
	if len(axes) != len(v.Shape) {
		panic(fmt.Sprintf("permute: axes length %d != rank %d", len(axes), len(v.Shape)))
	}
	out := View{Shape: make(Shape, len(axes)), Strides: make(Strides, len(axes)), Offset: v.Offset}
	for i, ax := range axes {
		out.Shape[i] = v.Shape[ax]
		out.Strides[i] = v.Strides[ax]
	}
	return out
}

// String formats the view metadata for debugging.
func (v View) String() string {
	return fmt.Sprintf("View{shape=%v strides=%v offset=%d}", []int(v.Shape), []int(v.Strides), v.Offset)
}
