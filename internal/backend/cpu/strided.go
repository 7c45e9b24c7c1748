package cpu

import "github.com/born-ml/ndkernel/internal/tensor"

// Compact gathers the strided view (shape, strides, offset) of a into out in
// row-major order. out must hold shape.NumElements() elements.
//
// Example (transpose of a 2x3 matrix stored row-major):
//
//	a = [0 1 2 3 4 5], shape [3 2], strides [1 3] -> out = [0 3 1 4 2 5]
func (cpu *CPUBackend) Compact(a, out *tensor.Buffer, shape tensor.Shape, strides tensor.Strides, offset int) {
	compactFloat32(out.Data(), a.Data(), tensor.View{Shape: shape, Strides: strides, Offset: offset})
}

// EwiseSetitem scatters the compact contents of a into the strided view
// (shape, strides, offset) of out. It is the inverse of Compact.
func (cpu *CPUBackend) EwiseSetitem(a, out *tensor.Buffer, shape tensor.Shape, strides tensor.Strides, offset int) {
	scatterFloat32(out.Data(), a.Data(), tensor.View{Shape: shape, Strides: strides, Offset: offset})
}

// ScalarSetitem writes val into the first size positions of the strided view
// (shape, strides, offset) of out. size is normally shape.NumElements().
func (cpu *CPUBackend) ScalarSetitem(size int, val float32, out *tensor.Buffer, shape tensor.Shape, strides tensor.Strides, offset int) {
	setScalarFloat32(out.Data(), val, size, tensor.View{Shape: shape, Strides: strides, Offset: offset})
}

func compactFloat32(dst, src []float32, v tensor.View) {
	for c := tensor.NewCursor(v); c.Valid(); c.Next() {
		dst[c.Count()] = src[c.Pos()]
	}
}

func scatterFloat32(dst, src []float32, v tensor.View) {
	for c := tensor.NewCursor(v); c.Valid(); c.Next() {
		dst[c.Pos()] = src[c.Count()]
	}
}

func setScalarFloat32(dst []float32, val float32, size int, v tensor.View) {
	for c := tensor.NewCursor(v); c.Valid() && c.Count() < size; c.Next() {
		dst[c.Pos()] = val
	}
}
