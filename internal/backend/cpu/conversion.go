package cpu

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndkernel/internal/tensor"
)

// FromSlice copies out.Size() elements of src into out. src is a dense
// row-major array owned by the caller; it is not retained.
func (cpu *CPUBackend) FromSlice(src []float32, out *tensor.Buffer) {
	copy(out.Data(), src[:out.Size()])
}

// ToSlice copies the strided view (shape, strides, offset) of a into a new
// dense row-major slice owned by the caller.
func (cpu *CPUBackend) ToSlice(a *tensor.Buffer, shape tensor.Shape, strides tensor.Strides, offset int) []float32 {
	v := tensor.View{Shape: shape, Strides: strides, Offset: offset}
	out := make([]float32, v.NumElements())
	compactFloat32(out, a.Data(), v)
	return out
}

// FromDense writes the r x c matrix m into out in compact row-major order,
// rounding every element to float32.
func (cpu *CPUBackend) FromDense(m mat.Matrix, out *tensor.Buffer) {
	dst := out.Data()
	if d, ok := m.(*mat.Dense); ok {
		raw := d.RawMatrix()
		for i := 0; i < raw.Rows; i++ {
			row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
			for j, v := range row {
				dst[i*raw.Cols+j] = float32(v)
			}
		}
		return
	}

	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst[i*c+j] = float32(m.At(i, j))
		}
	}
}

// ToDense copies the rows x cols strided view of a into a new gonum matrix.
func (cpu *CPUBackend) ToDense(a *tensor.Buffer, rows, cols int, strides tensor.Strides, offset int) *mat.Dense {
	if rows == 0 || cols == 0 {
		// gonum refuses zero-sized matrices through NewDense.
		return &mat.Dense{}
	}
	src := a.Data()
	data := make([]float64, rows*cols)
	v := tensor.View{Shape: tensor.Shape{rows, cols}, Strides: strides, Offset: offset}
	for c := tensor.NewCursor(v); c.Valid(); c.Next() {
		data[c.Count()] = float64(src[c.Pos()])
	}
	return mat.NewDense(rows, cols, data)
}
