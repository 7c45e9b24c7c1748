// Package cpu implements the float32 compute kernels of the CPU backend.
//
// Every kernel reads caller-owned buffers and writes only to its designated
// output buffer. Shapes, strides and offsets are passed per call; the backend
// keeps no state between calls. Apart from Compact, EwiseSetitem,
// ScalarSetitem and ToSlice, kernels expect compact (row-major, zero-offset)
// operands of matching size. Nothing is validated: out-of-range views,
// mismatched sizes or aliased operands are undefined behavior.
package cpu

import "github.com/born-ml/ndkernel/internal/tensor"

// Name is the device name reported by the backend.
const Name = "cpu"

// CPUBackend exposes the kernels as methods for the owning framework.
// It has no mutable state and is safe to share between goroutines that do
// not share output buffers.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// Name returns the device name.
func (cpu *CPUBackend) Name() string {
	return Name
}

// TileSize returns the tile width used by MatmulTiled.
func (cpu *CPUBackend) TileSize() int {
	return Tile
}

// Alignment returns the byte alignment of every buffer.
func (cpu *CPUBackend) Alignment() int {
	return tensor.Alignment
}

// NewBuffer allocates an aligned buffer of count elements.
func (cpu *CPUBackend) NewBuffer(count int) (*tensor.Buffer, error) {
	return tensor.NewBuffer(count)
}

// Fill sets every element of out to val.
func (cpu *CPUBackend) Fill(out *tensor.Buffer, val float32) {
	fillFloat32(out.Data(), val)
}

func fillFloat32(dst []float32, val float32) {
	for i := range dst {
		dst[i] = val
	}
}
