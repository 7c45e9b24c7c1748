// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndkernel/internal/tensor"
)

// Type aliases for public API

// Buffer is a fixed-size, 256-byte aligned block of float32 storage.
type Buffer = tensor.Buffer

// Shape represents the dimensions of a view.
type Shape = tensor.Shape

// Strides holds the per-dimension element step of a view.
type Strides = tensor.Strides

// View describes a logical array over a Buffer.
type View = tensor.View

// Cursor walks the elements of a View in row-major order.
type Cursor = tensor.Cursor

// Layout constants.
const (
	Alignment = tensor.Alignment
	ElemSize  = tensor.ElemSize
)

// ErrOutOfMemory is returned when an aligned allocation cannot be satisfied.
var ErrOutOfMemory = tensor.ErrOutOfMemory

// NewBuffer allocates count zeroed elements aligned to Alignment bytes.
//
// Example:
//
//	buf, err := tensor.NewBuffer(1024)
//	if errors.Is(err, tensor.ErrOutOfMemory) {
//	    // handle allocation failure
//	}
func NewBuffer(count int) (*Buffer, error) {
	return tensor.NewBuffer(count)
}

// NewView creates a view from explicit layout metadata.
func NewView(shape Shape, strides Strides, offset int) View {
	return tensor.NewView(shape, strides, offset)
}

// CompactView returns the row-major, zero-offset view of shape.
func CompactView(shape Shape) View {
	return tensor.CompactView(shape)
}

// NewCursor positions a cursor on the first element of v.
func NewCursor(v View) *Cursor {
	return tensor.NewCursor(v)
}
