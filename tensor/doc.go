// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the storage and layout types of the ndkernel compute layer.
//
// # Overview
//
// The kernel layer works on two things:
//   - Buffer: a flat block of float32 elements aligned to 256 bytes
//   - View: a shape, per-dimension strides and an offset describing a
//     logical array inside a Buffer
//
// Views are plain values supplied with every kernel call; nothing is stored
// between calls.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ndkernel/backend/cpu"
//	    "github.com/born-ml/ndkernel/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, _ := tensor.NewBuffer(6)
//	    out, _ := tensor.NewBuffer(6)
//	    backend.FromSlice([]float32{0, 1, 2, 3, 4, 5}, a)
//
//	    // Transpose a 2x3 matrix by compacting a strided view.
//	    backend.Compact(a, out, tensor.Shape{3, 2}, tensor.Strides{1, 3}, 0)
//	}
//
// # Errors
//
// Allocation failure is the only reported error; test for it with
// errors.Is(err, tensor.ErrOutOfMemory). Every other precondition (view
// bounds, operand sizes, non-aliasing) is the caller's responsibility.
package tensor
