// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go float32 compute kernels of ndkernel.
//
// # Overview
//
// This package implements:
//   - Compact / EwiseSetitem / ScalarSetitem: copies between strided views and
//     compact buffers, driven by one mixed-radix cursor
//   - Elementwise, scalar and unary operators (add, mul, div, power, maximum,
//     eq, ge, log, exp, tanh)
//   - Matmul (naive) and MatmulTiled (8x8 block-major layout)
//   - ReduceMax / ReduceSum over contiguous blocks
//   - GridSample: bilinear sampling of a padded NCHW source
//
// # Basic Usage
//
//	backend := cpu.New()
//	a, _ := tensor.NewBuffer(6)
//	out, _ := tensor.NewBuffer(2)
//	backend.FromSlice([]float32{1, 2, 3, 4, 5, 6}, a)
//	backend.ReduceSum(a, out, 3) // [6 15]
//
// # Contracts
//
// Kernels do not validate their inputs. Views must stay inside their buffer,
// operands must have matching sizes, and the buffers of distinct roles must
// not overlap. Floating-point edge cases (division by zero, log of a
// non-positive value) produce IEEE-754 Inf or NaN rather than errors.
//
// # Thread Safety
//
// The backend holds no state. Calls run synchronously on the calling
// goroutine and may proceed concurrently as long as they write to different
// buffers.
package cpu
