// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/ndkernel/internal/backend/cpu"
	"github.com/born-ml/ndkernel/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend provides pure Go float32 kernels: strided compaction and
// scatter, elementwise and scalar operators, naive and tiled matrix
// multiplication, block reductions and bilinear grid sampling.
type Backend = internalcpu.CPUBackend

// BinaryOp selects a two-operand elementwise operation.
type BinaryOp = internalcpu.BinaryOp

// UnaryOp selects a one-operand elementwise operation.
type UnaryOp = internalcpu.UnaryOp

// Features describes the host CPU as seen by the kernels.
type Features = internalcpu.Features

// Tile is the block width used by MatmulTiled.
const Tile = internalcpu.Tile

// Elementwise operation tags.
const (
	OpAdd     = internalcpu.OpAdd
	OpMul     = internalcpu.OpMul
	OpDiv     = internalcpu.OpDiv
	OpPower   = internalcpu.OpPower
	OpMaximum = internalcpu.OpMaximum
	OpEq      = internalcpu.OpEq
	OpGe      = internalcpu.OpGe

	OpLog  = internalcpu.OpLog
	OpExp  = internalcpu.OpExp
	OpTanh = internalcpu.OpTanh
)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndkernel/backend/cpu"
//	    "github.com/born-ml/ndkernel/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    a, _ := tensor.NewBuffer(3)
//	    out, _ := tensor.NewBuffer(3)
//	    backend.FromSlice([]float32{1, 2, 3}, a)
//	    backend.ScalarMul(a, 2, out) // [2 4 6]
//	}
func New() *Backend {
	return internalcpu.New()
}

// DetectFeatures reports the vector extensions of the running CPU.
func DetectFeatures() Features {
	return internalcpu.DetectFeatures()
}

// TiledView returns the 4D view that reads a compact rows x cols matrix in
// the block-major order MatmulTiled expects.
func TiledView(rows, cols int) tensor.View {
	return internalcpu.TiledView(rows, cols)
}

// UntiledView returns the 4D view that reads a block-major rows x cols
// matrix back in row-major order.
func UntiledView(rows, cols int) tensor.View {
	return internalcpu.UntiledView(rows, cols)
}
