package cpu

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/born-ml/ndkernel/internal/tensor"
)

func BenchmarkMatmul(b *testing.B) {
	backend := New()
	rng := rand.New(rand.NewSource(0))

	for _, n := range []int{32, 128, 256} {
		a := randomBuffer(b, rng, n*n)
		m := randomBuffer(b, rng, n*n)
		out := zeros(b, n*n)

		b.Run(fmt.Sprintf("naive/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				backend.Matmul(a, m, out, n, n, n)
			}
		})

		aTiled, mTiled := zeros(b, n*n), zeros(b, n*n)
		backend.TileMatrix(a, aTiled, n, n)
		backend.TileMatrix(m, mTiled, n, n)
		b.Run(fmt.Sprintf("tiled/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				backend.MatmulTiled(aTiled, mTiled, out, n, n, n)
			}
		})
	}
}

func BenchmarkCompact(b *testing.B) {
	backend := New()
	shape := tensor.Shape{64, 64, 16}
	n := shape.NumElements()
	a := arange(b, n)
	out := zeros(b, n)

	b.Run("contiguous", func(b *testing.B) {
		strides := shape.ComputeStrides()
		for i := 0; i < b.N; i++ {
			backend.Compact(a, out, shape, strides, 0)
		}
	})

	b.Run("permuted", func(b *testing.B) {
		// [16, 64, 64] view of the same data, last axis slowest.
		for i := 0; i < b.N; i++ {
			backend.Compact(a, out, tensor.Shape{16, 64, 64}, tensor.Strides{1, 1024, 16}, 0)
		}
	})
}

func BenchmarkEwise(b *testing.B) {
	backend := New()
	const n = 1 << 16
	x := arange(b, n)
	y := arange(b, n)
	out := zeros(b, n)

	b.Run("add", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			backend.EwiseAdd(x, y, out)
		}
	})
	b.Run("tanh", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			backend.EwiseTanh(x, out)
		}
	})
}

func BenchmarkReduceSum(b *testing.B) {
	backend := New()
	a := arange(b, 1<<16)
	out := zeros(b, 1<<8)
	for i := 0; i < b.N; i++ {
		backend.ReduceSum(a, out, 1<<8)
	}
}
