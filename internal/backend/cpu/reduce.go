package cpu

import "github.com/born-ml/ndkernel/internal/tensor"

// ReduceMax writes the maximum of each contiguous block of reduceSize
// elements of a into out:
//
//	out[i] = max(a[i*reduceSize : (i+1)*reduceSize])
//
// a must hold out.Size() * reduceSize elements and reduceSize must be positive.
func (cpu *CPUBackend) ReduceMax(a, out *tensor.Buffer, reduceSize int) {
	reduceMaxFloat32(out.Data(), a.Data(), reduceSize)
}

// ReduceSum writes the sum of each contiguous block of reduceSize elements of
// a into out. Elements are added left to right starting from zero.
func (cpu *CPUBackend) ReduceSum(a, out *tensor.Buffer, reduceSize int) {
	reduceSumFloat32(out.Data(), a.Data(), reduceSize)
}

func reduceMaxFloat32(dst, src []float32, reduceSize int) {
	for i := range dst {
		block := src[i*reduceSize : i*reduceSize+reduceSize]
		m := block[0]
		for _, v := range block[1:] {
			m = maxFloat32(m, v)
		}
		dst[i] = m
	}
}

func reduceSumFloat32(dst, src []float32, reduceSize int) {
	for i := range dst {
		sum := float32(0)
		for _, v := range src[i*reduceSize : i*reduceSize+reduceSize] {
			sum += v
		}
		dst[i] = sum
	}
}
