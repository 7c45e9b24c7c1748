package cpu

import "github.com/born-ml/ndkernel/internal/tensor"

// Matmul multiplies compact matrices a (m x n) and b (n x p) into out (m x p)
// with the direct triple loop.
//
// Accumulation runs row by row, column by column, inner dimension last, which
// fixes the rounding of every output element.
func (cpu *CPUBackend) Matmul(a, b, out *tensor.Buffer, m, n, p int) {
	matmulFloat32(out.Data(), a.Data(), b.Data(), m, n, p)
}

// matmulFloat32 performs naive matrix multiplication for float32.
// C[i,j] = sum_k A[i,k] * B[k,j]
func matmulFloat32(c, a, b []float32, m, n, p int) {
	for i := 0; i < m; i++ {
		for j := 0; j < p; j++ {
			sum := float32(0)
			for k := 0; k < n; k++ {
				// The conversion rounds the product and keeps the compiler
				// from fusing it into an FMA on arm64.
				sum += float32(a[i*n+k] * b[k*p+j])
			}
			c[i*p+j] = sum
		}
	}
}
