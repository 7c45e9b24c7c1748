package cpu

import "github.com/born-ml/ndkernel/internal/tensor"

// Tile is the width of the square blocks used by MatmulTiled.
// Tile * tensor.ElemSize must divide tensor.Alignment.
const Tile = 8

const tileArea = Tile * Tile

// MatmulTiled multiplies matrices stored in 4D block-major layout:
//
//	a:   [m/Tile][n/Tile][Tile][Tile]
//	b:   [n/Tile][p/Tile][Tile][Tile]
//	out: [m/Tile][p/Tile][Tile][Tile]
//
// m, n and p must be multiples of Tile. The result equals Matmul up to
// rounding: partial sums are formed per contraction block and then added.
func (cpu *CPUBackend) MatmulTiled(a, b, out *tensor.Buffer, m, n, p int) {
	matmulTiledFloat32(out.Data(), a.Data(), b.Data(), m, n, p)
}

func matmulTiledFloat32(c, a, b []float32, m, n, p int) {
	fillFloat32(c[:m*p], 0)

	for i := 0; i < m; i += Tile {
		for j := 0; j < p; j += Tile {
			// Tile (i/T, j/T) of out starts at ((i/T)*(p/T) + j/T) * T*T = i*p + j*T.
			outTile := (*[tileArea]float32)(c[i*p+j*Tile:])
			for k := 0; k < n; k += Tile {
				aTile := (*[tileArea]float32)(a[i*n+k*Tile:])
				bTile := (*[tileArea]float32)(b[k*p+j*Tile:])
				alignedDot(aTile, bTile, outTile)
			}
		}
	}
}

// alignedDot adds the product of two Tile x Tile blocks to out.
// It must not clear out first: MatmulTiled relies on accumulation across
// contraction blocks. The three blocks must not overlap.
func alignedDot(a, b, out *[tileArea]float32) {
	for i := 0; i < Tile; i++ {
		for j := 0; j < Tile; j++ {
			acc := out[i*Tile+j]
			for k := 0; k < Tile; k++ {
				acc += float32(a[i*Tile+k] * b[k*Tile+j])
			}
			out[i*Tile+j] = acc
		}
	}
}
