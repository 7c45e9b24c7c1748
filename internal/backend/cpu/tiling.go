package cpu

import "github.com/born-ml/ndkernel/internal/tensor"

// TiledView returns the 4D view that reads a compact rows x cols matrix in
// block-major order. Compacting it yields the layout MatmulTiled expects.
// rows and cols must be multiples of Tile.
func TiledView(rows, cols int) tensor.View {
	return tensor.View{
		Shape:   tensor.Shape{rows / Tile, cols / Tile, Tile, Tile},
		Strides: tensor.Strides{cols * Tile, Tile, cols, 1},
	}
}

// UntiledView returns the 4D view that reads a block-major rows x cols matrix
// in row-major order. Compacting it undoes TiledView.
func UntiledView(rows, cols int) tensor.View {
	return tensor.View{
		Shape:   tensor.Shape{rows / Tile, Tile, cols / Tile, Tile},
		Strides: tensor.Strides{cols * Tile, Tile, tileArea, 1},
	}
}

// TileMatrix rewrites the compact rows x cols matrix a into block-major
// layout in out.
func (cpu *CPUBackend) TileMatrix(a, out *tensor.Buffer, rows, cols int) {
	v := TiledView(rows, cols)
	cpu.Compact(a, out, v.Shape, v.Strides, v.Offset)
}

// UntileMatrix rewrites the block-major rows x cols matrix a into compact
// row-major layout in out.
func (cpu *CPUBackend) UntileMatrix(a, out *tensor.Buffer, rows, cols int) {
	v := UntiledView(rows, cols)
	cpu.Compact(a, out, v.Shape, v.Strides, v.Offset)
}
