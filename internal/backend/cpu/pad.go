package cpu

import "github.com/born-ml/ndkernel/internal/tensor"

// PadSpatial zero-pads the compact [B, C, H, W] buffer a by one pixel on each
// spatial side, writing the [B, C, H+2, W+2] result into out. This is the
// source layout GridSample reads.
func (cpu *CPUBackend) PadSpatial(a, out *tensor.Buffer, shape tensor.Shape) {
	v := interiorView(shape)
	cpu.Fill(out, 0)
	cpu.EwiseSetitem(a, out, v.Shape, v.Strides, v.Offset)
}

// interiorView addresses the unpadded region of a [B, C, H+2, W+2] buffer.
func interiorView(shape tensor.Shape) tensor.View {
	b, c, h, w := shape[0], shape[1], shape[2], shape[3]
	padded := tensor.Shape{b, c, h + 2, w + 2}.ComputeStrides()
	return tensor.View{
		Shape:   tensor.Shape{b, c, h, w},
		Strides: padded,
		Offset:  padded[2] + 1,
	}
}
