package cpu

import (
	"math"

	"github.com/born-ml/ndkernel/internal/tensor"
)

// GridSample bilinearly samples a at the normalized coordinates in grid and
// adds the result to out.
//
// shape is [B, C, H, W]. a is laid out as [B, C, H+2, W+2] (already padded by
// one pixel on each spatial side), grid as [B, H, W, 2] holding (x, y) pairs in
// [-1, 1], and out as [B, C, H, W]. Every channel of a batch shares the same
// grid cell. out is accumulated into, not overwritten, so callers zero it first.
//
// Coordinates are mapped into padded pixel space as
//
//	x' = x*W/2 + (W+1)/2
//	y' = y*H/2 + (H+1)/2
//
// and must land inside [0, W+1) x [0, H+1); nothing is checked.
func (cpu *CPUBackend) GridSample(a, grid, out *tensor.Buffer, shape tensor.Shape) {
	gridSampleFloat32(out.Data(), a.Data(), grid.Data(), shape[0], shape[1], shape[2], shape[3])
}

func gridSampleFloat32(dst, src, grid []float32, b, c, h, w int) {
	var (
		hw     = h * w
		chw    = c * hw
		pw     = w + 2
		plane  = (h + 2) * pw
		halfW  = float32(w) / 2
		halfH  = float32(h) / 2
		shiftX = float32(w+1) / 2
		shiftY = float32(h+1) / 2
	)

	for i := range b * chw {
		g := ((i/chw)*hw + i%hw) * 2
		x := grid[g]*halfW + shiftX
		y := grid[g+1]*halfH + shiftY

		x0 := math.Floor(float64(x))
		y0 := math.Floor(float64(y))
		dx := x - float32(x0)
		dy := y - float32(y0)

		// Top-left neighbor in the padded plane of (batch, channel) i/hw.
		p := (i/hw)*plane + int(y0)*pw + int(x0)

		dst[i] += src[p] * (1 - dx) * (1 - dy)
		dst[i] += src[p+1] * dx * (1 - dy)
		dst[i] += src[p+pw] * (1 - dx) * dy
		dst[i] += src[p+pw+1] * dx * dy
	}
}
