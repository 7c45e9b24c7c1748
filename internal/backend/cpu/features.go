package cpu

import (
	"runtime"
	"unsafe"

	syscpu "golang.org/x/sys/cpu"
)

// Features describes the host as seen by the kernels.
type Features struct {
	Arch        string   // runtime.GOARCH
	SIMD        []string // Detected vector extensions, narrowest first
	VectorBytes int      // Widest detected vector register in bytes (0 if none)
	CacheLine   int      // Cache line padding used by golang.org/x/sys/cpu
}

// TileFitsVector reports whether one tile row fits in a single vector
// register, which is what the microkernel's fixed trip counts are sized for.
func (f Features) TileFitsVector() bool {
	return f.VectorBytes > 0 && Tile*4 <= f.VectorBytes
}

// DetectFeatures reports the vector extensions of the running CPU.
func DetectFeatures() Features {
	f := Features{
		Arch:      runtime.GOARCH,
		CacheLine: int(unsafe.Sizeof(syscpu.CacheLinePad{})),
	}

	add := func(ok bool, name string, width int) {
		if !ok {
			return
		}
		f.SIMD = append(f.SIMD, name)
		f.VectorBytes = max(f.VectorBytes, width)
	}

	switch runtime.GOARCH {
	case "amd64", "386":
		add(syscpu.X86.HasSSE2, "sse2", 16)
		add(syscpu.X86.HasSSE41, "sse4.1", 16)
		add(syscpu.X86.HasAVX, "avx", 32)
		add(syscpu.X86.HasAVX2, "avx2", 32)
		add(syscpu.X86.HasFMA, "fma", 0)
		add(syscpu.X86.HasAVX512F, "avx512f", 64)
	case "arm64":
		add(syscpu.ARM64.HasASIMD, "neon", 16)
		add(syscpu.ARM64.HasSVE, "sve", 16)
		add(syscpu.ARM64.HasSVE2, "sve2", 16)
	}
	return f
}
