package tensor

import (
	"fmt"
	"math"
	"unsafe"
)

// Alignment is the byte boundary of every Buffer's first element.
// It must be at least the matmul tile width times ElemSize.
const Alignment = 256

// ElemSize is the size in bytes of one scalar element.
const ElemSize = int(unsafe.Sizeof(float32(0)))

// maxElements bounds a request so that count*ElemSize+Alignment cannot overflow int.
const maxElements = (math.MaxInt - Alignment) / ElemSize

// Buffer is a fixed-size block of float32 storage aligned to Alignment bytes.
//
// A Buffer is a raw capacity, not a validated container: it carries no shape
// and the kernels index it directly. It is owned by whoever holds it and is
// never resized.
type Buffer struct {
	raw  []byte    // Backing allocation, kept so the GC sees the whole block
	data []float32 // Aligned window into raw
}

// NewBuffer allocates count zeroed elements at an Alignment-byte boundary.
// It returns an error wrapping ErrOutOfMemory when the runtime cannot
// satisfy the request.
func NewBuffer(count int) (*Buffer, error) {
	if count < 0 || count > maxElements {
		return nil, fmt.Errorf("allocate %d elements: %w", count, ErrOutOfMemory)
	}
	if count == 0 {
		return &Buffer{data: []float32{}}, nil
	}

	raw, err := allocBytes(count*ElemSize + Alignment - 1)
	if err != nil {
		return nil, fmt.Errorf("allocate %d elements: %w", count, err)
	}

	//nolint:gosec // alignment arithmetic on the slice's own backing array
	addr := uintptr(unsafe.Pointer(&raw[0]))
	shift := 0
	if mod := addr % Alignment; mod != 0 {
		shift = int(Alignment - mod)
	}
	aligned := raw[shift : shift+count*ElemSize]

	return &Buffer{
		raw: raw,
		//nolint:gosec // unsafe.Slice for zero-copy reinterpretation, length fixed by count
		data: unsafe.Slice((*float32)(unsafe.Pointer(&aligned[0])), count),
	}, nil
}

// allocBytes turns a refused make into ErrOutOfMemory instead of a panic.
func allocBytes(n int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, ErrOutOfMemory
		}
	}()
	return make([]byte, n), nil
}

// MustBuffer is like NewBuffer but panics on allocation failure.
// Intended for tests and setup code.
func MustBuffer(count int) *Buffer {
	buf, err := NewBuffer(count)
	if err != nil {
		panic(err)
	}
	return buf
}

// Size returns the number of elements.
func (b *Buffer) Size() int {
	return len(b.data)
}

// Data returns the element slice.
// WARNING: Direct access to underlying memory. Writes are visible to every
// holder of the Buffer.
func (b *Buffer) Data() []float32 {
	return b.data
}

// Addr returns the address of the first element, or 0 for an empty buffer.
func (b *Buffer) Addr() uintptr {
	if len(b.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b.data[0]))
}

// Release drops the storage. Calling it more than once is safe.
func (b *Buffer) Release() {
	b.raw = nil
	b.data = nil
}
