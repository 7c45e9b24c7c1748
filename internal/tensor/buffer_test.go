package tensor

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuffer(t *testing.T) {
	for _, n := range []int{1, 3, 8, 64, 1000, 4097} {
		buf, err := NewBuffer(n)
		require.NoError(t, err)
		assert.Equal(t, n, buf.Size())
		assert.Len(t, buf.Data(), n)
		assert.Zero(t, buf.Addr()%Alignment, "buffer of %d elements not aligned", n)
		for i, v := range buf.Data() {
			if v != 0 {
				t.Fatalf("element %d = %v, want 0", i, v)
			}
		}
	}
}

func TestNewBufferEmpty(t *testing.T) {
	buf, err := NewBuffer(0)
	require.NoError(t, err)
	assert.Equal(t, 0, buf.Size())
	assert.Equal(t, uintptr(0), buf.Addr())
}

func TestNewBufferOutOfMemory(t *testing.T) {
	for _, n := range []int{-1, math.MaxInt, maxElements + 1} {
		buf, err := NewBuffer(n)
		assert.Nil(t, buf)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfMemory), "count %d: got %v", n, err)
	}
}

func TestBufferDataIsShared(t *testing.T) {
	buf := MustBuffer(4)
	buf.Data()[2] = 7
	if buf.Data()[2] != 7 {
		t.Error("Data should return a zero-copy slice")
	}
}

func TestBufferRelease(t *testing.T) {
	buf := MustBuffer(16)
	buf.Release()
	assert.Equal(t, 0, buf.Size())

	// Releasing twice must be harmless.
	buf.Release()
	assert.Equal(t, 0, buf.Size())
}

func TestMustBufferPanics(t *testing.T) {
	assert.Panics(t, func() { MustBuffer(-5) })
}
