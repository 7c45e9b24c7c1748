package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceSum(t *testing.T) {
	backend := New()
	a := bufferOf(t, 1, 2, 3, 4, 5, 6)
	out := zeros(t, 2)

	backend.ReduceSum(a, out, 3)
	assert.Equal(t, []float32{6, 15}, out.Data())
}

func TestReduceMax(t *testing.T) {
	backend := New()
	a := bufferOf(t, 1, 2, 3, 4, 5, 6)
	out := zeros(t, 2)

	backend.ReduceMax(a, out, 3)
	assert.Equal(t, []float32{3, 6}, out.Data())
}

func TestReduceWholeArray(t *testing.T) {
	backend := New()
	a := bufferOf(t, -3, 7, -1, 2)
	out := zeros(t, 1)

	backend.ReduceMax(a, out, 4)
	assert.Equal(t, float32(7), out.Data()[0])
	backend.ReduceSum(a, out, 4)
	assert.Equal(t, float32(5), out.Data()[0])
}

func TestReduceSizeOne(t *testing.T) {
	backend := New()
	a := bufferOf(t, 4, -2, 9)
	out := zeros(t, 3)

	backend.ReduceSum(a, out, 1)
	assert.Equal(t, a.Data(), out.Data())
	backend.ReduceMax(a, out, 1)
	assert.Equal(t, a.Data(), out.Data())
}

func TestReduceMaxNegative(t *testing.T) {
	backend := New()
	a := bufferOf(t, -5, -3, -9, -8)
	out := zeros(t, 2)

	backend.ReduceMax(a, out, 2)
	assert.Equal(t, []float32{-3, -8}, out.Data())
}

func TestReduceSumLeftToRight(t *testing.T) {
	backend := New()
	// 1e8 + 1 - 1e8 loses the 1 when added left to right in float32.
	a := bufferOf(t, 1e8, 1, -1e8)
	out := zeros(t, 1)

	backend.ReduceSum(a, out, 3)
	assert.Equal(t, float32(0), out.Data()[0])
}

func TestReduceSumSpecialValues(t *testing.T) {
	backend := New()
	inf := float32(math.Inf(1))
	a := bufferOf(t, inf, 1, inf, -inf)
	out := zeros(t, 2)

	backend.ReduceSum(a, out, 2)
	assert.Equal(t, inf, out.Data()[0])
	assert.True(t, math.IsNaN(float64(out.Data()[1])))
}
