package cpu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndkernel/internal/tensor"
)

// bufferOf allocates an aligned buffer holding vals.
func bufferOf(t testing.TB, vals ...float32) *tensor.Buffer {
	t.Helper()
	buf, err := tensor.NewBuffer(len(vals))
	require.NoError(t, err)
	copy(buf.Data(), vals)
	return buf
}

// zeros allocates an aligned buffer of n zeros.
func zeros(t testing.TB, n int) *tensor.Buffer {
	t.Helper()
	buf, err := tensor.NewBuffer(n)
	require.NoError(t, err)
	return buf
}

// arange returns a buffer holding 0, 1, ..., n-1.
func arange(t testing.TB, n int) *tensor.Buffer {
	t.Helper()
	buf := zeros(t, n)
	for i := range buf.Data() {
		buf.Data()[i] = float32(i)
	}
	return buf
}

// randomBuffer returns n values drawn uniformly from [-1, 1).
func randomBuffer(t testing.TB, rng *rand.Rand, n int) *tensor.Buffer {
	t.Helper()
	buf := zeros(t, n)
	for i := range buf.Data() {
		buf.Data()[i] = rng.Float32()*2 - 1
	}
	return buf
}
