package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompactView(t *testing.T) {
	v := CompactView(Shape{2, 3, 4})
	assert.Equal(t, Strides{12, 4, 1}, v.Strides)
	assert.Equal(t, 0, v.Offset)
	assert.Equal(t, 24, v.NumElements())
	assert.Equal(t, 3, v.Rank())
	assert.True(t, v.IsCompact())
}

func TestViewIsCompact(t *testing.T) {
	tests := []struct {
		name string
		view View
		want bool
	}{
		{"row major", NewView(Shape{2, 3}, Strides{3, 1}, 0), true},
		{"transposed", NewView(Shape{3, 2}, Strides{1, 3}, 0), false},
		{"offset", NewView(Shape{2, 3}, Strides{3, 1}, 1), false},
		{"broadcast unit dim", NewView(Shape{1, 3}, Strides{0, 1}, 0), true},
		{"broadcast real dim", NewView(Shape{4, 3}, Strides{0, 1}, 0), false},
		{"scalar", NewView(Shape{}, Strides{}, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.IsCompact())
		})
	}
}

func TestViewPermute(t *testing.T) {
	v := CompactView(Shape{2, 3}).Permute(1, 0)
	assert.Equal(t, Shape{3, 2}, v.Shape)
	assert.Equal(t, Strides{1, 3}, v.Strides)
	assert.Equal(t, 4, v.Position([]int{1, 1}))
	assert.Panics(t, func() { v.Permute(0) })
}

func TestNewViewRankMismatch(t *testing.T) {
	assert.Panics(t, func() { NewView(Shape{2, 3}, Strides{1}, 0) })
}

func TestNewViewCopiesMetadata(t *testing.T) {
	shape := Shape{2, 2}
	strides := Strides{2, 1}
	v := NewView(shape, strides, 0)
	shape[0] = 5
	strides[0] = 9
	assert.Equal(t, Shape{2, 2}, v.Shape)
	assert.Equal(t, Strides{2, 1}, v.Strides)
}
