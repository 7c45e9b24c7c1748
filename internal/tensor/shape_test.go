package tensor

import "testing"

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
		{Shape{4, 0, 2}, 0},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  Strides
	}{
		{Shape{}, Strides{}},
		{Shape{7}, Strides{1}},
		{Shape{2, 3}, Strides{3, 1}},
		{Shape{2, 3, 4}, Strides{12, 4, 1}},
		{Shape{5, 1, 3}, Strides{3, 3, 1}},
	}
	for _, tt := range tests {
		if got := tt.shape.ComputeStrides(); !got.Equal(tt.want) {
			t.Errorf("%v.ComputeStrides() = %v, want %v", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 0, 3}).Validate(); err != nil {
		t.Errorf("zero extent should be valid, got %v", err)
	}
	if err := (Shape{2, -1}).Validate(); err == nil {
		t.Error("negative extent should be rejected")
	}
}

func TestShapeClone(t *testing.T) {
	s := Shape{1, 2, 3}
	c := s.Clone()
	c[0] = 9
	if s[0] != 1 {
		t.Error("Clone should not share storage")
	}
	if !s.Equal(Shape{1, 2, 3}) || s.Equal(Shape{1, 2}) {
		t.Error("Equal gave the wrong answer")
	}
}
