package hwy

import "testing"

func TestFixedTagLanes(t *testing.T) {
	tests := []struct {
		name string
		tag  interface{ MaxLanes() int }
		want int
	}{
		{"128/float64", FixedTag128[float64]{}, 2},
		{"256/float64", FixedTag256[float64]{}, 4},
		{"512/float64", FixedTag512[float64]{}, 8},
		{"128/float32", FixedTag128[float32]{}, 4},
		{"256/float32", FixedTag256[float32]{}, 8},
		{"512/float32", FixedTag512[float32]{}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tag.MaxLanes(); got != tt.want {
				t.Errorf("MaxLanes() = %d, want %d", got, tt.want)
			}
		})
	}
}
