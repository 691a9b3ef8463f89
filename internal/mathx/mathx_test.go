package mathx

import (
	"math"
	"testing"
)

func TestArgmax(t *testing.T) {
	tests := []struct {
		name string
		arr  []float64
		want int
	}{
		{"middle", []float64{1, 5, 2}, 1},
		{"first", []float64{9, 5, 2}, 0},
		{"last", []float64{1, 5, 12}, 2},
		{"ties keep first", []float64{3, 3, 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Argmax(tt.arr); got != tt.want {
				t.Errorf("Argmax(%v) = %d, want %d", tt.arr, got, tt.want)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	lo, hi := MinMax([]float64{2, -7, 4, 0})
	if lo != -7 || hi != 4 {
		t.Errorf("MinMax = (%v, %v), want (-7, 4)", lo, hi)
	}

	ilo, ihi := MinMax([]int{3})
	if ilo != 3 || ihi != 3 {
		t.Errorf("MinMax single = (%d, %d), want (3, 3)", ilo, ihi)
	}
}

func TestLinspace(t *testing.T) {
	s := Linspace(1, 5, 5)
	if len(s) != 5 {
		t.Fatalf("len = %d, want 5", len(s))
	}
	if s[0] != 1 || s[4] != 5 {
		t.Errorf("endpoints = (%v, %v), want (1, 5)", s[0], s[4])
	}
	for i, want := range []float64{1, 2, 3, 4, 5} {
		if math.Abs(s[i]-want) > 1e-12 {
			t.Errorf("s[%d] = %v, want %v", i, s[i], want)
		}
	}

	if got := Linspace(2, 9, 1); len(got) != 1 || got[0] != 2 {
		t.Errorf("Linspace n=1 = %v, want [2]", got)
	}
}
