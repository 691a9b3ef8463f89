// Package mathx holds small numeric helpers shared by the scan and
// visualization layers.
package mathx

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Number covers the numeric types the helpers below operate on.
type Number interface {
	constraints.Float | constraints.Integer
}

// Argmax returns the index of the largest element of arr, or 0 for an
// empty slice.
func Argmax[T cmp.Ordered](arr []T) (argmax int) {
	for i := range arr {
		if cmp.Compare(arr[i], arr[argmax]) == 1 {
			argmax = i
		}
	}
	return
}

// MinMax returns the smallest and largest element of s. It panics on an
// empty slice.
func MinMax[T Number](s []T) (lo, hi T) {
	lo, hi = s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n < 2 collapses to a single point at lo.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
