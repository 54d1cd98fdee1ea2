package dot

import (
	"errors"
	"fmt"
)

// Kernel computes the dot product of two equal-length slices.
type Kernel func(a, b []float64) float64

var (
	// ErrLengthMismatch is returned (or carried by a panic from the raw
	// kernels) when the two inputs differ in length.
	ErrLengthMismatch = errors.New("dot: slices have different lengths")

	// ErrUnknownVariant is returned by ParseVariant for unrecognised names.
	ErrUnknownVariant = errors.New("dot: unknown variant")
)

// Dot computes the dot product of a and b with the best kernel available
// on this machine. It panics if the lengths differ.
//
// Example:
//
//	a := []float64{1, 2, 3}
//	b := []float64{4, 5, 6}
//	result := Dot(a, b)  // 1*4 + 2*5 + 3*6 = 32
func Dot(a, b []float64) float64 {
	return bestKernel(a, b)
}

// Compute runs the kernel for v (or its fallback when v is unsupported) and
// reports mismatched input lengths as an error instead of panicking.
func Compute(v Variant, a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, lengthError(len(a), len(b))
	}
	if v < 0 || v >= numVariants {
		return 0, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	return v.Kernel()(a, b), nil
}

func lengthError(na, nb int) error {
	return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, na, nb)
}

// checkLengths panics with an ErrLengthMismatch error when a and b differ in
// length. Every kernel calls it before touching either slice.
func checkLengths(a, b []float64) {
	if len(a) != len(b) {
		panic(lengthError(len(a), len(b)))
	}
}
