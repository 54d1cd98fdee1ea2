package dot

//go:generate go run ../../../cmd/dotgen -output dot_unroll_gen.go -orders 2,4,8 -cacheline 256

// DotScalar accumulates a[i]*b[i] into a single running sum in increasing
// index order. Its rounding defines the reference result the other kernels
// are compared against.
func DotScalar(a, b []float64) float64 {
	checkLengths(a, b)
	b = b[:len(a)]
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
