// Package hwy provides the CPU capability probe, vector width tags and
// buffer allocation used by the dot-product kernels.
//
// It follows the Highway C++ library's approach to targets: the widest
// instruction set the CPU and the build both support is detected once at
// startup, and everything narrower remains available as a fallback.
//
// Basic usage:
//
//	import "github.com/go-highway/dotbench/hwy"
//
//	fmt.Println(hwy.CurrentName(), hwy.CurrentWidth())
//	if hwy.HasWidth(256) {
//	    // 4 float64 lanes per register
//	}
//
//	buf, err := hwy.Allocate[float64](hwy.DefaultAllocStrategy, n, hwy.DefaultAlignment)
//	if err != nil {
//	    return err
//	}
//	defer buf.Release()
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}
