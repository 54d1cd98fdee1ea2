// Package dot provides a family of float64 dot-product kernels that compute
// the same quantity with different amounts of instruction-level parallelism.
//
// # Kernels
//
// Every kernel returns Σ a[i]*b[i] over two equal-length slices and returns
// exactly 0 for empty input. They differ only in summation order, so their
// results agree to within rounding:
//   - DotScalar: one running sum in index order (the reference order)
//   - DotUnroll2, DotUnroll4, DotUnroll8: K independent accumulators,
//     tail folded into the first one, pairwise combine; DotUnroll is the
//     order whose accumulators span a 256-bit cache line (UnrollOrder)
//   - Dot_SSE2_F64x2, Dot_AVX2_F64x4, Dot_AVX512_F64x8: one vector
//     accumulator of 2, 4 or 8 lanes, horizontal sum, scalar tail
//   - Dot_AVX512_F64x8x2: two interleaved 8-lane accumulators
//
// The vector kernels only exist in GOEXPERIMENT=simd builds on amd64. Code
// that must build everywhere selects kernels through Variant instead, which
// falls back to a narrower kernel when one is missing or unsupported:
//
//	v, err := dot.ParseVariant("vec512")
//	if err != nil {
//	    return err
//	}
//	if !v.Supported() {
//	    log.Printf("%s unavailable, using %s", v, v.Resolve())
//	}
//	sum := v.Kernel()(a, b)
//
// # Lengths
//
// The raw kernels panic when len(a) != len(b). Compute reports the same
// condition as an error wrapping ErrLengthMismatch.
//
// # Build Requirements
//
// The SIMD implementations require:
//   - GOEXPERIMENT=simd build flag
//   - AMD64 architecture with AVX (128-bit), AVX2 (256-bit) or AVX-512 (512-bit)
package dot
