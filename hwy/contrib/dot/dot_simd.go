//go:build amd64 && goexperiment.simd

package dot

import "github.com/go-highway/dotbench/hwy"

// registerVectorKernels installs the vector kernels whose register width the
// CPU supports. hwy.HasWidth already accounts for HWY_NO_SIMD.
func registerVectorKernels() {
	if hwy.HasWidth(128) {
		kernels[Vec128] = Dot_SSE2_F64x2
	}
	if hwy.HasWidth(256) {
		kernels[Vec256] = Dot_AVX2_F64x4
	}
	if hwy.HasWidth(512) {
		kernels[Vec512] = Dot_AVX512_F64x8
		kernels[Vec512x2] = Dot_AVX512_F64x8x2
	}
}
