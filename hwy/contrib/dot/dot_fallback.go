//go:build !amd64 || !goexperiment.simd

package dot

// registerVectorKernels has nothing to register without GOEXPERIMENT=simd
// on amd64: every vector variant resolves to its scalar fallback.
func registerVectorKernels() {}
