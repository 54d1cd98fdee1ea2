package hwy

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features lists the CPU features relevant to the dot-product kernels, as
// reported by golang.org/x/sys/cpu. Unlike HasWidth it describes the
// hardware only, independent of how the binary was built.
type Features struct {
	GOARCH string

	// x86-64
	SSE2    bool
	SSE41   bool
	AVX     bool
	AVX2    bool
	FMA     bool
	AVX512F bool

	// arm64
	ASIMD bool
	SVE   bool
}

// CPUFeatures returns the features of the running CPU.
func CPUFeatures() Features {
	f := Features{GOARCH: runtime.GOARCH}
	switch runtime.GOARCH {
	case "amd64", "386":
		f.SSE2 = cpu.X86.HasSSE2
		f.SSE41 = cpu.X86.HasSSE41
		f.AVX = cpu.X86.HasAVX
		f.AVX2 = cpu.X86.HasAVX2
		f.FMA = cpu.X86.HasFMA
		f.AVX512F = cpu.X86.HasAVX512F
	case "arm64":
		f.ASIMD = cpu.ARM64.HasASIMD
		f.SVE = cpu.ARM64.HasSVE
	}
	return f
}

// MaxVectorBits returns the widest register width in bits the CPU
// advertises for float64 arithmetic, or 0 when it has none.
func (f Features) MaxVectorBits() int {
	switch {
	case f.AVX512F:
		return 512
	case f.AVX2:
		return 256
	case f.SSE2, f.ASIMD:
		return 128
	default:
		return 0
	}
}
