package dot

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/go-highway/dotbench/hwy"
)

// Variant names one kernel of the family. Selecting a variant is a table
// lookup done once by the caller; kernels themselves never branch on it.
type Variant int

const (
	// Scalar is DotScalar.
	Scalar Variant = iota
	// Unroll2 is DotUnroll2.
	Unroll2
	// Unroll4 is DotUnroll4.
	Unroll4
	// Unroll8 is DotUnroll8.
	Unroll8
	// Vec128 is Dot_SSE2_F64x2 (2 lanes).
	Vec128
	// Vec256 is Dot_AVX2_F64x4 (4 lanes).
	Vec256
	// Vec512 is Dot_AVX512_F64x8 (8 lanes).
	Vec512
	// Vec512x2 is Dot_AVX512_F64x8x2 (two 8-lane accumulators).
	Vec512x2

	numVariants
)

var variantNames = [numVariants]string{
	Scalar:   "scalar",
	Unroll2:  "unroll2",
	Unroll4:  "unroll4",
	Unroll8:  "unroll8",
	Vec128:   "vec128",
	Vec256:   "vec256",
	Vec512:   "vec512",
	Vec512x2: "vec512x2",
}

// kernels holds the native implementation of each variant. Scalar variants
// are always present; vector entries are filled in by the SIMD build's init
// when the CPU supports the register width and stay nil otherwise.
var kernels = [numVariants]Kernel{
	Scalar:  DotScalar,
	Unroll2: DotUnroll2,
	Unroll4: DotUnroll4,
	Unroll8: DotUnroll8,
}

var bestKernel Kernel = DotUnroll4

func init() {
	registerVectorKernels()
	bestKernel = Best().Kernel()
}

// String returns the variant name used on the command line.
func (v Variant) String() string {
	if v < 0 || v >= numVariants {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// Width returns the number of elements the variant consumes per main-loop
// iteration: the unroll factor for scalar variants, the lane count for
// vector variants. Inputs whose length is not a multiple of Width exercise
// the scalar tail loop.
func (v Variant) Width() int {
	switch v {
	case Scalar:
		return 1
	case Unroll2:
		return 2
	case Unroll4:
		return 4
	case Unroll8:
		return 8
	case Vec128:
		return hwy.FixedTag128[float64]{}.MaxLanes()
	case Vec256:
		return hwy.FixedTag256[float64]{}.MaxLanes()
	case Vec512:
		return hwy.FixedTag512[float64]{}.MaxLanes()
	case Vec512x2:
		return 2 * hwy.FixedTag512[float64]{}.MaxLanes()
	default:
		return 0
	}
}

// IsVector reports whether v is one of the SIMD variants.
func (v Variant) IsVector() bool {
	return v >= Vec128 && v < numVariants
}

// Supported reports whether the native kernel for v is compiled into this
// binary and can run on this CPU.
func (v Variant) Supported() bool {
	return v >= 0 && v < numVariants && kernels[v] != nil
}

// Fallback returns the variant to use in place of v when v is unsupported:
// the next narrower vector variant, or Scalar below 128 bits. Scalar
// variants are always supported and return themselves.
func (v Variant) Fallback() Variant {
	switch v {
	case Vec512x2:
		return Vec512
	case Vec512:
		return Vec256
	case Vec256:
		return Vec128
	case Vec128:
		return Scalar
	default:
		return v
	}
}

// Resolve follows the fallback chain from v to the first supported variant.
func (v Variant) Resolve() Variant {
	for !v.Supported() {
		next := v.Fallback()
		if next == v {
			return Scalar
		}
		v = next
	}
	return v
}

// Kernel returns the implementation for v, falling back as described by
// Resolve. The result is never nil.
func (v Variant) Kernel() Kernel {
	return kernels[v.Resolve()]
}

// Variants returns every variant in declaration order.
func Variants() []Variant {
	vs := make([]Variant, numVariants)
	for i := range vs {
		vs[i] = Variant(i)
	}
	return vs
}

// Available returns the variants whose native kernel runs on this machine.
func Available() []Variant {
	return lo.Filter(Variants(), func(v Variant, _ int) bool {
		return v.Supported()
	})
}

// Names returns the names of all variants in declaration order.
func Names() []string {
	return lo.Map(Variants(), func(v Variant, _ int) string {
		return v.String()
	})
}

// unrollVariants maps generated unroll orders to their variants.
var unrollVariants = map[int]Variant{2: Unroll2, 4: Unroll4, 8: Unroll8}

// Best returns the widest supported vector variant, preferring the dual
// accumulator form, or the unrolled variant of order UnrollOrder when no
// vector kernel can run.
func Best() Variant {
	for _, v := range []Variant{Vec512x2, Vec256, Vec128} {
		if v.Supported() {
			return v
		}
	}
	return unrollVariants[UnrollOrder]
}

// ParseVariant looks a variant up by name, ignoring case. The name "best"
// selects Best().
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "best" {
		return Best(), nil
	}
	for i, n := range variantNames {
		if n == name {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownVariant, name, strings.Join(Names(), ", "))
}
