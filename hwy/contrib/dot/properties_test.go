package dot

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"testing"
)

// randomPair returns two length-n slices with values in [-1, 1).
func randomPair(rng *rand.Rand, n int) ([]float64, []float64) {
	a := make([]float64, n)
	b := make([]float64, n)
	for i := range n {
		a[i] = 2*rng.Float64() - 1
		b[i] = 2*rng.Float64() - 1
	}
	return a, b
}

// tolerance bounds the difference between two summation orders of the
// products a[i]*b[i]: each order is within (n+1)*eps*Σ|a[i]*b[i]| of the
// exact value.
func tolerance(a, b []float64) float64 {
	var mag float64
	for i := range a {
		mag += math.Abs(a[i] * b[i])
	}
	eps := math.Nextafter(1, 2) - 1
	return 2 * float64(len(a)+1) * eps * mag
}

func TestEmptyIsExactlyZero(t *testing.T) {
	for _, v := range Variants() {
		for _, in := range [][]float64{nil, {}} {
			got := v.Kernel()(in, in)
			if got != 0 || math.Signbit(got) {
				t.Errorf("%s(empty) = %v, want +0", v, got)
			}
		}
	}
}

func TestSingleElementIsExact(t *testing.T) {
	pairs := [][2]float64{{1.1, 3.3}, {-2.5, 0.7}, {1e300, 1e-300}, {math.Pi, math.E}}
	for _, v := range Variants() {
		for _, p := range pairs {
			a, b := []float64{p[0]}, []float64{p[1]}
			if got, want := v.Kernel()(a, b), p[0]*p[1]; got != want {
				t.Errorf("%s(%v, %v) = %v, want %v", v, p[0], p[1], got, want)
			}
		}
	}
}

func TestSumOfSquaresClosedForm(t *testing.T) {
	const n = 100000
	a := make([]float64, n)
	for i := range a {
		a[i] = float64(i)
	}
	// (n-1)*n*(2n-1)/6 fits in 53 bits, and so does every partial sum.
	want := float64((n - 1) * n * (2*n - 1) / 6)

	got := DotScalar(a, a)
	if math.Abs(got-want) > want*1e-12 {
		t.Fatalf("DotScalar = %v, want %v", got, want)
	}

	for _, v := range Variants() {
		got := v.Kernel()(a, a)
		if math.Abs(got-want) > want*1e-12 {
			t.Errorf("%s = %v, want %v", v, got, want)
		}
	}
}

func TestTailHandling(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, width := range []int{2, 4, 8, 16} {
		for k := 0; k <= 3; k++ {
			for r := 0; r < width; r++ {
				n := width*k + r
				a, b := randomPair(rng, n)
				want := DotScalar(a, b)
				tol := tolerance(a, b)

				for _, v := range Variants() {
					got := v.Kernel()(a, b)
					if math.Abs(got-want) > tol {
						t.Errorf("width=%d n=%d %s = %v, want %v (tol %g)", width, n, v, got, want, tol)
					}
				}
			}
		}
	}
}

func TestTailUsesProduct(t *testing.T) {
	// Only the tail is non-zero, so adding instead of multiplying the tail
	// elements would give 2+3 = 5 per element instead of 6.
	for _, v := range Variants() {
		w := v.Width()
		n := 3*w - 1
		a := make([]float64, n)
		b := make([]float64, n)
		tail := 0
		for i := n - n%w; i < n; i++ {
			a[i], b[i] = 2, 3
			tail++
		}
		if got, want := v.Kernel()(a, b), float64(6*tail); got != want {
			t.Errorf("%s n=%d: got %v, want %v", v, n, got, want)
		}
	}
}

func TestAllLanesFolded(t *testing.T) {
	// A single non-zero element in each position of one full block must
	// reach the result, whichever lane or accumulator owns it.
	for _, v := range Variants() {
		w := v.Width()
		for lane := range w {
			a := make([]float64, w)
			b := make([]float64, w)
			a[lane], b[lane] = 3, 7
			if got := v.Kernel()(a, b); got != 21 {
				t.Errorf("%s lane %d of %d: got %v, want 21", v, lane, w, got)
			}
		}
	}
}

func TestAgreesWithScalar(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, n := range []int{31, 100, 1000, 4097, 100003} {
		a, b := randomPair(rng, n)
		want := DotScalar(a, b)
		tol := tolerance(a, b)

		for _, v := range Variants() {
			t.Run(fmt.Sprintf("%s/n=%d", v, n), func(t *testing.T) {
				if got := v.Kernel()(a, b); math.Abs(got-want) > tol {
					t.Errorf("got %v, want %v (tol %g)", got, want, tol)
				}
			})
		}
	}
}

func TestIdempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	a, b := randomPair(rng, 1237)
	aCopy := append([]float64(nil), a...)
	bCopy := append([]float64(nil), b...)

	for _, v := range Variants() {
		k := v.Kernel()
		first := math.Float64bits(k(a, b))
		second := math.Float64bits(k(a, b))
		if first != second {
			t.Errorf("%s: %#x then %#x", v, first, second)
		}
	}

	for i := range a {
		if math.Float64bits(a[i]) != math.Float64bits(aCopy[i]) || math.Float64bits(b[i]) != math.Float64bits(bCopy[i]) {
			t.Fatalf("inputs modified at index %d", i)
		}
	}
}

func TestConcurrentReaders(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	a, b := randomPair(rng, 10000)

	for _, v := range Variants() {
		k := v.Kernel()
		want := math.Float64bits(k(a, b))

		var wg sync.WaitGroup
		results := make([]uint64, 8)
		for g := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[g] = math.Float64bits(k(a, b))
			}()
		}
		wg.Wait()

		for g, got := range results {
			if got != want {
				t.Errorf("%s goroutine %d: %#x, want %#x", v, g, got, want)
			}
		}
	}
}
