package hwy

import (
	"errors"
	"os"
	"testing"
)

var allStrategies = []AllocStrategy{AllocDefault, AllocAligned, AllocPage}

func TestAllocate(t *testing.T) {
	for _, strategy := range allStrategies {
		t.Run(strategy.String(), func(t *testing.T) {
			buf, err := Allocate[float64](strategy, 1000, DefaultAlignment)
			if err != nil {
				t.Fatalf("Allocate: %v", err)
			}

			if buf.Len() != 1000 || cap(buf.Data) != 1000 {
				t.Errorf("len=%d cap=%d, want 1000/1000", buf.Len(), cap(buf.Data))
			}
			if buf.Strategy() != strategy {
				t.Errorf("Strategy() = %v, want %v", buf.Strategy(), strategy)
			}
			for i, v := range buf.Data {
				if v != 0 {
					t.Fatalf("Data[%d] = %v, want zeroed memory", i, v)
				}
			}

			Fill(buf.Data)
			if buf.Data[999] != 999 {
				t.Errorf("Data[999] = %v after Fill, want 999", buf.Data[999])
			}

			if err := buf.Release(); err != nil {
				t.Fatalf("Release: %v", err)
			}
			if buf.Data != nil {
				t.Error("Data not cleared by Release")
			}
		})
	}
}

func TestAllocateAlignment(t *testing.T) {
	for _, align := range []int{8, 16, 64, 256, 4096} {
		// Odd lengths make the allocator's own rounding less likely to hide
		// a missing offset.
		for _, n := range []int{1, 3, 1001} {
			buf, err := Allocate[float64](AllocAligned, n, align)
			if err != nil {
				t.Fatalf("Allocate(aligned, %d, %d): %v", n, align, err)
			}
			if !IsAddrAligned(buf.Data, align) {
				t.Errorf("aligned buffer n=%d not aligned to %d", n, align)
			}
			if err := buf.Release(); err != nil {
				t.Errorf("Release: %v", err)
			}
		}
	}

	buf, err := Allocate[float32](AllocPage, 7, DefaultAlignment)
	if err != nil {
		t.Fatalf("Allocate(page): %v", err)
	}
	defer buf.Release()
	if !IsAddrAligned(buf.Data, os.Getpagesize()) {
		t.Error("page buffer is not page aligned")
	}
}

func TestAllocateErrors(t *testing.T) {
	tests := []struct {
		name     string
		strategy AllocStrategy
		n        int
		align    int
		want     error
	}{
		{"zero length", AllocDefault, 0, 64, ErrInvalidLength},
		{"negative length", AllocAligned, -5, 64, ErrInvalidLength},
		{"not power of two", AllocAligned, 10, 48, ErrInvalidAlignment},
		{"smaller than element", AllocAligned, 10, 4, ErrInvalidAlignment},
		{"zero alignment", AllocDefault, 10, 0, ErrInvalidAlignment},
		{"beyond page", AllocPage, 10, 1 << 30, ErrInvalidAlignment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Allocate[float64](tt.strategy, tt.n, tt.align)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if buf != nil {
				t.Error("buffer returned alongside error")
			}
		})
	}

	if _, err := Allocate[float64](AllocStrategy(42), 10, 64); err == nil {
		t.Error("unknown strategy accepted")
	}
}

func TestReleaseOnce(t *testing.T) {
	for _, strategy := range allStrategies {
		buf, err := Allocate[float64](strategy, 16, DefaultAlignment)
		if err != nil {
			t.Fatalf("%v: Allocate: %v", strategy, err)
		}
		if err := buf.Release(); err != nil {
			t.Fatalf("%v: first Release: %v", strategy, err)
		}
		if err := buf.Release(); !errors.Is(err, ErrReleased) {
			t.Errorf("%v: second Release = %v, want ErrReleased", strategy, err)
		}
		if buf.Len() != 0 {
			t.Errorf("%v: Len() = %d after Release", strategy, buf.Len())
		}
	}
}

func TestAllocStrategyString(t *testing.T) {
	tests := []struct {
		s    AllocStrategy
		want string
	}{
		{AllocDefault, "default"},
		{AllocAligned, "aligned"},
		{AllocPage, "page"},
		{AllocStrategy(7), "AllocStrategy(7)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}

	// DefaultAllocStrategy is a build-time constant and must name a real strategy.
	if DefaultAllocStrategy.String() == "" || DefaultAllocStrategy > AllocPage {
		t.Errorf("DefaultAllocStrategy = %v", DefaultAllocStrategy)
	}
}

func TestFill(t *testing.T) {
	dst := make([]float32, 5)
	Fill(dst)
	for i, v := range dst {
		if v != float32(i) {
			t.Errorf("dst[%d] = %v, want %d", i, v, i)
		}
	}
	Fill[float64](nil)
}
