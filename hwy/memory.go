package hwy

import (
	"errors"
	"fmt"
	"unsafe"
)

// This file provides buffer acquisition for the benchmark inputs. All
// strategies hand out ordinary Go slices; they differ only in how the
// backing memory is obtained and what alignment is guaranteed.

// AllocStrategy selects how Allocate obtains memory.
type AllocStrategy int

const (
	// AllocDefault uses the Go heap with no alignment promise beyond the
	// element size.
	AllocDefault AllocStrategy = iota

	// AllocAligned over-allocates on the Go heap and returns a window whose
	// first element sits on the requested alignment boundary.
	AllocAligned

	// AllocPage maps anonymous memory outside the Go heap. The first
	// element is page aligned. Platforms without mmap degrade to
	// AllocAligned with page alignment.
	AllocPage
)

// DefaultAlignment is the alignment in bytes requested by callers that do
// not pick one: a cache line, which is also one 512-bit register.
const DefaultAlignment = 64

// String returns the strategy name.
func (s AllocStrategy) String() string {
	switch s {
	case AllocDefault:
		return "default"
	case AllocAligned:
		return "aligned"
	case AllocPage:
		return "page"
	default:
		return fmt.Sprintf("AllocStrategy(%d)", int(s))
	}
}

var (
	// ErrInvalidLength is returned when a zero or negative element count is requested.
	ErrInvalidLength = errors.New("hwy: buffer length must be positive")

	// ErrInvalidAlignment is returned for alignments that are not a power of
	// two, are smaller than the element size, or exceed what the strategy
	// can provide.
	ErrInvalidAlignment = errors.New("hwy: invalid alignment")

	// ErrReleased is returned when a buffer is released a second time.
	ErrReleased = errors.New("hwy: buffer already released")
)

// Buffer is a run of n elements obtained with Allocate. The caller owns
// Data until Release is called; after that Data is nil.
type Buffer[T Floats] struct {
	Data []T

	strategy AllocStrategy
	release  func() error
	released bool
}

// Strategy returns the strategy that produced the buffer.
func (b *Buffer[T]) Strategy() AllocStrategy {
	return b.strategy
}

// Len returns the number of elements, or 0 once released.
func (b *Buffer[T]) Len() int {
	return len(b.Data)
}

// Release returns the memory. It must be called exactly once; further calls
// return ErrReleased and have no effect.
func (b *Buffer[T]) Release() error {
	if b.released {
		return ErrReleased
	}
	b.released = true
	b.Data = nil

	release := b.release
	b.release = nil
	if release != nil {
		return release()
	}
	return nil
}

// Allocate returns a zeroed buffer of n elements using the given strategy.
// align is the requested byte alignment of the first element; it must be a
// power of two no smaller than the element size. AllocDefault validates it
// but makes no promise about it.
func Allocate[T Floats](strategy AllocStrategy, n, align int) (*Buffer[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	elemSize := sizeOf[T]()
	if align < elemSize || align&(align-1) != 0 {
		return nil, fmt.Errorf("%w: %d bytes for %d-byte elements", ErrInvalidAlignment, align, elemSize)
	}

	switch strategy {
	case AllocDefault:
		return &Buffer[T]{Data: make([]T, n), strategy: strategy}, nil
	case AllocAligned:
		return &Buffer[T]{Data: alignedSlice[T](n, align), strategy: strategy}, nil
	case AllocPage:
		return allocPage[T](n, align)
	default:
		return nil, fmt.Errorf("hwy: unknown allocation strategy %v", strategy)
	}
}

// IsAddrAligned reports whether the first element of s sits on an align-byte
// boundary. Empty slices are reported as aligned.
func IsAddrAligned[T Floats](s []T, align int) bool {
	if len(s) == 0 || align <= 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))%uintptr(align) == 0
}

// Fill sets dst[i] to i for every index.
func Fill[T Floats](dst []T) {
	for i := range dst {
		dst[i] = T(i)
	}
}

// alignedSlice over-allocates by one alignment unit and slices off the
// misaligned prefix. The Go heap does not move objects, so the window stays
// aligned for its lifetime.
func alignedSlice[T Floats](n, align int) []T {
	elemSize := sizeOf[T]()
	pad := align / elemSize
	raw := make([]T, n+pad)

	off := 0
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	if rem := addr % uintptr(align); rem != 0 {
		off = int((uintptr(align) - rem) / uintptr(elemSize))
	}
	return raw[off : off+n : off+n]
}

func sizeOf[T Floats]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}
