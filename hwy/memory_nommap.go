//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package hwy

import (
	"fmt"
	"os"
)

// allocPage emulates page allocation on the Go heap where mmap is not
// available.
func allocPage[T Floats](n, align int) (*Buffer[T], error) {
	pageSize := os.Getpagesize()
	if align > pageSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds page size %d", ErrInvalidAlignment, align, pageSize)
	}
	return &Buffer[T]{Data: alignedSlice[T](n, pageSize), strategy: AllocPage}, nil
}
