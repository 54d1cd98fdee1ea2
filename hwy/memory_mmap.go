// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build linux || darwin || freebsd || netbsd || openbsd

package hwy

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// allocPage maps anonymous private memory for n elements. mmap hands out
// whole pages, so the start is page aligned and any power-of-two alignment
// up to the page size is satisfied.
func allocPage[T Floats](n, align int) (*Buffer[T], error) {
	pageSize := unix.Getpagesize()
	if align > pageSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds page size %d", ErrInvalidAlignment, align, pageSize)
	}

	size := n * sizeOf[T]()
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("hwy: mmap %d bytes: %w", size, err)
	}

	return &Buffer[T]{
		Data:     unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(mem))), n),
		strategy: AllocPage,
		release: func() error {
			if err := unix.Munmap(mem); err != nil {
				return fmt.Errorf("hwy: munmap %d bytes: %w", size, err)
			}
			return nil
		},
	}, nil
}
