//go:build !hwy_alloc_aligned && !hwy_alloc_page

package hwy

// DefaultAllocStrategy is the strategy the benchmark driver uses. It is
// fixed at build time: build with -tags hwy_alloc_aligned or
// -tags hwy_alloc_page to switch.
const DefaultAllocStrategy = AllocDefault
