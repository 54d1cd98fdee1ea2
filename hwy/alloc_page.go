//go:build hwy_alloc_page

package hwy

// DefaultAllocStrategy is the strategy the benchmark driver uses.
const DefaultAllocStrategy = AllocPage
