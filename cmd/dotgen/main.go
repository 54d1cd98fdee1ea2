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

// Command dotgen generates the unrolled scalar dot-product kernels.
//
// Usage:
//
//	dotgen -output dot_unroll_gen.go -orders 2,4,8 -cacheline 256
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/dotgen -output dot_unroll_gen.go -orders 2,4,8 -cacheline 256
//
// For each order K the generator emits DotUnrollK, which keeps K independent
// accumulators, folds the n%K trailing elements into the first one and
// combines the accumulators pairwise. With a non-zero -cacheline it also
// emits DotUnroll, bound to the order whose float64 accumulators span one
// cache line of that many bits.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	outputFile = flag.String("output", "dot_unroll_gen.go", "Output Go file")
	packageOut = flag.String("pkg", "dot", "Output package name")
	orders     = flag.String("orders", "2,4,8", "Comma-separated unroll orders (powers of two >= 2)")
	cacheLine  = flag.Int("cacheline", 256, "Cache line width in bits used to pick DotUnroll's order (0 omits it)")
)

func main() {
	flag.Parse()

	orderList, err := parseOrders(*orders)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		Package:   *packageOut,
		Orders:    orderList,
		CacheLine: *cacheLine,
	}

	src, err := gen.Generate(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", *outputFile, err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s for orders: %s\n", *outputFile, *orders)
}

func parseOrders(s string) ([]int, error) {
	var result []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		k, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid order %q: %w", p, err)
		}
		result = append(result, k)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no orders specified")
	}
	return result, nil
}
