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

// Command dotbench times the dot-product kernels on a buffer filled with
// a[i] = i and prints the result and the elapsed time.
//
// Usage:
//
//	dotbench                       # best kernel, n=100000, one repetition
//	dotbench -v unroll4 -r 100     # average over 100 repetitions
//	dotbench --all                 # every variant, one pair of lines each
//	dotbench caps                  # detected CPU features and kernel support
//	dotbench list                  # variant names
//
// For each timed kernel two lines are printed: the dot product of the
// buffer with itself, formatted for the locale in LC_ALL/LC_NUMERIC/LANG,
// and the average elapsed time in whole microseconds.
//
// The buffer allocation strategy is fixed at build time, see
// hwy.DefaultAllocStrategy.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
