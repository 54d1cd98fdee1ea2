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

//go:build amd64 && goexperiment.simd

package dot

import (
	"simd/archsimd"

	"github.com/go-highway/dotbench/hwy"
)

// Dot_SSE2_F64x2 computes the dot product of two float64 vectors using
// 128-bit registers, 2 elements at a time.
//
// Loads are unaligned, so any slice works. After the main loop the two lanes
// of the accumulator are summed and the odd trailing element, if any, is
// added with scalar code.
func Dot_SSE2_F64x2(a, b []float64) float64 {
	checkLengths(a, b)
	n := len(a)
	end := hwy.TailStart(n, 2)

	var sum archsimd.Float64x2
	for i := 0; i < end; i += 2 {
		va := archsimd.LoadFloat64x2Slice(a[i:])
		vb := archsimd.LoadFloat64x2Slice(b[i:])
		sum = sum.Add(va.Mul(vb))
	}

	// Horizontal reduction: sum both lanes
	var temp [2]float64
	sum.StoreSlice(temp[:])
	result := temp[0] + temp[1]

	// Handle tail elements with scalar code
	for i := end; i < n; i++ {
		result += a[i] * b[i]
	}

	return result
}
