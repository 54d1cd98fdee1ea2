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

// Dot_AVX2_F64x4 computes the dot product of two float64 vectors using AVX2.
// This processes 4 elements at a time and finishes the remaining n%4
// elements with scalar code.
func Dot_AVX2_F64x4(a, b []float64) float64 {
	checkLengths(a, b)
	n := len(a)
	end := hwy.TailStart(n, 4)

	var sum archsimd.Float64x4
	for i := 0; i < end; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		sum = sum.Add(va.Mul(vb))
	}

	// Horizontal reduction: sum all 4 lanes
	// Store vector to temp array and sum elements
	var temp [4]float64
	sum.StoreSlice(temp[:])
	result := temp[0] + temp[1] + temp[2] + temp[3]

	// Handle tail elements with scalar code
	for i := end; i < n; i++ {
		result += a[i] * b[i]
	}

	return result
}
