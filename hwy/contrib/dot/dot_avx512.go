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

// Dot_AVX512_F64x8 computes the dot product of two float64 vectors using
// AVX-512. This processes 8 elements at a time and finishes the remaining
// n%8 elements with scalar code.
func Dot_AVX512_F64x8(a, b []float64) float64 {
	checkLengths(a, b)
	n := len(a)
	end := hwy.TailStart(n, 8)

	var sum archsimd.Float64x8
	for i := 0; i < end; i += 8 {
		va := archsimd.LoadFloat64x8Slice(a[i:])
		vb := archsimd.LoadFloat64x8Slice(b[i:])
		sum = sum.Add(va.Mul(vb))
	}

	result := reduceF64x8(sum)

	// Handle tail elements with scalar code
	for i := end; i < n; i++ {
		result += a[i] * b[i]
	}

	return result
}

// Dot_AVX512_F64x8x2 is Dot_AVX512_F64x8 with two independent accumulators.
// Each iteration consumes 16 elements, 8 into each accumulator, so the two
// multiply-add chains overlap in the pipeline. The accumulators are added
// lane-wise before the horizontal sum and the remaining n%16 elements are
// handled with scalar code.
func Dot_AVX512_F64x8x2(a, b []float64) float64 {
	checkLengths(a, b)
	n := len(a)
	end := hwy.TailStart(n, 16)

	var sum0, sum1 archsimd.Float64x8
	for i := 0; i < end; i += 16 {
		va0 := archsimd.LoadFloat64x8Slice(a[i:])
		vb0 := archsimd.LoadFloat64x8Slice(b[i:])
		va1 := archsimd.LoadFloat64x8Slice(a[i+8:])
		vb1 := archsimd.LoadFloat64x8Slice(b[i+8:])

		sum0 = sum0.Add(va0.Mul(vb0))
		sum1 = sum1.Add(va1.Mul(vb1))
	}

	result := reduceF64x8(sum0.Add(sum1))

	// Handle tail elements with scalar code
	for i := end; i < n; i++ {
		result += a[i] * b[i]
	}

	return result
}

// reduceF64x8 sums all 8 lanes of v.
func reduceF64x8(v archsimd.Float64x8) float64 {
	var temp [8]float64
	v.StoreSlice(temp[:])
	return temp[0] + temp[1] + temp[2] + temp[3] + temp[4] + temp[5] + temp[6] + temp[7]
}
