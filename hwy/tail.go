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

package hwy

// TailStart returns the index where the tail of an n-element sequence
// begins when it is consumed in blocks of width elements, i.e. the length
// of the largest prefix that is a multiple of width. Elements in
// [TailStart(n, width), n) are left for a scalar loop.
//
// Example:
//
//	end := hwy.TailStart(len(a), 4)
//	for i := 0; i < end; i += 4 {
//	    // full block a[i:i+4]
//	}
//	for i := end; i < len(a); i++ {
//	    // tail
//	}
func TailStart(n, width int) int {
	if width <= 1 || n <= 0 {
		return max(n, 0)
	}
	return n - n%width
}
