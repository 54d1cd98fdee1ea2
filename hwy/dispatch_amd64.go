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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled.
// No vector kernels are compiled into the binary, so every width reports
// unsupported and the level stays scalar whatever the CPU advertises.
// Build with GOEXPERIMENT=simd for the SSE/AVX2/AVX-512 kernels.

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	setScalarMode()

	// The CPU may well support AVX2 or AVX-512; record it in the name so
	// diagnostics show what a GOEXPERIMENT=simd build would pick.
	switch {
	case cpu.X86.HasAVX512F:
		currentName = "scalar (cpu: avx512)"
	case cpu.X86.HasAVX2:
		currentName = "scalar (cpu: avx2)"
	}
}
