//go:build amd64

package rapidutf8

import (
	"golang.org/x/sys/cpu"
)

func pickKernel() (int, string) {
	switch {
	case cpu.X86.HasAVX512BW:
		return 64, "avx512"
	case cpu.X86.HasAVX2:
		return 32, "avx2"
	}
	// SSE2 is part of the amd64 baseline.
	return 16, "sse2"
}
