package rapidutf8

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelChunk is the smallest segment worth handing to its own goroutine.
const parallelChunk = 1 << 20

// ValidParallel reports whether p consists entirely of well-formed UTF-8,
// splitting large inputs across goroutines. Split points are nudged forward
// past continuation bytes so every segment starts at a sequence boundary,
// which makes the segment verdicts independent. Small inputs go through
// Valid directly.
func ValidParallel(p []byte) bool {
	k := runtime.GOMAXPROCS(0)
	if len(p) < 2*parallelChunk || k < 2 {
		return Valid(p)
	}
	if k > len(p)/parallelChunk {
		k = len(p) / parallelChunk
	}

	step := len(p) / k
	bounds := make([]int, k+1)
	for i := 1; i < k; i++ {
		off := i * step
		// At most three continuation bytes may follow a split point; a
		// fourth means a sequence no lead can cover.
		limit := off + 3
		for p[off]&0xC0 == 0x80 {
			if off == limit {
				return false
			}
			off++
		}
		bounds[i] = off
	}
	bounds[k] = len(p)

	var g errgroup.Group
	for i := 0; i < k; i++ {
		seg := p[bounds[i]:bounds[i+1]]
		g.Go(func() error {
			if !Valid(seg) {
				return ErrInvalidUTF8
			}
			return nil
		})
	}
	return g.Wait() == nil
}
