package rapidutf8

import (
	"encoding/binary"
	"errors"
	"unsafe"
)

// ErrInvalidUTF8 is reported by the streaming surfaces when malformed input
// is seen.
var ErrInvalidUTF8 = errors.New("invalid utf-8")

// Valid reports whether p consists entirely of well-formed UTF-8.
//
// This is a drop-in replacement for utf8.Valid. Input is consumed in blocks
// of VectorWidth byte lanes after skipping any leading ASCII run, with a
// scalar pass on platforms that have no lane kernel. Surrogates, overlong
// encodings and code points above U+10FFFF are rejected, matching the
// standard library.
func Valid(p []byte) bool {
	p = p[asciiPrefix(p):]
	if len(p) == 0 {
		return true
	}
	if vectorWidth == 0 {
		return validScalar(p)
	}
	return validVector(p, vectorWidth)
}

// ValidString reports whether s consists entirely of well-formed UTF-8. The
// bytes are inspected in place without copying.
func ValidString(s string) bool {
	if len(s) == 0 {
		return true
	}
	return Valid(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// validVector drives the block kernel over p at width w. The final partial
// block is padded with zero bytes, which classify as sequence starts and so
// surface any dangling sequence through the continuation check. When p ends
// exactly on a block boundary the carried counts are bounded instead.
func validVector(p []byte, w int) bool {
	var (
		prev block
		errs lanes
		cur  lanes
	)
	n := len(p)
	i := 0
	for ; i+w <= n; i += w {
		copy(cur[:w], p[i:])
		prev = processBlock(&cur, &prev, &errs, w)
		if hasError(&errs, w) {
			return false
		}
	}
	if i < n {
		cur = lanes{}
		copy(cur[:], p[i:])
		processBlock(&cur, &prev, &errs, w)
	} else {
		checkDanglingTail(&prev.carries, &errs, w)
	}
	return !hasError(&errs, w)
}

const asciiMask = 0x8080808080808080

// asciiPrefix returns the length of the leading ASCII run, eight bytes at a
// time. ASCII bytes are complete code points, so the caller may validate the
// remainder independently.
func asciiPrefix(p []byte) int {
	i := 0
	for ; i+8 <= len(p); i += 8 {
		if binary.LittleEndian.Uint64(p[i:])&asciiMask != 0 {
			break
		}
	}
	for ; i < len(p); i++ {
		if p[i] >= 0x80 {
			break
		}
	}
	return i
}
