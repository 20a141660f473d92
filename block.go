package rapidutf8

// maxWidth is the widest lane count any kernel selects (AVX-512 class).
// Narrower kernels use a prefix of the array.
const maxWidth = 64

// lanes is one vector register's worth of byte lanes.
type lanes [maxWidth]byte

// block is the state threaded from one block to the next: the raw bytes and
// high nibbles feed the cross-block shifted views, the carried continuation
// counts feed the carry propagation of the following block.
type block struct {
	raw     lanes
	nibbles lanes
	carries lanes
}

// satsub subtracts with an unsigned floor of zero, one lane at a time.
func satsub(a, b byte) byte {
	if a < b {
		return 0
	}
	return a - b
}

// alignRight builds a view of cur shifted right by k lanes, the first k
// lanes drawn from the tail of prev. This is the two-register byte align
// of the vector ISAs, emulated per lane.
func alignRight(prev, cur *lanes, w, k int) lanes {
	var dst lanes
	for i := 0; i < k; i++ {
		dst[i] = prev[w-k+i]
	}
	for i := k; i < w; i++ {
		dst[i] = cur[i-k]
	}
	return dst
}

// highNibbles extracts the top four bits of every lane.
func highNibbles(cur *lanes, w int) lanes {
	var dst lanes
	for i := 0; i < w; i++ {
		dst[i] = cur[i] >> 4
	}
	return dst
}

// tableLookup maps every lane through a 16-entry table, the scalar twin of
// a byte shuffle.
func tableLookup(table *[16]byte, idx *lanes, w int) lanes {
	var dst lanes
	for i := 0; i < w; i++ {
		dst[i] = table[idx[i]&0x0F]
	}
	return dst
}

// carryContinuations spreads each lead's sequence length across the lanes it
// covers. Two shifted saturating passes suffice because lengths never exceed
// four: the first pass reaches one lane ahead, the second reaches two more.
// Lanes that start a sequence keep exactly their initial length, covered
// continuation lanes end up positive, uncovered ones end up zero.
func carryContinuations(initial *lanes, prev *block, w int) lanes {
	right1 := alignRight(&prev.carries, initial, w, 1)
	var sum lanes
	for i := 0; i < w; i++ {
		sum[i] = initial[i] + satsub(right1[i], 1)
	}
	right2 := alignRight(&prev.carries, &sum, w, 2)
	for i := 0; i < w; i++ {
		sum[i] += satsub(right2[i], 2)
	}
	return sum
}

// checkByteRange flags lanes above 0xF4. Such bytes cannot appear anywhere
// in well-formed input.
func checkByteRange(raw, errs *lanes, w int) {
	for i := 0; i < w; i++ {
		errs[i] |= satsub(raw[i], 0xF4)
	}
}

// checkContinuations flags lanes where the carried count and the initial
// length disagree about a sequence being in progress: a carry on top of a
// lane that starts its own sequence means a continuation was due but never
// came, no carry into a continuation lane means the continuation is
// orphaned.
func checkContinuations(initial, carried, errs *lanes, w int) {
	for i := 0; i < w; i++ {
		if (carried[i] > initial[i]) == (initial[i] > 0) {
			errs[i] |= 0xFF
		}
	}
}

// checkFollowMax flags first continuations that overshoot the two boundary
// leads: above 0x9F after 0xED encodes a surrogate, above 0x8F after 0xF4
// lands past U+10FFFF.
func checkFollowMax(raw, off1, errs *lanes, w int) {
	for i := 0; i < w; i++ {
		switch off1[i] {
		case 0xED:
			if raw[i]&0xE0 != 0x80 {
				errs[i] |= 0xFF
			}
		case 0xF4:
			if raw[i]&0xF0 != 0x80 {
				errs[i] |= 0xFF
			}
		}
	}
}

// checkOverlong flags sequences that encode a code point below the minimum
// for their length, using the two threshold tables indexed by the previous
// lane's nibble. Any lane it flags beyond true overlongs, such as a lead
// chasing another lead, is one checkContinuations flags too.
func checkOverlong(raw, off1, off1Nib, errs *lanes, w int) {
	for i := 0; i < w; i++ {
		n := off1Nib[i] & 0x0F
		if off1[i] < overlongLeadMin[n] && raw[i] < overlongFollowMin[n] {
			errs[i] |= 0xFF
		}
	}
}

// processBlock classifies one block, propagates carries from prev, runs all
// four checks into errs, and returns the state the next block builds on.
func processBlock(cur *lanes, prev *block, errs *lanes, w int) block {
	nib := highNibbles(cur, w)
	initial := tableLookup(&seqLen, &nib, w)
	carried := carryContinuations(&initial, prev, w)

	checkByteRange(cur, errs, w)
	checkContinuations(&initial, &carried, errs, w)

	off1 := alignRight(&prev.raw, cur, w, 1)
	off1Nib := alignRight(&prev.nibbles, &nib, w, 1)
	checkFollowMax(cur, &off1, errs, w)
	checkOverlong(cur, &off1, &off1Nib, errs, w)

	return block{raw: *cur, nibbles: nib, carries: carried}
}

// checkDanglingTail flags a sequence left open when the input ends exactly
// on a block boundary. The last lane may carry at most one, every other
// lane up to nine. Carries can overshoot their true remainder on malformed
// input, but those lanes were already flagged block-side.
func checkDanglingTail(carries, errs *lanes, w int) {
	for i := 0; i < w-1; i++ {
		if carries[i] > 9 {
			errs[i] |= 0xFF
		}
	}
	if carries[w-1] > 1 {
		errs[w-1] |= 0xFF
	}
}

// hasError reports whether any lane accumulated an error.
func hasError(errs *lanes, w int) bool {
	var acc byte
	for i := 0; i < w; i++ {
		acc |= errs[i]
	}
	return acc != 0
}
