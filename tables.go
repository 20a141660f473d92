package rapidutf8

// seqLen maps a lane's high nibble to the length of the sequence that byte
// starts: one for ASCII, zero for continuation bytes, two to four for leads.
var seqLen = [16]byte{
	1, 1, 1, 1, 1, 1, 1, 1, // 0xxx ASCII
	0, 0, 0, 0, // 10xx continuation
	2, 2, // 110x
	3, // 1110
	4, // 1111
}

// overlongLeadMin and overlongFollowMin drive the overlong check, indexed by
// the high nibble of the preceding lane. A lane is flagged when the lead is
// below overlongLeadMin and the byte following it is below overlongFollowMin.
// A zero entry never matches an unsigned below-comparison and marks nibbles
// that have no overlong form.
var (
	overlongLeadMin = [16]byte{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0,
		0xC2, 0, // C0 and C1 encode at most seven bits
		0xE1, // E0 needs a first continuation of 0xA0 or above
		0xF1, // F0 needs a first continuation of 0x90 or above
	}
	overlongFollowMin = [16]byte{
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0,
		0xC0, 0, // after C0/C1 every continuation is overlong
		0xA0,
		0x90,
	}
)
