package rapidutf8

// scalarState is a resumable byte-at-a-time validator. It backs Valid on
// platforms without a lane kernel and the streaming surfaces' fallback, so
// its verdicts must match the block kernels exactly.
type scalarState struct {
	need   int  // continuation bytes still expected
	lo, hi byte // bounds for the next continuation byte
	bad    bool
}

// feed consumes p, updating the state. Once a malformed byte is seen the
// state stays bad until reset.
func (s *scalarState) feed(p []byte) {
	if s.bad {
		return
	}
	for _, c := range p {
		if s.need > 0 {
			if c < s.lo || c > s.hi {
				s.bad = true
				return
			}
			s.need--
			s.lo, s.hi = 0x80, 0xBF
			continue
		}
		switch {
		case c < 0x80:
		case c < 0xC2:
			// Continuation without a lead, or the always overlong C0/C1.
			s.bad = true
			return
		case c < 0xE0:
			s.need, s.lo, s.hi = 1, 0x80, 0xBF
		case c < 0xF0:
			s.need, s.lo, s.hi = 2, 0x80, 0xBF
			switch c {
			case 0xE0:
				s.lo = 0xA0 // below is overlong
			case 0xED:
				s.hi = 0x9F // above is a surrogate
			}
		case c < 0xF5:
			s.need, s.lo, s.hi = 3, 0x80, 0xBF
			switch c {
			case 0xF0:
				s.lo = 0x90 // below is overlong
			case 0xF4:
				s.hi = 0x8F // above is past U+10FFFF
			}
		default:
			s.bad = true
			return
		}
	}
}

// valid reports whether everything fed so far forms complete, well-formed
// sequences.
func (s *scalarState) valid() bool {
	return !s.bad && s.need == 0
}

func (s *scalarState) reset() {
	*s = scalarState{}
}

// validScalar checks p in one pass without any lane work.
func validScalar(p []byte) bool {
	var s scalarState
	s.feed(p)
	return s.valid()
}
