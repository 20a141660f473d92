package rapidutf8

// Stream validates UTF-8 incrementally. Bytes arrive through Write in chunks
// split at arbitrary points, block state carries across calls, and Valid
// reports whether everything seen so far forms complete, well-formed
// sequences. A Stream is an io.Writer that never fails, so io.Copy into it
// works for sources of any size.
//
// Stream is not safe for concurrent use.
type Stream struct {
	w    int // lanes per block, 0 routes to the scalar path
	prev block
	errs lanes
	buf  lanes // partial block awaiting more bytes
	n    int   // buffered bytes in buf
	sc   scalarState
}

// NewStream returns a Stream using the kernel selected at startup.
func NewStream() *Stream {
	return &Stream{w: vectorWidth}
}

// Write consumes p. It always succeeds; the verdict is Valid's business.
func (s *Stream) Write(p []byte) (int, error) {
	wrote := len(p)
	if s.w == 0 {
		s.sc.feed(p)
		return wrote, nil
	}
	if s.tainted() {
		return wrote, nil
	}

	w := s.w
	if s.n > 0 {
		k := copy(s.buf[s.n:w], p)
		s.n += k
		p = p[k:]
		if s.n < w {
			return wrote, nil
		}
		s.prev = processBlock(&s.buf, &s.prev, &s.errs, w)
		s.n = 0
	}

	var cur lanes
	for len(p) >= w {
		copy(cur[:w], p)
		s.prev = processBlock(&cur, &s.prev, &s.errs, w)
		p = p[w:]
	}
	s.n = copy(s.buf[:], p)
	return wrote, nil
}

// Valid reports whether the stream would be well-formed if it ended now.
// It does not disturb the running state, so writing may continue after a
// mid-stream call.
func (s *Stream) Valid() bool {
	if s.w == 0 {
		return s.sc.valid()
	}
	if s.tainted() {
		return false
	}
	errs := s.errs
	if s.n > 0 {
		cur := lanes{}
		copy(cur[:], s.buf[:s.n])
		processBlock(&cur, &s.prev, &errs, s.w)
	} else {
		checkDanglingTail(&s.prev.carries, &errs, s.w)
	}
	return !hasError(&errs, s.w)
}

// Reset restores the Stream to its initial state, keeping the kernel.
func (s *Stream) Reset() {
	s.prev = block{}
	s.errs = lanes{}
	s.n = 0
	s.sc.reset()
}

// tainted reports whether a completed block already carries an error. A
// dangling sequence in the partial buffer is not taint; it may still be
// completed by a later Write.
func (s *Stream) tainted() bool {
	if s.w == 0 {
		return s.sc.bad
	}
	return hasError(&s.errs, s.w)
}
