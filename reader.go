package rapidutf8

import (
	"io"
)

// Reader validates a stream as it passes through. Reads are served from the
// underlying reader unchanged; the first completed block containing
// malformed bytes surfaces ErrInvalidUTF8, and a stream that ends inside a
// sequence turns io.EOF into ErrInvalidUTF8.
type Reader struct {
	r   io.Reader
	s   Stream
	err error
}

// NewReader returns a Reader validating everything read from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, s: *NewStream()}
}

// Reset discards the Reader's state and switches it to read from r, keeping
// the allocation.
func (r *Reader) Reset(rd io.Reader) {
	r.r = rd
	r.err = nil
	r.s.Reset()
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err := r.r.Read(p)
	if n > 0 {
		r.s.Write(p[:n])
		if r.s.tainted() {
			r.err = ErrInvalidUTF8
			return n, r.err
		}
	}
	if err == io.EOF && !r.s.Valid() {
		r.err = ErrInvalidUTF8
		return n, r.err
	}
	return n, err
}
