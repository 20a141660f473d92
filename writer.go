package rapidutf8

import (
	"errors"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"
)

var errWriterNil = errors.New("writer is nil")

// Writer validates everything written through it before handing the bytes to
// the underlying io.Writer. Validation runs concurrently with the downstream
// write, since both only read p.
//
// It is the caller's responsibility to call Close on the [Writer] when done;
// Close reports a stream that ends inside a sequence.
type Writer struct {
	w io.Writer
	s Stream

	writeMu   sync.Mutex
	checkErrs errgroup.Group
}

// NewWriter returns a new [Writer] passing writes through to w.
func NewWriter(w io.Writer) *Writer {
	wr := &Writer{s: *NewStream()}
	wr.Reset(w)
	return wr
}

// Reset discards the [Writer]'s state and makes it equivalent to the result
// of its original state from [NewWriter], but writing to w instead. This
// permits reusing a [Writer] rather than allocating a new one.
func (wr *Writer) Reset(w io.Writer) {
	wr.writeMu.Lock()
	defer wr.writeMu.Unlock()

	wr.w = w
	wr.s.Reset()
	wr.checkErrs = errgroup.Group{}
}

// Write validates p and writes it to the underlying [io.Writer]. A write
// whose bytes complete a malformed block returns ErrInvalidUTF8; a write
// error from the underlying writer takes priority.
func (wr *Writer) Write(p []byte) (n int, err error) {
	wr.writeMu.Lock()
	defer wr.writeMu.Unlock()

	if wr.w == nil {
		return 0, errWriterNil
	}

	wr.checkErrs.Go(func() error {
		wr.s.Write(p)
		if wr.s.tainted() {
			return ErrInvalidUTF8
		}
		return nil
	})
	defer func() {
		// Other errors take priority
		if checkErr := wr.checkErrs.Wait(); err == nil {
			err = checkErr
		}
	}()

	return wr.w.Write(p)
}

// Close flushes nothing, there is nothing buffered, but reports a stream
// that ends in the middle of a sequence. It is an error to call Write after
// calling Close.
func (wr *Writer) Close() error {
	wr.writeMu.Lock()
	defer wr.writeMu.Unlock()

	if wr.w == nil {
		return errWriterNil
	}
	defer func() { wr.w = nil }()

	if err := wr.checkErrs.Wait(); err != nil {
		return err
	}
	if !wr.s.Valid() {
		return ErrInvalidUTF8
	}
	return nil
}
