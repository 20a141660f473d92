package rapidutf8

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterValid(t *testing.T) {
	raw := repeatToSize(multilingual, 256*1024)

	var out bytes.Buffer
	w := NewWriter(&out)
	_, err := io.Copy(w, bytes.NewReader(raw))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, raw, out.Bytes())
}

func TestWriterInvalid(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)

	n, err := w.Write([]byte("fine so far"))
	require.NoError(t, err)
	require.Equal(t, 11, n)

	// Long enough that the malformed bytes land in a completed block at any
	// width. The write fails, but the bytes still reach the underlying
	// writer.
	tail := " then \xc0\xaf happens" + strings.Repeat("x", maxWidth)
	_, err = w.Write([]byte(tail))
	require.ErrorIs(t, err, ErrInvalidUTF8)
	require.Equal(t, "fine so far"+tail, out.String())

	// And the error is sticky.
	_, err = w.Write([]byte("still fine?"))
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestWriterDanglingClose(t *testing.T) {
	w := NewWriter(io.Discard)
	_, err := w.Write([]byte("ends mid-sequence \xf0\x90"))
	require.NoError(t, err, "a dangling sequence may still be completed")
	require.ErrorIs(t, w.Close(), ErrInvalidUTF8)
}

func TestWriterUseAfterClose(t *testing.T) {
	w := NewWriter(io.Discard)
	require.NoError(t, w.Close())

	_, err := w.Write([]byte("too late"))
	require.ErrorIs(t, err, errWriterNil)
	require.ErrorIs(t, w.Close(), errWriterNil)
}

func TestWriterReset(t *testing.T) {
	var first, second bytes.Buffer

	w := NewWriter(&first)
	_, err := w.Write([]byte("\xff" + strings.Repeat("a", maxWidth)))
	require.ErrorIs(t, err, ErrInvalidUTF8)

	w.Reset(&second)
	_, err = w.Write([]byte("clean again"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, "clean again", second.String())
}

// A validating reader feeding a validating writer must agree end to end and
// deliver the bytes unchanged.
func TestReaderWriterPipeline(t *testing.T) {
	raw := repeatToSize(multilingual, 512*1024)

	var out bytes.Buffer
	w := NewWriter(&out)
	r := NewReader(bytes.NewReader(raw))

	_, err := io.Copy(w, r)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, raw, out.Bytes())
}

func BenchmarkWriter(b *testing.B) {
	raw := repeatToSize(multilingual, 1024*1024)
	w := NewWriter(io.Discard)

	b.ResetTimer()
	for b.Loop() {
		if _, err := w.Write(raw); err != nil {
			b.Fatal(err)
		}
		if err := w.Close(); err != nil {
			b.Fatal(err)
		}
		w.Reset(io.Discard)
	}
}
