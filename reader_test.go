package rapidutf8

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestReaderPassThrough(t *testing.T) {
	raw := repeatToSize(multilingual, 256*1024)

	r := NewReader(bytes.NewReader(raw))
	got := new(bytes.Buffer)
	n, err := io.Copy(got, r)
	require.NoError(t, err)
	require.Equal(t, int64(len(raw)), n)
	require.Equal(t, raw, got.Bytes())
}

func TestReaderInvalid(t *testing.T) {
	raw := []byte("clean start \xc3\x28 and more")

	r := NewReader(bytes.NewReader(raw))
	_, err := io.Copy(io.Discard, r)
	require.ErrorIs(t, err, ErrInvalidUTF8)

	// The error is sticky.
	n, err := r.Read(make([]byte, 8))
	require.Zero(t, n)
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestReaderOneByteAtATime(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"valid multi-byte", "héllo こんにちは 🌍", true},
		{"surrogate", "abc\xed\xa0\x81xyz", false},
		{"dangling at EOF", "abc\xf0\x90", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReader(iotest.OneByteReader(strings.NewReader(tc.in)))
			got, err := io.ReadAll(r)
			if tc.want {
				require.NoError(t, err)
				require.Equal(t, tc.in, string(got))
			} else {
				require.ErrorIs(t, err, ErrInvalidUTF8)
			}
		})
	}
}

func TestReaderDanglingEOF(t *testing.T) {
	// The underlying reader ends cleanly, but the byte stream ends inside a
	// sequence, so EOF becomes ErrInvalidUTF8.
	r := NewReader(strings.NewReader("tail \xe1\x88"))
	_, err := io.Copy(io.Discard, r)
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestReaderReset(t *testing.T) {
	r := NewReader(strings.NewReader("\xff"))
	_, err := io.Copy(io.Discard, r)
	require.ErrorIs(t, err, ErrInvalidUTF8)

	r.Reset(strings.NewReader("fresh and fine"))
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "fresh and fine", string(got))
}

func BenchmarkReader(b *testing.B) {
	raw := repeatToSize(multilingual, 1024*1024)
	src := bytes.NewReader(raw)
	r := NewReader(src)

	b.ResetTimer()
	for b.Loop() {
		_, err := io.Copy(io.Discard, r)
		require.NoError(b, err)
		_, err = src.Seek(0, io.SeekStart)
		require.NoError(b, err)
		r.Reset(src)
	}
}
