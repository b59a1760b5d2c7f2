package base64

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const whitespace = " \t\r\n"

// TestIgnoreInsertion tests that inserting ignored bytes
// anywhere in a valid encoding does not change the decoded
// output.
func TestIgnoreInsertion(t *testing.T) {
	src := make([]byte, 96)
	rng := rand.New(rand.NewSource(7))
	if _, err := rng.Read(src); err != nil {
		t.Fatal(err)
	}
	for _, e := range encs {
		t.Run(e.name, func(t *testing.T) {
			dec := e.enc.IgnoringDecoder(whitespace)
			enc := []byte(e.enc.EncodeToString(src))

			for i := 0; i <= len(enc); i++ {
				for _, ws := range []byte(whitespace) {
					mangled := make([]byte, 0, len(enc)+1)
					mangled = append(mangled, enc[:i]...)
					mangled = append(mangled, ws)
					mangled = append(mangled, enc[i:]...)

					dst := make([]byte, dec.DecodedLenUpperBound(len(mangled)))
					n, err := dec.Decode(dst, mangled)
					require.NoError(t, err, "insert %q at %d", ws, i)
					require.True(t, bytes.Equal(src, dst[:n]), "insert %q at %d", ws, i)
				}
			}
		})
	}
}

// TestIgnoreHeavy tests decoding MIME-style line-wrapped input.
func TestIgnoreHeavy(t *testing.T) {
	src := make([]byte, 300)
	rng := rand.New(rand.NewSource(8))
	if _, err := rng.Read(src); err != nil {
		t.Fatal(err)
	}
	enc := []byte(StdEncoding.EncodeToString(src))

	var wrapped []byte
	for i := 0; i < len(enc); i += 76 {
		end := i + 76
		if end > len(enc) {
			end = len(enc)
		}
		wrapped = append(wrapped, enc[i:end]...)
		wrapped = append(wrapped, '\r', '\n')
	}

	dec := StdEncoding.IgnoringDecoder(whitespace)
	dst := make([]byte, dec.DecodedLenUpperBound(len(wrapped)))
	n, err := dec.Decode(dst, wrapped)
	require.NoError(t, err)
	require.Equal(t, src, dst[:n])
}

// TestIgnoreNoSpaceLeft tests destination exhaustion.
func TestIgnoreNoSpaceLeft(t *testing.T) {
	dec := StdEncoding.IgnoringDecoder(whitespace)

	// A valid 4-character group decodes to 3 bytes.
	for _, size := range []int{0, 1, 2} {
		dst := make([]byte, size)
		n, err := dec.Decode(dst, []byte("8J+Y"))
		require.ErrorIs(t, err, ErrNoSpaceLeft, "size %d", size)
		require.Equal(t, size, n, "size %d", size)
	}

	dst := make([]byte, 3)
	n, err := dec.Decode(dst, []byte("8J+Y"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

// TestIgnoreErrors tests that the ignoring decoder classifies
// malformed input the way the plain decoder does.
func TestIgnoreErrors(t *testing.T) {
	dec := StdEncoding.IgnoringDecoder(whitespace)
	for _, tc := range []struct {
		in  string
		err error
	}{
		{"A", ErrInvalidPadding},
		{"A A\n", ErrInvalidPadding},
		{"A.ma", ErrInvalidCharacter},
		{"AA=A", ErrInvalidPadding},
		{"A = ==", ErrInvalidPadding},
		{"AA =\t=", nil},
		{"Zm8 =", nil},
	} {
		dst := make([]byte, dec.DecodedLenUpperBound(len(tc.in)))
		_, err := dec.Decode(dst, []byte(tc.in))
		if tc.err == nil {
			require.NoError(t, err, "decode %q", tc.in)
		} else {
			require.ErrorIs(t, err, tc.err, "decode %q", tc.in)
		}
	}
}

// TestIgnoreReturnsWritten tests the byte count on success.
func TestIgnoreReturnsWritten(t *testing.T) {
	dec := RawURLEncoding.IgnoringDecoder(whitespace)
	dst := make([]byte, dec.DecodedLenUpperBound(8))
	n, err := dec.Decode(dst, []byte(" Zm9v \n"))
	require.NoError(t, err)
	require.Equal(t, "foo", string(dst[:n]))
}

func TestIgnoringDecoderPanics(t *testing.T) {
	require.Panics(t, func() {
		StdEncoding.IgnoringDecoder("A")
	})
	require.Panics(t, func() {
		// The padding character cannot be ignored either.
		StdEncoding.IgnoringDecoder("=")
	})
	require.NotPanics(t, func() {
		// But it can be for an unpadded alphabet.
		RawStdEncoding.IgnoringDecoder("=")
	})
}
