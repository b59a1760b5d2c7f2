package base64

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewAlphabet tests that a well-formed alphabet constructs
// and a malformed one panics.
func TestNewAlphabet(t *testing.T) {
	a := NewAlphabet(encodeStd, StdPadding)
	require.True(t, a.Padded())
	require.True(t, a.contains('A'))
	require.True(t, a.contains('='))
	require.False(t, a.contains('.'))

	raw := NewAlphabet(encodeURL, NoPadding)
	require.False(t, raw.Padded())
	require.False(t, raw.contains('='))
}

func TestNewAlphabetPanics(t *testing.T) {
	for _, tc := range []struct {
		name  string
		chars string
		pad   rune
	}{
		{"too short", encodeStd[:63], StdPadding},
		{"too long", encodeStd + "!", StdPadding},
		{"duplicate", "A" + encodeStd[:63], StdPadding},
		{"pad in alphabet", encodeStd, 'A'},
		{"pad newline", encodeStd, '\n'},
		{"pad carriage return", encodeStd, '\r'},
		{"pad too wide", encodeStd, 0x100},
		{"newline in alphabet", strings.Replace(encodeStd, "+", "\n", 1), StdPadding},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Panics(t, func() {
				NewAlphabet(tc.chars, tc.pad)
			})
		})
	}
}

func TestNewEncodingPanics(t *testing.T) {
	require.Panics(t, func() {
		NewEncoding("AA"+encodeStd[2:], StdPadding)
	})
	require.Panics(t, func() {
		StdEncoding.WithPadding('A')
	})
}
