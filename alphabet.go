package base64

import "encoding/base64"

const (
	StdPadding = base64.StdPadding // standard padding '='
	NoPadding  = base64.NoPadding  // no padding
)

// Alphabet is a Base64 alphabet: a bijection between the 6-bit
// values 0-63 and 64 distinct characters, plus an optional
// padding character.
//
// The zero Alphabet is not valid; use NewAlphabet.
type Alphabet struct {
	chars   [64]byte
	padChar rune
}

// NewAlphabet constructs an Alphabet from the 64 characters of
// chars and the padding character padChar, or NoPadding for an
// unpadded alphabet.
//
// A malformed alphabet is a bug in the caller, not an input
// error, so NewAlphabet panics if chars is not exactly 64
// distinct characters, if any character is '\r', '\n', or
// 0xff, or if padChar is '\r', '\n', greater than 0xff, or a
// member of chars.
func NewAlphabet(chars string, padChar rune) Alphabet {
	if len(chars) != 64 {
		panic("base64: alphabet is not 64 bytes")
	}
	var seen [256]bool
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if c == '\r' || c == '\n' || c == 0xff {
			panic("base64: alphabet contains invalid character")
		}
		if seen[c] {
			panic("base64: alphabet contains duplicate character")
		}
		seen[c] = true
	}
	if padChar != NoPadding {
		switch {
		case padChar == '\r', padChar == '\n', padChar > 0xff:
			panic("base64: invalid padding")
		case seen[byte(padChar)]:
			panic("base64: padding contained in alphabet")
		}
	}
	var a Alphabet
	copy(a.chars[:], chars)
	a.padChar = padChar
	return a
}

// Padded reports whether the alphabet has a padding character.
func (a *Alphabet) Padded() bool {
	return a.padChar != NoPadding
}

// contains reports whether c is one of the 64 alphabet
// characters or the padding character.
func (a *Alphabet) contains(c byte) bool {
	for _, v := range a.chars {
		if v == c {
			return true
		}
	}
	return a.padChar != NoPadding && c == byte(a.padChar)
}
