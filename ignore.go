package base64

// An IgnoringDecoder decodes Base64 while treating a fixed set
// of bytes, typically whitespace, as absent from the input.
//
// Ignored bytes break group alignment, so there is no bulk path
// and the decoded size cannot be known up front: Decode reports
// how many bytes it wrote and returns ErrNoSpaceLeft if the
// destination fills before the input is consumed.
type IgnoringDecoder struct {
	dec     Decoder
	ignored [256]bool
}

// NewIgnoringDecoder returns an IgnoringDecoder for the given
// alphabet that skips every byte in ignore.
//
// An ignored byte that is also an alphabet or padding character
// would make decoding ambiguous; that is a bug in the caller, so
// NewIgnoringDecoder panics on it.
func NewIgnoringDecoder(alphabet Alphabet, ignore string) IgnoringDecoder {
	d := IgnoringDecoder{dec: NewDecoder(alphabet)}
	for i := 0; i < len(ignore); i++ {
		c := ignore[i]
		if alphabet.contains(c) {
			panic("base64: ignored character contained in alphabet")
		}
		d.ignored[c] = true
	}
	return d
}

// DecodedLenUpperBound returns the maximum number of bytes n
// Base64 characters can decode to.
//
// Unlike Decoder.DecodedLen it cannot subtract trailing padding
// (ignored bytes may trail it) and it never rejects a length
// (ignored bytes make the length mod 4 meaningless), so the
// bound is looser.
func (d *IgnoringDecoder) DecodedLenUpperBound(n int) int {
	return n/4*3 + n%4*3/4
}

// Decode decodes src into dst, skipping ignored bytes, and
// returns the number of bytes written.
//
// It returns ErrInvalidCharacter and ErrInvalidPadding as
// Decoder.Decode does, and ErrNoSpaceLeft if dst fills up
// before src is consumed. On error the contents of dst are
// unspecified.
func (d *IgnoringDecoder) Decode(dst, src []byte) (int, error) {
	dec := &d.dec

	var acc, accLen uint
	var di int
	leftover := -1
	for si := 0; si < len(src); si++ {
		c := src[si]
		if d.ignored[c] {
			continue
		}
		idx := dec.index[c]
		if idx == invalidIndex {
			if dec.padChar == NoPadding || c != byte(dec.padChar) {
				return di, ErrInvalidCharacter
			}
			leftover = si
			break
		}
		acc = acc<<6 | uint(idx)
		accLen += 6
		if accLen >= 8 {
			if di == len(dst) {
				return di, ErrNoSpaceLeft
			}
			accLen -= 8
			dst[di] = byte(acc >> accLen)
			di++
		}
	}

	if accLen > 4 || acc&(1<<accLen-1) != 0 {
		return di, ErrInvalidPadding
	}
	padWant := int(accLen / 2)
	if leftover < 0 {
		if dec.padChar != NoPadding && padWant != 0 {
			return di, ErrInvalidPadding
		}
		return di, nil
	}

	var pads int
	for _, c := range src[leftover:] {
		if d.ignored[c] {
			continue
		}
		if c != byte(dec.padChar) {
			if dec.index[c] == invalidIndex {
				return di, ErrInvalidCharacter
			}
			return di, ErrInvalidPadding
		}
		pads++
	}
	if pads != padWant {
		return di, ErrInvalidPadding
	}
	return di, nil
}
