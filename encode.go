package base64

import "encoding/binary"

// An Encoder encodes raw bytes into Base64 characters using a
// fixed alphabet.
//
// Encoders are stateless: every call is independent and an
// Encoder may be shared across goroutines.
type Encoder struct {
	alpha   [64]byte
	padChar rune
}

// NewEncoder returns an Encoder for the given alphabet.
func NewEncoder(alphabet Alphabet) Encoder {
	return Encoder{alpha: alphabet.chars, padChar: alphabet.padChar}
}

// EncodedLen returns the size in bytes of the Base64 encoding
// of n source bytes.
func (e *Encoder) EncodedLen(n int) int {
	if e.padChar == NoPadding {
		// Exactly 0, 2, or 3 characters for a 0, 1, or 2 byte
		// tail (RFC 4648 section 3.2).
		return n/3*4 + (n%3*4+2)/3
	}
	return (n + 2) / 3 * 4
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to dst.
//
// dst must be at least EncodedLen(len(src)) bytes. Encode
// returns the written prefix of dst; bytes past it are left
// untouched.
func (e *Encoder) Encode(dst, src []byte) []byte {
	ret := dst[:e.EncodedLen(len(src))]

	// Convert 12 -> 16 with at least 16 src bytes, extracting
	// sixteen 6-bit fields from the top 96 bits of two
	// big-endian words.
	for len(src) >= 16 && len(dst) >= 16 {
		hi := binary.BigEndian.Uint64(src[0:8])
		lo := binary.BigEndian.Uint64(src[8:16])
		dst[0] = e.alpha[hi>>58&0x3f]
		dst[1] = e.alpha[hi>>52&0x3f]
		dst[2] = e.alpha[hi>>46&0x3f]
		dst[3] = e.alpha[hi>>40&0x3f]
		dst[4] = e.alpha[hi>>34&0x3f]
		dst[5] = e.alpha[hi>>28&0x3f]
		dst[6] = e.alpha[hi>>22&0x3f]
		dst[7] = e.alpha[hi>>16&0x3f]
		dst[8] = e.alpha[hi>>10&0x3f]
		dst[9] = e.alpha[hi>>4&0x3f]
		dst[10] = e.alpha[(hi<<2|lo>>62)&0x3f]
		dst[11] = e.alpha[lo>>56&0x3f]
		dst[12] = e.alpha[lo>>50&0x3f]
		dst[13] = e.alpha[lo>>44&0x3f]
		dst[14] = e.alpha[lo>>38&0x3f]
		dst[15] = e.alpha[lo>>32&0x3f]
		src = src[12:]
		dst = dst[16:]
	}

	// Convert 3 -> 4 with at least 3 src bytes.
	for len(src) >= 3 {
		v := uint32(src[0])<<16 | uint32(src[1])<<8 | uint32(src[2])
		dst[0] = e.alpha[v>>18&0x3f]
		dst[1] = e.alpha[v>>12&0x3f]
		dst[2] = e.alpha[v>>6&0x3f]
		dst[3] = e.alpha[v&0x3f]
		src = src[3:]
		dst = dst[4:]
	}

	switch len(src) {
	case 2:
		v := uint(src[0])<<16 | uint(src[1])<<8
		dst[0] = e.alpha[v>>18&0x3f]
		dst[1] = e.alpha[v>>12&0x3f]
		dst[2] = e.alpha[v>>6&0x3f]
		if e.padChar != NoPadding {
			dst[3] = byte(e.padChar)
		}
	case 1:
		v := uint(src[0]) << 16
		dst[0] = e.alpha[v>>18&0x3f]
		dst[1] = e.alpha[v>>12&0x3f]
		if e.padChar != NoPadding {
			dst[2] = byte(e.padChar)
			dst[3] = byte(e.padChar)
		}
	}
	return ret
}

// EncodeToString encodes src.
func (e *Encoder) EncodeToString(src []byte) string {
	dst := make([]byte, e.EncodedLen(len(src)))
	e.Encode(dst, src)
	return string(dst)
}
