package base64

import "encoding/binary"

// invalidIndex marks a byte that is not in the alphabet.
const invalidIndex = 0xff

// laneInvalid is the lane-table entry for a byte that is not in
// the alphabet. Valid entries never set the top 8 bits, so after
// ORing four lanes together one mask test covers the group.
const (
	laneInvalid = uint32(0xff) << 24
	laneMask    = uint32(0xff) << 24
)

// A Decoder decodes Base64 characters back into raw bytes.
//
// It owns two precomputed views of the alphabet: a direct
// byte-to-index table used by the scalar tail, and four parallel
// 256-entry tables whose values carry a character's 6-bit index
// pre-shifted into one of the four lanes of a 24-bit group, so
// the bulk path validates and assembles a whole 4-character
// group with a single OR and mask test.
//
// Decoders are immutable after construction and may be shared
// across goroutines.
type Decoder struct {
	index   [256]byte
	lanes   [4][256]uint32
	padChar rune
}

// NewDecoder returns a Decoder for the given alphabet.
func NewDecoder(alphabet Alphabet) Decoder {
	var d Decoder
	d.padChar = alphabet.padChar
	for i := range d.index {
		d.index[i] = invalidIndex
		d.lanes[0][i] = laneInvalid
		d.lanes[1][i] = laneInvalid
		d.lanes[2][i] = laneInvalid
		d.lanes[3][i] = laneInvalid
	}
	for i, c := range alphabet.chars {
		d.index[c] = byte(i)
		d.lanes[0][c] = uint32(i) << 18
		d.lanes[1][c] = uint32(i) << 12
		d.lanes[2][c] = uint32(i) << 6
		d.lanes[3][c] = uint32(i)
	}
	return d
}

// DecodedLenUpperBound returns the maximum number of bytes n
// Base64 characters can decode to.
//
// It returns ErrInvalidPadding if no input of length n can be
// valid: a padded alphabet requires n to be a multiple of 4, and
// even an unpadded one never produces a trailing group of one
// character.
func (d *Decoder) DecodedLenUpperBound(n int) (int, error) {
	if d.padChar != NoPadding {
		if n%4 != 0 {
			return 0, ErrInvalidPadding
		}
		return n / 4 * 3, nil
	}
	leftover := n % 4
	if leftover == 1 {
		return 0, ErrInvalidPadding
	}
	return n/4*3 + leftover*3/4, nil
}

// DecodedLen returns the exact number of bytes src decodes to,
// assuming src is valid: the upper bound less one byte for each
// of the last two characters that is the padding character.
func (d *Decoder) DecodedLen(src []byte) (int, error) {
	n, err := d.DecodedLenUpperBound(len(src))
	if err != nil {
		return 0, err
	}
	if d.padChar != NoPadding {
		if len(src) >= 1 && src[len(src)-1] == byte(d.padChar) {
			n--
		}
		if len(src) >= 2 && src[len(src)-2] == byte(d.padChar) {
			n--
		}
	}
	return n, nil
}

// Decode decodes src into dst.
//
// dst must be exactly DecodedLen(src) bytes; Decode fills it
// completely on success. A byte outside the alphabet (and not
// padding) returns ErrInvalidCharacter. A structurally wrong
// input, wrong length, wrong padding run, or non-zero unused
// trailing bits, returns ErrInvalidPadding. On error the
// contents of dst are unspecified.
func (d *Decoder) Decode(dst, src []byte) error {
	if d.padChar != NoPadding && len(src)%4 != 0 {
		return ErrInvalidPadding
	}

	var si, di int

	// Convert 16 -> 12 four groups at a time. The low byte of
	// each 4-byte store is scratch, so stop while the scalar
	// tail still has at least one byte to rewrite.
	for len(src)-si >= 16 && len(dst)-di >= 13 {
		v0 := d.lanes[0][src[si+0]] | d.lanes[1][src[si+1]] | d.lanes[2][src[si+2]] | d.lanes[3][src[si+3]]
		v1 := d.lanes[0][src[si+4]] | d.lanes[1][src[si+5]] | d.lanes[2][src[si+6]] | d.lanes[3][src[si+7]]
		v2 := d.lanes[0][src[si+8]] | d.lanes[1][src[si+9]] | d.lanes[2][src[si+10]] | d.lanes[3][src[si+11]]
		v3 := d.lanes[0][src[si+12]] | d.lanes[1][src[si+13]] | d.lanes[2][src[si+14]] | d.lanes[3][src[si+15]]
		if (v0|v1|v2|v3)&laneMask != 0 {
			break
		}
		binary.BigEndian.PutUint32(dst[di+0:], v0<<8)
		binary.BigEndian.PutUint32(dst[di+3:], v1<<8)
		binary.BigEndian.PutUint32(dst[di+6:], v2<<8)
		binary.BigEndian.PutUint32(dst[di+9:], v3<<8)
		si += 16
		di += 12
	}

	// Convert 4 -> 3 one group at a time.
	for len(src)-si >= 4 && len(dst)-di >= 4 {
		v := d.lanes[0][src[si+0]] | d.lanes[1][src[si+1]] | d.lanes[2][src[si+2]] | d.lanes[3][src[si+3]]
		if v&laneMask != 0 {
			break
		}
		binary.BigEndian.PutUint32(dst[di:], v<<8)
		si += 4
		di += 3
	}

	// Scalar tail: accumulate 6 bits per character, emit a byte
	// whenever 8 or more are buffered. The bulk tiers stop at
	// the first group holding an out-of-alphabet byte, so this
	// loop is also what classifies it.
	var acc, accLen uint
	leftover := -1
	for ; si < len(src); si++ {
		c := src[si]
		idx := d.index[c]
		if idx == invalidIndex {
			if d.padChar == NoPadding || c != byte(d.padChar) {
				return ErrInvalidCharacter
			}
			leftover = si
			break
		}
		acc = acc<<6 | uint(idx)
		accLen += 6
		if accLen >= 8 {
			accLen -= 8
			dst[di] = byte(acc >> accLen)
			di++
		}
	}

	// At most 4 bits may be left over, and they must all be
	// zero (RFC 4648 section 3.5).
	if accLen > 4 || acc&(1<<accLen-1) != 0 {
		return ErrInvalidPadding
	}
	padWant := int(accLen / 2)
	if leftover < 0 {
		if d.padChar != NoPadding && padWant != 0 {
			return ErrInvalidPadding
		}
		return nil
	}

	// Everything from the first padding character on must be
	// padding, and there must be exactly enough of it to round
	// the trailing group out to 4 characters.
	var pads int
	for _, c := range src[leftover:] {
		if c != byte(d.padChar) {
			if d.index[c] == invalidIndex {
				return ErrInvalidCharacter
			}
			return ErrInvalidPadding
		}
		pads++
	}
	if pads != padWant {
		return ErrInvalidPadding
	}
	return nil
}

// DecodeString decodes the Base64 string s.
func (d *Decoder) DecodeString(s string) ([]byte, error) {
	src := []byte(s)
	n, err := d.DecodedLen(src)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, n)
	if err := d.Decode(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}
