package base64

import "errors"

// The three ways a decode can fail. They are never wrapped into
// one another; match them with errors.Is.
var (
	// ErrInvalidCharacter is returned when a byte outside the
	// alphabet (and outside the padding and ignore sets) appears
	// where a data character is expected.
	ErrInvalidCharacter = errors.New("base64: invalid character")

	// ErrInvalidPadding is returned when the input length,
	// the trailing padding run, or the unused trailing bits are
	// structurally wrong.
	ErrInvalidPadding = errors.New("base64: invalid padding")

	// ErrNoSpaceLeft is returned by IgnoringDecoder.Decode when
	// the destination fills before the input is consumed.
	ErrNoSpaceLeft = errors.New("base64: no space left in destination")
)

const (
	encodeStd = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	encodeURL = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// StdEncoding is the standard, padded Base64 encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
var StdEncoding = NewEncoding(encodeStd, StdPadding)

// RawStdEncoding is the unpadded standard Base64 encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
var RawStdEncoding = NewEncoding(encodeStd, NoPadding)

// URLEncoding is the padded base64url Base64 encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    -_
//
var URLEncoding = NewEncoding(encodeURL, StdPadding)

// RawURLEncoding is the unpadded base64url Base64 encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    -_
//
var RawURLEncoding = NewEncoding(encodeURL, NoPadding)

// Encoding binds one alphabet and padding policy to an Encoder,
// a Decoder, and a factory for IgnoringDecoders.
//
// Encodings are immutable after construction and safe for
// concurrent use.
type Encoding struct {
	alphabet Alphabet
	enc      Encoder
	dec      Decoder
}

// NewEncoding constructs an Encoding from the 64 characters of
// alphabet and the padding character padChar, or NoPadding.
//
// It panics under the same conditions as NewAlphabet.
func NewEncoding(alphabet string, padChar rune) *Encoding {
	a := NewAlphabet(alphabet, padChar)
	return &Encoding{
		alphabet: a,
		enc:      NewEncoder(a),
		dec:      NewDecoder(a),
	}
}

// WithPadding returns a new Encoding identical to enc but using
// the specified padding character, or NoPadding.
//
// It panics under the same conditions as NewAlphabet.
func (enc *Encoding) WithPadding(padChar rune) *Encoding {
	return NewEncoding(string(enc.alphabet.chars[:]), padChar)
}

// Encoder returns the Encoding's encoder.
func (enc *Encoding) Encoder() *Encoder {
	return &enc.enc
}

// Decoder returns the Encoding's decoder.
func (enc *Encoding) Decoder() *Decoder {
	return &enc.dec
}

// IgnoringDecoder returns a decoder for the Encoding that skips
// every byte in ignore.
//
// It panics if ignore overlaps the alphabet or the padding
// character.
func (enc *Encoding) IgnoringDecoder(ignore string) IgnoringDecoder {
	return NewIgnoringDecoder(enc.alphabet, ignore)
}

// EncodedLen returns the size in bytes of the Base64 encoding
// of n source bytes.
func (enc *Encoding) EncodedLen(n int) int {
	return enc.enc.EncodedLen(n)
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to dst
// and returning the written prefix.
func (enc *Encoding) Encode(dst, src []byte) []byte {
	return enc.enc.Encode(dst, src)
}

// EncodeToString encodes src.
func (enc *Encoding) EncodeToString(src []byte) string {
	return enc.enc.EncodeToString(src)
}

// DecodedLenUpperBound returns the maximum number of bytes n
// Base64 characters can decode to, or ErrInvalidPadding if no
// input of length n can be valid.
func (enc *Encoding) DecodedLenUpperBound(n int) (int, error) {
	return enc.dec.DecodedLenUpperBound(n)
}

// DecodedLen returns the exact number of bytes src decodes to,
// assuming src is valid.
func (enc *Encoding) DecodedLen(src []byte) (int, error) {
	return enc.dec.DecodedLen(src)
}

// Decode decodes src into dst, which must be exactly
// DecodedLen(src) bytes.
func (enc *Encoding) Decode(dst, src []byte) error {
	return enc.dec.Decode(dst, src)
}

// DecodeString decodes the Base64 string s.
func (enc *Encoding) DecodeString(s string) ([]byte, error) {
	return enc.dec.DecodeString(s)
}
