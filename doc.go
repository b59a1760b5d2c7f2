// Package base64 implements table-driven Base64 encoding and
// decoding as specified by RFC 4648.
//
// Comparison to encoding/base64
//
// This package is almost, but not exactly a drop-in replacement
// for encoding/base64.
//
// Unlike encoding/base64, Decode requires a destination of
// exactly the decoded size (see DecodedLen) and reports failures
// with one of three sentinel errors instead of a positional
// CorruptInputError:
//
//    ErrInvalidCharacter // byte outside the alphabet
//    ErrInvalidPadding   // wrong length, padding, or leftover bits
//    ErrNoSpaceLeft      // IgnoringDecoder ran out of destination
//
// Unlike encoding/base64, padding bits are always strict: the
// unused low bits of a trailing group must be zero (see section
// 3.5 of RFC 4648).
//
// Instead of stream adapters that filter newlines, this package
// provides IgnoringDecoder, which treats a caller-supplied byte
// set as absent from the input:
//
//    dec := StdEncoding.IgnoringDecoder(" \t\r\n")
//    n, err := dec.Decode(dst, src)
//
// All types are immutable after construction and safe for
// concurrent use.
package base64
