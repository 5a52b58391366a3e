package huffman

import (
	"errors"
)

// Errors reported by encoding and decoding.  Failures from the underlying
// files are returned as-is.  Callers discriminate with errors.Is.
var (
	// ErrEmptyInput is returned when there is no content to encode.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrInvalidText is returned when source text is not valid UTF-8.
	ErrInvalidText = errors.New("huffman: input is not valid UTF-8")

	// ErrUnknownSymbol is returned when a source symbol has no entry in
	// the code table.  It indicates an internal invariant violation.
	ErrUnknownSymbol = errors.New("huffman: symbol missing from code table")

	// ErrBadMagic is returned when the container does not start with the
	// magic bytes.  Decoding is a clean no-op in that case.
	ErrBadMagic = errors.New("huffman: not a huffman container")

	// ErrMalformedTable is returned when the serialized code table is
	// truncated or otherwise malformed.
	ErrMalformedTable = errors.New("huffman: malformed code table")

	// ErrMalformedPayload is returned when the bit-packed payload does
	// not match the code table or the declared bit count.
	ErrMalformedPayload = errors.New("huffman: malformed payload")
)
