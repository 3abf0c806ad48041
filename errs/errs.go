// Package errs defines the sentinel errors returned across the codec.
//
// Every error a caller can usefully branch on is a package-level `error`
// value here. Call sites wrap a sentinel with context using fmt.Errorf's
// %w verb, e.g. fmt.Errorf("%w: %s", errs.ErrParse, token), so callers
// can still errors.Is against the sentinel while getting a descriptive
// message.
package errs

import "errors"

var (
	// ErrParse indicates a type descriptor string could not be tokenized
	// or does not conform to the type grammar (spec.md §4.1).
	ErrParse = errors.New("parse error")

	// ErrValidation indicates a type descriptor parsed but violates a
	// primitive-specific constraint, e.g. uint7, bytes33, fixed0x0.
	ErrValidation = errors.New("validation error")

	// ErrValueOutOfRange indicates an integer value is outside the
	// representable range of its declared bit width.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrWrongLength indicates a fixed-size bytes or fixed-size array
	// value whose length disagrees with its declared size.
	ErrWrongLength = errors.New("wrong length")

	// ErrInsufficientData indicates the decoder reached end-of-stream
	// before completing a primitive read.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrNonEmptyPadding indicates a decoded 32-byte word has
	// non-conforming padding bits.
	ErrNonEmptyPadding = errors.New("non-empty padding")

	// ErrInvalidOffset indicates a dynamic offset or length word too
	// large to address, or (under strict decoding) a layout that differs
	// from the one a canonical encoder produces. An offset that points
	// past the end of the buffer is reported as ErrInsufficientData by
	// the read that follows it.
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrUnsupportedType indicates a type parses and validates but has
	// no runtime codec, currently only Fixed/UFixed (spec.md §9).
	ErrUnsupportedType = errors.New("unsupported type")
)
