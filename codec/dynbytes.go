package codec

import (
	"fmt"
	"math/big"

	"github.com/frostwonder/ethabi/errs"
	"github.com/frostwonder/ethabi/stream"
	"github.com/frostwonder/ethabi/word"
)

// encodeDynamicPayload builds the tail-region encoding of a dynamic
// bytes-like value: a length word followed by the raw bytes, padded
// with zeros up to the next word boundary (spec.md §4.2).
func encodeDynamicPayload(raw []byte) []byte {
	padded := word.Ceil32(len(raw))
	out := make([]byte, word.Size+padded)

	lenWord := word.PutUint(big.NewInt(int64(len(raw))))
	copy(out[:word.Size], lenWord[:])
	copy(out[word.Size:], raw)

	return out
}

// appendDynamic writes raw as a dynamic payload to w's tail and records
// the resulting offset in w's head.
func appendDynamic(w *stream.Writer, raw []byte) {
	offset := w.AppendTail(encodeDynamicPayload(raw))
	offsetWord := word.PutUint(big.NewInt(int64(offset)))
	w.AppendHead(offsetWord[:])
}

// decodeDynamicPayload reads a dynamic bytes-like value's offset word
// from the head, seeks to its absolute position, reads the length word
// and the raw bytes, validates trailing zero padding, and restores the
// reader's position to just past the consumed head slot.
func decodeDynamicPayload(r *stream.Reader, base int) ([]byte, error) {
	offsetWord, err := r.ReadWord()
	if err != nil {
		return nil, err
	}
	resumeAt := r.Tell()

	offset := word.Uint(offsetWord)
	if !offset.IsInt64() {
		return nil, fmt.Errorf("%w: offset %s overflows int", errs.ErrInvalidOffset, offset)
	}

	abs := base + int(offset.Int64())
	if abs < 0 {
		return nil, fmt.Errorf("%w: offset %d resolves to negative absolute position", errs.ErrInvalidOffset, offset.Int64())
	}
	r.Seek(abs)

	lenWord, err := r.ReadWord()
	if err != nil {
		return nil, err
	}

	length := word.Uint(lenWord)
	if !length.IsInt64() {
		return nil, fmt.Errorf("%w: length %s overflows int", errs.ErrInvalidOffset, length)
	}
	n := int(length.Int64())
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", errs.ErrValidation, n)
	}

	padded := word.Ceil32(n)
	data, err := r.Read(padded)
	if err != nil {
		return nil, err
	}

	if !word.ZeroPadding(data[n:], padded-n) {
		return nil, fmt.Errorf("%w: dynamic value trailing padding is non-zero", errs.ErrNonEmptyPadding)
	}

	out := make([]byte, n)
	copy(out, data[:n])

	r.Seek(resumeAt)

	return out, nil
}
