package codec

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/frostwonder/ethabi/errs"
	"github.com/frostwonder/ethabi/stream"
	"github.com/frostwonder/ethabi/word"
)

// Encode runs c against value, producing exactly c's own wire
// representation (spec.md §4.3, §6) — a static type's bare head words,
// or a dynamic type's body with no leading offset. A lone dynamic
// value is never wrapped in an implicit offset the way a tuple member
// is: spec.md §8's scenarios are explicit that encode("uint256[]", ...)
// is a length word followed by the elements, not an offset pointing at
// one. Callers who want the argument-list convention (an offset to
// every dynamic member) get it by encoding a tuple type string, which
// tupleCodec already implements member-by-member.
//
// This is driven through the same Codec.Encode a tuple or array member
// uses, by handing it a Writer whose head region is zero-width: the
// Codec still writes its informational offset word to that (otherwise
// discarded) head, but TailBytes returns only the body it wrote to the
// tail, which is exactly c's direct encoding.
func Encode(c Codec, value any) ([]byte, error) {
	if !c.IsDynamic() {
		w := stream.NewWriter(c.HeadWidth())
		defer w.Release()

		if err := c.Encode(w, value); err != nil {
			return nil, err
		}

		return w.Bytes(), nil
	}

	w := stream.NewWriter(0)
	defer w.Release()

	if err := c.Encode(w, value); err != nil {
		return nil, err
	}

	return w.TailBytes(), nil
}

// Decode runs c against data, the mirror of Encode: data holds exactly
// c's own wire representation, not a tuple-member's offset-prefixed
// slot. For a dynamic c, Codec.Decode expects to read an offset word
// before resolving the value, so Decode prepends a synthetic offset
// word pointing just past itself — data then falls immediately after
// it at the position that offset names, and the normal seek-and-decode
// path resolves straight into data with no effect on the decoded value.
func Decode(c Codec, data []byte) (any, error) {
	if !c.IsDynamic() {
		r := stream.NewReader(data)

		return c.Decode(r, 0)
	}

	framed := make([]byte, word.Size+len(data))
	offsetWord := word.PutUint(big.NewInt(int64(word.Size)))
	copy(framed[:word.Size], offsetWord[:])
	copy(framed[word.Size:], data)

	r := stream.NewReader(framed)

	return c.Decode(r, 0)
}

// DecodeStrict behaves like Decode, but additionally rejects data
// whose offsets are valid yet non-canonical: after decoding, it
// re-encodes the recovered value and requires a byte-for-byte match
// against data. This catches the cases a lenient decode accepts but a
// canonical encoder would never produce — tail members packed out of
// order, with gaps, or overlapping — without needing each codec to
// track packing order itself.
func DecodeStrict(c Codec, data []byte) (any, error) {
	value, err := Decode(c, data)
	if err != nil {
		return nil, err
	}

	reencoded, err := Encode(c, value)
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(reencoded, data) {
		return nil, fmt.Errorf("%w: offsets are not in canonical form", errs.ErrInvalidOffset)
	}

	return value, nil
}
