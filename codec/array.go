package codec

import (
	"fmt"
	"math/big"

	"github.com/frostwonder/ethabi/errs"
	"github.com/frostwonder/ethabi/stream"
	"github.com/frostwonder/ethabi/word"
)

// dynArrayLen marks a variable-length array. It must equal
// types.DynArrayLen: the factory passes a node's ArrayLen through
// unchanged when it builds the codec.
const dynArrayLen = -1

// arrayCodec encodes both fixed-size (T[k]) and variable-size (T[])
// arrays (spec.md §3, §4.2). Whether the overall array is dynamic
// follows from either: the length itself being variable, or the
// element type being dynamic — a fixed-size array of a dynamic element
// type is itself dynamic, since its members no longer have a
// statically known combined width.
type arrayCodec struct {
	inner  Codec
	length int // dynArrayLen for T[]
}

func (c *arrayCodec) isVariableLength() bool { return c.length == dynArrayLen }

func (c *arrayCodec) IsDynamic() bool {
	return c.isVariableLength() || c.inner.IsDynamic()
}

func (c *arrayCodec) HeadWidth() int {
	if c.IsDynamic() {
		return word.Size
	}

	return c.length * c.inner.HeadWidth()
}

func (c *arrayCodec) Encode(w *stream.Writer, value any) error {
	values, ok := value.([]any)
	if !ok {
		return fmt.Errorf("%w: array expects []any, got %T", errs.ErrValidation, value)
	}

	if !c.isVariableLength() && len(values) != c.length {
		return fmt.Errorf("%w: array expects %d elements, got %d", errs.ErrWrongLength, c.length, len(values))
	}

	if !c.IsDynamic() {
		for _, v := range values {
			if err := c.inner.Encode(w, v); err != nil {
				return err
			}
		}

		return nil
	}

	elemsWriter := stream.NewWriter(len(values) * c.inner.HeadWidth())
	for _, v := range values {
		if err := c.inner.Encode(elemsWriter, v); err != nil {
			elemsWriter.Release()

			return err
		}
	}
	payload := elemsWriter.Bytes()
	elemsWriter.Release()

	if c.isVariableLength() {
		countWord := word.PutUint(big.NewInt(int64(len(values))))
		payload = append(countWord[:], payload...)
	}

	offset := w.AppendTail(payload)
	offsetWord := word.PutUint(big.NewInt(int64(offset)))
	w.AppendHead(offsetWord[:])

	return nil
}

func (c *arrayCodec) Decode(r *stream.Reader, base int) (any, error) {
	if !c.IsDynamic() {
		out := make([]any, 0, c.length)
		for i := 0; i < c.length; i++ {
			v, err := c.inner.Decode(r, base)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}

		return out, nil
	}

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

	length := c.length
	if c.isVariableLength() {
		countWord, err := r.ReadWord()
		if err != nil {
			return nil, err
		}

		count := word.Uint(countWord)
		if !count.IsInt64() {
			return nil, fmt.Errorf("%w: length %s overflows int", errs.ErrInvalidOffset, count)
		}
		length = int(count.Int64())
		if length < 0 {
			return nil, fmt.Errorf("%w: negative array length %d", errs.ErrValidation, length)
		}
	}

	elemBase := r.Tell()
	out := make([]any, 0, length)
	for i := 0; i < length; i++ {
		v, err := c.inner.Decode(r, elemBase)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	r.Seek(resumeAt)

	return out, nil
}
