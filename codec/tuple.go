package codec

import (
	"fmt"
	"math/big"

	"github.com/frostwonder/ethabi/errs"
	"github.com/frostwonder/ethabi/stream"
	"github.com/frostwonder/ethabi/word"
)

// tupleCodec encodes an ordered tuple of members (spec.md §3, §4.2,
// §4.4). A tuple is dynamic iff any member is dynamic; unlike a
// dynamic array, a dynamic tuple's own encoding carries no length
// prefix, since its member count is fixed by its type.
type tupleCodec struct {
	members []Codec
}

func (c *tupleCodec) IsDynamic() bool {
	for _, m := range c.members {
		if m.IsDynamic() {
			return true
		}
	}

	return false
}

func (c *tupleCodec) HeadWidth() int {
	if c.IsDynamic() {
		return word.Size
	}

	total := 0
	for _, m := range c.members {
		total += m.HeadWidth()
	}

	return total
}

func (c *tupleCodec) memberHeadWidth() int {
	total := 0
	for _, m := range c.members {
		total += m.HeadWidth()
	}

	return total
}

func (c *tupleCodec) Encode(w *stream.Writer, value any) error {
	values, ok := value.([]any)
	if !ok {
		return fmt.Errorf("%w: tuple expects []any, got %T", errs.ErrValidation, value)
	}

	if len(values) != len(c.members) {
		return fmt.Errorf("%w: tuple expects %d members, got %d", errs.ErrWrongLength, len(c.members), len(values))
	}

	if !c.IsDynamic() {
		for i, m := range c.members {
			if err := m.Encode(w, values[i]); err != nil {
				return err
			}
		}

		return nil
	}

	membersWriter := stream.NewWriter(c.memberHeadWidth())
	for i, m := range c.members {
		if err := m.Encode(membersWriter, values[i]); err != nil {
			membersWriter.Release()

			return err
		}
	}
	payload := membersWriter.Bytes()
	membersWriter.Release()

	offset := w.AppendTail(payload)
	offsetWord := word.PutUint(big.NewInt(int64(offset)))
	w.AppendHead(offsetWord[:])

	return nil
}

func (c *tupleCodec) Decode(r *stream.Reader, base int) (any, error) {
	if !c.IsDynamic() {
		out := make([]any, 0, len(c.members))
		for _, m := range c.members {
			v, err := m.Decode(r, base)
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

	memberBase := r.Tell()
	out := make([]any, 0, len(c.members))
	for _, m := range c.members {
		v, err := m.Decode(r, memberBase)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	r.Seek(resumeAt)

	return out, nil
}
