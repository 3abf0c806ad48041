package codec

import (
	"fmt"
	"math/big"

	"github.com/frostwonder/ethabi/errs"
	"github.com/frostwonder/ethabi/stream"
	"github.com/frostwonder/ethabi/word"
)

// intCodec encodes intN values as *big.Int (spec.md §4.1, §4.3). Unlike
// a naive transliteration of the padding check, the padding bytes on a
// negative value are validated as sign-extension (all 0xFF), not as
// zero — a fixed-width decoder that only ever checked for zero padding
// would reject every valid negative value (spec.md §6, "signed padding").
type intCodec struct {
	bits int
}

func (c *intCodec) IsDynamic() bool { return false }
func (c *intCodec) HeadWidth() int  { return word.Size }

func (c *intCodec) Encode(w *stream.Writer, value any) error {
	v, ok := value.(*big.Int)
	if !ok {
		return fmt.Errorf("%w: int%d expects *big.Int, got %T", errs.ErrValidation, c.bits, value)
	}

	min, max := intRange(c.bits)
	if v.Cmp(min) < 0 || v.Cmp(max) > 0 {
		return fmt.Errorf("%w: value %s outside int%d range", errs.ErrValueOutOfRange, v, c.bits)
	}

	out := word.PutInt(v, c.bits)
	w.AppendHead(out[:])

	return nil
}

func (c *intCodec) Decode(r *stream.Reader, base int) (any, error) {
	raw, err := r.ReadWord()
	if err != nil {
		return nil, err
	}

	n := word.Size - c.bits/8
	negative := word.IsNegativeWord(raw, c.bits)
	padOK := word.ZeroPadding(raw, n)
	if negative {
		padOK = word.FFPadding(raw, n)
	}

	if !padOK {
		return nil, fmt.Errorf("%w: int%d padding bytes do not match sign", errs.ErrNonEmptyPadding, c.bits)
	}

	return word.Int(raw, c.bits), nil
}

func intRange(bits int) (min, max *big.Int) {
	max = new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	min = new(big.Int).Neg(max)
	max = new(big.Int).Sub(max, big.NewInt(1))

	return min, max
}
