package codec

import (
	"fmt"
	"math/big"

	"github.com/frostwonder/ethabi/errs"
	"github.com/frostwonder/ethabi/stream"
	"github.com/frostwonder/ethabi/word"
)

// uintCodec encodes uintN values as *big.Int (spec.md §4.1).
type uintCodec struct {
	bits int
}

func (c *uintCodec) IsDynamic() bool { return false }
func (c *uintCodec) HeadWidth() int  { return word.Size }

func (c *uintCodec) Encode(w *stream.Writer, value any) error {
	v, ok := value.(*big.Int)
	if !ok {
		return fmt.Errorf("%w: uint%d expects *big.Int, got %T", errs.ErrValidation, c.bits, value)
	}

	if v.Sign() < 0 {
		return fmt.Errorf("%w: uint%d cannot encode negative value %s", errs.ErrValueOutOfRange, c.bits, v)
	}

	max := maxUint(c.bits)
	if v.Cmp(max) > 0 {
		return fmt.Errorf("%w: value %s exceeds uint%d range", errs.ErrValueOutOfRange, v, c.bits)
	}

	out := word.PutUint(v)
	w.AppendHead(out[:])

	return nil
}

func (c *uintCodec) Decode(r *stream.Reader, base int) (any, error) {
	raw, err := r.ReadWord()
	if err != nil {
		return nil, err
	}

	n := word.Size - c.bits/8
	if !word.ZeroPadding(raw, n) {
		return nil, fmt.Errorf("%w: uint%d padding bytes are non-zero", errs.ErrNonEmptyPadding, c.bits)
	}

	return word.Uint(raw), nil
}

func maxUint(bits int) *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	return max.Sub(max, big.NewInt(1))
}
