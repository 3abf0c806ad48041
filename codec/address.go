package codec

import (
	"fmt"

	"github.com/frostwonder/ethabi/errs"
	"github.com/frostwonder/ethabi/stream"
	"github.com/frostwonder/ethabi/word"
)

// AddressLen is the width in bytes of an Ethereum address.
const AddressLen = 20

// addressCodec encodes address as a [20]byte right-aligned in a word,
// zero-padded on the left (spec.md §4.1).
type addressCodec struct{}

func (c *addressCodec) IsDynamic() bool { return false }
func (c *addressCodec) HeadWidth() int  { return word.Size }

func (c *addressCodec) Encode(w *stream.Writer, value any) error {
	v, ok := value.([AddressLen]byte)
	if !ok {
		return fmt.Errorf("%w: address expects [20]byte, got %T", errs.ErrValidation, value)
	}

	var out [word.Size]byte
	copy(out[word.Size-AddressLen:], v[:])
	w.AppendHead(out[:])

	return nil
}

func (c *addressCodec) Decode(r *stream.Reader, base int) (any, error) {
	raw, err := r.ReadWord()
	if err != nil {
		return nil, err
	}

	if !word.ZeroPadding(raw, word.Size-AddressLen) {
		return nil, fmt.Errorf("%w: address padding bytes are non-zero", errs.ErrNonEmptyPadding)
	}

	var out [AddressLen]byte
	copy(out[:], raw[word.Size-AddressLen:])

	return out, nil
}
