package codec

import (
	"fmt"

	"github.com/frostwonder/ethabi/errs"
	"github.com/frostwonder/ethabi/stream"
	"github.com/frostwonder/ethabi/word"
)

// boolCodec encodes bool as a uint8-shaped word holding 0 or 1
// (spec.md §4.1).
type boolCodec struct{}

func (c *boolCodec) IsDynamic() bool { return false }
func (c *boolCodec) HeadWidth() int  { return word.Size }

func (c *boolCodec) Encode(w *stream.Writer, value any) error {
	v, ok := value.(bool)
	if !ok {
		return fmt.Errorf("%w: bool expects bool, got %T", errs.ErrValidation, value)
	}

	var out [word.Size]byte
	if v {
		out[word.Size-1] = 1
	}
	w.AppendHead(out[:])

	return nil
}

func (c *boolCodec) Decode(r *stream.Reader, base int) (any, error) {
	raw, err := r.ReadWord()
	if err != nil {
		return nil, err
	}

	// spec.md §4.3: any non-zero/non-one low byte is classed the same
	// as non-zero padding, not a separate validation failure.
	if !word.ZeroPadding(raw, word.Size-1) {
		return nil, fmt.Errorf("%w: bool padding bytes are non-zero", errs.ErrNonEmptyPadding)
	}

	switch raw[word.Size-1] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return nil, fmt.Errorf("%w: bool value byte %d is neither 0 nor 1", errs.ErrNonEmptyPadding, raw[word.Size-1])
	}
}
