package codec

import (
	"fmt"

	"github.com/frostwonder/ethabi/errs"
	"github.com/frostwonder/ethabi/stream"
	"github.com/frostwonder/ethabi/word"
)

// fixedBytesCodec encodes bytesN as a byte slice of exactly N bytes,
// left-aligned in a word and zero-padded on the right (spec.md §4.1) —
// the mirror image of the numeric types, which pad on the left.
type fixedBytesCodec struct {
	n int
}

func (c *fixedBytesCodec) IsDynamic() bool { return false }
func (c *fixedBytesCodec) HeadWidth() int  { return word.Size }

func (c *fixedBytesCodec) Encode(w *stream.Writer, value any) error {
	v, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("%w: bytes%d expects []byte, got %T", errs.ErrValidation, c.n, value)
	}

	if len(v) != c.n {
		return fmt.Errorf("%w: bytes%d expects %d bytes, got %d", errs.ErrWrongLength, c.n, c.n, len(v))
	}

	var out [word.Size]byte
	copy(out[:], v)
	w.AppendHead(out[:])

	return nil
}

func (c *fixedBytesCodec) Decode(r *stream.Reader, base int) (any, error) {
	raw, err := r.ReadWord()
	if err != nil {
		return nil, err
	}

	if !word.ZeroPadding(raw[c.n:], word.Size-c.n) {
		return nil, fmt.Errorf("%w: bytes%d padding bytes are non-zero", errs.ErrNonEmptyPadding, c.n)
	}

	out := make([]byte, c.n)
	copy(out, raw[:c.n])

	return out, nil
}
