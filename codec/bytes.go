package codec

import (
	"fmt"

	"github.com/frostwonder/ethabi/errs"
	"github.com/frostwonder/ethabi/stream"
	"github.com/frostwonder/ethabi/word"
)

// bytesCodec encodes dynamic bytes (spec.md §3, §4.2).
type bytesCodec struct{}

func (c *bytesCodec) IsDynamic() bool { return true }
func (c *bytesCodec) HeadWidth() int  { return word.Size }

func (c *bytesCodec) Encode(w *stream.Writer, value any) error {
	v, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("%w: bytes expects []byte, got %T", errs.ErrValidation, value)
	}

	appendDynamic(w, v)

	return nil
}

func (c *bytesCodec) Decode(r *stream.Reader, base int) (any, error) {
	return decodeDynamicPayload(r, base)
}

// stringCodec encodes dynamic string as UTF-8 bytes (spec.md §3, §4.2).
type stringCodec struct{}

func (c *stringCodec) IsDynamic() bool { return true }
func (c *stringCodec) HeadWidth() int  { return word.Size }

func (c *stringCodec) Encode(w *stream.Writer, value any) error {
	v, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: string expects string, got %T", errs.ErrValidation, value)
	}

	appendDynamic(w, []byte(v))

	return nil
}

func (c *stringCodec) Decode(r *stream.Reader, base int) (any, error) {
	raw, err := decodeDynamicPayload(r, base)
	if err != nil {
		return nil, err
	}

	return string(raw), nil
}
