// Package stream implements the forward-only reader and the two-region
// (head/tail) writer the codec package uses to realize the head/tail
// offset protocol (spec.md §4.4).
package stream

import (
	"fmt"

	"github.com/frostwonder/ethabi/errs"
	"github.com/frostwonder/ethabi/word"
)

// Reader is a non-destructive, randomly addressable view over a decode
// buffer. Unlike an io.Reader, a Reader never consumes its input:
// Seek lets a tuple or array codec jump to an offset read from the head
// region, decode a dynamic value at that absolute position, and return
// to where it left off, without disturbing sibling decodes.
type Reader struct {
	buf []byte
	pos int
}

// NewReader wraps buf for decoding. buf is not copied; callers must not
// mutate it while the Reader is in use.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int { return len(r.buf) }

// Tell returns the reader's current absolute position.
func (r *Reader) Tell() int { return r.pos }

// Seek moves the reader to an absolute byte offset. It does not
// validate the offset against the buffer length; a subsequent Read
// reports errs.ErrInsufficientData if the offset was out of range.
func (r *Reader) Seek(abs int) { r.pos = abs }

// Read returns the next n bytes starting at the reader's current
// position and advances past them. It reports errs.ErrInsufficientData
// if fewer than n bytes remain.
func (r *Reader) Read(n int) ([]byte, error) {
	if n < 0 || r.pos < 0 || r.pos+n > len(r.buf) {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d total",
			errs.ErrInsufficientData, n, r.pos, len(r.buf))
	}

	out := r.buf[r.pos : r.pos+n]
	r.pos += n

	return out, nil
}

// ReadWord reads the next 32-byte word and advances past it.
func (r *Reader) ReadWord() ([]byte, error) {
	return r.Read(word.Size)
}
