// Package codec implements the Ethereum contract ABI encoding and
// decoding rules (spec.md §4) as a tree of Codec values mirrored from a
// parsed types.Node, plus a Factory that builds and caches that tree.
package codec

import (
	"github.com/frostwonder/ethabi/stream"
)

// Codec encodes and decodes Go values for exactly one ABI type. A
// Codec tree is immutable and stateless once built, safe for
// concurrent reuse across any number of Encode/Decode calls (spec.md
// §4.4, §7).
type Codec interface {
	// IsDynamic reports whether this type occupies a variable-width
	// tail slot (spec.md §3) as opposed to a single fixed head slot.
	IsDynamic() bool

	// HeadWidth returns the number of bytes this value occupies in its
	// parent's head region. A dynamic type always occupies exactly
	// word.Size (its offset word). A static type occupies its full
	// encoded size, which for a composite (tuple, fixed array) is the
	// sum of its static members' head widths, since static composites
	// embed directly in the parent head rather than going through the
	// tail (spec.md §4.4).
	HeadWidth() int

	// Encode appends value's ABI encoding to w's slot. A static type
	// writes exactly HeadWidth bytes via w.AppendHead. A dynamic type
	// writes its own encoding to the tail via w.AppendTail, then writes
	// the offset AppendTail returned to the head via w.AppendHead —
	// Encode owns both halves of its own slot, so a parent tuple or
	// array codec can call each member's Encode against the same
	// Writer without knowing which members are dynamic.
	Encode(w *stream.Writer, value any) error

	// Decode reads a value of this type starting at the reader's
	// current position within the local head region identified by
	// base. Static types read and advance past their own head slot;
	// dynamic types read an offset word from the head, seek to
	// base+offset to decode the value, and restore the reader's
	// position to just past the consumed head slot before returning.
	Decode(r *stream.Reader, base int) (any, error)
}
