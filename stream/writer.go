package stream

import "github.com/frostwonder/ethabi/internal/pool"

// Writer assembles the head and tail regions of a tuple or array
// encoding (spec.md §4.4). The head has a fixed width known in advance
// from the type structure alone (every member contributes its own
// static encoding, one or more words for a static composite, or a
// single offset word pointing into the tail); the tail accumulates
// dynamic members' full encodings
// in order as they are appended.
//
// Offsets written into the head are local: they are measured from the
// start of this Writer's own head region, not from the start of the
// overall encoded payload. A nested tuple or array's Writer has its own
// independent local base; the caller splices the finished Bytes() into
// the parent's tail like any other dynamic value.
type Writer struct {
	headWidth int
	head      *pool.WordBuffer
	tail      *pool.WordBuffer
}

// NewWriter creates a Writer whose head region will hold exactly
// headWidth bytes once fully written (headWidth must be a multiple of
// 32: the sum of the members' head widths).
func NewWriter(headWidth int) *Writer {
	return &Writer{
		headWidth: headWidth,
		head:      pool.GetWordBuffer(),
		tail:      pool.GetWordBuffer(),
	}
}

// AppendHead appends a fixed-width, already-encoded word to the head
// region: either a static member's own encoding or an offset word
// pointing at a dynamic member's position in the tail.
func (w *Writer) AppendHead(b []byte) {
	w.head.Write(b)
}

// AppendTail appends a dynamic member's complete encoding to the tail
// region, returning the local offset (relative to this Writer's head
// start) that a head offset word must record to reference it.
func (w *Writer) AppendTail(b []byte) int {
	offset := w.headWidth + w.tail.Len()
	w.tail.Write(b)

	return offset
}

// NextTailOffset returns the local offset the next AppendTail call
// would receive, without writing anything. Useful when a caller must
// write the offset word to the head before it has assembled the tail
// bytes it will append.
func (w *Writer) NextTailOffset() int {
	return w.headWidth + w.tail.Len()
}

// HeadLen returns the number of bytes written to the head so far.
func (w *Writer) HeadLen() int { return w.head.Len() }

// TailLen returns the number of bytes written to the tail so far.
func (w *Writer) TailLen() int { return w.tail.Len() }

// TailBytes returns the tail region's bytes on their own, with no head
// region prepended. A caller that gave this Writer a zero headWidth and
// drove exactly one dynamic value's Encode against it gets that value's
// own direct encoding back — the offset word Encode wrote to the
// (otherwise unused) head is simply never read.
func (w *Writer) TailBytes() []byte {
	return w.tail.Bytes()
}

// Bytes returns the concatenated head||tail encoding. The Writer must
// not be used again after calling Bytes other than via Release.
func (w *Writer) Bytes() []byte {
	out := make([]byte, 0, w.head.Len()+w.tail.Len())
	out = append(out, w.head.Bytes()...)
	out = append(out, w.tail.Bytes()...)

	return out
}

// Release returns the Writer's internal buffers to the shared pool.
// Callers must call Bytes before Release if they need the result.
func (w *Writer) Release() {
	pool.PutWordBuffer(w.head)
	pool.PutWordBuffer(w.tail)
	w.head = nil
	w.tail = nil
}
