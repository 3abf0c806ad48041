// Package pool provides a pooled, amortized-growth byte buffer used by
// stream.Writer's head and tail regions.
//
// WordBuffer is mebo's pool.ByteBuffer adapted: the same amortized
// Grow strategy and sync.Pool backing, retargeted from metrics-blob sizes to ABI-argument-list
// sizes — a typical call's head+tail is a handful of 32-byte words, not
// a multi-kilobyte time-series blob, so the default and growth-step
// sizes are far smaller.
package pool

import "sync"

const (
	// wordBufferDefaultSize holds roughly 8 words before the first
	// reallocation, comfortably covering most argument lists.
	wordBufferDefaultSize = 256
	// wordBufferMaxThreshold discards buffers grown far beyond typical
	// use (e.g. a huge dynamic array) instead of pooling them forever.
	wordBufferMaxThreshold = 1 << 20
)

// WordBuffer is a growable byte buffer backed by a reusable slice.
type WordBuffer struct {
	B []byte
}

// NewWordBuffer creates a WordBuffer with the given initial capacity.
func NewWordBuffer(capacity int) *WordBuffer {
	return &WordBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the underlying slice. The caller must not modify it.
func (b *WordBuffer) Bytes() []byte { return b.B }

// Len returns the number of bytes written so far.
func (b *WordBuffer) Len() int { return len(b.B) }

// Reset empties the buffer while retaining its backing array.
func (b *WordBuffer) Reset() { b.B = b.B[:0] }

// Grow ensures at least n more bytes can be appended without a
// reallocation, growing the backing array if necessary.
//
// Growth strategy: small buffers grow by a fixed step to minimize
// reallocations for the common case of a handful of words; once a
// buffer outgrows four default-size steps, it instead grows by 25% of
// its current capacity, trading some extra copying for bounded memory
// use on unusually large dynamic arrays.
func (b *WordBuffer) Grow(n int) {
	available := cap(b.B) - len(b.B)
	if available >= n {
		return
	}

	growBy := wordBufferDefaultSize
	if cap(b.B) > 4*wordBufferDefaultSize {
		growBy = cap(b.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(b.B), len(b.B)+growBy)
	copy(newBuf, b.B)
	b.B = newBuf
}

// Write appends data to the buffer, growing it as needed.
func (b *WordBuffer) Write(data []byte) {
	b.Grow(len(data))
	b.B = append(b.B, data...)
}

// WriteByte appends a single byte to the buffer, growing it as needed.
func (b *WordBuffer) WriteByte(c byte) {
	b.Grow(1)
	b.B = append(b.B, c)
}

// bufferPool is the shared sync.Pool backing GetWordBuffer/PutWordBuffer.
var bufferPool = sync.Pool{
	New: func() any { return NewWordBuffer(wordBufferDefaultSize) },
}

// GetWordBuffer retrieves a WordBuffer from the pool, ready for use.
func GetWordBuffer() *WordBuffer {
	buf, _ := bufferPool.Get().(*WordBuffer)

	return buf
}

// PutWordBuffer returns buf to the pool for reuse, discarding it
// instead if it grew unusually large.
func PutWordBuffer(buf *WordBuffer) {
	if buf == nil {
		return
	}

	if cap(buf.B) > wordBufferMaxThreshold {
		return
	}

	buf.Reset()
	bufferPool.Put(buf)
}
