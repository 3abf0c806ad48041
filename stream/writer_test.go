package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_StaticOnly(t *testing.T) {
	w := NewWriter(64)
	w.AppendHead(make([]byte, 32))
	w.AppendHead(make([]byte, 32))
	assert.Equal(t, 64, w.HeadLen())
	assert.Equal(t, 0, w.TailLen())
	assert.Len(t, w.Bytes(), 64)
}

func TestWriter_DynamicOffsetsAreLocal(t *testing.T) {
	w := NewWriter(32)
	offset := w.NextTailOffset()
	assert.Equal(t, 32, offset)

	got := w.AppendTail([]byte{1, 2, 3})
	assert.Equal(t, 32, got)

	next := w.NextTailOffset()
	assert.Equal(t, 32+3, next)
}

func TestWriter_BytesConcatenatesHeadThenTail(t *testing.T) {
	w := NewWriter(32)
	w.AppendHead(make([]byte, 32))
	w.AppendTail([]byte{9, 9})

	out := w.Bytes()
	assert.Len(t, out, 34)
	assert.Equal(t, byte(9), out[32])
	assert.Equal(t, byte(9), out[33])
}

func TestWriter_Release(t *testing.T) {
	w := NewWriter(32)
	w.AppendHead(make([]byte, 32))
	_ = w.Bytes()
	w.Release()
}
