package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordBuffer_WriteGrows(t *testing.T) {
	buf := NewWordBuffer(4)
	buf.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, buf.Bytes())
	assert.Equal(t, 8, buf.Len())
}

func TestWordBuffer_WriteByte(t *testing.T) {
	buf := NewWordBuffer(0)
	buf.WriteByte(0xAB)
	buf.WriteByte(0xCD)
	assert.Equal(t, []byte{0xAB, 0xCD}, buf.Bytes())
}

func TestWordBuffer_Reset(t *testing.T) {
	buf := NewWordBuffer(8)
	buf.Write([]byte{1, 2, 3})
	capBefore := cap(buf.B)
	buf.Reset()
	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, capBefore, cap(buf.B))
}

func TestWordBuffer_GrowLargePastStepThreshold(t *testing.T) {
	buf := NewWordBuffer(0)
	big := make([]byte, 5*wordBufferDefaultSize)
	buf.Write(big)
	assert.Equal(t, len(big), buf.Len())
}

func TestGetPutWordBuffer_Roundtrip(t *testing.T) {
	buf := GetWordBuffer()
	require.NotNil(t, buf)
	buf.Write([]byte{1, 2, 3})
	PutWordBuffer(buf)

	buf2 := GetWordBuffer()
	require.NotNil(t, buf2)
	assert.Equal(t, 0, buf2.Len())
}

func TestPutWordBuffer_DiscardsOversized(t *testing.T) {
	buf := NewWordBuffer(0)
	buf.Write(make([]byte, wordBufferMaxThreshold+1))
	// Must not panic; oversized buffers are simply not pooled.
	PutWordBuffer(buf)
}

func TestPutWordBuffer_Nil(t *testing.T) {
	PutWordBuffer(nil)
}
