package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, bb.Cap())

	bb.MustWrite([]byte("hello"))
	n, err := bb.Write([]byte(" world"))
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, []byte("hello world"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 16)
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("12345678"))

	bb.Grow(100)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 100)
	require.Equal(t, []byte("12345678"), bb.Bytes(), "growth must preserve contents")

	before := bb.Cap()
	bb.Grow(1)
	require.Equal(t, before, bb.Cap(), "no growth when capacity suffices")
}

func TestByteBufferPool_Reuse(t *testing.T) {
	p := NewByteBufferPool(32, 0)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("data"))
	p.Put(bb)

	got := p.Get()
	require.Equal(t, 0, got.Len(), "pooled buffer must come back reset")
}

func TestByteBufferPool_Threshold(t *testing.T) {
	p := NewByteBufferPool(8, 64)

	big := p.Get()
	big.Grow(1024)
	p.Put(big) // over threshold, must be dropped

	small := p.Get()
	require.LessOrEqual(t, small.Cap(), 1024)
	p.Put(small)

	p.Put(nil) // must not panic
}

func TestStageBufferDefaults(t *testing.T) {
	bb := GetStageBuffer()
	require.NotNil(t, bb)
	require.GreaterOrEqual(t, bb.Cap(), StageBufferDefaultSize)
	PutStageBuffer(bb)
}
