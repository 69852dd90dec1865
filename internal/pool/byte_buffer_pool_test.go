package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, bb.Cap())

	bb.MustWrite([]byte{0xc0})
	n, err := bb.Write([]byte{0xc2, 0xc3})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []byte{0xc0, 0xc2, 0xc3}, bb.Bytes())
	require.Equal(t, 3, bb.Len())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte{1, 2, 3, 4})

	// Within capacity, Grow is a no-op.
	bb.Grow(4)
	require.Equal(t, 8, bb.Cap())

	bb.Grow(64)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 64)
	require.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("hello"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(5), n)
	require.Equal(t, "hello", out.String())
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(32, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("data"))
	p.Put(bb)

	// Buffers come back reset.
	bb = p.Get()
	require.Equal(t, 0, bb.Len())
	p.Put(bb)

	// Oversized buffers are dropped instead of pooled.
	huge := NewByteBuffer(256)
	p.Put(huge)

	// Nil is tolerated.
	p.Put(nil)
}

func TestGetWireBuffer(t *testing.T) {
	bb := GetWireBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), WireBufferDefaultSize)
	PutWireBuffer(bb)
}
