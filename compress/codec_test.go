package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mpkit/mpack/format"
)

// sampleData builds a payload with enough structure to compress.
func sampleData() []byte {
	var buf bytes.Buffer
	for i := 0; i < 64; i++ {
		buf.WriteString("metric.name.with.repetition")
		buf.WriteByte(byte(i))
	}

	return buf.Bytes()
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err, "codec for %s", ct)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0xff))
	require.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	data := sampleData()

	tests := []struct {
		name  string
		codec Codec
	}{
		{"noop", NewNoOpCompressor()},
		{"zstd", NewZstdCompressor()},
		{"s2", NewS2Compressor()},
		{"lz4", NewLZ4Compressor()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := tt.codec.Compress(data)
			require.NoError(t, err)

			restored, err := tt.codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, restored)
		})
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()} {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed)

		restored, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestNoOp_SharesInput(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte{0x01, 0x02}

	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, &data[0], &out[0])
}

func TestCodec_CompressesRepetitiveData(t *testing.T) {
	data := sampleData()

	for _, tt := range []struct {
		name  string
		codec Codec
	}{
		{"zstd", NewZstdCompressor()},
		{"s2", NewS2Compressor()},
		{"lz4", NewLZ4Compressor()},
	} {
		compressed, err := tt.codec.Compress(data)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(data), "%s should shrink repetitive data", tt.name)
	}
}
