package mpack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode_Primitives(t *testing.T) {
	require.Equal(t, []byte{0xc0}, Encode(Nil()))
	require.Equal(t, []byte{0xc2}, Encode(Bool(false)))
	require.Equal(t, []byte{0xc3}, Encode(Bool(true)))
}

func TestEncode_IntMinimalWidth(t *testing.T) {
	tests := []struct {
		name string
		val  int64
		want []byte
	}{
		{"fixint zero", 0, []byte{0x00}},
		{"fixint", 42, []byte{0x2a}},
		{"fixint max", 127, []byte{0x7f}},
		{"negative fixint", -1, []byte{0xff}},
		{"negative fixint min", -32, []byte{0xe0}},
		{"int8", -33, []byte{0xd0, 0xdf}},
		{"int8 min", -128, []byte{0xd0, 0x80}},
		{"int16 positive", 128, []byte{0xd1, 0x00, 0x80}},
		{"int16", -129, []byte{0xd1, 0xff, 0x7f}},
		{"int16 max", 32767, []byte{0xd1, 0x7f, 0xff}},
		{"int32", 32768, []byte{0xd2, 0x00, 0x00, 0x80, 0x00}},
		{"int32 negative", -40000, []byte{0xd2, 0xff, 0xff, 0x63, 0xc0}},
		{"int64", 2147483648, []byte{0xd3, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00}},
		{"int64 min", -9223372036854775808, []byte{0xd3, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Encode(Int(tt.val)))
		})
	}
}

func TestEncode_UintNeverFixint(t *testing.T) {
	tests := []struct {
		name string
		val  uint64
		want []byte
	}{
		// Even tiny uints use the explicit family so the variant survives a
		// round trip.
		{"uint8 small", 42, []byte{0xcc, 0x2a}},
		{"uint8 max", 255, []byte{0xcc, 0xff}},
		{"uint16", 256, []byte{0xcd, 0x01, 0x00}},
		{"uint16 max", 65535, []byte{0xcd, 0xff, 0xff}},
		{"uint32", 65536, []byte{0xce, 0x00, 0x01, 0x00, 0x00}},
		{"uint64", 4294967296, []byte{0xcf, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}},
		{"uint64 max", 1<<64 - 1, []byte{0xcf, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Encode(Uint(tt.val)))
		})
	}
}

func TestEncode_FloatAlwaysDouble(t *testing.T) {
	require.Equal(t,
		[]byte{0xcb, 0x3f, 0xf6, 0xb8, 0x51, 0xeb, 0x85, 0x1e, 0xb8},
		Encode(Float(1.42)))

	// 1.5 fits float32 exactly but still emits the 9-byte form.
	require.Equal(t,
		[]byte{0xcb, 0x3f, 0xf8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		Encode(Float(1.5)))
}

func TestEncode_StringFamilies(t *testing.T) {
	require.Equal(t,
		[]byte{0xaa, 0x48, 0x65, 0x6c, 0x6c, 0x6f, 0x20, 0x52, 0x75, 0x73, 0x74},
		Encode(String("Hello Rust")))

	require.Equal(t, []byte{0xa0}, Encode(String("")))

	s31 := strings.Repeat("a", 31)
	require.Equal(t, byte(0xbf), Encode(String(s31))[0])

	s32 := strings.Repeat("a", 32)
	enc := Encode(String(s32))
	require.Equal(t, []byte{0xd9, 0x20}, enc[:2])
	require.Len(t, enc, 34)

	s255 := strings.Repeat("a", 255)
	require.Equal(t, []byte{0xd9, 0xff}, Encode(String(s255))[:2])

	s256 := strings.Repeat("a", 256)
	require.Equal(t, []byte{0xda, 0x01, 0x00}, Encode(String(s256))[:3])

	s65536 := strings.Repeat("a", 65536)
	require.Equal(t, []byte{0xdb, 0x00, 0x01, 0x00, 0x00}, Encode(String(s65536))[:5])
}

func TestEncode_BinaryFamilies(t *testing.T) {
	require.Equal(t, []byte{0xc4, 0x00}, Encode(Binary(nil)))
	require.Equal(t, []byte{0xc4, 0x02, 0x42, 0xff}, Encode(Binary([]byte{0x42, 0xff})))

	b256 := make([]byte, 256)
	require.Equal(t, []byte{0xc5, 0x01, 0x00}, Encode(Binary(b256))[:3])

	b65536 := make([]byte, 65536)
	require.Equal(t, []byte{0xc6, 0x00, 0x01, 0x00, 0x00}, Encode(Binary(b65536))[:5])
}

func TestEncode_ExtensionFixedSizeSelection(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		{"fixext1", []byte{0x01}, []byte{0xd4, 0x02, 0x01}},
		{"fixext2", []byte{0x01, 0x02}, []byte{0xd5, 0x02, 0x01, 0x02}},
		{"fixext4", []byte{0x32, 0x4a, 0x67, 0x11}, []byte{0xd6, 0x02, 0x32, 0x4a, 0x67, 0x11}},
		{"fixext8", make([]byte, 8), append([]byte{0xd7, 0x02}, make([]byte, 8)...)},
		{"fixext16", make([]byte, 16), append([]byte{0xd8, 0x02}, make([]byte, 16)...)},
		// Off sizes fall back to the explicit-length family.
		{"ext8 empty", nil, []byte{0xc7, 0x00, 0x02}},
		{"ext8 len3", []byte{0x01, 0x02, 0x03}, []byte{0xc7, 0x03, 0x02, 0x01, 0x02, 0x03}},
		{"ext8 len5", make([]byte, 5), append([]byte{0xc7, 0x05, 0x02}, make([]byte, 5)...)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Encode(Ext(2, tt.data)))
		})
	}

	e256 := Encode(Ext(2, make([]byte, 256)))
	require.Equal(t, []byte{0xc8, 0x01, 0x00, 0x02}, e256[:4])

	e65536 := Encode(Ext(2, make([]byte, 65536)))
	require.Equal(t, []byte{0xc9, 0x00, 0x01, 0x00, 0x00, 0x02}, e65536[:6])
}

func TestEncode_ArrayFamilies(t *testing.T) {
	require.Equal(t, []byte{0x90}, Encode(Array()))
	require.Equal(t, []byte{0x93, 0x01, 0x02, 0x03}, Encode(Array(Int(1), Int(2), Int(3))))

	elems := make([]Value, 16)
	for i := range elems {
		elems[i] = Int(0)
	}
	require.Equal(t, []byte{0xdc, 0x00, 0x10}, Encode(Array(elems...))[:3])

	elems = make([]Value, 65536)
	for i := range elems {
		elems[i] = Nil()
	}
	require.Equal(t, []byte{0xdd, 0x00, 0x01, 0x00, 0x00}, Encode(Array(elems...))[:5])
}

func TestEncode_MapFamilies(t *testing.T) {
	require.Equal(t, []byte{0x80}, Encode(Map()))

	require.Equal(t,
		[]byte{0x82, 0xa1, 0x61, 0x01, 0xa1, 0x62, 0x02},
		Encode(Map(
			MapEntry{Key: String("a"), Value: Int(1)},
			MapEntry{Key: String("b"), Value: Int(2)},
		)))

	entries := make([]MapEntry, 16)
	for i := range entries {
		entries[i] = MapEntry{Key: Int(int64(i)), Value: Nil()}
	}
	require.Equal(t, []byte{0xde, 0x00, 0x10}, Encode(Map(entries...))[:3])
}

func TestEncoder_MultipleValues(t *testing.T) {
	enc := NewEncoder()
	defer enc.Reset()

	enc.Append(Int(1))
	enc.Append(String("two"))
	enc.Append(Nil())

	require.Equal(t, 3, enc.Len())
	require.Equal(t, []byte{0x01, 0xa3, 't', 'w', 'o', 0xc0}, enc.Bytes())
	require.Equal(t, 6, enc.Size())

	// The concatenation decodes back value by value.
	data := enc.Bytes()
	v, n, err := Decode(data)
	require.NoError(t, err)
	require.True(t, v.Equal(Int(1)))
	v, m, err := Decode(data[n:])
	require.NoError(t, err)
	require.True(t, v.Equal(String("two")))
	v, _, err = Decode(data[n+m:])
	require.NoError(t, err)
	require.True(t, v.IsNil())
}

func TestEncode_ZeroValueEncodesAsNil(t *testing.T) {
	var zero Value
	require.Equal(t, []byte{0xc0}, Encode(zero))
}
