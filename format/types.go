package format

type (
	// Kind identifies the variant held by a decoded value.
	Kind uint8

	// CompressionType identifies the envelope payload compression algorithm.
	CompressionType uint8
)

const (
	KindNil       Kind = 0x1 // KindNil represents the nil value.
	KindInt       Kind = 0x2 // KindInt represents a 64-bit signed integer.
	KindUint      Kind = 0x3 // KindUint represents a 64-bit unsigned integer.
	KindFloat     Kind = 0x4 // KindFloat represents a 64-bit IEEE-754 float.
	KindBool      Kind = 0x5 // KindBool represents a boolean.
	KindString    Kind = 0x6 // KindString represents a UTF-8 string.
	KindBinary    Kind = 0x7 // KindBinary represents a raw byte sequence.
	KindArray     Kind = 0x8 // KindArray represents an ordered value sequence.
	KindMap       Kind = 0x9 // KindMap represents an ordered key-value list.
	KindExtension Kind = 0xa // KindExtension represents a typed extension payload.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// String returns the lowercase variant label. The labels double as the
// attempted-type names carried by conversion errors.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindExtension:
		return "extension"
	default:
		return "unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
