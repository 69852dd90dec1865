package mpack

import (
	"bytes"
	"math"
	"unicode/utf8"

	"github.com/mpkit/mpack/endian"
	"github.com/mpkit/mpack/format"
)

// wire is the byte order of the MessagePack format.
var wire = endian.GetBigEndianEngine()

// preallocLimit caps the capacity hint taken from array and map length
// fields. A forged length can claim up to 2^32 elements while the buffer
// holds none; past this limit slices grow by appending instead.
const preallocLimit = 1024

// Decode decodes exactly one value from the front of data and returns it
// together with the number of bytes it occupied, so a value embedded in a
// larger stream can be carved out:
//
//	data := []byte{0xaa, 0x48, 0x65, 0x6c, 0x6c, 0x6f, 0x20, 0x52, 0x75, 0x73, 0x74, 0x00}
//	v, n, err := mpack.Decode(data)
//	// v is String("Hello Rust"), n is 11, data[n:] is whatever follows
//
// On malformed input it returns a *ParseError whose Byte field is the offset
// of the first byte that could not be decoded, always relative to data.
// There are no partial results: either a complete value or an error.
func Decode(data []byte) (Value, int, error) {
	v, n, perr := decodeValue(data)
	if perr != nil {
		return Value{}, 0, perr
	}

	return v, n, nil
}

// Parse decodes exactly one value from the front of data, discarding the
// consumed length. Trailing bytes are ignored.
func Parse(data []byte) (Value, error) {
	v, _, perr := decodeValue(data)
	if perr != nil {
		return Value{}, perr
	}

	return v, nil
}

// decodeValue classifies the leading tag byte and dispatches to the matching
// wire encoding. It returns the decoded value and its total size in bytes.
func decodeValue(raw []byte) (Value, int, *ParseError) {
	if len(raw) == 0 {
		return Value{}, 0, &ParseError{Byte: 0}
	}
	tag := raw[0]

	// Fix-family encodings carry their value or length in the tag itself.
	switch {
	case tag <= format.PosFixintMax:
		return Int(int64(tag)), 1, nil
	case tag >= format.NegFixintMin:
		return Int(int64(tag) - 256), 1, nil
	case tag <= format.FixmapMax: // 0x80-0x8f
		entries, size, err := decodeMap(raw[1:], int(tag&0x0f))
		if err != nil {
			return Value{}, 0, err.Offset(1)
		}

		return Map(entries...), 1 + size, nil
	case tag <= format.FixarrayMax: // 0x90-0x9f
		elems, size, err := decodeArray(raw[1:], int(tag&0x0f))
		if err != nil {
			return Value{}, 0, err.Offset(1)
		}

		return Array(elems...), 1 + size, nil
	case tag <= format.FixstrMax: // 0xa0-0xbf
		return decodeString(raw, 1, int(tag&0x1f))
	}

	switch tag {
	case format.TagNil:
		return Nil(), 1, nil
	case format.TagReserved:
		return Value{}, 0, &ParseError{Byte: 0}
	case format.TagFalse:
		return Bool(false), 1, nil
	case format.TagTrue:
		return Bool(true), 1, nil

	case format.TagBin8, format.TagBin16, format.TagBin32:
		width := 1 << (tag - format.TagBin8) // 1, 2, or 4 length bytes
		n, err := readLength(raw, width)
		if err != nil {
			return Value{}, 0, err
		}

		return decodeBinary(raw, 1+width, n)
	case format.TagStr8:
		n, err := readLength(raw, 1)
		if err != nil {
			return Value{}, 0, err
		}

		return decodeString(raw, 2, n)
	case format.TagStr16:
		n, err := readLength(raw, 2)
		if err != nil {
			return Value{}, 0, err
		}

		return decodeString(raw, 3, n)
	case format.TagStr32:
		n, err := readLength(raw, 4)
		if err != nil {
			return Value{}, 0, err
		}

		return decodeString(raw, 5, n)

	case format.TagExt8, format.TagExt16, format.TagExt32:
		width := 1 << (tag - format.TagExt8)
		// Header is tag, length field, then one type-id byte.
		if len(raw) < 1+width+1 {
			return Value{}, 0, &ParseError{Byte: 1}
		}

		return decodeExtension(raw, 1+width+1, readUint(raw[1:], width))

	case format.TagFloat32:
		if len(raw) < 5 {
			return Value{}, 0, &ParseError{Byte: 1}
		}
		// Promote by value, not by bit pattern.
		f := math.Float32frombits(wire.Uint32(raw[1:5]))

		return Float(float64(f)), 5, nil
	case format.TagFloat64:
		if len(raw) < 9 {
			return Value{}, 0, &ParseError{Byte: 1}
		}

		return Float(math.Float64frombits(wire.Uint64(raw[1:9]))), 9, nil

	case format.TagUint8:
		if len(raw) < 2 {
			return Value{}, 0, &ParseError{Byte: 1}
		}

		return Uint(uint64(raw[1])), 2, nil
	case format.TagUint16:
		if len(raw) < 3 {
			return Value{}, 0, &ParseError{Byte: 1}
		}

		return Uint(uint64(wire.Uint16(raw[1:3]))), 3, nil
	case format.TagUint32:
		if len(raw) < 5 {
			return Value{}, 0, &ParseError{Byte: 1}
		}

		return Uint(uint64(wire.Uint32(raw[1:5]))), 5, nil
	case format.TagUint64:
		if len(raw) < 9 {
			return Value{}, 0, &ParseError{Byte: 1}
		}

		return Uint(wire.Uint64(raw[1:9])), 9, nil

	case format.TagInt8:
		if len(raw) < 2 {
			return Value{}, 0, &ParseError{Byte: 1}
		}

		return Int(int64(int8(raw[1]))), 2, nil
	case format.TagInt16:
		if len(raw) < 3 {
			return Value{}, 0, &ParseError{Byte: 1}
		}

		return Int(int64(int16(wire.Uint16(raw[1:3])))), 3, nil //nolint:gosec
	case format.TagInt32:
		if len(raw) < 5 {
			return Value{}, 0, &ParseError{Byte: 1}
		}

		return Int(int64(int32(wire.Uint32(raw[1:5])))), 5, nil //nolint:gosec
	case format.TagInt64:
		if len(raw) < 9 {
			return Value{}, 0, &ParseError{Byte: 1}
		}

		return Int(int64(wire.Uint64(raw[1:9]))), 9, nil //nolint:gosec

	case format.TagFixExt1, format.TagFixExt2, format.TagFixExt4, format.TagFixExt8, format.TagFixExt16:
		n := 1 << (tag - format.TagFixExt1)
		// Payload width is implied by the tag, so the whole encoding is
		// checked up front and a shortfall points just past the tag.
		if len(raw) < 2+n {
			return Value{}, 0, &ParseError{Byte: 1}
		}

		return decodeExtension(raw, 2, n)

	case format.TagArray16, format.TagArray32:
		width := 2 << (tag - format.TagArray16)
		n, err := readLength(raw, width)
		if err != nil {
			return Value{}, 0, err
		}
		elems, size, err := decodeArray(raw[1+width:], n)
		if err != nil {
			return Value{}, 0, err.Offset(1 + width)
		}

		return Array(elems...), 1 + width + size, nil

	case format.TagMap16, format.TagMap32:
		width := 2 << (tag - format.TagMap16)
		n, err := readLength(raw, width)
		if err != nil {
			return Value{}, 0, err
		}
		entries, size, err := decodeMap(raw[1+width:], n)
		if err != nil {
			return Value{}, 0, err.Offset(1 + width)
		}

		return Map(entries...), 1 + width + size, nil
	}

	// Unreachable: every tag byte is classified above.
	return Value{}, 0, &ParseError{Byte: 0}
}

// readUint composes a big-endian unsigned integer of 1, 2, 4, or 8 bytes.
func readUint(raw []byte, width int) int {
	switch width {
	case 1:
		return int(raw[0])
	case 2:
		return int(wire.Uint16(raw))
	default:
		return int(wire.Uint32(raw))
	}
}

// readLength reads a length field of the given width following the tag byte,
// checking that the field itself is present first.
func readLength(raw []byte, width int) (int, *ParseError) {
	if len(raw) < 1+width {
		return 0, &ParseError{Byte: 1}
	}

	return readUint(raw[1:], width), nil
}

// decodeString slices n payload bytes starting at offset prefix and validates
// them as UTF-8. Both a missing payload and invalid UTF-8 fail at the payload
// start.
func decodeString(raw []byte, prefix, n int) (Value, int, *ParseError) {
	if len(raw) < prefix+n {
		return Value{}, 0, &ParseError{Byte: prefix}
	}
	payload := raw[prefix : prefix+n]
	if !utf8.Valid(payload) {
		return Value{}, 0, &ParseError{Byte: prefix}
	}

	return String(string(payload)), prefix + n, nil
}

// decodeBinary slices and copies n payload bytes starting at offset prefix.
// The copy keeps the returned tree independent of the input buffer.
func decodeBinary(raw []byte, prefix, n int) (Value, int, *ParseError) {
	if len(raw) < prefix+n {
		return Value{}, 0, &ParseError{Byte: prefix}
	}

	return Binary(bytes.Clone(raw[prefix : prefix+n])), prefix + n, nil
}

// decodeExtension reads the type-id byte immediately preceding the payload
// and copies n payload bytes starting at offset prefix.
func decodeExtension(raw []byte, prefix, n int) (Value, int, *ParseError) {
	if len(raw) < prefix+n {
		return Value{}, 0, &ParseError{Byte: prefix}
	}
	typeID := int8(raw[prefix-1])

	return Ext(typeID, bytes.Clone(raw[prefix:prefix+n])), prefix + n, nil
}

// decodeArray parses count consecutive values, carrying the cursor forward.
// Nested errors are shifted by the bytes already consumed so they stay
// relative to raw.
func decodeArray(raw []byte, count int) ([]Value, int, *ParseError) {
	cursor := 0
	elems := make([]Value, 0, min(count, preallocLimit))

	for i := 0; i < count; i++ {
		v, size, err := decodeValue(raw[cursor:])
		if err != nil {
			return nil, 0, err.Offset(cursor)
		}
		elems = append(elems, v)
		cursor += size
	}

	return elems, cursor, nil
}

// decodeMap parses count key-value pairs as 2*count consecutive values,
// pairing them positionally. Duplicate keys are kept as-is.
func decodeMap(raw []byte, count int) ([]MapEntry, int, *ParseError) {
	cursor := 0
	entries := make([]MapEntry, 0, min(count, preallocLimit))

	for i := 0; i < count; i++ {
		key, size, err := decodeValue(raw[cursor:])
		if err != nil {
			return nil, 0, err.Offset(cursor)
		}
		cursor += size

		value, size, err := decodeValue(raw[cursor:])
		if err != nil {
			return nil, 0, err.Offset(cursor)
		}
		cursor += size

		entries = append(entries, MapEntry{Key: key, Value: value})
	}

	return entries, cursor, nil
}
