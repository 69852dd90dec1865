package mpack

import (
	"bytes"
	"math"

	"github.com/mpkit/mpack/format"
)

// Value is a decoded MessagePack value: a closed tagged union over nil,
// integers, floats, booleans, strings, binary blobs, arrays, maps, and
// extension payloads.
//
// A Value is a self-contained, deeply-owned tree with no shared substructure.
// The decoder builds the whole tree in one pass and hands exclusive ownership
// to the caller; the encoder only reads it. Independent goroutines may decode
// and encode concurrently without synchronization.
//
// The zero Value is not one of the ten variants; treat it as absent. Use the
// constructors (Nil, Int, String, ...) to build values directly.
type Value struct {
	num     uint64 // Int (two's complement), Uint, Float (IEEE-754 bits), Bool (0/1)
	str     string // String payload
	bin     []byte // Binary or Extension payload
	arr     []Value
	entries []MapEntry
	kind    format.Kind
	extType int8
}

// MapEntry is one positional key-value pair of a map value.
//
// MessagePack maps are ordered association lists, not dictionaries: entry
// order is significant, keys need not be unique, and any variant, composite
// ones included, may serve as a key.
type MapEntry struct {
	Key   Value
	Value Value
}

// Extension is a typed extension payload. The payload is opaque to this
// layer; TypeID 0-127 are application-defined, negative IDs are reserved by
// the format for predefined types.
type Extension struct {
	Data   []byte
	TypeID int8
}

// Nil returns the nil value.
func Nil() Value {
	return Value{kind: format.KindNil}
}

// Int returns a signed integer value.
func Int(v int64) Value {
	return Value{kind: format.KindInt, num: uint64(v)} //nolint:gosec
}

// Uint returns an unsigned integer value. Uint and Int are distinct variants
// and survive a round trip as such.
func Uint(v uint64) Value {
	return Value{kind: format.KindUint, num: v}
}

// Float returns a floating-point value. All floats are carried as 64-bit
// doubles regardless of the wire width they were decoded from.
func Float(v float64) Value {
	return Value{kind: format.KindFloat, num: math.Float64bits(v)}
}

// Bool returns a boolean value.
func Bool(v bool) Value {
	value := Value{kind: format.KindBool}
	if v {
		value.num = 1
	}

	return value
}

// String returns a string value. The payload must be valid UTF-8 to encode a
// parseable message; Go string literals already are.
func String(v string) Value {
	return Value{kind: format.KindString, str: v}
}

// Binary returns a raw byte sequence value. The slice is kept by reference;
// callers that keep mutating it should pass a copy.
func Binary(v []byte) Value {
	return Value{kind: format.KindBinary, bin: v}
}

// Array returns an ordered sequence value.
func Array(elems ...Value) Value {
	return Value{kind: format.KindArray, arr: elems}
}

// Map returns an ordered key-value list value. Entries are kept exactly as
// given: order preserved, duplicates allowed.
func Map(entries ...MapEntry) Value {
	return Value{kind: format.KindMap, entries: entries}
}

// Ext returns an extension value with the given type ID and opaque payload.
func Ext(typeID int8, data []byte) Value {
	return Value{kind: format.KindExtension, extType: typeID, bin: data}
}

// Kind returns the variant held by the value.
func (v Value) Kind() format.Kind {
	return v.kind
}

// IsNil reports whether the value is nil.
func (v Value) IsNil() bool { return v.kind == format.KindNil }

// IsInt reports whether the value is a signed integer.
func (v Value) IsInt() bool { return v.kind == format.KindInt }

// IsUint reports whether the value is an unsigned integer.
func (v Value) IsUint() bool { return v.kind == format.KindUint }

// IsAnyInt reports whether the value is either integer variant.
func (v Value) IsAnyInt() bool {
	return v.kind == format.KindInt || v.kind == format.KindUint
}

// IsFloat reports whether the value is a float.
func (v Value) IsFloat() bool { return v.kind == format.KindFloat }

// IsBool reports whether the value is a boolean.
func (v Value) IsBool() bool { return v.kind == format.KindBool }

// IsString reports whether the value is a string.
func (v Value) IsString() bool { return v.kind == format.KindString }

// IsBinary reports whether the value is a binary blob.
func (v Value) IsBinary() bool { return v.kind == format.KindBinary }

// IsArray reports whether the value is an array.
func (v Value) IsArray() bool { return v.kind == format.KindArray }

// IsMap reports whether the value is a map.
func (v Value) IsMap() bool { return v.kind == format.KindMap }

// IsExtension reports whether the value is an extension.
func (v Value) IsExtension() bool { return v.kind == format.KindExtension }

// AsInt extracts the value as a signed integer. On mismatch it returns a
// ConversionError carrying the untouched original.
func (v Value) AsInt() (int64, error) {
	if v.kind != format.KindInt {
		return 0, &ConversionError{Original: v, Attempted: "int"}
	}

	return int64(v.num), nil //nolint:gosec
}

// AsUint extracts the value as an unsigned integer.
func (v Value) AsUint() (uint64, error) {
	if v.kind != format.KindUint {
		return 0, &ConversionError{Original: v, Attempted: "uint"}
	}

	return v.num, nil
}

// AsAnyInt extracts either integer variant as an int64. Uint values outside
// the signed range wrap; callers that care should check IsUint first.
func (v Value) AsAnyInt() (int64, error) {
	if v.kind != format.KindInt && v.kind != format.KindUint {
		return 0, &ConversionError{Original: v, Attempted: "int"}
	}

	return int64(v.num), nil //nolint:gosec
}

// AsFloat extracts the value as a float64.
func (v Value) AsFloat() (float64, error) {
	if v.kind != format.KindFloat {
		return 0, &ConversionError{Original: v, Attempted: "float"}
	}

	return math.Float64frombits(v.num), nil
}

// AsBool extracts the value as a boolean.
func (v Value) AsBool() (bool, error) {
	if v.kind != format.KindBool {
		return false, &ConversionError{Original: v, Attempted: "boolean"}
	}

	return v.num != 0, nil
}

// AsString extracts the value as a string.
func (v Value) AsString() (string, error) {
	if v.kind != format.KindString {
		return "", &ConversionError{Original: v, Attempted: "string"}
	}

	return v.str, nil
}

// AsBinary extracts the value as a byte slice.
func (v Value) AsBinary() ([]byte, error) {
	if v.kind != format.KindBinary {
		return nil, &ConversionError{Original: v, Attempted: "binary"}
	}

	return v.bin, nil
}

// AsArray extracts the value as an element slice.
func (v Value) AsArray() ([]Value, error) {
	if v.kind != format.KindArray {
		return nil, &ConversionError{Original: v, Attempted: "array"}
	}

	return v.arr, nil
}

// AsMap extracts the value as an ordered entry list.
func (v Value) AsMap() ([]MapEntry, error) {
	if v.kind != format.KindMap {
		return nil, &ConversionError{Original: v, Attempted: "map"}
	}

	return v.entries, nil
}

// AsExtension extracts the value as an extension payload.
func (v Value) AsExtension() (Extension, error) {
	if v.kind != format.KindExtension {
		return Extension{}, &ConversionError{Original: v, Attempted: "extension"}
	}

	return Extension{TypeID: v.extType, Data: v.bin}, nil
}

// Equal reports whether two values are structurally identical: same variant,
// same payload, same order of elements and entries. Floats compare by bit
// pattern, so NaN equals itself and -0 differs from +0, matching wire-level
// identity.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case format.KindNil:
		return true
	case format.KindInt, format.KindUint, format.KindFloat, format.KindBool:
		return v.num == other.num
	case format.KindString:
		return v.str == other.str
	case format.KindBinary:
		return bytes.Equal(v.bin, other.bin)
	case format.KindExtension:
		return v.extType == other.extType && bytes.Equal(v.bin, other.bin)
	case format.KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}

		return true
	case format.KindMap:
		if len(v.entries) != len(other.entries) {
			return false
		}
		for i := range v.entries {
			if !v.entries[i].Key.Equal(other.entries[i].Key) ||
				!v.entries[i].Value.Equal(other.entries[i].Value) {
				return false
			}
		}

		return true
	default:
		return true
	}
}
