package mpack

import (
	"math"

	"github.com/mpkit/mpack/endian"
	"github.com/mpkit/mpack/format"
	"github.com/mpkit/mpack/internal/pool"
)

// Encoder assembles the wire form of one or more values into a pooled
// buffer. Use it to pack several top-level values back to back, or to avoid
// the copy that the Encode convenience makes:
//
//	enc := mpack.NewEncoder()
//	defer enc.Reset()
//	enc.Append(mpack.Int(1))
//	enc.Append(mpack.String("two"))
//	send(enc.Bytes())
//
// Note: The Encoder is NOT thread-safe. After calling Reset, the encoder
// must not be used again.
type Encoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

// NewEncoder creates an Encoder backed by a pooled buffer.
func NewEncoder() *Encoder {
	return &Encoder{
		buf:    pool.GetWireBuffer(),
		engine: endian.GetBigEndianEngine(),
	}
}

// Append encodes one value and appends its bytes to the buffer. Encoding is
// total: every constructible value has a wire form, so Append cannot fail.
func (e *Encoder) Append(v Value) {
	e.count++
	e.buf.B = e.appendValue(e.buf.B, v)
}

// Bytes returns the encoded data. The slice shares the underlying buffer
// with the encoder; do not modify it and do not retain it past Reset.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of values appended since creation.
func (e *Encoder) Len() int {
	return e.count
}

// Size returns the total encoded size in bytes.
func (e *Encoder) Size() int {
	return e.buf.Len()
}

// Reset clears the encoder and returns its buffer to the pool.
func (e *Encoder) Reset() {
	if e.buf != nil {
		pool.PutWireBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// Encode returns the wire form of a single value as a freshly allocated
// slice owned by the caller. It is a pure function of its input and always
// picks the smallest tag family that can represent each value, so equal
// values produce identical bytes.
func Encode(v Value) []byte {
	enc := NewEncoder()
	defer enc.Reset()

	enc.Append(v)
	out := make([]byte, enc.Size())
	copy(out, enc.Bytes())

	return out
}

func (e *Encoder) appendValue(buf []byte, v Value) []byte {
	switch v.kind {
	case format.KindNil:
		return append(buf, format.TagNil)
	case format.KindBool:
		if v.num != 0 {
			return append(buf, format.TagTrue)
		}

		return append(buf, format.TagFalse)
	case format.KindInt:
		return e.appendInt(buf, int64(v.num)) //nolint:gosec
	case format.KindUint:
		return e.appendUint(buf, v.num)
	case format.KindFloat:
		// Always the 9-byte float64 form; downcasting to float32 would make
		// the representation depend on the value's precision.
		buf = append(buf, format.TagFloat64)

		return e.engine.AppendUint64(buf, v.num)
	case format.KindString:
		return e.appendString(buf, v.str)
	case format.KindBinary:
		return e.appendBinary(buf, v.bin)
	case format.KindExtension:
		return e.appendExtension(buf, v.extType, v.bin)
	case format.KindArray:
		buf = e.appendArrayHeader(buf, len(v.arr))
		for _, elem := range v.arr {
			buf = e.appendValue(buf, elem)
		}

		return buf
	case format.KindMap:
		buf = e.appendMapHeader(buf, len(v.entries))
		for _, entry := range v.entries {
			buf = e.appendValue(buf, entry.Key)
			buf = e.appendValue(buf, entry.Value)
		}

		return buf
	default:
		// The zero Value has no variant; encode it as nil.
		return append(buf, format.TagNil)
	}
}

// appendInt picks the narrowest signed representation: fixint for [-32, 127],
// then int8/16/32/64 by successive range checks.
func (e *Encoder) appendInt(buf []byte, v int64) []byte {
	switch {
	case v >= 0 && v <= int64(format.PosFixintMax):
		return append(buf, byte(v))
	case v >= -32 && v < 0:
		return append(buf, byte(v)) // two's complement lands on 0xe0-0xff
	case v >= math.MinInt8 && v <= math.MaxInt8:
		return append(buf, format.TagInt8, byte(v))
	case v >= math.MinInt16 && v <= math.MaxInt16:
		buf = append(buf, format.TagInt16)

		return e.engine.AppendUint16(buf, uint16(v)) //nolint:gosec
	case v >= math.MinInt32 && v <= math.MaxInt32:
		buf = append(buf, format.TagInt32)

		return e.engine.AppendUint32(buf, uint32(v)) //nolint:gosec
	default:
		buf = append(buf, format.TagInt64)

		return e.engine.AppendUint64(buf, uint64(v)) //nolint:gosec
	}
}

// appendUint picks the narrowest unsigned family. Uint deliberately never
// uses a fixint so the integer variant survives a round trip.
func (e *Encoder) appendUint(buf []byte, v uint64) []byte {
	switch {
	case v <= math.MaxUint8:
		return append(buf, format.TagUint8, byte(v))
	case v <= math.MaxUint16:
		buf = append(buf, format.TagUint16)

		return e.engine.AppendUint16(buf, uint16(v))
	case v <= math.MaxUint32:
		buf = append(buf, format.TagUint32)

		return e.engine.AppendUint32(buf, uint32(v))
	default:
		buf = append(buf, format.TagUint64)

		return e.engine.AppendUint64(buf, v)
	}
}

func (e *Encoder) appendString(buf []byte, s string) []byte {
	n := len(s)
	switch {
	case n <= format.FixstrMaxLen:
		buf = append(buf, format.FixstrBase|byte(n))
	case n <= math.MaxUint8:
		buf = append(buf, format.TagStr8, byte(n))
	case n <= math.MaxUint16:
		buf = append(buf, format.TagStr16)
		buf = e.engine.AppendUint16(buf, uint16(n))
	default:
		buf = append(buf, format.TagStr32)
		buf = e.engine.AppendUint32(buf, uint32(n)) //nolint:gosec
	}

	return append(buf, s...)
}

func (e *Encoder) appendBinary(buf []byte, data []byte) []byte {
	n := len(data)
	switch {
	case n <= math.MaxUint8:
		buf = append(buf, format.TagBin8, byte(n))
	case n <= math.MaxUint16:
		buf = append(buf, format.TagBin16)
		buf = e.engine.AppendUint16(buf, uint16(n))
	default:
		buf = append(buf, format.TagBin32)
		buf = e.engine.AppendUint32(buf, uint32(n)) //nolint:gosec
	}

	return append(buf, data...)
}

// appendExtension prefers the five fixed-length fixext encodings on an exact
// payload length match, then falls back to the explicit-length families.
func (e *Encoder) appendExtension(buf []byte, typeID int8, data []byte) []byte {
	n := len(data)
	switch {
	case n == 1:
		buf = append(buf, format.TagFixExt1)
	case n == 2:
		buf = append(buf, format.TagFixExt2)
	case n == 4:
		buf = append(buf, format.TagFixExt4)
	case n == 8:
		buf = append(buf, format.TagFixExt8)
	case n == 16:
		buf = append(buf, format.TagFixExt16)
	case n <= math.MaxUint8:
		buf = append(buf, format.TagExt8, byte(n))
	case n <= math.MaxUint16:
		buf = append(buf, format.TagExt16)
		buf = e.engine.AppendUint16(buf, uint16(n))
	default:
		buf = append(buf, format.TagExt32)
		buf = e.engine.AppendUint32(buf, uint32(n)) //nolint:gosec
	}

	buf = append(buf, byte(typeID))

	return append(buf, data...)
}

func (e *Encoder) appendArrayHeader(buf []byte, n int) []byte {
	switch {
	case n <= format.FixarrayMaxLen:
		return append(buf, format.FixarrayBase|byte(n))
	case n <= math.MaxUint16:
		buf = append(buf, format.TagArray16)

		return e.engine.AppendUint16(buf, uint16(n))
	default:
		buf = append(buf, format.TagArray32)

		return e.engine.AppendUint32(buf, uint32(n)) //nolint:gosec
	}
}

func (e *Encoder) appendMapHeader(buf []byte, n int) []byte {
	switch {
	case n <= format.FixmapMaxLen:
		return append(buf, format.FixmapBase|byte(n))
	case n <= math.MaxUint16:
		buf = append(buf, format.TagMap16)

		return e.engine.AppendUint16(buf, uint16(n))
	default:
		buf = append(buf, format.TagMap32)

		return e.engine.AppendUint32(buf, uint32(n)) //nolint:gosec
	}
}
