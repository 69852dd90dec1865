// Package mpack implements a codec for dynamic, schema-less MessagePack
// data.
//
// Data is abstracted by the Value type, a closed tagged union that can hold
// any combination of nested scalars, strings, binary blobs, arrays, ordered
// key-value maps, and typed extension payloads. It targets applications that
// exchange dynamic structures without a schema; for static models a
// reflection- or generation-based MessagePack library is the better tool.
//
// # Basic Usage
//
// Building, encoding, and decoding a message:
//
//	import "github.com/mpkit/mpack"
//
//	message := mpack.Map(
//	    mpack.MapEntry{Key: mpack.String("hello"), Value: mpack.Int(42)},
//	    mpack.MapEntry{Key: mpack.String("world"), Value: mpack.Array(
//	        mpack.Bool(true),
//	        mpack.Nil(),
//	        mpack.Binary([]byte{0x42, 0xff}),
//	    )},
//	)
//
//	encoded := mpack.Encode(message)
//	decoded, err := mpack.Parse(encoded)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(decoded) // {"hello": 42, "world": [true, nil, bin:42ff]}
//
// Use Decode instead of Parse when the value is embedded in a larger stream
// and the consumed length matters. Per-variant predicates (IsString, IsMap,
// ...) and accessors (AsString, AsMap, ...) navigate a decoded tree; a
// failed accessor returns a ConversionError that carries the original value.
//
// # Envelopes
//
// The envelope package frames one encoded message with a checksummed header
// and optional compression. Pack and Unpack below combine the codec and the
// envelope in one call.
//
// # Package Structure
//
// The core codec lives in this package. Subpackages: format (wire tags and
// kind labels), envelope (framing), compress (payload codecs), endian (byte
// order utilities), errs (envelope sentinels).
package mpack

import (
	"github.com/mpkit/mpack/envelope"
	"github.com/mpkit/mpack/internal/hash"
)

// Fingerprint returns the xxHash64 digest of the value's wire encoding.
// Encoding is canonical (minimal-width tags, preserved order), so
// structurally equal values fingerprint identically. Useful for dedup and
// cache keys.
func Fingerprint(v Value) uint64 {
	return hash.Sum(Encode(v))
}

// Pack encodes a value and seals it into an envelope in one step.
//
//	sealed, err := mpack.Pack(message, envelope.WithCompression(format.CompressionS2))
func Pack(v Value, opts ...envelope.Option) ([]byte, error) {
	return envelope.Seal(Encode(v), opts...)
}

// Unpack opens a sealed envelope and decodes the value inside. It is the
// inverse of Pack for every compression option.
func Unpack(data []byte) (Value, error) {
	payload, err := envelope.Open(data)
	if err != nil {
		return Value{}, err
	}

	return Parse(payload)
}
