// Package compress provides compression codecs for sealed message payloads.
//
// Compression is applied at the envelope level, after a value has been
// encoded to its wire form. Encoded messages with repetitive structure
// (string-keyed maps, long arrays of similar records) compress well; small
// scalar messages usually do not, which is why CompressionNone is the
// default.
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Four algorithms are supported, selected by format.CompressionType:
//
//   - None: no compression, zero overhead
//   - Zstd: best ratio, moderate speed (gozstd under cgo, pure Go otherwise)
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
//
// All codec implementations are stateless or internally pooled and safe for
// concurrent use. Compressed output is always a freshly allocated slice owned
// by the caller; input slices are never modified.
package compress
