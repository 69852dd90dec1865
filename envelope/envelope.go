// Package envelope frames a single encoded message for storage or transport.
//
// A sealed envelope is a fixed 20-byte header followed by the payload,
// optionally compressed. The header records the compression algorithm, both
// payload sizes, and an xxHash64 checksum of the raw payload, so Open can
// verify integrity end to end regardless of which codec produced the bytes.
//
//	sealed, err := envelope.Seal(encoded, envelope.WithCompression(format.CompressionZstd))
//	...
//	payload, err := envelope.Open(sealed)
package envelope

import (
	"fmt"
	"math"

	"github.com/mpkit/mpack/compress"
	"github.com/mpkit/mpack/errs"
	"github.com/mpkit/mpack/format"
	"github.com/mpkit/mpack/internal/hash"
	"github.com/mpkit/mpack/internal/options"
)

type sealConfig struct {
	compression format.CompressionType
}

// Option configures Seal.
type Option = options.Option[*sealConfig]

// WithCompression selects the payload compression algorithm. The default is
// format.CompressionNone.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *sealConfig) error {
		switch c {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.compression = c
			return nil
		default:
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, c)
		}
	})
}

// Seal wraps an encoded payload into an envelope: compress per options,
// checksum the raw bytes, and prepend the header.
func Seal(payload []byte, opts ...Option) ([]byte, error) {
	cfg := &sealConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if len(payload) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload length %d", errs.ErrInvalidPayloadSize, len(payload))
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	header := Header{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: cfg.compression,
		PayloadSize: uint32(len(compressed)), //nolint:gosec
		RawSize:     uint32(len(payload)),    //nolint:gosec
		Checksum:    hash.Sum(payload),
	}

	out := make([]byte, 0, HeaderSize+len(compressed))
	out = append(out, header.Bytes()...)
	out = append(out, compressed...)

	return out, nil
}

// Open validates an envelope and returns its raw payload: parse the header,
// decompress, and verify both the recorded size and the checksum. Any
// mismatch fails with a sentinel from the errs package; no partial payload is
// ever returned.
func Open(data []byte) ([]byte, error) {
	var header Header
	if err := header.Parse(data); err != nil {
		return nil, err
	}

	payload := data[HeaderSize:]
	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: header records %d bytes, %d present",
			errs.ErrInvalidPayloadSize, header.PayloadSize, len(payload))
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCompression, header.Compression)
	}
	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	if len(raw) != int(header.RawSize) {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrRawSizeMismatch, header.RawSize, len(raw))
	}
	if hash.Sum(raw) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	return raw, nil
}
