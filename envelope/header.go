package envelope

import (
	"fmt"

	"github.com/mpkit/mpack/endian"
	"github.com/mpkit/mpack/errs"
	"github.com/mpkit/mpack/format"
)

const (
	// MagicNumber marks the start of a sealed envelope ("MP" in ASCII).
	MagicNumber uint16 = 0x4d50

	// Version is the current envelope format revision.
	Version uint8 = 1

	// HeaderSize is the fixed size of the envelope header in bytes.
	HeaderSize = 20
)

// Header is the fixed-size envelope header. All fields are big-endian, the
// byte order of the payload it frames.
//
// Layout:
//   - offset 0-1:   magic number (0x4D50)
//   - offset 2:     version
//   - offset 3:     compression type
//   - offset 4-7:   compressed payload size
//   - offset 8-11:  raw (uncompressed) payload size
//   - offset 12-19: xxHash64 checksum of the raw payload
type Header struct {
	Checksum    uint64
	PayloadSize uint32
	RawSize     uint32
	Magic       uint16
	Version     uint8
	Compression format.CompressionType
}

// Parse parses and validates the header from the front of data.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}

	engine := endian.GetBigEndianEngine()
	h.Magic = engine.Uint16(data[0:2])
	h.Version = data[2]
	h.Compression = format.CompressionType(data[3])
	h.PayloadSize = engine.Uint32(data[4:8])
	h.RawSize = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint64(data[12:20])

	if h.Magic != MagicNumber {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, h.Magic)
	}
	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}

	return nil
}

// Bytes serializes the header into a new byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := endian.GetBigEndianEngine()
	engine.PutUint16(b[0:2], h.Magic)
	b[2] = h.Version
	b[3] = byte(h.Compression)
	engine.PutUint32(b[4:8], h.PayloadSize)
	engine.PutUint32(b[8:12], h.RawSize)
	engine.PutUint64(b[12:20], h.Checksum)

	return b
}
