// Package errs defines sentinel errors shared by the envelope layer.
//
// Callers match them with errors.Is; producing code wraps them with
// fmt.Errorf("...: %w", ...) to add context.
package errs

import "errors"

var (
	// ErrInvalidHeaderSize indicates the envelope data is shorter than the fixed header.
	ErrInvalidHeaderSize = errors.New("invalid envelope header size")

	// ErrInvalidMagicNumber indicates the envelope does not start with the expected magic number.
	ErrInvalidMagicNumber = errors.New("invalid envelope magic number")

	// ErrUnsupportedVersion indicates the envelope was sealed by a newer format revision.
	ErrUnsupportedVersion = errors.New("unsupported envelope version")

	// ErrInvalidCompression indicates an unknown compression type, either in an
	// envelope header or in a seal option.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrInvalidPayloadSize indicates the payload length recorded in the header
	// does not match the bytes actually present.
	ErrInvalidPayloadSize = errors.New("invalid envelope payload size")

	// ErrRawSizeMismatch indicates the decompressed payload does not have the
	// size recorded in the header.
	ErrRawSizeMismatch = errors.New("envelope raw size mismatch")

	// ErrChecksumMismatch indicates the decompressed payload does not match the
	// checksum recorded in the header.
	ErrChecksumMismatch = errors.New("envelope checksum mismatch")
)
