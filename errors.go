package mpack

import "fmt"

// ParseError reports that a buffer could not be decoded. Byte is the
// absolute offset of the first byte that made decoding impossible, relative
// to the buffer originally passed to Decode or Parse; offsets from nested
// parses compose additively on the way out.
type ParseError struct {
	// Byte is the offset where the error was found.
	Byte int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("msgpack parse error at byte %d", e.Byte)
}

// Offset returns a copy of the error shifted forward by n bytes. The decoder
// uses it to translate an error from a nested parse into the coordinates of
// the enclosing buffer.
func (e *ParseError) Offset(n int) *ParseError {
	return &ParseError{Byte: e.Byte + n}
}

// ConversionError reports that a value was accessed as a variant it is not.
// It carries the untouched original value so the caller can recover it and
// retry with a different accessor.
type ConversionError struct {
	// Original is the value the failed accessor was called on.
	Original Value
	// Attempted labels the variant the caller asked for.
	Attempted string
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("msgpack conversion error: cannot use %s as %s", e.Original.Kind(), e.Attempted)
}

// Recover returns the original value the failed accessor was called on.
func (e *ConversionError) Recover() Value {
	return e.Original
}
