// Package wire implements the deterministic, bounds-checked binary primitives
// the rest of ibt decodes .ibt files with: little-endian scalar reads and
// fixed-length null-terminated ASCII string reads.
//
// No function in this package allocates beyond the string it returns, and
// none depends on any section of the file beyond the bytes it is given.
package wire

import (
	"fmt"
	"math"

	"github.com/ibtelemetry/ibt/endian"
	"github.com/ibtelemetry/ibt/errs"
)

func checkBounds(data []byte, off, width int) error {
	if off < 0 || width < 0 || off+width > len(data) {
		return fmt.Errorf("%w: offset %d width %d exceeds buffer of %d bytes", errs.ErrTruncated, off, width, len(data))
	}

	return nil
}

// ReadU8 reads a single unsigned byte at off.
func ReadU8(data []byte, off int) (uint8, error) {
	if err := checkBounds(data, off, 1); err != nil {
		return 0, err
	}

	return data[off], nil
}

// ReadI32 reads a signed 32-bit integer at off in engine's byte order
// (little-endian for .ibt data).
func ReadI32(data []byte, off int, engine endian.EndianEngine) (int32, error) {
	u, err := ReadU32(data, off, engine)
	if err != nil {
		return 0, err
	}

	return int32(u), nil
}

// ReadU32 reads an unsigned 32-bit integer at off in engine's byte order.
func ReadU32(data []byte, off int, engine endian.EndianEngine) (uint32, error) {
	if err := checkBounds(data, off, 4); err != nil {
		return 0, err
	}

	return engine.Uint32(data[off : off+4]), nil
}

// ReadF32 reads an IEEE-754 binary32 value at off in engine's byte order.
func ReadF32(data []byte, off int, engine endian.EndianEngine) (float32, error) {
	u, err := ReadU32(data, off, engine)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(u), nil
}

// ReadF64 reads an IEEE-754 binary64 value at off in engine's byte order.
func ReadF64(data []byte, off int, engine endian.EndianEngine) (float64, error) {
	if err := checkBounds(data, off, 8); err != nil {
		return 0, err
	}

	return math.Float64frombits(engine.Uint64(data[off : off+8])), nil
}

// ReadFixedASCII reads exactly length bytes starting at off, stops at the
// first 0x00, and decodes the prefix as ASCII. Bytes beyond a NUL are
// discarded. The source file is specified ASCII; non-ASCII bytes pass
// through as their numeric value rather than being validated.
func ReadFixedASCII(data []byte, off, length int) (string, error) {
	if err := checkBounds(data, off, length); err != nil {
		return "", err
	}

	field := data[off : off+length]
	n := 0
	for n < len(field) && field[n] != 0x00 {
		n++
	}

	return string(field[:n]), nil
}
