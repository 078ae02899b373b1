package section

import (
	"fmt"

	"github.com/ibtelemetry/ibt/endian"
	"github.com/ibtelemetry/ibt/errs"
	"github.com/ibtelemetry/ibt/wire"
)

// FileHeader represents the 112-byte fixed header at the start of an .ibt file:
// 28 signed little-endian int32 fields, seventeen of them (indices 10-12 and
// 14-27) reserved slots that are consumed but otherwise ignored.
type FileHeader struct {
	// Version is the SDK schema version. Must equal 2.
	Version int32
	// Status is an opaque status word, stored verbatim.
	Status int32
	// TickRate is the sample rate in Hz. It is stored as read; ParseFileHeader
	// does not check that it is positive.
	TickRate int32
	// SessionInfoUpdate is a monotonic revision counter, stored verbatim.
	SessionInfoUpdate int32
	// SessionInfoLen is the length in bytes of the YAML session-info blob.
	SessionInfoLen int32
	// SessionInfoOffset is the absolute byte offset of the YAML session-info blob.
	SessionInfoOffset int32
	// NumVars is the number of VarHeader entries (N).
	NumVars int32
	// VarHeaderOffset is the absolute byte offset of the VarHeader array.
	VarHeaderOffset int32
	// NumBuf is the number of sample frames (M).
	NumBuf int32
	// BufLen is the byte length of a single sample frame.
	BufLen int32
	// BufOffset is the absolute byte offset of the sample region.
	BufOffset int32
}

// ParseFileHeader decodes the 112-byte FileHeader from data, which must
// contain at least FileHeaderSize bytes starting at offset 0.
//
// Validation per spec.md §4.B:
//   - Version must equal 2 (errs.ErrUnsupportedVersion otherwise).
//   - SessionInfoOffset, VarHeaderOffset, BufOffset must each be >= FileHeaderSize.
//   - NumVars and NumBuf must be >= 0.
//   - BufLen must be > 0 whenever NumBuf > 0.
func ParseFileHeader(data []byte) (FileHeader, error) {
	engine := endian.GetLittleEndianEngine()

	var raw [28]int32
	for i := range raw {
		v, err := wire.ReadI32(data, i*4, engine)
		if err != nil {
			return FileHeader{}, err
		}
		raw[i] = v
	}

	h := FileHeader{
		Version:           raw[0],
		Status:            raw[1],
		TickRate:          raw[2],
		SessionInfoUpdate: raw[3],
		SessionInfoLen:    raw[4],
		SessionInfoOffset: raw[5],
		NumVars:           raw[6],
		VarHeaderOffset:   raw[7],
		NumBuf:            raw[8],
		BufLen:            raw[9],
		// raw[10..12] reserved
		BufOffset: raw[13],
		// raw[14..27] reserved
	}

	if err := h.validate(); err != nil {
		return FileHeader{}, err
	}

	return h, nil
}

func (h FileHeader) validate() error {
	if h.Version != 2 {
		return fmt.Errorf("%w: version %d", errs.ErrUnsupportedVersion, h.Version)
	}

	if h.SessionInfoOffset < FileHeaderSize {
		return fmt.Errorf("%w: session_info_offset %d is before header end", errs.ErrInvalidHeader, h.SessionInfoOffset)
	}

	if h.VarHeaderOffset < FileHeaderSize {
		return fmt.Errorf("%w: var_header_offset %d is before header end", errs.ErrInvalidHeader, h.VarHeaderOffset)
	}

	if h.BufOffset < FileHeaderSize {
		return fmt.Errorf("%w: buf_offset %d is before header end", errs.ErrInvalidHeader, h.BufOffset)
	}

	if h.NumVars < 0 {
		return fmt.Errorf("%w: num_vars %d is negative", errs.ErrInvalidHeader, h.NumVars)
	}

	if h.NumBuf < 0 {
		return fmt.Errorf("%w: num_buf %d is negative", errs.ErrInvalidHeader, h.NumBuf)
	}

	if h.NumBuf > 0 && h.BufLen <= 0 {
		return fmt.Errorf("%w: buf_len %d must be positive when num_buf %d > 0", errs.ErrInvalidHeader, h.BufLen, h.NumBuf)
	}

	return nil
}
