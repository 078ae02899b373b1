// Package errs defines the sentinel errors returned by the ibt packages.
//
// Callers should use errors.Is against these values rather than comparing
// formatted strings; every package wraps the sentinel with fmt.Errorf("%w: ...")
// to attach the offending offset, variable name, or index.
package errs

import "errors"

var (
	// ErrNotFound is returned when the underlying file does not exist.
	ErrNotFound = errors.New("ibt: file not found")

	// ErrIo is returned for underlying storage read/seek failures.
	ErrIo = errors.New("ibt: io error")

	// ErrTruncated is returned when a read demands more bytes than the source offers.
	ErrTruncated = errors.New("ibt: truncated read")

	// ErrUnsupportedVersion is returned when FileHeader.Version is not 2.
	ErrUnsupportedVersion = errors.New("ibt: unsupported file version")

	// ErrInvalidHeader is returned when a header field violates its invariant
	// (offsets below header end, negative counts, zero buf_len with buffers present).
	ErrInvalidHeader = errors.New("ibt: invalid file header")

	// ErrUnknownVarType is returned when a VarHeader.Type tag is outside {0..5}.
	ErrUnknownVarType = errors.New("ibt: unknown variable type")

	// ErrVarOutOfFrame is returned when a VarHeader's declared region exceeds buf_len.
	ErrVarOutOfFrame = errors.New("ibt: variable region exceeds sample frame")

	// ErrSessionInfoMalformed is returned when the session-info YAML blob fails to parse.
	ErrSessionInfoMalformed = errors.New("ibt: session info malformed")

	// ErrProjectionEmpty is returned when no projected variable resolves against the dictionary.
	ErrProjectionEmpty = errors.New("ibt: projection resolved no variables")

	// ErrCancelled is returned when a caller-supplied context is cancelled mid-operation.
	ErrCancelled = errors.New("ibt: cancelled")

	// ErrVariableNotFound is returned by Dictionary.Lookup for an unknown name.
	ErrVariableNotFound = errors.New("ibt: variable not found")

	// ErrShortRead is returned when a sample frame has fewer than buf_len bytes available.
	ErrShortRead = errors.New("ibt: short read of sample frame")

	// ErrIndexOutOfRange is returned by SampleAt for an index outside [0, num_buf).
	ErrIndexOutOfRange = errors.New("ibt: sample index out of range")

	// ErrClosed is returned when an operation is attempted on a closed Handle.
	ErrClosed = errors.New("ibt: handle closed")
)
