// Package ibt decodes iRacing .ibt binary telemetry files into a header, a
// session-info tree, a variable dictionary, and a streaming sequence of
// typed sample views.
package ibt

import (
	"context"
	"fmt"
	"iter"
	"os"

	"github.com/ibtelemetry/ibt/errs"
	"github.com/ibtelemetry/ibt/sample"
	"github.com/ibtelemetry/ibt/section"
	"github.com/ibtelemetry/ibt/session"
)

// Option configures Open.
type Option func(*openConfig)

type openConfig struct {
	onSessionInfoError session.OnError
}

// WithSessionInfoErrorPolicy selects how a malformed session-info YAML blob
// is handled. The default is session.OnErrorFail.
func WithSessionInfoErrorPolicy(p session.OnError) Option {
	return func(c *openConfig) {
		c.onSessionInfoError = p
	}
}

// Handle is the decoded view of one .ibt file: its FileHeader, DiskSubHeader,
// variable dictionary, and session-info tree, plus the open file used to
// stream sample frames on demand.
//
// A Handle is not safe for concurrent use. It may be used by one goroutine
// at a time; a sample iterator borrows it exclusively for its lifetime.
type Handle struct {
	file *os.File

	header section.FileHeader
	disk   section.DiskSubHeader
	dict   section.Dictionary
	info   session.Info

	lastStreamErr error
	closed        bool
}

// Open decodes path's header, variable dictionary, and session info. The
// underlying file is kept open until Close; sample frames are read lazily.
func Open(path string, opts ...Option) (*Handle, error) {
	cfg := openConfig{onSessionInfoError: session.OnErrorFail}
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", errs.ErrNotFound, path)
		}

		return nil, fmt.Errorf("%w: open %s: %w", errs.ErrIo, path, err)
	}

	header, disk, dict, err := section.Decode(f)
	if err != nil {
		_ = f.Close()

		return nil, err
	}

	info, err := readSessionInfo(f, header, cfg.onSessionInfoError)
	if err != nil {
		_ = f.Close()

		return nil, err
	}

	return &Handle{file: f, header: header, disk: disk, dict: dict, info: info}, nil
}

func readSessionInfo(f *os.File, header section.FileHeader, onErr session.OnError) (session.Info, error) {
	if header.SessionInfoLen <= 0 {
		return session.Parse(nil, onErr)
	}

	raw := make([]byte, header.SessionInfoLen)
	if _, err := f.ReadAt(raw, int64(header.SessionInfoOffset)); err != nil {
		return session.Info{}, fmt.Errorf("%w: session info read: %w", errs.ErrIo, err)
	}

	return session.Parse(raw, onErr)
}

// Header returns the decoded 112-byte file header.
func (h *Handle) Header() section.FileHeader {
	return h.header
}

// DiskHeader returns the decoded 32-byte disk sub-header.
func (h *Handle) DiskHeader() section.DiskSubHeader {
	return h.disk
}

// Variables returns the variable dictionary in file declaration order.
func (h *Handle) Variables() []section.VarHeader {
	return h.dict.Vars()
}

// Duplicates returns the variable names that collided, case-insensitively,
// with an earlier dictionary entry. The first occurrence of a name is kept
// in Variables; later occurrences are reported here rather than logged.
func (h *Handle) Duplicates() []section.DuplicateName {
	return h.dict.Duplicates()
}

// SessionInfo returns the parsed session-info tree.
func (h *Handle) SessionInfo() session.Info {
	return h.info
}

// SessionID returns the derived "{SubSessionID}-{SessionID}" identifier.
func (h *Handle) SessionID() string {
	return h.info.SessionID()
}

// Samples returns a lazy, finite, single-pass sequence of this file's sample
// frames, in ascending index order. Cancelling ctx stops iteration cleanly.
// If a short read terminates the sequence early, Err returns the cause once
// ranging has stopped.
func (h *Handle) Samples(ctx context.Context) iter.Seq[sample.View] {
	if h.closed {
		return func(func(sample.View) bool) {}
	}

	h.lastStreamErr = nil

	return sample.Stream(ctx, h.file, h.dict, int64(h.header.BufOffset), h.header.BufLen, h.header.NumBuf, &h.lastStreamErr)
}

// Err returns the error, if any, that terminated the most recent Samples
// iteration before it reached the final frame.
func (h *Handle) Err() error {
	return h.lastStreamErr
}

// SampleAt performs random access to the sample frame at index using a
// buffer dedicated to this call, independent of any Samples iteration.
func (h *Handle) SampleAt(ctx context.Context, index int) (sample.View, error) {
	if h.closed {
		return sample.View{}, errs.ErrClosed
	}

	return sample.At(ctx, h.file, h.dict, int64(h.header.BufOffset), h.header.BufLen, h.header.NumBuf, index)
}

// Close releases the underlying file. It is safe to call more than once.
func (h *Handle) Close() error {
	if h.closed {
		return nil
	}

	h.closed = true

	return h.file.Close()
}
