package sample

import (
	"context"
	"fmt"
	"iter"

	"github.com/ibtelemetry/ibt/errs"
	"github.com/ibtelemetry/ibt/internal/pool"
	"github.com/ibtelemetry/ibt/section"
)

// Source is the random-access byte source a sample stream reads frames from.
type Source = section.Source

// Stream returns a lazy, finite, single-pass sequence of num_buf sample
// views read from src starting at bufOffset, each bufLen bytes, in strictly
// ascending index order.
//
// The sequence reuses one pooled buffer of bufLen bytes across all frames:
// per spec.md §4.D, a View is invalidated once the next one is produced.
// Range stops early, without partial emission of the in-flight frame, when
// ctx is cancelled; that is not an error and errOut is left untouched.
//
// A short read terminates the sequence early and, if errOut is non-nil,
// records errs.ErrShortRead there for the caller to inspect once ranging
// stops, the same after-the-fact error pattern bufio.Scanner uses.
func Stream(ctx context.Context, src Source, dict section.Dictionary, bufOffset int64, bufLen int32, numBuf int32, errOut *error) iter.Seq[View] {
	return func(yield func(View) bool) {
		if numBuf <= 0 {
			return
		}

		buf := pool.GetFrameBuffer()
		defer pool.PutFrameBuffer(buf)
		buf.Grow(int(bufLen))
		buf.SetLength(int(bufLen))

		for k := 0; k < int(numBuf); k++ {
			select {
			case <-ctx.Done():
				return
			default:
			}

			off := bufOffset + int64(k)*int64(bufLen)
			if _, err := src.ReadAt(buf.Bytes(), off); err != nil {
				if errOut != nil {
					*errOut = fmt.Errorf("%w: frame %d at offset %d: %w", errs.ErrShortRead, k, off, err)
				}

				return
			}

			if !yield(NewView(dict, k, buf.Bytes())) {
				return
			}
		}
	}
}

// At performs random access to the sample frame at index, using a buffer
// dedicated to this call rather than the pooled streaming buffer, so the
// returned View remains valid independent of any concurrent or subsequent
// Stream iteration.
func At(ctx context.Context, src Source, dict section.Dictionary, bufOffset int64, bufLen int32, numBuf int32, index int) (View, error) {
	if err := ctx.Err(); err != nil {
		return View{}, fmt.Errorf("%w: %w", errs.ErrCancelled, err)
	}

	if index < 0 || index >= int(numBuf) {
		return View{}, fmt.Errorf("%w: index %d, num_buf %d", errs.ErrIndexOutOfRange, index, numBuf)
	}

	frame := make([]byte, bufLen)
	off := bufOffset + int64(index)*int64(bufLen)
	if _, err := src.ReadAt(frame, off); err != nil {
		return View{}, fmt.Errorf("%w: frame %d at offset %d: %w", errs.ErrShortRead, index, off, err)
	}

	return NewView(dict, index, frame), nil
}
