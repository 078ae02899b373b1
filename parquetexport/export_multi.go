package parquetexport

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/ibtelemetry/ibt"
	"github.com/ibtelemetry/ibt/errs"
	"github.com/ibtelemetry/ibt/section"
)

// ExportMulti concatenates the sample streams of paths, in order, into one
// Parquet file at outPath. It returns the number of rows written and the
// projected names that did not resolve against the first file's dictionary
// (the basis for the fixed schema), reported as data rather than logged.
// A later file that lacks one of the schema's variables emits nulls for
// that column regardless of the configured OnMissingVariable policy, which
// governs only the initial schema resolution. sample_idx restarts at zero
// for each file, and rows are never interleaved across files: the whole of
// one file's stream is appended before the next file's first row.
func ExportMulti(paths []string, outPath string, opts ...Option) (int64, []string, error) {
	if len(paths) == 0 {
		return 0, nil, fmt.Errorf("%w: no input files", errs.ErrProjectionEmpty)
	}

	cfg := newConfig(opts)

	first, err := ibt.Open(paths[0])
	if err != nil {
		return 0, nil, err
	}
	defer first.Close()

	dict := section.NewDictionary(first.Variables())
	names := selectProjectionNames(cfg, first.Variables())

	specs, dropped, err := buildColumnSpecs(dict, names, cfg.onMissing)
	if err != nil {
		return 0, dropped, err
	}

	schema := buildArrowSchema(specs)
	mem := memory.NewGoAllocator()

	builders := make([]*columnBuilder, len(specs))
	for i, s := range specs {
		builders[i] = newColumnBuilder(mem, s)
	}

	sessionIDBuilder := array.NewStringBuilder(mem)
	sampleIdxBuilder := array.NewInt32Builder(mem)

	var rowCount int64

	if err := appendFile(cfg, first, specs, builders, sessionIDBuilder, sampleIdxBuilder, &rowCount); err != nil {
		return 0, dropped, err
	}

	reportProgress(cfg, 1, len(paths), paths[0])

	for i, path := range paths[1:] {
		if err := cfg.ctx.Err(); err != nil {
			return 0, dropped, fmt.Errorf("%w: %w", errs.ErrCancelled, err)
		}

		h, err := ibt.Open(path)
		if err != nil {
			return 0, dropped, err
		}

		err = appendFile(cfg, h, specs, builders, sessionIDBuilder, sampleIdxBuilder, &rowCount)
		closeErr := h.Close()

		if err != nil {
			return 0, dropped, err
		}
		if closeErr != nil {
			return 0, dropped, closeErr
		}

		reportProgress(cfg, i+2, len(paths), path)
	}

	cols := make([]arrow.Array, 0, len(specs)+2)
	cols = append(cols, sessionIDBuilder.NewArray(), sampleIdxBuilder.NewArray())

	for _, cb := range builders {
		cols = append(cols, cb.NewArray())
	}

	return rowCount, dropped, writeParquet(schema, cols, rowCount, outPath)
}

// appendFile streams h's samples into builders, resolving each column's
// name against h's own dictionary (which may differ from the dictionary the
// schema was built from) so that a variable missing from this particular
// file emits nulls without disturbing the fixed schema.
func appendFile(
	cfg config,
	h *ibt.Handle,
	specs []columnSpec,
	builders []*columnBuilder,
	sessionIDBuilder *array.StringBuilder,
	sampleIdxBuilder *array.Int32Builder,
	rowCount *int64,
) error {
	sessionID := h.SessionID()

	for view := range h.Samples(cfg.ctx) {
		sessionIDBuilder.Append(sessionID)
		sampleIdxBuilder.Append(int32(view.Index()))

		for i, s := range specs {
			v, ok := view.Get(s.name)
			builders[i].Append(v, ok)
		}

		*rowCount++
	}

	return h.Err()
}

func reportProgress(cfg config, current, total int, path string) {
	if cfg.progress != nil {
		cfg.progress(current, total, path)
	}
}
