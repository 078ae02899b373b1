// Package parquetexport writes a decoded .ibt handle's sample stream to an
// Apache Parquet file: one row per sample frame, one column per projected
// variable, plus the session_id and sample_idx bookkeeping columns.
package parquetexport

import (
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/ibtelemetry/ibt"
	"github.com/ibtelemetry/ibt/errs"
	"github.com/ibtelemetry/ibt/section"
)

// Export resolves a projection against h's dictionary and writes the full
// sample stream to outPath as a single Parquet file. It returns the number
// of rows written and the projected names that did not resolve against the
// dictionary, reported as data rather than logged.
func Export(h *ibt.Handle, outPath string, opts ...Option) (int64, []string, error) {
	cfg := newConfig(opts)

	vars := h.Variables()
	dict := section.NewDictionary(vars)

	names := selectProjectionNames(cfg, vars)

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
	sessionID := h.SessionID()

	var rowCount int64
	for view := range h.Samples(cfg.ctx) {
		sessionIDBuilder.Append(sessionID)
		sampleIdxBuilder.Append(int32(view.Index()))

		for i, s := range specs {
			v, ok := view.Get(s.name)
			builders[i].Append(v, ok)
		}

		rowCount++
	}

	if err := h.Err(); err != nil {
		return 0, dropped, err
	}

	if err := cfg.ctx.Err(); err != nil {
		return 0, dropped, fmt.Errorf("%w: %w", errs.ErrCancelled, err)
	}

	cols := make([]arrow.Array, 0, len(specs)+2)
	cols = append(cols, sessionIDBuilder.NewArray(), sampleIdxBuilder.NewArray())

	for _, cb := range builders {
		cols = append(cols, cb.NewArray())
	}

	return rowCount, dropped, writeParquet(schema, cols, rowCount, outPath)
}

func writeParquet(schema *arrow.Schema, cols []arrow.Array, rowCount int64, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", errs.ErrIo, outPath, err)
	}
	defer f.Close()

	writerProps := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.DefaultWriterProps()

	writer, err := pqarrow.NewFileWriter(schema, f, writerProps, arrowProps)
	if err != nil {
		return fmt.Errorf("%w: new parquet writer: %w", errs.ErrIo, err)
	}

	record := array.NewRecord(schema, cols, rowCount)
	defer record.Release()

	if err := writer.Write(record); err != nil {
		return fmt.Errorf("%w: write parquet record: %w", errs.ErrIo, err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("%w: close parquet writer: %w", errs.ErrIo, err)
	}

	return nil
}
