package parquetexport

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/ibtelemetry/ibt/errs"
	"github.com/ibtelemetry/ibt/format"
	"github.com/ibtelemetry/ibt/section"
)

// columnSpec describes one projected output column: its canonical dictionary
// name, the Arrow-mapped type it will be built with, and whether it resolved
// against the base dictionary.
type columnSpec struct {
	name     string
	varType  format.VarType
	resolved bool
}

// selectProjectionNames resolves which names to project, in priority order:
// an explicit WithProjection list, then WithIncludeAll, then DefaultRoster.
func selectProjectionNames(cfg config, vars []section.VarHeader) []string {
	switch {
	case len(cfg.projection) > 0:
		return cfg.projection
	case cfg.includeAll:
		names := make([]string, len(vars))
		for i, v := range vars {
			names[i] = v.Name
		}

		return names
	default:
		return DefaultRoster
	}
}

// buildColumnSpecs resolves names against dict via dict.Resolve, then
// restores the caller's requested order over the resolved/dropped split.
// A name that resolves keeps the dictionary's own type and canonical
// spelling. A name that does not resolve is dropped under DropMissing, or
// kept as a float64 null-only column under NullColumn (no VarHeader exists
// to infer its real type). The second return value is always the full set
// of names that did not resolve, regardless of onMissing, so a caller can
// report them rather than have them vanish silently.
func buildColumnSpecs(dict section.Dictionary, names []string, onMissing OnMissingVariable) ([]columnSpec, []string, error) {
	resolvedIdx, dropped := dict.Resolve(names)
	vars := dict.Vars()

	isDropped := make(map[string]struct{}, len(dropped))
	for _, name := range dropped {
		isDropped[name] = struct{}{}
	}

	specs := make([]columnSpec, 0, len(names))
	next := 0

	for _, name := range names {
		if _, missing := isDropped[name]; !missing {
			vh := vars[resolvedIdx[next]]
			next++
			specs = append(specs, columnSpec{name: vh.Name, varType: vh.Type, resolved: true})
			continue
		}

		if onMissing == NullColumn {
			specs = append(specs, columnSpec{name: name, varType: format.Double, resolved: false})
		}
	}

	if len(specs) == 0 {
		return nil, dropped, errs.ErrProjectionEmpty
	}

	return specs, dropped, nil
}

// arrowTypeFor maps a VarType to its Arrow column type per the
// Char->string, Bool->boolean, Int->int32, BitField->uint32, Float->float32,
// Double->float64 table. Array-valued variables flatten to their last
// element, so the column type is always the scalar element type.
func arrowTypeFor(t format.VarType) arrow.DataType {
	switch t {
	case format.Char:
		return arrow.BinaryTypes.String
	case format.Bool:
		return arrow.FixedWidthTypes.Boolean
	case format.Int:
		return arrow.PrimitiveTypes.Int32
	case format.BitField:
		return arrow.PrimitiveTypes.Uint32
	case format.Float:
		return arrow.PrimitiveTypes.Float32
	default:
		return arrow.PrimitiveTypes.Float64
	}
}

// buildArrowSchema lays out the fixed session_id/sample_idx bookkeeping
// columns first, followed by one nullable column per spec.
func buildArrowSchema(specs []columnSpec) *arrow.Schema {
	fields := make([]arrow.Field, 0, len(specs)+2)
	fields = append(fields,
		arrow.Field{Name: "session_id", Type: arrow.BinaryTypes.String},
		arrow.Field{Name: "sample_idx", Type: arrow.PrimitiveTypes.Int32},
	)

	for _, s := range specs {
		fields = append(fields, arrow.Field{Name: s.name, Type: arrowTypeFor(s.varType), Nullable: true})
	}

	return arrow.NewSchema(fields, nil)
}
