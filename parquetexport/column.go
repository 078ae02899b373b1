package parquetexport

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/ibtelemetry/ibt/format"
	"github.com/ibtelemetry/ibt/sample"
)

// columnBuilder wraps one Arrow array.Builder, dispatching on the column's
// resolved type the way sample.extract dispatches on VarType when reading
// sample frames.
type columnBuilder struct {
	spec    columnSpec
	builder array.Builder
}

func newColumnBuilder(mem memory.Allocator, spec columnSpec) *columnBuilder {
	var b array.Builder

	switch spec.varType {
	case format.Char:
		b = array.NewStringBuilder(mem)
	case format.Bool:
		b = array.NewBooleanBuilder(mem)
	case format.Int:
		b = array.NewInt32Builder(mem)
	case format.BitField:
		b = array.NewUint32Builder(mem)
	case format.Float:
		b = array.NewFloat32Builder(mem)
	default:
		b = array.NewFloat64Builder(mem)
	}

	return &columnBuilder{spec: spec, builder: b}
}

// AppendMissing appends a null unconditionally. It is equivalent to Append
// with ok false, which is how Export and ExportMulti fill a column the
// current frame's dictionary does not have (an unresolved projection name,
// or a variable absent from a later file in a multi-file export).
func (cb *columnBuilder) AppendMissing() {
	cb.builder.AppendNull()
}

// Append appends v, flattening an array-valued variable to its last
// element, or a null if ok is false.
func (cb *columnBuilder) Append(v sample.Value, ok bool) {
	if !ok {
		cb.builder.AppendNull()
		return
	}

	switch b := cb.builder.(type) {
	case *array.StringBuilder:
		s, _ := v.V.(string)
		b.Append(s)
	case *array.BooleanBuilder:
		b.Append(flattenBool(v.V))
	case *array.Int32Builder:
		b.Append(flattenInt32(v.V))
	case *array.Uint32Builder:
		b.Append(flattenUint32(v.V))
	case *array.Float32Builder:
		b.Append(flattenFloat32(v.V))
	case *array.Float64Builder:
		b.Append(flattenFloat64(v.V))
	}
}

func (cb *columnBuilder) NewArray() arrow.Array {
	return cb.builder.NewArray()
}

func flattenBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case []bool:
		if len(x) == 0 {
			return false
		}

		return x[len(x)-1]
	default:
		return false
	}
}

func flattenInt32(v any) int32 {
	switch x := v.(type) {
	case int32:
		return x
	case []int32:
		if len(x) == 0 {
			return 0
		}

		return x[len(x)-1]
	default:
		return 0
	}
}

func flattenUint32(v any) uint32 {
	switch x := v.(type) {
	case uint32:
		return x
	case []uint32:
		if len(x) == 0 {
			return 0
		}

		return x[len(x)-1]
	default:
		return 0
	}
}

func flattenFloat32(v any) float32 {
	switch x := v.(type) {
	case float32:
		return x
	case []float32:
		if len(x) == 0 {
			return 0
		}

		return x[len(x)-1]
	default:
		return 0
	}
}

func flattenFloat64(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case []float64:
		if len(x) == 0 {
			return 0
		}

		return x[len(x)-1]
	default:
		return 0
	}
}
