// Package sample implements the streaming sample-frame iterator and the
// typed accessors over a decoded variable dictionary.
package sample

import (
	"strings"

	"github.com/ibtelemetry/ibt/endian"
	"github.com/ibtelemetry/ibt/format"
	"github.com/ibtelemetry/ibt/section"
	"github.com/ibtelemetry/ibt/wire"
)

// Value is a single variable's reading within one sample frame.
//
// V holds the Go-native representation appropriate to Type and Count: a
// string for Char (regardless of count), a scalar (bool/int32/uint32/
// float32/float64) when Count == 1 and Type != Char, or a slice of the
// corresponding element type when Count > 1 and Type != Char.
type Value struct {
	Name        string
	Unit        string
	Description string
	Type        format.VarType
	Count       int32
	V           any
}

// ValueMap is the ordered name->Value projection produced by View.ToMap,
// preserving the dictionary's declaration order.
type ValueMap []Value

// Get performs a case-insensitive linear lookup by name.
func (m ValueMap) Get(name string) (Value, bool) {
	for _, v := range m {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}

	return Value{}, false
}

var leEngine = endian.GetLittleEndianEngine()

// extract reads the value described by v out of frame, which must be at
// least buf_len bytes (the caller is expected to have validated v against
// buf_len at decode time, so every read here is in-bounds by construction).
func extract(v section.VarHeader, frame []byte) Value {
	width := v.Type.Width()
	off := int(v.Offset)

	val := Value{
		Name:        v.Name,
		Unit:        v.Unit,
		Description: v.Description,
		Type:        v.Type,
		Count:       v.Count,
	}

	if v.Type == format.Char {
		s, _ := wire.ReadFixedASCII(frame, off, int(v.Count))
		val.V = s

		return val
	}

	if v.Count == 1 {
		val.V = readScalar(v.Type, frame, off)

		return val
	}

	val.V = readArray(v.Type, frame, off, int(v.Count), width)

	return val
}

func readScalar(t format.VarType, frame []byte, off int) any {
	switch t {
	case format.Bool:
		b, _ := wire.ReadU8(frame, off)

		return b != 0
	case format.Int:
		i, _ := wire.ReadI32(frame, off, leEngine)

		return i
	case format.BitField:
		u, _ := wire.ReadU32(frame, off, leEngine)

		return u
	case format.Float:
		f, _ := wire.ReadF32(frame, off, leEngine)

		return f
	case format.Double:
		d, _ := wire.ReadF64(frame, off, leEngine)

		return d
	default:
		return nil
	}
}

func readArray(t format.VarType, frame []byte, off, count, width int) any {
	switch t {
	case format.Bool:
		arr := make([]bool, count)
		for i := range arr {
			b, _ := wire.ReadU8(frame, off+i*width)
			arr[i] = b != 0
		}

		return arr
	case format.Int:
		arr := make([]int32, count)
		for i := range arr {
			v, _ := wire.ReadI32(frame, off+i*width, leEngine)
			arr[i] = v
		}

		return arr
	case format.BitField:
		arr := make([]uint32, count)
		for i := range arr {
			v, _ := wire.ReadU32(frame, off+i*width, leEngine)
			arr[i] = v
		}

		return arr
	case format.Float:
		arr := make([]float32, count)
		for i := range arr {
			v, _ := wire.ReadF32(frame, off+i*width, leEngine)
			arr[i] = v
		}

		return arr
	case format.Double:
		arr := make([]float64, count)
		for i := range arr {
			v, _ := wire.ReadF64(frame, off+i*width, leEngine)
			arr[i] = v
		}

		return arr
	default:
		return nil
	}
}
