package section

import (
	"fmt"

	"github.com/ibtelemetry/ibt/endian"
	"github.com/ibtelemetry/ibt/errs"
	"github.com/ibtelemetry/ibt/format"
	"github.com/ibtelemetry/ibt/wire"
)

// VarHeader describes one variable in the sample frame's dictionary: its
// type, its byte offset and array arity within a frame, and its name/unit/
// description strings.
type VarHeader struct {
	// Type is the variable's type tag, one of the six variants in package format.
	Type format.VarType
	// Offset is the byte position of the value within a sample frame.
	Offset int32
	// Count is the array arity; Count >= 1.
	Count int32
	// CountAsTime indicates the array represents time-series samples rather
	// than a flat array, per the .ibt SDK convention. The core preserves it
	// verbatim; it does not change how Count elements are decoded.
	CountAsTime bool
	// Name is the variable's identifier, e.g. "Speed".
	Name string
	// Description is a human-readable description.
	Description string
	// Unit is the variable's physical unit, e.g. "m/s".
	Unit string
}

// ParseVarHeader decodes a single 144-byte VarHeader from data at offset 0.
//
// Validation per spec.md §4.B: Type must be one of the six known variants
// (errs.ErrUnknownVarType otherwise), Count must be >= 1, Offset must be >= 0,
// and Offset + Count*Width(Type) must not exceed bufLen (errs.ErrVarOutOfFrame).
func ParseVarHeader(data []byte, bufLen int32) (VarHeader, error) {
	engine := endian.GetLittleEndianEngine()

	typ, err := wire.ReadI32(data, 0, engine)
	if err != nil {
		return VarHeader{}, err
	}

	offset, err := wire.ReadI32(data, 4, engine)
	if err != nil {
		return VarHeader{}, err
	}

	count, err := wire.ReadI32(data, 8, engine)
	if err != nil {
		return VarHeader{}, err
	}

	countAsTime, err := wire.ReadU8(data, 12)
	if err != nil {
		return VarHeader{}, err
	}
	// bytes [13:16) are padding, discarded.

	name, err := wire.ReadFixedASCII(data, 16, varHeaderNameLen)
	if err != nil {
		return VarHeader{}, err
	}

	description, err := wire.ReadFixedASCII(data, 16+varHeaderNameLen, varHeaderDescriptionLen)
	if err != nil {
		return VarHeader{}, err
	}

	unit, err := wire.ReadFixedASCII(data, 16+varHeaderNameLen+varHeaderDescriptionLen, varHeaderUnitLen)
	if err != nil {
		return VarHeader{}, err
	}

	v := VarHeader{
		Type:        format.VarType(typ),
		Offset:      offset,
		Count:       count,
		CountAsTime: countAsTime != 0,
		Name:        name,
		Description: description,
		Unit:        unit,
	}

	if err := v.validate(bufLen); err != nil {
		return VarHeader{}, err
	}

	return v, nil
}

func (v VarHeader) validate(bufLen int32) error {
	if !v.Type.Valid() {
		return fmt.Errorf("%w: %q has type tag %d", errs.ErrUnknownVarType, v.Name, int32(v.Type))
	}

	if v.Count < 1 {
		return fmt.Errorf("%w: %q has count %d", errs.ErrInvalidHeader, v.Name, v.Count)
	}

	if v.Offset < 0 {
		return fmt.Errorf("%w: %q has negative offset %d", errs.ErrInvalidHeader, v.Name, v.Offset)
	}

	end := int64(v.Offset) + int64(v.Count)*int64(v.Type.Width())
	if end > int64(bufLen) {
		return fmt.Errorf("%w: %q spans [%d, %d) beyond buf_len %d", errs.ErrVarOutOfFrame, v.Name, v.Offset, end, bufLen)
	}

	return nil
}

// Size returns the total byte span this variable occupies within a frame:
// Count * Width(Type).
func (v VarHeader) Size() int {
	return int(v.Count) * v.Type.Width()
}
