package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibtelemetry/ibt/errs"
	"github.com/ibtelemetry/ibt/format"
)

func TestParseVarHeader_Scalar(t *testing.T) {
	data := buildVarHeader(int32(format.Float), 0, 1, false, "Speed", "Speed of the car", "m/s")

	v, err := ParseVarHeader(data, 4)
	require.NoError(t, err)
	require.Equal(t, format.Float, v.Type)
	require.Equal(t, int32(0), v.Offset)
	require.Equal(t, int32(1), v.Count)
	require.Equal(t, "Speed", v.Name)
	require.Equal(t, "Speed of the car", v.Description)
	require.Equal(t, "m/s", v.Unit)
	require.Equal(t, 4, v.Size())
}

func TestParseVarHeader_Array(t *testing.T) {
	data := buildVarHeader(int32(format.Float), 0, 4, true, "T", "per-tire temps", "C")

	v, err := ParseVarHeader(data, 16)
	require.NoError(t, err)
	require.Equal(t, int32(4), v.Count)
	require.True(t, v.CountAsTime)
	require.Equal(t, 16, v.Size())
}

func TestParseVarHeader_UnknownType(t *testing.T) {
	data := buildVarHeader(7, 0, 1, false, "Bad", "", "")
	_, err := ParseVarHeader(data, 4)
	require.ErrorIs(t, err, errs.ErrUnknownVarType)
}

func TestParseVarHeader_OutOfFrame(t *testing.T) {
	data := buildVarHeader(int32(format.Double), 4, 1, false, "X", "", "")
	_, err := ParseVarHeader(data, 8) // needs [4,12), frame is only 8 bytes
	require.ErrorIs(t, err, errs.ErrVarOutOfFrame)
}

func TestParseVarHeader_InvalidCount(t *testing.T) {
	data := buildVarHeader(int32(format.Int), 0, 0, false, "X", "", "")
	_, err := ParseVarHeader(data, 4)
	require.ErrorIs(t, err, errs.ErrInvalidHeader)
}

func TestParseVarHeader_NonASCIIName(t *testing.T) {
	data := buildVarHeader(int32(format.Char), 0, 1, false, "", "", "")
	copy(data[16:], []byte{0xFF, 0xFE, 0x00})

	v, err := ParseVarHeader(data, 1)
	require.NoError(t, err)
	require.Equal(t, string([]byte{0xFF, 0xFE}), v.Name)
}
