package section

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibtelemetry/ibt/errs"
	"github.com/ibtelemetry/ibt/format"
)

// buildFile assembles a minimal valid .ibt byte image: FileHeader, then
// DiskSubHeader contiguously, then padding up to varHeaderOffset, then the
// VarHeader array, then padding up to bufOffset, then the sample region.
func buildFile(numVars int32, varHeaderOffset int32, bufLen, numBuf, bufOffset int32, varBytes []byte, sampleBytes []byte) []byte {
	f := validHeaderFields()
	f.numVars = numVars
	f.varHeaderOffset = varHeaderOffset
	f.bufLen = bufLen
	f.numBuf = numBuf
	f.bufOffset = bufOffset
	f.sessionInfoOffset = FileHeaderSize + DiskSubHeaderSize

	buf := bytes.NewBuffer(nil)
	buf.Write(buildFileHeader(f))
	buf.Write(buildDiskSubHeader(0, 0, 0, 0, 0))

	for int32(buf.Len()) < varHeaderOffset {
		buf.WriteByte(0)
	}
	buf.Write(varBytes)

	for int32(buf.Len()) < bufOffset {
		buf.WriteByte(0)
	}
	buf.Write(sampleBytes)

	return buf.Bytes()
}

func TestDecode_SingleSampleMixedTypes(t *testing.T) {
	var varBytes []byte
	varBytes = append(varBytes, buildVarHeader(int32(format.Float), 0, 1, false, "Speed", "", "m/s")...)
	varBytes = append(varBytes, buildVarHeader(int32(format.Int), 4, 1, false, "RPM", "", "rpm")...)
	varBytes = append(varBytes, buildVarHeader(int32(format.Int), 8, 1, false, "Gear", "", "")...)

	data := buildFile(3, 200, 12, 1, 400, varBytes, make([]byte, 12))

	header, disk, dict, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, int32(2), header.Version)
	require.Equal(t, int32(0), disk.LapCount)
	require.Equal(t, 3, dict.Len())

	v, _, err := dict.Lookup("speed")
	require.NoError(t, err)
	require.Equal(t, format.Float, v.Type)
}

func TestDecode_NoVars(t *testing.T) {
	data := buildFile(0, 200, 0, 0, 200, nil, nil)

	_, _, dict, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 0, dict.Len())
}

func TestDecode_UnknownVarType(t *testing.T) {
	varBytes := buildVarHeader(9, 0, 1, false, "Bad", "", "")
	data := buildFile(1, 200, 4, 0, 204, varBytes, nil)

	_, _, _, err := Decode(bytes.NewReader(data))
	require.ErrorIs(t, err, errs.ErrUnknownVarType)
}

func TestDecode_NeverReadsSampleRegion(t *testing.T) {
	varBytes := buildVarHeader(int32(format.Float), 0, 1, false, "X", "", "")
	// bufOffset points past the end of the buffer we provide; Decode must
	// succeed anyway because it never reads the sample region.
	data := buildFile(1, 200, 4, 5, 5000, varBytes, nil)

	_, _, dict, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 1, dict.Len())
}
