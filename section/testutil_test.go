package section

import (
	"encoding/binary"
	"math"
)

// buildFileHeader assembles a 112-byte FileHeader image for tests. Fields
// not explicitly listed default to zero/reserved.
func buildFileHeader(t fileHeaderFields) []byte {
	buf := make([]byte, FileHeaderSize)
	put := func(i int, v int32) {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], uint32(v))
	}

	put(0, t.version)
	put(1, t.status)
	put(2, t.tickRate)
	put(3, t.sessionInfoUpdate)
	put(4, t.sessionInfoLen)
	put(5, t.sessionInfoOffset)
	put(6, t.numVars)
	put(7, t.varHeaderOffset)
	put(8, t.numBuf)
	put(9, t.bufLen)
	put(13, t.bufOffset)

	return buf
}

type fileHeaderFields struct {
	version           int32
	status            int32
	tickRate          int32
	sessionInfoUpdate int32
	sessionInfoLen    int32
	sessionInfoOffset int32
	numVars           int32
	varHeaderOffset   int32
	numBuf            int32
	bufLen            int32
	bufOffset         int32
}

func buildDiskSubHeader(startDate float32, startTime, endTime float64, lapCount, recordCount int32) []byte {
	buf := make([]byte, DiskSubHeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(startDate))
	binary.LittleEndian.PutUint64(buf[4:12], math.Float64bits(startTime))
	binary.LittleEndian.PutUint64(buf[12:20], math.Float64bits(endTime))
	binary.LittleEndian.PutUint32(buf[20:24], uint32(lapCount))
	binary.LittleEndian.PutUint32(buf[24:28], uint32(recordCount))

	return buf
}

func buildVarHeader(typ int32, offset, count int32, countAsTime bool, name, description, unit string) []byte {
	buf := make([]byte, VarHeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(typ))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(offset))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(count))
	if countAsTime {
		buf[12] = 1
	}
	copy(buf[16:16+varHeaderNameLen], name)
	copy(buf[16+varHeaderNameLen:16+varHeaderNameLen+varHeaderDescriptionLen], description)
	copy(buf[16+varHeaderNameLen+varHeaderDescriptionLen:], unit)

	return buf
}
