package parquetexport_test

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibtelemetry/ibt/format"
)

const (
	fileHeaderSize = 112
	diskHeaderSize = 32
	varHeaderSize  = 144
	varNameLen     = 32
	varDescLen     = 64
)

type fieldVar struct {
	typ    format.VarType
	offset int32
	count  int32
	name   string
}

func buildVarHeaderBytes(v fieldVar) []byte {
	buf := make([]byte, varHeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(v.typ))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(v.offset))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(v.count))
	copy(buf[16:16+varNameLen], v.name)

	return buf
}

func putF32(b []byte, off int, v float32) {
	binary.LittleEndian.PutUint32(b[off:off+4], math.Float32bits(v))
}

func putI32(b []byte, off int, v int32) {
	binary.LittleEndian.PutUint32(b[off:off+4], uint32(v))
}

// buildIbtFile assembles a minimal valid .ibt image with one frame per
// entry in frames, and returns its path on disk.
func buildIbtFile(t *testing.T, sessionID string, vars []fieldVar, frames [][]byte) string {
	t.Helper()

	bufLen := int32(0)
	if len(frames) > 0 {
		bufLen = int32(len(frames[0]))
	}

	sessionInfo := "WeekendInfo:\n  SubSessionID: 1\n  SessionID: " + sessionID + "\n"

	header := make([]byte, fileHeaderSize)
	put := func(i int, v int32) {
		binary.LittleEndian.PutUint32(header[i*4:i*4+4], uint32(v))
	}
	put(0, 2)
	put(4, int32(len(sessionInfo)))
	put(5, fileHeaderSize+diskHeaderSize)
	put(6, int32(len(vars)))
	put(7, 200)
	put(8, int32(len(frames)))
	put(9, bufLen)
	put(13, 200+int32(len(vars))*varHeaderSize)

	disk := make([]byte, diskHeaderSize)

	buf := append([]byte{}, header...)
	buf = append(buf, disk...)
	buf = append(buf, []byte(sessionInfo)...)

	for int32(len(buf)) < 200 {
		buf = append(buf, 0)
	}
	for _, v := range vars {
		buf = append(buf, buildVarHeaderBytes(v)...)
	}

	for _, frame := range frames {
		buf = append(buf, frame...)
	}

	path := filepath.Join(t.TempDir(), "session-"+sessionID+".ibt")
	require.NoError(t, os.WriteFile(path, buf, 0o644))

	return path
}
