package section

import (
	"github.com/ibtelemetry/ibt/endian"
	"github.com/ibtelemetry/ibt/wire"
)

// DiskSubHeader is the 32-byte region immediately following the FileHeader:
// start_date (f32), start_time (f64), end_time (f64), lap_count (i32),
// record_count (i32), followed by 4 bytes of trailing padding.
//
// RecordCount should equal FileHeader.NumBuf but is not relied on.
type DiskSubHeader struct {
	StartDate   float32
	StartTime   float64
	EndTime     float64
	LapCount    int32
	RecordCount int32
}

// ParseDiskSubHeader decodes the DiskSubHeader from data at offset 0. data
// must contain at least DiskSubHeaderSize bytes; the caller is responsible
// for slicing the region that immediately follows the FileHeader.
func ParseDiskSubHeader(data []byte) (DiskSubHeader, error) {
	engine := endian.GetLittleEndianEngine()

	startDate, err := wire.ReadF32(data, 0, engine)
	if err != nil {
		return DiskSubHeader{}, err
	}

	startTime, err := wire.ReadF64(data, 4, engine)
	if err != nil {
		return DiskSubHeader{}, err
	}

	endTime, err := wire.ReadF64(data, 12, engine)
	if err != nil {
		return DiskSubHeader{}, err
	}

	lapCount, err := wire.ReadI32(data, 20, engine)
	if err != nil {
		return DiskSubHeader{}, err
	}

	recordCount, err := wire.ReadI32(data, 24, engine)
	if err != nil {
		return DiskSubHeader{}, err
	}

	// bytes [28:32) are trailing padding, discarded.
	return DiskSubHeader{
		StartDate:   startDate,
		StartTime:   startTime,
		EndTime:     endTime,
		LapCount:    lapCount,
		RecordCount: recordCount,
	}, nil
}
