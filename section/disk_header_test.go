package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ibtelemetry/ibt/errs"
)

func TestParseDiskSubHeader(t *testing.T) {
	data := buildDiskSubHeader(1.5, 100.25, 200.75, 12, 600)

	d, err := ParseDiskSubHeader(data)
	require.NoError(t, err)
	require.InDelta(t, 1.5, d.StartDate, 0.0001)
	require.InDelta(t, 100.25, d.StartTime, 0.0001)
	require.InDelta(t, 200.75, d.EndTime, 0.0001)
	require.Equal(t, int32(12), d.LapCount)
	require.Equal(t, int32(600), d.RecordCount)
}

func TestParseDiskSubHeader_Truncated(t *testing.T) {
	_, err := ParseDiskSubHeader(make([]byte, 10))
	require.ErrorIs(t, err, errs.ErrTruncated)
}
