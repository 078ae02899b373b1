package parquetexport

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibtelemetry/ibt/format"
	"github.com/ibtelemetry/ibt/section"
)

func testVarHeader(name string, t format.VarType, count int32) section.VarHeader {
	return section.VarHeader{Name: name, Type: t, Count: count}
}

func TestSelectProjectionNames_ExplicitProjectionWins(t *testing.T) {
	cfg := config{projection: []string{"A", "B"}, includeAll: true}
	names := selectProjectionNames(cfg, nil)
	assert.Equal(t, []string{"A", "B"}, names)
}

func TestSelectProjectionNames_IncludeAll(t *testing.T) {
	vars := []section.VarHeader{
		testVarHeader("Speed", format.Float, 1),
		testVarHeader("Gear", format.Int, 1),
	}
	names := selectProjectionNames(config{includeAll: true}, vars)
	assert.Equal(t, []string{"Speed", "Gear"}, names)
}

func TestSelectProjectionNames_DefaultRoster(t *testing.T) {
	names := selectProjectionNames(config{}, nil)
	assert.Equal(t, DefaultRoster, names)
}

func TestBuildColumnSpecs_DropsUnresolvedByDefault(t *testing.T) {
	dict := section.NewDictionary([]section.VarHeader{
		testVarHeader("Speed", format.Float, 1),
	})

	specs, dropped, err := buildColumnSpecs(dict, []string{"Speed", "Ghost"}, DropMissing)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "Speed", specs[0].name)
	assert.True(t, specs[0].resolved)
	assert.Equal(t, []string{"Ghost"}, dropped)
}

func TestBuildColumnSpecs_NullColumnKeepsUnresolved(t *testing.T) {
	dict := section.NewDictionary([]section.VarHeader{
		testVarHeader("Speed", format.Float, 1),
	})

	specs, dropped, err := buildColumnSpecs(dict, []string{"Speed", "Ghost"}, NullColumn)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, []string{"Ghost"}, dropped)
	assert.False(t, specs[1].resolved)
	assert.Equal(t, format.Double, specs[1].varType)
}

func TestBuildColumnSpecs_AllUnresolvedReturnsError(t *testing.T) {
	dict := section.NewDictionary(nil)

	_, _, err := buildColumnSpecs(dict, []string{"Ghost"}, DropMissing)
	require.Error(t, err)
}

func TestArrowTypeFor(t *testing.T) {
	cases := []struct {
		in   format.VarType
		want arrow.DataType
	}{
		{format.Char, arrow.BinaryTypes.String},
		{format.Bool, arrow.FixedWidthTypes.Boolean},
		{format.Int, arrow.PrimitiveTypes.Int32},
		{format.BitField, arrow.PrimitiveTypes.Uint32},
		{format.Float, arrow.PrimitiveTypes.Float32},
		{format.Double, arrow.PrimitiveTypes.Float64},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, arrowTypeFor(tc.in))
	}
}

func TestBuildArrowSchema_BookkeepingColumnsFirst(t *testing.T) {
	specs := []columnSpec{{name: "Speed", varType: format.Float, resolved: true}}
	schema := buildArrowSchema(specs)

	require.Equal(t, 3, schema.NumFields())
	assert.Equal(t, "session_id", schema.Field(0).Name)
	assert.False(t, schema.Field(0).Nullable)
	assert.Equal(t, "sample_idx", schema.Field(1).Name)
	assert.Equal(t, "Speed", schema.Field(2).Name)
	assert.True(t, schema.Field(2).Nullable)
}
