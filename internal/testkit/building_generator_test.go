package testkit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildingDataGenerator_Deterministic(t *testing.T) {
	a := NewBuildingDataGenerator(DefaultBuildingConfig()).GenerateElements()
	b := NewBuildingDataGenerator(DefaultBuildingConfig()).GenerateElements()
	assert.Equal(t, a, b)

	cfg := DefaultBuildingConfig()
	perStorey := 1 + 1 + cfg.WallsPerStorey*(1+cfg.WindowsPerWall) + cfg.DoorsPerStorey + cfg.SpacesPerStorey
	assert.Len(t, a, cfg.Storeys*perStorey)
}

func TestBuildingDataGenerator_IFCFile(t *testing.T) {
	gen := NewBuildingDataGenerator(DefaultBuildingConfig())
	data := gen.IFCFile()

	assert.True(t, bytes.HasPrefix(data, []byte("ISO-10303-21;")))
	assert.True(t, bytes.HasSuffix(data, []byte("END-ISO-10303-21;\n")))
	elements := len(NewBuildingDataGenerator(DefaultBuildingConfig()).GenerateElements())
	assert.Equal(t, 3+2*elements+2, bytes.Count(data, []byte("\n#")))
}

func TestBuildingDataGenerator_ScheduleWorkbook(t *testing.T) {
	data, err := NewBuildingDataGenerator(DefaultBuildingConfig()).ScheduleWorkbook()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Elements", "Summary"}, f.GetSheetList())
	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Equal(t, []string{"Type", "Count"}, rows[0])
	assert.Len(t, rows, 1+6)
}

func TestGuidIsStable(t *testing.T) {
	assert.Len(t, guid(0), 22)
	assert.Equal(t, guid(7), guid(7))
	assert.NotEqual(t, guid(1), guid(2))
}
