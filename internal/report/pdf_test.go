package report

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"ifcsheet/internal/charts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWithChartAndTable(t *testing.T) {
	png, err := charts.NewRenderer(640, 360).Bar("Components", []string{"IfcWall", "IfcDoor"}, []float64{3, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	err = Write(&buf, Document{
		Title:     "IFC component counts",
		Source:    "office.ifc",
		Hash:      "abc123",
		Notes:     []string{"Scope: all entities"},
		ChartPNG:  png,
		Table:     Table{Headers: []string{"Type", "Count"}, Rows: [][]string{{"IfcWall", "3"}, {"IfcDoor", "1"}}},
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(out), "%%EOF")
}

func TestWriteLongTablePaginates(t *testing.T) {
	rows := make([][]string, 200)
	for i := range rows {
		rows[i] = []string{"Räumlichkeit", "1"}
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Document{Title: "Long", Source: "big.xlsx", Table: Table{Headers: []string{"Name", "Count"}, Rows: rows}}))
	assert.GreaterOrEqual(t, bytes.Count(buf.Bytes(), []byte("/Type /Page\n")), 3)
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 95))
	long := "IfcGeometricRepresentationSubContextWithAVeryLongName"
	clipped := clip(long, 30)
	assert.Less(t, len(clipped), len(long))
	assert.Contains(t, clipped, "...")
}

func TestClipKeepsMultiByteRunesWhole(t *testing.T) {
	long := strings.Repeat("Décor–Ω", 10)
	clipped := clip(long, 30)
	assert.True(t, utf8.ValidString(clipped))
	assert.True(t, strings.HasSuffix(clipped, "..."))
	assert.Equal(t, 16, utf8.RuneCountInString(clipped))

	short := "Größe"
	assert.Equal(t, short, clip(short, 30))
}
