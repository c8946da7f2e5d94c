package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := map[float64]string{
		2.5:          "2.5",
		4:            "4",
		1.2909944487: "1.291",
		-0.00001:     "0",
		1200000:      "1200000",
		math.NaN():   "NaN",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatValue(in))
	}
}

func TestCellsMatchHeaders(t *testing.T) {
	s := SummaryStats{Column: "Area", Count: 4, Mean: 2.5, StdDev: math.NaN(), Min: 1, Q25: 1.5, Median: 2.5, Q75: 3.5, Max: 4}
	cells := s.Cells()
	assert.Len(t, cells, len(StatHeaders))
	assert.Equal(t, []string{"Area", "4", "2.5", "NaN", "1", "1.5", "2.5", "3.5", "4"}, cells)
}

func TestSummaryLookup(t *testing.T) {
	summary := Summary{Columns: []SummaryStats{{Column: "a", Count: 1}}}
	got, ok := summary.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 1, got.Count)
	_, ok = summary.Lookup("b")
	assert.False(t, ok)
	assert.True(t, Summary{}.IsEmpty())
}
