package stats

import (
	"math"
	"strconv"
	"strings"
)

// SummaryStats contains the descriptive statistics of one numeric column
type SummaryStats struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"` // sample standard deviation, NaN when Count < 2
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// Summary is the statistics result for a whole table, in column order.
// Non-numeric columns have no entry.
type Summary struct {
	Columns []SummaryStats `json:"columns"`
}

// IsEmpty reports whether no column produced statistics
func (s Summary) IsEmpty() bool {
	return len(s.Columns) == 0
}

// Lookup returns the statistics of column, if present
func (s Summary) Lookup(column string) (SummaryStats, bool) {
	for _, c := range s.Columns {
		if c.Column == column {
			return c, true
		}
	}
	return SummaryStats{}, false
}

// FormatValue renders a statistic for tables: up to four decimals with
// trailing zeros trimmed, "NaN" when undefined
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// StatHeaders are the column titles of a statistics table
var StatHeaders = []string{"Column", "count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// Cells returns the row of a statistics table for s, matching StatHeaders
func (s SummaryStats) Cells() []string {
	return []string{
		s.Column,
		strconv.Itoa(s.Count),
		FormatValue(s.Mean),
		FormatValue(s.StdDev),
		FormatValue(s.Min),
		FormatValue(s.Q25),
		FormatValue(s.Median),
		FormatValue(s.Q75),
		FormatValue(s.Max),
	}
}
