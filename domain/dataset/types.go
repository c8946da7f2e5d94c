package dataset

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ColumnKind classifies the values of one column
type ColumnKind string

const (
	KindNumeric ColumnKind = "numeric"
	KindText    ColumnKind = "text"
	KindEmpty   ColumnKind = "empty"
)

// Table is a spreadsheet loaded into memory: ordered named columns over
// ordered rows of cell text. Every row has exactly len(Headers) cells.
type Table struct {
	Sheet   string
	Sheets  []string
	Headers []string
	Rows    [][]string
}

// RowCount returns the number of data rows (header excluded)
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// IsEmpty reports whether the table has no data rows
func (t *Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// ColumnIndex returns the position of name, or -1
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns all cells of column i in row order
func (t *Table) Column(i int) []string {
	values := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		values[r] = row[i]
	}
	return values
}

// Head returns at most n leading rows
func (t *Table) Head(n int) [][]string {
	if n < 0 || n >= len(t.Rows) {
		return t.Rows
	}
	return t.Rows[:n]
}

// missingTokens are the placeholders spreadsheet exports use for absent
// values; they count as missing rather than as text
var missingTokens = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {},
	"nan": {}, "null": {},
}

// thousandsPattern matches numbers grouped with comma thousands separators
var thousandsPattern = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d+)?$`)

// IsMissing reports whether a cell holds no value
func IsMissing(cell string) bool {
	s := strings.TrimSpace(cell)
	if s == "" {
		return true
	}
	_, ok := missingTokens[s]
	return ok
}

// ParseNumber parses a cell as a finite float, tolerating surrounding spaces
// and well-formed thousands separators
func ParseNumber(cell string) (float64, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return 0, false
	}
	if strings.Contains(s, ",") {
		if !thousandsPattern.MatchString(s) {
			return 0, false
		}
		s = strings.ReplaceAll(s, ",", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ClassifyColumn returns numeric when at least one cell is present and all
// present cells are numbers, empty when no cell is present, text otherwise
func ClassifyColumn(cells []string) ColumnKind {
	present := 0
	for _, cell := range cells {
		if IsMissing(cell) {
			continue
		}
		present++
		if _, ok := ParseNumber(cell); !ok {
			return KindText
		}
	}
	if present == 0 {
		return KindEmpty
	}
	return KindNumeric
}

// NumericValues returns the parsed present values of cells, skipping missing ones
func NumericValues(cells []string) []float64 {
	values := make([]float64, 0, len(cells))
	for _, cell := range cells {
		if v, ok := ParseNumber(cell); ok {
			values = append(values, v)
		}
	}
	return values
}

// ColumnInfo describes one column for the column picker
type ColumnInfo struct {
	Name    string
	Kind    ColumnKind
	Missing int
}
