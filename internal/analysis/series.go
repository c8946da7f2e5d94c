package analysis

import (
	"sort"

	"ifcsheet/domain/core"
	"ifcsheet/domain/dataset"
)

// maxCategories caps the bars of a text column chart; the rest are folded
// into a single "(other)" bar
const maxCategories = 30

// ColumnSeries is the chartable form of one column
type ColumnSeries struct {
	Column string
	Kind   dataset.ColumnKind

	// numeric columns: value by 1-based row number, missing rows skipped
	X []float64
	Y []float64

	// text columns: value frequencies, count descending then value ascending
	Labels []string
	Counts []float64
}

// Len returns the number of plotted points or bars
func (s ColumnSeries) Len() int {
	if s.Kind == dataset.KindNumeric {
		return len(s.Y)
	}
	return len(s.Labels)
}

// SeriesFor extracts the chart data of column from table
func SeriesFor(table *dataset.Table, column string) (ColumnSeries, error) {
	idx := table.ColumnIndex(column)
	if idx < 0 {
		return ColumnSeries{}, core.NewNotFoundError(core.ErrColumnNotFound, column)
	}

	cells := table.Column(idx)
	series := ColumnSeries{Column: column, Kind: dataset.ClassifyColumn(cells)}

	if series.Kind == dataset.KindNumeric {
		for r, cell := range cells {
			if v, ok := dataset.ParseNumber(cell); ok {
				series.X = append(series.X, float64(r+1))
				series.Y = append(series.Y, v)
			}
		}
		return series, nil
	}

	freq := make(map[string]int)
	for _, cell := range cells {
		if !dataset.IsMissing(cell) {
			freq[cell]++
		}
	}
	values := make([]string, 0, len(freq))
	for v := range freq {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		if freq[values[i]] != freq[values[j]] {
			return freq[values[i]] > freq[values[j]]
		}
		return values[i] < values[j]
	})

	other := 0
	for i, v := range values {
		if i >= maxCategories {
			other += freq[v]
			continue
		}
		series.Labels = append(series.Labels, v)
		series.Counts = append(series.Counts, float64(freq[v]))
	}
	if other > 0 {
		series.Labels = append(series.Labels, "(other)")
		series.Counts = append(series.Counts, float64(other))
	}
	return series, nil
}
