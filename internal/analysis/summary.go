package analysis

import (
	"context"
	"fmt"
	"math"
	"sort"

	"ifcsheet/domain/dataset"
	domainStats "ifcsheet/domain/stats"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	gonumStat "gonum.org/v1/gonum/stat"
)

// Summarizer computes descriptive statistics for the numeric columns of a table
type Summarizer struct {
	workers int
}

// NewSummarizer creates a summarizer that describes at most workers columns at once
func NewSummarizer(workers int) *Summarizer {
	if workers < 1 {
		workers = 1
	}
	return &Summarizer{workers: workers}
}

// Describe returns statistics for every numeric column, in column order.
// Text and all-missing columns are skipped. A table with no rows yields an
// empty summary.
func (s *Summarizer) Describe(ctx context.Context, table *dataset.Table) (domainStats.Summary, error) {
	results := make([]*domainStats.SummaryStats, len(table.Headers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, name := range table.Headers {
		i, name := i, name
		cells := table.Column(i)
		if dataset.ClassifyColumn(cells) != dataset.KindNumeric {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			summary, err := DescribeColumn(name, dataset.NumericValues(cells))
			if err != nil {
				return err
			}
			results[i] = &summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domainStats.Summary{}, err
	}

	summary := domainStats.Summary{Columns: []domainStats.SummaryStats{}}
	for _, r := range results {
		if r != nil {
			summary.Columns = append(summary.Columns, *r)
		}
	}
	return summary, nil
}

// DescribeColumn computes count, mean, sample standard deviation, min,
// quartiles and max of values. Quartiles interpolate linearly between the
// closest ranks at position p*(n-1), so 1..4 yields 1.75, 2.5 and 3.25.
func DescribeColumn(name string, values []float64) (domainStats.SummaryStats, error) {
	if len(values) == 0 {
		return domainStats.SummaryStats{}, fmt.Errorf("column %q has no numeric values", name)
	}

	mean, std := gonumStat.MeanStdDev(values, nil)
	if len(values) < 2 {
		std = math.NaN()
	}
	min, err := stats.Min(values)
	if err != nil {
		return domainStats.SummaryStats{}, fmt.Errorf("min of %q: %w", name, err)
	}
	max, err := stats.Max(values)
	if err != nil {
		return domainStats.SummaryStats{}, fmt.Errorf("max of %q: %w", name, err)
	}

	median, err := stats.Median(values)
	if err != nil {
		return domainStats.SummaryStats{}, fmt.Errorf("median of %q: %w", name, err)
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	return domainStats.SummaryStats{
		Column: name,
		Count:  len(values),
		Mean:   mean,
		StdDev: std,
		Min:    min,
		Q25:    linearQuantile(sorted, 0.25),
		Median: median,
		Q75:    linearQuantile(sorted, 0.75),
		Max:    max,
	}, nil
}

// linearQuantile returns the p-quantile of sorted values, interpolating
// between the two closest ranks
func linearQuantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lower := math.Floor(pos)
	i := int(lower)
	if i+1 >= len(sorted) {
		return sorted[i]
	}
	return sorted[i] + (pos-lower)*(sorted[i+1]-sorted[i])
}

// Profile classifies every column of the table for the column picker
func Profile(table *dataset.Table) []dataset.ColumnInfo {
	infos := make([]dataset.ColumnInfo, len(table.Headers))
	for i, name := range table.Headers {
		cells := table.Column(i)
		missing := 0
		for _, cell := range cells {
			if dataset.IsMissing(cell) {
				missing++
			}
		}
		infos[i] = dataset.ColumnInfo{Name: name, Kind: dataset.ClassifyColumn(cells), Missing: missing}
	}
	return infos
}
