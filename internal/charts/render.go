package charts

import (
	"bytes"
	"fmt"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Kind selects how a count table is drawn
type Kind string

const (
	KindBar Kind = "bar"
	KindPie Kind = "pie"
)

// ParseKind maps a query value to a chart kind, defaulting to bar
func ParseKind(s string) Kind {
	if Kind(strings.ToLower(strings.TrimSpace(s))) == KindPie {
		return KindPie
	}
	return KindBar
}

const (
	barWidth     = 28
	barSpacing   = 12
	noDataLabel  = "(no data)"
	titlePadding = 40
)

// Renderer draws PNG charts of a fixed base size. Bar charts grow wider
// when there are too many bars to fit.
type Renderer struct {
	width  int
	height int
}

// NewRenderer creates a renderer for width x height pixel charts
func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// Counts draws labels/values as a bar or pie chart
func (r *Renderer) Counts(kind Kind, title string, labels []string, values []float64) ([]byte, error) {
	if kind == KindPie {
		return r.Pie(title, labels, values)
	}
	return r.Bar(title, labels, values)
}

// Bar draws one bar per label. Empty input draws a single empty bar.
func (r *Renderer) Bar(title string, labels []string, values []float64) ([]byte, error) {
	if len(labels) != len(values) {
		return nil, fmt.Errorf("bar chart: %d labels for %d values", len(labels), len(values))
	}

	bars := make([]chart.Value, 0, len(values))
	top := 0.0
	for i, v := range values {
		bars = append(bars, chart.Value{Label: labels[i], Value: v})
		if v > top {
			top = v
		}
	}
	if len(bars) == 0 {
		bars = append(bars, chart.Value{Label: noDataLabel, Value: 0})
	}
	if top == 0 {
		top = 1
	}

	width := r.width
	if need := len(bars)*(barWidth+barSpacing) + 120; need > width {
		width = need
	}

	graph := chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     r.height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: titlePadding, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: top * 1.1},
			ValueFormatter: chart.IntValueFormatter,
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}
	return buf.Bytes(), nil
}

// Pie draws one slice per label; zero values are dropped. Empty input falls
// back to an empty bar chart since a pie needs a positive total.
func (r *Renderer) Pie(title string, labels []string, values []float64) ([]byte, error) {
	if len(labels) != len(values) {
		return nil, fmt.Errorf("pie chart: %d labels for %d values", len(labels), len(values))
	}

	slices := make([]chart.Value, 0, len(values))
	for i, v := range values {
		if v > 0 {
			slices = append(slices, chart.Value{Label: labels[i], Value: v})
		}
	}
	if len(slices) == 0 {
		return r.Bar(title, nil, nil)
	}

	graph := chart.PieChart{
		Title:      title,
		Width:      r.height + 2*titlePadding,
		Height:     r.height + 2*titlePadding,
		Background: chart.Style{Padding: chart.Box{Top: titlePadding}},
		Values:     slices,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render pie chart: %w", err)
	}
	return buf.Bytes(), nil
}

// Line draws ys against xs as a connected line with dots, so a single point
// is still visible. Axis ranges are widened when all values are equal.
func (r *Renderer) Line(title, xName, yName string, xs, ys []float64) ([]byte, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("line chart: %d x values for %d y values", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return r.Bar(title, nil, nil)
	}

	xr := spanOf(xs)
	yr := spanOf(ys)

	graph := chart.Chart{
		Title:      title,
		Width:      r.width,
		Height:     r.height,
		Background: chart.Style{Padding: chart.Box{Top: titlePadding, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: xName, Range: xr, ValueFormatter: chart.IntValueFormatter},
		YAxis:      chart.YAxis{Name: yName, Range: yr},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    yName,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
					DotColor:    drawing.ColorFromHex("1f77b4"),
					DotWidth:    3,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render line chart: %w", err)
	}
	return buf.Bytes(), nil
}

func spanOf(values []float64) *chart.ContinuousRange {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		pad := 1.0
		if lo != 0 {
			pad = abs(lo) * 0.1
		}
		lo, hi = lo-pad, hi+pad
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
