package ports

import (
	"io"

	"ifcsheet/internal/charts"
	"ifcsheet/internal/report"
)

// ChartPort renders PNG charts
type ChartPort interface {
	Counts(kind charts.Kind, title string, labels []string, values []float64) ([]byte, error)
	Bar(title string, labels []string, values []float64) ([]byte, error)
	Line(title, xName, yName string, xs, ys []float64) ([]byte, error)
}

// ReportPort writes an exported analysis document
type ReportPort interface {
	Write(w io.Writer, doc report.Document) error
}

// ReportFunc adapts a plain function to ReportPort
type ReportFunc func(w io.Writer, doc report.Document) error

// Write calls f
func (f ReportFunc) Write(w io.Writer, doc report.Document) error {
	return f(w, doc)
}
