package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"ifcsheet/domain/core"
	"ifcsheet/domain/dataset"
	"ifcsheet/domain/stats"
	"ifcsheet/domain/upload"
	"ifcsheet/internal"
	"ifcsheet/internal/analysis"
	"ifcsheet/internal/errors"
	"ifcsheet/internal/report"
	"ifcsheet/ports"
)

// ExcelResult is the outcome of analysing one sheet of an uploaded workbook
type ExcelResult struct {
	File     *upload.File
	Table    *dataset.Table
	Columns  []dataset.ColumnInfo
	Preview  [][]string
	Summary  stats.Summary
	Selected string
	Series   *analysis.ColumnSeries
}

// Truncated reports whether the preview shows fewer rows than the sheet has
func (r *ExcelResult) Truncated() bool {
	return len(r.Preview) < r.Table.RowCount()
}

// ExcelService loads spreadsheets, previews them, charts a chosen column and
// describes the numeric columns
type ExcelService struct {
	reader      ports.TableReaderPort
	summarizer  *analysis.Summarizer
	charts      ports.ChartPort
	reports     ports.ReportPort
	previewRows int
	logger      *internal.Logger
}

// NewExcelService creates the spreadsheet analysis service
func NewExcelService(reader ports.TableReaderPort, summarizer *analysis.Summarizer, charts ports.ChartPort, reports ports.ReportPort, previewRows int, logger *internal.Logger) *ExcelService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ExcelService{
		reader:      reader,
		summarizer:  summarizer,
		charts:      charts,
		reports:     reports,
		previewRows: previewRows,
		logger:      logger.With("excel-service"),
	}
}

// Analyze loads sheet (first sheet when empty) from file and computes the
// preview, statistics and the series of column. An empty column selects the
// first numeric column, or the first column when none is numeric.
func (s *ExcelService) Analyze(ctx context.Context, file *upload.File, sheet, column string) (*ExcelResult, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, errors.ParseError("No file uploaded")
	}
	if !upload.ModeExcel.Accepts(file.Name) {
		return nil, errors.ParseErrorf("%s is not an Excel (.xlsx, .xlsm) or CSV file", file.Name)
	}

	start := time.Now()
	table, err := s.reader.Read(file.Name, file.Data, sheet)
	if err != nil {
		s.logger.Warn("rejecting %s (%s): %v", file.Name, file.Hash.Short(), err)
		return nil, errors.WrapParse(err, "Failed to read Excel file")
	}

	summary, err := s.summarizer.Describe(ctx, table)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute statistics")
	}

	result := &ExcelResult{
		File:    file,
		Table:   table,
		Columns: analysis.Profile(table),
		Preview: table.Head(s.previewRows),
		Summary: summary,
	}

	if column == "" {
		column = defaultColumn(result.Columns)
	}
	if column != "" {
		series, err := analysis.SeriesFor(table, column)
		if err != nil {
			if core.IsNotFoundError(err) {
				return nil, errors.WithCode(errors.CodeInvalidInput, fmt.Errorf("Unknown column %q", column))
			}
			return nil, err
		}
		result.Selected = column
		result.Series = &series
	}

	s.logger.Info("analysed %s sheet %q: %d rows, %d columns, %d numeric (%.1fms)",
		file.Name, table.Sheet, table.RowCount(), len(table.Headers), len(summary.Columns),
		float64(time.Since(start).Microseconds())/1000)
	return result, nil
}

func defaultColumn(columns []dataset.ColumnInfo) string {
	for _, c := range columns {
		if c.Kind == dataset.KindNumeric {
			return c.Name
		}
	}
	if len(columns) > 0 {
		return columns[0].Name
	}
	return ""
}

// Chart renders the selected column: a line of values by row for numeric
// columns, a bar chart of value frequencies otherwise
func (s *ExcelService) Chart(result *ExcelResult) ([]byte, error) {
	if result.Series == nil {
		png, err := s.charts.Bar("No columns", nil, nil)
		return png, errors.Wrap(err, "failed to render column chart")
	}

	series := result.Series
	var png []byte
	var err error
	if series.Kind == dataset.KindNumeric {
		png, err = s.charts.Line(series.Column, "Row", series.Column, series.X, series.Y)
	} else {
		png, err = s.charts.Bar(fmt.Sprintf("%s (value counts)", series.Column), series.Labels, series.Counts)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to render column chart")
	}
	return png, nil
}

// ExportPDF writes the column chart and the statistics table as a PDF document
func (s *ExcelService) ExportPDF(w io.Writer, result *ExcelResult) error {
	png, err := s.Chart(result)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(result.Summary.Columns))
	for _, c := range result.Summary.Columns {
		rows = append(rows, c.Cells())
	}

	err = s.reports.Write(w, report.Document{
		Title:  "Spreadsheet analysis",
		Source: result.File.Name,
		Hash:   result.File.Hash.String(),
		Notes: []string{
			fmt.Sprintf("Sheet: %s   Rows: %d   Columns: %d", result.Table.Sheet, result.Table.RowCount(), len(result.Table.Headers)),
			fmt.Sprintf("Charted column: %s", result.Selected),
		},
		ChartPNG:  png,
		Table:     report.Table{Headers: stats.StatHeaders, Rows: rows},
		CreatedAt: time.Now(),
	})
	return errors.Wrap(err, "failed to export spreadsheet report")
}
