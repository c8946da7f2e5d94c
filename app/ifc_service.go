package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	ifcAdapter "ifcsheet/adapters/ifc"
	"ifcsheet/domain/ifc"
	"ifcsheet/domain/upload"
	"ifcsheet/internal"
	"ifcsheet/internal/charts"
	"ifcsheet/internal/errors"
	"ifcsheet/internal/report"
	"ifcsheet/ports"
)

// IFCResult is the outcome of counting one uploaded IFC file
type IFCResult struct {
	File        *upload.File
	Header      ifc.Header
	Scope       ifc.Scope
	Counts      ifc.ComponentCountTable
	Rows        []ifc.TypeCount
	Total       int
	EntityCount int
}

// IFCService counts building components in uploaded IFC files
type IFCService struct {
	parser  ports.IFCParserPort
	charts  ports.ChartPort
	reports ports.ReportPort
	logger  *internal.Logger
}

// NewIFCService creates the IFC counting service
func NewIFCService(parser ports.IFCParserPort, charts ports.ChartPort, reports ports.ReportPort, logger *internal.Logger) *IFCService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &IFCService{parser: parser, charts: charts, reports: reports, logger: logger.With("ifc-service")}
}

// Count parses file and counts its entities by declared type. Any parse
// failure is returned as a parse error and no table is produced.
func (s *IFCService) Count(ctx context.Context, file *upload.File, scope ifc.Scope) (*IFCResult, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, errors.ParseError("No file uploaded")
	}
	if !upload.ModeIFC.Accepts(file.Name) {
		return nil, errors.ParseErrorf("%s is not an .ifc file", file.Name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	model, err := s.parser.ParseBytes(file.Data)
	if err != nil {
		s.logger.Warn("rejecting %s (%s): %v", file.Name, file.Hash.Short(), err)
		return nil, errors.WrapParse(err, "Error processing IFC file")
	}

	counts := ifcAdapter.CountComponents(model, scope)
	result := &IFCResult{
		File:        file,
		Header:      model.Header,
		Scope:       scope,
		Counts:      counts,
		Rows:        counts.Sorted(),
		Total:       counts.Total(),
		EntityCount: len(model.Entities),
	}
	s.logger.Info("counted %s: %d entities, %d types in scope %s (%.1fms)",
		file.Name, result.EntityCount, len(counts), scope, float64(time.Since(start).Microseconds())/1000)
	return result, nil
}

// Chart renders the count table as a bar or pie chart
func (s *IFCService) Chart(result *IFCResult, kind charts.Kind) ([]byte, error) {
	labels := make([]string, len(result.Rows))
	values := make([]float64, len(result.Rows))
	for i, row := range result.Rows {
		labels[i] = row.Type
		values[i] = float64(row.Count)
	}
	png, err := s.charts.Counts(kind, fmt.Sprintf("Component counts: %s", result.File.Name), labels, values)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render component chart")
	}
	return png, nil
}

// ExportPDF writes the chart and count table of result as a PDF document
func (s *IFCService) ExportPDF(w io.Writer, result *IFCResult, kind charts.Kind) error {
	png, err := s.Chart(result, kind)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(result.Rows)+1)
	for _, row := range result.Rows {
		rows = append(rows, []string{row.Type, strconv.Itoa(row.Count)})
	}
	rows = append(rows, []string{"Total", strconv.Itoa(result.Total)})

	notes := []string{fmt.Sprintf("Scope: %s   Entities in file: %d", result.Scope, result.EntityCount)}
	if len(result.Header.Schemas) > 0 {
		notes = append(notes, fmt.Sprintf("Schema: %v", result.Header.Schemas))
	}

	err = s.reports.Write(w, report.Document{
		Title:     "IFC component counts",
		Source:    result.File.Name,
		Hash:      result.File.Hash.String(),
		Notes:     notes,
		ChartPNG:  png,
		Table:     report.Table{Headers: []string{"Type", "Count"}, Rows: rows},
		CreatedAt: time.Now(),
	})
	return errors.Wrap(err, "failed to export IFC report")
}
