package excel

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"ifcsheet/domain/core"
	"ifcsheet/domain/dataset"
	"ifcsheet/internal"

	"github.com/xuri/excelize/v2"
)

// DataReader loads uploaded Excel and CSV files into tables
type DataReader struct {
	logger *internal.Logger
}

// NewDataReader creates a reader logging through logger (DefaultLogger when nil)
func NewDataReader(logger *internal.Logger) *DataReader {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &DataReader{logger: logger.With("excel")}
}

// Read loads sheet from the file named name. An empty sheet name selects the
// first sheet. CSV files have a single sheet named after the file.
func (r *DataReader) Read(name string, data []byte, sheet string) (*dataset.Table, error) {
	if len(data) == 0 {
		return nil, core.ErrEmptyUpload
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return r.readCSV(name, data, sheet)
	case ".xlsx", ".xlsm":
		return r.readWorkbook(data, sheet)
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnsupportedType, filepath.Ext(name))
	}
}

// Sheets lists the sheet names of a workbook without loading cell data
func (r *DataReader) Sheets(name string, data []byte) ([]string, error) {
	if strings.ToLower(filepath.Ext(name)) == ".csv" {
		return []string{csvSheetName(name)}, nil
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

func (r *DataReader) readWorkbook(data []byte, sheet string) (*dataset.Table, error) {
	startTime := time.Now()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()
	r.logger.Debug("workbook opened in %.2fms", float64(time.Since(startTime).Nanoseconds())/1e6)

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	if sheet == "" {
		sheet = sheets[0]
	} else if !contains(sheets, sheet) {
		return nil, core.NewNotFoundError(core.ErrSheetNotFound, sheet)
	}

	readStart := time.Now()
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	formatted, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if err := newCellFormatter(f, sheet).merge(rows, formatted); err != nil {
		return nil, fmt.Errorf("failed to read cell formats of %q: %w", sheet, err)
	}
	r.logger.Debug("sheet %q read in %.2fms (%d rows)", sheet, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	table := buildTable(rows)
	table.Sheet = sheet
	table.Sheets = sheets
	r.logger.Info("loaded sheet %q (%d columns, %d rows)", sheet, len(table.Headers), table.RowCount())
	return table, nil
}

func (r *DataReader) readCSV(name string, data []byte, sheet string) (*dataset.Table, error) {
	sheetName := csvSheetName(name)
	if sheet != "" && sheet != sheetName {
		return nil, core.NewNotFoundError(core.ErrSheetNotFound, sheet)
	}

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	table := buildTable(rows)
	table.Sheet = sheetName
	table.Sheets = []string{sheetName}
	r.logger.Info("loaded CSV %q (%d columns, %d rows)", name, len(table.Headers), table.RowCount())
	return table, nil
}

// buildTable turns raw rows into a rectangular table. The first row is the
// header; blank header cells become "Unnamed: N" and repeated names get
// ".1", ".2" suffixes. Short rows are padded with empty cells.
func buildTable(rows [][]string) *dataset.Table {
	if len(rows) == 0 {
		return &dataset.Table{}
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	headers := make([]string, width)
	used := make(map[string]bool, width)
	for i := range headers {
		name := ""
		if i < len(rows[0]) {
			name = strings.TrimSpace(rows[0][i])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		base := name
		for n := 1; used[name]; n++ {
			name = fmt.Sprintf("%s.%d", base, n)
		}
		used[name] = true
		headers[i] = name
	}

	dataRows := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]string, width)
		for j := 0; j < width && j < len(row); j++ {
			cells[j] = strings.TrimSpace(row[j])
		}
		dataRows = append(dataRows, cells)
	}

	return &dataset.Table{Headers: headers, Rows: dataRows}
}

func csvSheetName(name string) string {
	return strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
