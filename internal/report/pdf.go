package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Table is the data listing printed under the chart
type Table struct {
	Headers []string
	Rows    [][]string
}

// Document describes one exported analysis
type Document struct {
	Title     string
	Source    string // uploaded file name
	Hash      string // upload fingerprint
	Notes     []string
	ChartPNG  []byte
	Table     Table
	CreatedAt time.Time
}

const (
	pageWidth   = 210.0
	margin      = 10.0
	contentWide = pageWidth - 2*margin
	rowHeight   = 6.0
)

// Write renders doc as an A4 PDF to w
func Write(w io.Writer, doc Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("ifcsheet", true)
	if !doc.CreatedAt.IsZero() {
		pdf.SetCreationDate(doc.CreatedAt)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(contentWide, 10, tr(doc.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(90, 90, 90)
	meta := fmt.Sprintf("Source: %s", doc.Source)
	if doc.Hash != "" {
		meta += fmt.Sprintf("   SHA-256: %s", doc.Hash)
	}
	pdf.CellFormat(contentWide, 5, tr(meta), "", 1, "L", false, 0, "")
	if !doc.CreatedAt.IsZero() {
		pdf.CellFormat(contentWide, 5, doc.CreatedAt.UTC().Format("Generated 2006-01-02 15:04 UTC"), "", 1, "L", false, 0, "")
	}
	for _, note := range doc.Notes {
		pdf.CellFormat(contentWide, 5, tr(note), "", 1, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	if len(doc.ChartPNG) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
		pdf.RegisterImageOptionsReader("chart", opts, bytes.NewReader(doc.ChartPNG))
		info := pdf.GetImageInfo("chart")
		if info != nil {
			height := contentWide * info.Height() / info.Width()
			if height > 160 {
				height = 160
			}
			pdf.ImageOptions("chart", margin, pdf.GetY(), 0, height, true, opts, 0, "")
			pdf.Ln(4)
		}
	}

	writeTable(pdf, tr, doc.Table)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func writeTable(pdf *gofpdf.Fpdf, tr func(string) string, table Table) {
	if len(table.Headers) == 0 {
		return
	}
	colWidth := contentWide / float64(len(table.Headers))

	header := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(240, 240, 240)
		for _, h := range table.Headers {
			pdf.CellFormat(colWidth, rowHeight+1, tr(clip(h, colWidth)), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}

	header()
	_, pageHeight := pdf.GetPageSize()
	for _, row := range table.Rows {
		if pdf.GetY()+rowHeight > pageHeight-margin {
			pdf.AddPage()
			header()
		}
		for i := range table.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(colWidth, rowHeight, tr(clip(cell, colWidth)), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// clip shortens s to roughly fit a column of width mm at 9pt
func clip(s string, width float64) string {
	max := int(width / 1.8)
	runes := []rune(s)
	if max < 4 || len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
