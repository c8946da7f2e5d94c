package testkit

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet of a fixture workbook
type Sheet struct {
	Name string
	Rows [][]interface{}
}

// Workbook builds an in-memory xlsx file from sheets, in order. The first
// sheet replaces excelize's default "Sheet1".
func Workbook(sheets ...Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return nil, fmt.Errorf("rename first sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet.Name, err)
		}
		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return nil, err
			}
			values := row
			if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
				return nil, fmt.Errorf("write row %d of %q: %w", r+1, sheet.Name, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// MustWorkbook is Workbook for fixtures that cannot fail
func MustWorkbook(sheets ...Sheet) []byte {
	data, err := Workbook(sheets...)
	if err != nil {
		panic(err)
	}
	return data
}

// IFC writes a minimal IFC4 STEP file with one instance per entry of types,
// numbered from #1 in order
func IFC(types ...string) []byte {
	var b bytes.Buffer
	b.WriteString("ISO-10303-21;\nHEADER;\n")
	b.WriteString("FILE_DESCRIPTION(('ViewDefinition [CoordinationView]'),'2;1');\n")
	b.WriteString("FILE_NAME('fixture.ifc','2024-01-01T00:00:00',(''),(''),'ifcsheet','testkit','');\n")
	b.WriteString("FILE_SCHEMA(('IFC4'));\nENDSEC;\nDATA;\n")
	for i, typ := range types {
		fmt.Fprintf(&b, "#%d=%s('%s',$,'%s %d',$,$,$,$,$,$);\n", i+1, strings.ToUpper(typ), guid(i), typ, i+1)
	}
	b.WriteString("ENDSEC;\nEND-ISO-10303-21;\n")
	return b.Bytes()
}

const guidAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_$"

// guid returns a deterministic 22-character IFC GlobalId for index i
func guid(i int) string {
	out := make([]byte, 22)
	n := i + 1
	for j := len(out) - 1; j >= 0; j-- {
		out[j] = guidAlphabet[n%64]
		n /= 64
	}
	return string(out)
}
