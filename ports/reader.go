package ports

import (
	"ifcsheet/domain/dataset"
	"ifcsheet/domain/ifc"
)

// IFCParserPort turns raw IFC bytes into a parsed model
type IFCParserPort interface {
	ParseBytes(data []byte) (*ifc.Model, error)
}

// TableReaderPort loads one sheet of an uploaded spreadsheet.
// An empty sheet name selects the first sheet.
type TableReaderPort interface {
	Read(name string, data []byte, sheet string) (*dataset.Table, error)
}
