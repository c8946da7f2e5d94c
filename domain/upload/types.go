package upload

import (
	"path/filepath"
	"strings"
	"time"

	"ifcsheet/domain/core"
)

// Mode selects which analysis flow an upload belongs to
type Mode string

const (
	ModeIFC   Mode = "ifc"
	ModeExcel Mode = "excel"
)

// Label returns the sidebar caption for the mode
func (m Mode) Label() string {
	switch m {
	case ModeIFC:
		return "IFC File Analysis"
	case ModeExcel:
		return "Excel File Analysis"
	default:
		return "Welcome"
	}
}

// Extensions lists the file extensions each mode accepts
var Extensions = map[Mode][]string{
	ModeIFC:   {".ifc"},
	ModeExcel: {".xlsx", ".xlsm", ".csv"},
}

// Accepts reports whether name carries an extension allowed for the mode
func (m Mode) Accepts(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range Extensions[m] {
		if ext == allowed {
			return true
		}
	}
	return false
}

// File is one uploaded file held for the duration of an interaction
type File struct {
	ID         core.UploadID
	Mode       Mode
	Name       string
	Data       []byte
	Hash       core.Hash
	UploadedAt time.Time
}

// NewFile fingerprints data and stamps the upload time
func NewFile(mode Mode, name string, data []byte) *File {
	return &File{
		Mode:       mode,
		Name:       filepath.Base(name),
		Data:       data,
		Hash:       core.NewHash(data),
		UploadedAt: time.Now(),
	}
}

// Ext returns the lower-cased extension including the dot
func (f *File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// Size returns the payload length in bytes
func (f *File) Size() int64 {
	return int64(len(f.Data))
}
