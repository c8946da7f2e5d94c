package excel

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// cellFormatter decides which cells of a sheet keep their displayed text
// instead of the raw stored value. Booleans and dates are stored as numbers
// but are not quantities.
type cellFormatter struct {
	f      *excelize.File
	sheet  string
	styles map[int]bool
}

func newCellFormatter(f *excelize.File, sheet string) *cellFormatter {
	return &cellFormatter{f: f, sheet: sheet, styles: make(map[int]bool)}
}

// merge replaces raw cells with their formatted text where the cell is a
// boolean or carries a date or time number format
func (c *cellFormatter) merge(raw, formatted [][]string) error {
	for r := 0; r < len(raw) && r < len(formatted); r++ {
		for col := 0; col < len(raw[r]) && col < len(formatted[r]); col++ {
			if raw[r][col] == formatted[r][col] {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, r+1)
			if err != nil {
				return err
			}
			display, err := c.displayed(cell)
			if err != nil {
				return err
			}
			if display {
				raw[r][col] = formatted[r][col]
			}
		}
	}
	return nil
}

func (c *cellFormatter) displayed(cell string) (bool, error) {
	cellType, err := c.f.GetCellType(c.sheet, cell)
	if err != nil {
		return false, err
	}
	if cellType == excelize.CellTypeBool || cellType == excelize.CellTypeDate {
		return true, nil
	}

	styleID, err := c.f.GetCellStyle(c.sheet, cell)
	if err != nil {
		return false, err
	}
	if isDate, ok := c.styles[styleID]; ok {
		return isDate, nil
	}
	style, err := c.f.GetStyle(styleID)
	if err != nil {
		return false, err
	}
	isDate := isDateStyle(style)
	c.styles[styleID] = isDate
	return isDate, nil
}

// isDateStyle reports whether a cell style renders numbers as dates or times
func isDateStyle(style *excelize.Style) bool {
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	n := style.NumFmt
	return (n >= 14 && n <= 22) || (n >= 27 && n <= 36) || (n >= 45 && n <= 47) || (n >= 50 && n <= 58)
}

// isDateFormatCode reports whether a number format code has date or time
// tokens outside quoted literals, escapes and bracketed sections. Elapsed
// time brackets such as [h] count as time.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	for i := 0; i < len(code); i++ {
		switch ch := code[i]; ch {
		case '"':
			end := strings.IndexByte(code[i+1:], '"')
			if end < 0 {
				return false
			}
			i += end + 1
		case '\\', '_', '*':
			i++
		case '[':
			end := strings.IndexByte(code[i+1:], ']')
			if end < 0 {
				return false
			}
			inner := strings.ToLower(code[i+1 : i+1+end])
			if inner != "" && strings.Trim(inner, "hms") == "" {
				return true
			}
			i += end + 1
		default:
			b.WriteByte(ch)
		}
	}
	return strings.ContainsAny(strings.ToLower(b.String()), "ymdhs")
}
