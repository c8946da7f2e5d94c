package excel

import (
	"errors"
	"testing"
	"time"

	"ifcsheet/domain/core"
	"ifcsheet/domain/dataset"
	"ifcsheet/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadWorkbookFirstSheetByDefault(t *testing.T) {
	data := testkit.MustWorkbook(
		testkit.Sheet{Name: "Elements", Rows: [][]interface{}{
			{"Type", "Area", "Storey"},
			{"IfcWall", 12.5, 1},
			{"IfcDoor", 2.1, 1},
		}},
		testkit.Sheet{Name: "Notes", Rows: [][]interface{}{{"Note"}, {"draft"}}},
	)

	table, err := NewDataReader(nil).Read("schedule.xlsx", data, "")
	require.NoError(t, err)

	assert.Equal(t, "Elements", table.Sheet)
	assert.Equal(t, []string{"Elements", "Notes"}, table.Sheets)
	assert.Equal(t, []string{"Type", "Area", "Storey"}, table.Headers)
	assert.Equal(t, [][]string{{"IfcWall", "12.5", "1"}, {"IfcDoor", "2.1", "1"}}, table.Rows)
}

func TestReadWorkbookSelectedSheet(t *testing.T) {
	data := testkit.MustWorkbook(
		testkit.Sheet{Name: "A", Rows: [][]interface{}{{"x"}, {1}}},
		testkit.Sheet{Name: "B", Rows: [][]interface{}{{"y"}, {2}, {3}}},
	)
	reader := NewDataReader(nil)

	table, err := reader.Read("book.xlsx", data, "B")
	require.NoError(t, err)
	assert.Equal(t, "B", table.Sheet)
	assert.Equal(t, 2, table.RowCount())

	_, err = reader.Read("book.xlsx", data, "C")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrSheetNotFound))

	sheets, err := reader.Sheets("book.xlsx", data)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, sheets)
}

func TestReadWorkbookShowsDatesAndBooleans(t *testing.T) {
	data := testkit.MustWorkbook(testkit.Sheet{Name: "Log", Rows: [][]interface{}{
		{"Installed", "Checked", "Area"},
		{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true, 12.5},
		{time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), false, 4},
	}})

	table, err := NewDataReader(nil).Read("log.xlsx", data, "")
	require.NoError(t, err)
	require.Equal(t, 2, table.RowCount())

	installed := table.Column(0)
	assert.NotEqual(t, "45352", installed[0])
	assert.Contains(t, installed[0], "Mar")
	assert.Contains(t, installed[1], "24")
	assert.Equal(t, dataset.KindText, dataset.ClassifyColumn(installed))

	assert.Equal(t, []string{"TRUE", "FALSE"}, table.Column(1))
	assert.Equal(t, dataset.KindText, dataset.ClassifyColumn(table.Column(1)))

	assert.Equal(t, []string{"12.5", "4"}, table.Column(2))
	assert.Equal(t, dataset.KindNumeric, dataset.ClassifyColumn(table.Column(2)))
}

func TestReadWorkbookCustomNumberFormats(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	dateCode, moneyCode := "yyyy-mm-dd", `#,##0.00 "EUR"`
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &dateCode})
	require.NoError(t, err)
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyCode})
	require.NoError(t, err)

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Due", "Cost"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{45352, 1234.5}))
	require.NoError(t, f.SetCellStyle("Sheet1", "A2", "A2", dateStyle))
	require.NoError(t, f.SetCellStyle("Sheet1", "B2", "B2", moneyStyle))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	table, err := NewDataReader(nil).Read("costs.xlsx", buf.Bytes(), "")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"2024-03-01", "1234.5"}}, table.Rows)
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"yyyy-mm-dd", true},
		{"d/m/yyyy h:mm", true},
		{"[h]:mm:ss", true},
		{"[$-409]mmmm d, yyyy", true},
		{"General", false},
		{"#,##0.00", false},
		{`0.0 "days"`, false},
		{`#,##0\ "m2"`, false},
		{"[Red]0.00;[Blue]-0.00", false},
		{"0.00E+00", false},
		{"@", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, isDateFormatCode(tt.code))
		})
	}
	assert.True(t, isDateStyle(&excelize.Style{NumFmt: 14}))
	assert.True(t, isDateStyle(&excelize.Style{NumFmt: 22}))
	assert.False(t, isDateStyle(&excelize.Style{NumFmt: 4}))
}

func TestReadHeaderOnlyAndEmptySheets(t *testing.T) {
	reader := NewDataReader(nil)

	headerOnly := testkit.MustWorkbook(testkit.Sheet{Name: "S", Rows: [][]interface{}{{"a", "b"}}})
	table, err := reader.Read("h.xlsx", headerOnly, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, table.Headers)
	assert.Equal(t, 0, table.RowCount())

	empty := testkit.MustWorkbook(testkit.Sheet{Name: "Blank"})
	table, err = reader.Read("e.xlsx", empty, "")
	require.NoError(t, err)
	assert.True(t, table.IsEmpty())
	assert.Equal(t, "Blank", table.Sheet)
}

func TestReadNormalisesHeaders(t *testing.T) {
	data := []byte("name,,name,name\nwall,1,2,3,4\ndoor\n")

	table, err := NewDataReader(nil).Read("walls.csv", data, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "Unnamed: 1", "name.1", "name.2", "Unnamed: 4"}, table.Headers)
	assert.Equal(t, []string{"door", "", "", "", ""}, table.Rows[1])
}

func TestReadCSV(t *testing.T) {
	data := []byte("\xef\xbb\xbfType,Count\nWall, 3 \nDoor,2\n")
	reader := NewDataReader(nil)

	table, err := reader.Read("counts.CSV", data, "")
	require.NoError(t, err)
	assert.Equal(t, "counts", table.Sheet)
	assert.Equal(t, []string{"Type", "Count"}, table.Headers)
	assert.Equal(t, [][]string{{"Wall", "3"}, {"Door", "2"}}, table.Rows)

	_, err = reader.Read("counts.csv", data, "Sheet2")
	assert.True(t, errors.Is(err, core.ErrSheetNotFound))
}

func TestReadRejectsBadInput(t *testing.T) {
	reader := NewDataReader(nil)

	_, err := reader.Read("a.xlsx", nil, "")
	assert.True(t, errors.Is(err, core.ErrEmptyUpload))

	_, err = reader.Read("a.txt", []byte("x"), "")
	assert.True(t, errors.Is(err, core.ErrUnsupportedType))

	_, err = reader.Read("a.xlsx", []byte("this is not a zip archive"), "")
	assert.Error(t, err)

	_, err = reader.Read("a.csv", []byte("a,\"b\nc"), "")
	assert.Error(t, err)
}
