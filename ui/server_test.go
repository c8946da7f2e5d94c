package ui

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ifcsheet/adapters/excel"
	ifcAdapter "ifcsheet/adapters/ifc"
	"ifcsheet/app"
	"ifcsheet/domain/core"
	"ifcsheet/internal"
	"ifcsheet/internal/analysis"
	"ifcsheet/internal/charts"
	"ifcsheet/internal/report"
	"ifcsheet/internal/testkit"
	"ifcsheet/internal/upload"
	"ifcsheet/ports"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, maxUpload int64) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := internal.NewLogger(internal.LogLevelError)
	renderer := charts.NewRenderer(480, 320)
	reports := ports.ReportFunc(report.Write)

	s := NewServer(Assets)
	err := s.Initialize(Dependencies{
		Store:          upload.NewStore(time.Minute, 8),
		IFC:            app.NewIFCService(ifcAdapter.NewParser(logger), renderer, reports, logger),
		Excel:          app.NewExcelService(excel.NewDataReader(logger), analysis.NewSummarizer(2), renderer, reports, 3, logger),
		MaxUploadBytes: maxUpload,
		Logger:         logger,
	})
	require.NoError(t, err)
	return s
}

func multipartUpload(t *testing.T, target, filename string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if filename != "" {
		part, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func get(s *Server, target string) *httptest.ResponseRecorder {
	return serve(s, httptest.NewRequest(http.MethodGet, target, nil))
}

// uploadAndFollow posts a file and returns the result page location
func uploadAndFollow(t *testing.T, s *Server, target, filename string, data []byte) string {
	t.Helper()
	w := serve(s, multipartUpload(t, target, filename, data))
	require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
	location := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, target+"/"), location)
	return location
}

func TestWelcomeAndHealth(t *testing.T) {
	s := newTestServer(t, 0)

	w := get(s, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<h1 id=\"welcome\">Welcome</h1>")
	assert.Contains(t, body, "IFC File Analysis")
	assert.Contains(t, body, "Excel File Analysis")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = get(s, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","uploads":0}`, w.Body.String())

	w = get(s, "/static/css/app.css")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIFCFlow(t *testing.T) {
	s := newTestServer(t, 0)
	location := uploadAndFollow(t, s, "/ifc", "tower.ifc", testkit.IFC("IfcWall", "IfcWall", "IfcDoor", "IfcCartesianPoint"))

	w := get(s, location)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "tower.ifc")
	assert.Contains(t, body, "<td>IfcWall</td><td class=\"num\">2</td>")
	assert.Contains(t, body, "<th class=\"num\">4</th>")
	assert.Contains(t, body, "<td>IfcCartesianPoint</td><td class=\"num\">1</td>")

	w = get(s, location+"?scope=products")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "IfcCartesianPoint")

	w = get(s, location+"/chart.png?chart=pie")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = get(s, location+"/export.pdf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="tower-counts.pdf"`)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestIFCUploadErrors(t *testing.T) {
	s := newTestServer(t, 0)

	tests := []struct {
		name     string
		filename string
		data     []byte
		contains string
	}{
		{"no file", "", nil, "No file uploaded"},
		{"wrong extension", "model.txt", testkit.IFC("IfcWall"), "not a supported file"},
		{"csv renamed", "model.ifc", []byte("Type,Count\nWall,3\n"), "not an IFC file"},
		{"empty file", "model.ifc", []byte{}, "empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(s, multipartUpload(t, "/ifc", tt.filename, tt.data))
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
			assert.NotContains(t, w.Body.String(), "Component Counts")
		})
	}
	assert.Equal(t, 0, s.store.Len(), "rejected uploads are not stored")
}

func TestUnknownTokens(t *testing.T) {
	s := newTestServer(t, 0)

	for _, target := range []string{
		"/ifc/not-a-token",
		"/ifc/" + core.NewUploadID().String(),
		"/excel/" + core.NewUploadID().String(),
		"/excel/" + core.NewUploadID().String() + "/chart.png",
		"/ifc/" + core.NewUploadID().String() + "/export.pdf",
	} {
		w := get(s, target)
		assert.Equal(t, http.StatusNotFound, w.Code, target)
	}

	// a token is bound to the mode it was uploaded in
	location := uploadAndFollow(t, s, "/ifc", "a.ifc", testkit.IFC("IfcWall"))
	w := get(s, strings.Replace(location, "/ifc/", "/excel/", 1))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "upload the file again")
}

func TestExcelFlow(t *testing.T) {
	s := newTestServer(t, 0)
	data := testkit.MustWorkbook(
		testkit.Sheet{Name: "Elements", Rows: [][]interface{}{
			{"Type", "Area"},
			{"IfcWall", 1}, {"IfcDoor", 2}, {"IfcWall", 3}, {"IfcSlab", 4},
		}},
		testkit.Sheet{Name: "Notes", Rows: [][]interface{}{{"Note"}, {"draft"}}},
	)
	location := uploadAndFollow(t, s, "/excel", "schedule.xlsx", data)

	w := get(s, location)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Showing the first 3 of 4 rows")
	assert.Contains(t, body, "<td>Area</td><td class=\"num\">4</td><td class=\"num\">2.5</td>")
	assert.Contains(t, body, "column=Area")

	w = get(s, location+"?sheet=Notes")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No numeric columns to summarise.")

	w = get(s, location+"/chart.png?column=Type")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = get(s, location+"?column=Missing")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown column")

	w = get(s, location+"?sheet=Nope")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = get(s, location+"/export.pdf")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="schedule-analysis.pdf"`)
}

func TestExcelUploadRejectsIFC(t *testing.T) {
	s := newTestServer(t, 0)
	w := serve(s, multipartUpload(t, "/excel", "model.ifc", testkit.IFC("IfcWall")))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = serve(s, multipartUpload(t, "/excel", "broken.xlsx", []byte("not a workbook")))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to read Excel file")
}

func TestSampleRoutes(t *testing.T) {
	s := newTestServer(t, 0)

	for _, target := range []string{"/ifc/sample", "/excel/sample"} {
		w := serve(s, httptest.NewRequest(http.MethodPost, target, nil))
		require.Equal(t, http.StatusSeeOther, w.Code, target)

		w = get(s, w.Header().Get("Location"))
		assert.Equal(t, http.StatusOK, w.Code, target)
	}
	assert.Equal(t, 2, s.store.Len())
}

func TestUploadLimit(t *testing.T) {
	s := newTestServer(t, 1024)
	w := serve(s, multipartUpload(t, "/ifc", "big.ifc", bytes.Repeat([]byte("x"), 4096)))
	assert.GreaterOrEqual(t, w.Code, http.StatusBadRequest)
	assert.Equal(t, 0, s.store.Len())
}

func TestExportName(t *testing.T) {
	assert.Equal(t, "office-counts.pdf", exportName("office.ifc", "counts"))
	assert.Equal(t, "my_file_-analysis.pdf", exportName(`my"file".xlsx`, "analysis"))
	assert.Equal(t, "analysis-counts.pdf", exportName(".ifc", "counts"))
}
