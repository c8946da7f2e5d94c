package ui

import (
	"bytes"
	"net/http"
	"net/url"

	"ifcsheet/app"
	"ifcsheet/domain/stats"
	"ifcsheet/domain/upload"
	"ifcsheet/internal/testkit"
	"ifcsheet/ui/templates/fragments"

	"github.com/gin-gonic/gin"
)

func excelQuery(sheet, column string) string {
	v := url.Values{}
	if sheet != "" {
		v.Set("sheet", sheet)
	}
	if column != "" {
		v.Set("column", column)
	}
	return v.Encode()
}

func (s *Server) handleExcelForm(c *gin.Context) {
	s.renderTemplate(c, http.StatusOK, fragments.ExcelPage, page(upload.ModeExcel))
}

func (s *Server) handleExcelUpload(c *gin.Context) {
	file, status, err := s.readUpload(c, upload.ModeExcel)
	if err != nil {
		s.excelError(c, status, err)
		return
	}
	s.acceptExcel(c, file)
}

// handleExcelSample analyses a generated element schedule
func (s *Server) handleExcelSample(c *gin.Context) {
	gen := testkit.NewBuildingDataGenerator(testkit.DefaultBuildingConfig())
	data, err := gen.ScheduleWorkbook()
	if err != nil {
		s.excelError(c, http.StatusInternalServerError, err)
		return
	}
	s.acceptExcel(c, upload.NewFile(upload.ModeExcel, "sample-schedule.xlsx", data))
}

func (s *Server) acceptExcel(c *gin.Context, file *upload.File) {
	if _, err := s.excel.Analyze(c.Request.Context(), file, "", ""); err != nil {
		s.excelError(c, statusFor(err), err)
		return
	}
	id := s.store.Put(file)
	s.logger.Info("stored %s (%s, %s) as %s", file.Name, humanBytes(file.Size()), file.Hash.Short(), id)
	c.Redirect(http.StatusSeeOther, "/excel/"+id.String())
}

// analyze re-runs the analysis of the stored upload with the query's sheet
// and column
func (s *Server) analyze(c *gin.Context) (*app.ExcelResult, error) {
	file, err := s.lookup(c, upload.ModeExcel)
	if err != nil {
		return nil, err
	}
	return s.excel.Analyze(c.Request.Context(), file, c.Query("sheet"), c.Query("column"))
}

func (s *Server) handleExcelResult(c *gin.Context) {
	result, err := s.analyze(c)
	if err != nil {
		s.excelError(c, statusFor(err), err)
		return
	}

	base := "/excel/" + c.Param("token")
	query := excelQuery(result.Table.Sheet, result.Selected)
	data := page(upload.ModeExcel)
	data["File"] = result.File
	data["Result"] = result
	data["Base"] = base
	data["ChartURL"] = base + "/chart.png?" + query
	data["ExportURL"] = base + "/export.pdf?" + query
	data["StatHeaders"] = stats.StatHeaders
	s.renderTemplate(c, http.StatusOK, fragments.ExcelPage, data)
}

func (s *Server) handleExcelChart(c *gin.Context) {
	result, err := s.analyze(c)
	if err != nil {
		c.String(statusFor(err), userMessage(err))
		return
	}
	png, err := s.excel.Chart(result)
	if err != nil {
		s.logger.Error("chart for %s failed: %v", result.File.Name, err)
		c.String(statusFor(err), userMessage(err))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (s *Server) handleExcelExport(c *gin.Context) {
	result, err := s.analyze(c)
	if err != nil {
		c.String(statusFor(err), userMessage(err))
		return
	}

	var buf bytes.Buffer
	if err := s.excel.ExportPDF(&buf, result); err != nil {
		s.logger.Error("export for %s failed: %v", result.File.Name, err)
		c.String(statusFor(err), userMessage(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exportName(result.File.Name, "analysis")+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (s *Server) excelError(c *gin.Context, status int, err error) {
	s.logger.Debug("excel request failed (%d): %v", status, err)
	data := page(upload.ModeExcel)
	data["Error"] = userMessage(err)
	s.renderTemplate(c, status, fragments.ExcelPage, data)
}
