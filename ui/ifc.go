package ui

import (
	"bytes"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"ifcsheet/domain/ifc"
	"ifcsheet/domain/upload"
	"ifcsheet/internal/charts"
	"ifcsheet/internal/testkit"
	"ifcsheet/ui/templates/fragments"

	"github.com/gin-gonic/gin"
)

// ifcQuery holds the view options of an IFC result page
type ifcQuery struct {
	Chart charts.Kind
	Scope ifc.Scope
}

func parseIFCQuery(c *gin.Context) ifcQuery {
	return ifcQuery{
		Chart: charts.ParseKind(c.Query("chart")),
		Scope: ifc.ParseScope(c.Query("scope")),
	}
}

func (q ifcQuery) encode() string {
	v := url.Values{}
	v.Set("chart", string(q.Chart))
	v.Set("scope", string(q.Scope))
	return v.Encode()
}

func (s *Server) handleIFCForm(c *gin.Context) {
	s.renderTemplate(c, http.StatusOK, fragments.IFCPage, page(upload.ModeIFC))
}

func (s *Server) handleIFCUpload(c *gin.Context) {
	file, status, err := s.readUpload(c, upload.ModeIFC)
	if err != nil {
		s.ifcError(c, status, err)
		return
	}
	s.acceptIFC(c, file)
}

// handleIFCSample analyses a generated office building
func (s *Server) handleIFCSample(c *gin.Context) {
	gen := testkit.NewBuildingDataGenerator(testkit.DefaultBuildingConfig())
	s.acceptIFC(c, upload.NewFile(upload.ModeIFC, "sample-office.ifc", gen.IFCFile()))
}

// acceptIFC validates file before storing it so a bad upload is reported
// on the form rather than on a result page
func (s *Server) acceptIFC(c *gin.Context, file *upload.File) {
	if _, err := s.ifc.Count(c.Request.Context(), file, ifc.ScopeAll); err != nil {
		s.ifcError(c, statusFor(err), err)
		return
	}
	id := s.store.Put(file)
	s.logger.Info("stored %s (%s, %s) as %s", file.Name, humanBytes(file.Size()), file.Hash.Short(), id)
	c.Redirect(http.StatusSeeOther, "/ifc/"+id.String())
}

func (s *Server) handleIFCResult(c *gin.Context) {
	file, err := s.lookup(c, upload.ModeIFC)
	if err != nil {
		s.ifcError(c, statusFor(err), err)
		return
	}

	q := parseIFCQuery(c)
	result, err := s.ifc.Count(c.Request.Context(), file, q.Scope)
	if err != nil {
		s.ifcError(c, statusFor(err), err)
		return
	}

	base := "/ifc/" + c.Param("token")
	data := page(upload.ModeIFC)
	data["File"] = file
	data["Result"] = result
	data["Query"] = q
	data["Base"] = base
	data["ChartURL"] = base + "/chart.png?" + q.encode()
	data["ExportURL"] = base + "/export.pdf?" + q.encode()
	data["ChartKinds"] = []charts.Kind{charts.KindBar, charts.KindPie}
	data["Scopes"] = []ifc.Scope{ifc.ScopeAll, ifc.ScopeProducts}
	s.renderTemplate(c, http.StatusOK, fragments.IFCPage, data)
}

func (s *Server) handleIFCChart(c *gin.Context) {
	file, err := s.lookup(c, upload.ModeIFC)
	if err != nil {
		c.String(statusFor(err), userMessage(err))
		return
	}
	q := parseIFCQuery(c)
	result, err := s.ifc.Count(c.Request.Context(), file, q.Scope)
	if err != nil {
		c.String(statusFor(err), userMessage(err))
		return
	}
	png, err := s.ifc.Chart(result, q.Chart)
	if err != nil {
		s.logger.Error("chart for %s failed: %v", file.Name, err)
		c.String(statusFor(err), userMessage(err))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (s *Server) handleIFCExport(c *gin.Context) {
	file, err := s.lookup(c, upload.ModeIFC)
	if err != nil {
		c.String(statusFor(err), userMessage(err))
		return
	}
	q := parseIFCQuery(c)
	result, err := s.ifc.Count(c.Request.Context(), file, q.Scope)
	if err != nil {
		c.String(statusFor(err), userMessage(err))
		return
	}

	var buf bytes.Buffer
	if err := s.ifc.ExportPDF(&buf, result, q.Chart); err != nil {
		s.logger.Error("export for %s failed: %v", file.Name, err)
		c.String(statusFor(err), userMessage(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exportName(file.Name, "counts")+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (s *Server) ifcError(c *gin.Context, status int, err error) {
	s.logger.Debug("ifc request failed (%d): %v", status, err)
	data := page(upload.ModeIFC)
	data["Error"] = userMessage(err)
	s.renderTemplate(c, status, fragments.IFCPage, data)
}

// exportName derives a download name such as "office-counts.pdf"
func exportName(uploaded, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(uploaded), filepath.Ext(uploaded))
	base = strings.Map(func(r rune) rune {
		if r == '"' || r == '\\' || r < ' ' {
			return '_'
		}
		return r
	}, base)
	if base == "" {
		base = "analysis"
	}
	return base + "-" + suffix + ".pdf"
}
