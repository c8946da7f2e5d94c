package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"ifcsheet/app"
	"ifcsheet/domain/stats"
	"ifcsheet/internal"
	"ifcsheet/internal/upload"
	"ifcsheet/ui/services"
	"ifcsheet/ui/templates/fragments"

	"github.com/gin-gonic/gin"
)

// Dependencies are the services the web UI drives
type Dependencies struct {
	Store          *upload.Store
	IFC            *app.IFCService
	Excel          *app.ExcelService
	MaxUploadBytes int64
	Logger         *internal.Logger
}

// Server represents the web server for the file analysis UI
type Server struct {
	router        *gin.Engine
	templates     *template.Template
	embeddedFiles fs.FS
	render        *services.RenderService
	welcome       template.HTML

	store     *upload.Store
	ifc       *app.IFCService
	excel     *app.ExcelService
	maxUpload int64
	logger    *internal.Logger
}

// NewServer creates a new web server instance
func NewServer(embeddedFiles fs.FS) *Server {
	return &Server{
		router:        gin.New(),
		embeddedFiles: embeddedFiles,
		render:        services.NewRenderService(),
	}
}

// Initialize sets up the server with dependencies
func (s *Server) Initialize(deps Dependencies) error {
	if deps.Store == nil || deps.IFC == nil || deps.Excel == nil {
		return fmt.Errorf("ui: store, IFC and Excel services are required")
	}
	s.store = deps.Store
	s.ifc = deps.IFC
	s.excel = deps.Excel
	s.maxUpload = deps.MaxUploadBytes
	s.logger = deps.Logger
	if s.logger == nil {
		s.logger = internal.DefaultLogger
	}
	s.logger = s.logger.With("ui")

	funcMap := template.FuncMap{
		"add":      func(a, b int) int { return a + b },
		"upper":    strings.ToUpper,
		"stat":     stats.FormatValue,
		"bytes":    humanBytes,
		"contains": strings.Contains,
	}

	templatesFS, err := fs.Sub(s.embeddedFiles, "templates")
	if err != nil {
		return fmt.Errorf("failed to create templates filesystem: %w", err)
	}

	files1, err := fs.Glob(templatesFS, "*.html")
	if err != nil {
		return fmt.Errorf("failed to glob root templates: %w", err)
	}
	files2, err := fs.Glob(templatesFS, "layout/*.html")
	if err != nil {
		return fmt.Errorf("failed to glob layout templates: %w", err)
	}
	files := append(files1, files2...)
	s.logger.Debug("found %d template files: %v", len(files), files)

	s.templates = template.New("").Funcs(funcMap)
	for _, file := range files {
		content, err := fs.ReadFile(templatesFS, file)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", file, err)
		}
		if _, err := s.templates.New(file).Parse(string(content)); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", file, err)
		}
	}
	for _, page := range fragments.Pages() {
		if s.templates.Lookup(page) == nil {
			return fmt.Errorf("missing page template %s", page)
		}
	}

	md, err := fs.ReadFile(templatesFS, fragments.WelcomeMarkdown)
	if err != nil {
		return fmt.Errorf("failed to read welcome text: %w", err)
	}
	s.welcome = s.render.RenderMarkdown(md)

	s.setupMiddleware()
	s.setupRoutes()
	return nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleWelcome)
	s.router.GET("/healthz", s.handleHealth)

	ifc := s.router.Group("/ifc")
	ifc.GET("", s.handleIFCForm)
	ifc.POST("", s.handleIFCUpload)
	ifc.POST("/sample", s.handleIFCSample)
	ifc.GET("/:token", s.handleIFCResult)
	ifc.GET("/:token/chart.png", s.handleIFCChart)
	ifc.GET("/:token/export.pdf", s.handleIFCExport)

	excel := s.router.Group("/excel")
	excel.GET("", s.handleExcelForm)
	excel.POST("", s.handleExcelUpload)
	excel.POST("/sample", s.handleExcelSample)
	excel.GET("/:token", s.handleExcelResult)
	excel.GET("/:token/chart.png", s.handleExcelChart)
	excel.GET("/:token/export.pdf", s.handleExcelExport)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.logger.Info("starting file analysis UI on http://%s", addr)
	return s.router.Run(addr)
}

func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
