package container

import (
	"fmt"

	"ifcsheet/adapters/excel"
	"ifcsheet/adapters/ifc"
	"ifcsheet/app"
	"ifcsheet/internal"
	"ifcsheet/internal/analysis"
	"ifcsheet/internal/charts"
	"ifcsheet/internal/config"
	"ifcsheet/internal/report"
	"ifcsheet/internal/upload"
	"ifcsheet/ports"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Adapters
	Parser *ifc.Parser
	Reader *excel.DataReader
	Charts *charts.Renderer

	// Request-spanning state
	Store *upload.Store

	// Services
	IFCService   *app.IFCService
	ExcelService *app.ExcelService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger := internal.NewLogger(internal.ParseLogLevel(cfg.LogLevel))
	c := &Container{
		Config: cfg,
		Logger: logger,
		Parser: ifc.NewParser(logger),
		Reader: excel.NewDataReader(logger),
		Charts: charts.NewRenderer(cfg.Chart.Width, cfg.Chart.Height),
		Store:  upload.NewStore(cfg.Upload.TTL, cfg.Upload.MaxEntries),
	}

	reports := ports.ReportFunc(report.Write)
	c.IFCService = app.NewIFCService(c.Parser, c.Charts, reports, logger)
	c.ExcelService = app.NewExcelService(c.Reader, analysis.NewSummarizer(cfg.Analysis.StatsWorkers),
		c.Charts, reports, cfg.Analysis.PreviewRows, logger)

	logger.Debug("container ready: upload TTL %s, %d entries, %d stats workers",
		cfg.Upload.TTL, cfg.Upload.MaxEntries, cfg.Analysis.StatsWorkers)
	return c, nil
}
