package ui

import (
	"io/fs"
	"net/http"

	"ifcsheet/ui/middleware"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Logger(), gin.Recovery())
	s.router.Use(middleware.RequestID(s.logger))
	if s.maxUpload > 0 {
		s.router.Use(middleware.LimitBody(s.maxUpload))
		s.router.MaxMultipartMemory = s.maxUpload
	}

	staticFS, err := fs.Sub(s.embeddedFiles, "static")
	if err != nil {
		s.logger.Warn("static files unavailable: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}
