package ui

import (
	"net/http"

	"ifcsheet/ui/templates/fragments"

	"github.com/gin-gonic/gin"
)

// handleWelcome renders the help page shown before any mode is chosen
func (s *Server) handleWelcome(c *gin.Context) {
	data := page("")
	data["Welcome"] = s.welcome
	s.renderTemplate(c, http.StatusOK, fragments.WelcomePage, data)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "uploads": s.store.Len()})
}
