package ui

import (
	"bytes"
	stderrors "errors"
	"net/http"
	"strings"

	"ifcsheet/domain/upload"
	"ifcsheet/internal/errors"
	"ifcsheet/ui/middleware"

	"github.com/gin-gonic/gin"
)

// renderTemplate executes a template with the given data
func (s *Server) renderTemplate(c *gin.Context, status int, templateName string, data gin.H) {
	data["RequestID"] = middleware.GetRequestID(c)

	// First render to a buffer to catch any errors before writing to response
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.logger.Error("template error for %s: %v (keys %v)", templateName, err, getMapKeys(data))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Template rendering failed", "details": err.Error()})
		return
	}

	if !strings.Contains(buf.String(), "</html>") {
		s.logger.Warn("rendered template %s appears truncated - missing </html> tag", templateName)
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(status)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		s.logger.Warn("error writing template response: %v", err)
	}
}

// page starts the data of a mode page
func page(mode upload.Mode) gin.H {
	return gin.H{
		"Mode":       string(mode),
		"Title":      mode.Label(),
		"Modes":      []upload.Mode{"", upload.ModeIFC, upload.ModeExcel},
		"Extensions": strings.Join(upload.Extensions[mode], ", "),
	}
}

// statusFor maps an application error to the HTTP status shown with it
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeParseError, errors.CodeInvalidInput:
		return http.StatusUnprocessableEntity
	case errors.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// userMessage is the text shown to the user for err
func userMessage(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		switch appErr.Code {
		case errors.CodeInternalError:
			return "Something went wrong while analysing the file."
		case errors.CodeParseError:
			return appErr.Error()
		}
		return appErr.Message
	}
	return "Something went wrong while analysing the file."
}

// Helper function to get map keys for logging
func getMapKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
