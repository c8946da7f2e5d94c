package ui

import (
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"ifcsheet/domain/core"
	"ifcsheet/domain/upload"
	"ifcsheet/internal/errors"

	"github.com/gin-gonic/gin"
)

// readUpload takes the "file" form field of a multipart POST. The returned
// error carries the status it should be shown with.
func (s *Server) readUpload(c *gin.Context, mode upload.Mode) (*upload.File, int, error) {
	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case stderrors.As(err, &tooLarge):
			return nil, http.StatusRequestEntityTooLarge,
				errors.InvalidInput(fmt.Sprintf("File is larger than the %s upload limit", humanBytes(s.maxUpload)))
		case stderrors.Is(err, http.ErrMissingFile), stderrors.Is(err, http.ErrNotMultipart):
			return nil, http.StatusUnprocessableEntity, errors.ParseError("No file uploaded")
		default:
			return nil, http.StatusBadRequest, errors.InvalidInput("Upload could not be read")
		}
	}

	if !mode.Accepts(header.Filename) {
		return nil, http.StatusUnprocessableEntity,
			errors.ParseErrorf("%s is not a supported file for %s (expected %v)", header.Filename, mode.Label(), upload.Extensions[mode])
	}

	f, err := header.Open()
	if err != nil {
		return nil, http.StatusBadRequest, errors.InvalidInput("Upload could not be read")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, http.StatusBadRequest, errors.InvalidInput("Upload could not be read")
	}
	if len(data) == 0 {
		return nil, http.StatusUnprocessableEntity, errors.ParseError("Uploaded file is empty")
	}
	return upload.NewFile(mode, header.Filename, data), http.StatusOK, nil
}

// lookup resolves the :token path parameter to a stored upload of mode
func (s *Server) lookup(c *gin.Context, mode upload.Mode) (*upload.File, error) {
	id, err := core.ParseUploadID(c.Param("token"))
	if err != nil {
		return nil, errors.NotFound("upload")
	}
	file, err := s.store.Get(id)
	if err != nil || file.Mode != mode {
		return nil, &errors.AppError{
			Code:    errors.CodeNotFound,
			Message: "This upload has expired or does not exist. Please upload the file again",
			Cause:   core.ErrUploadNotFound,
		}
	}
	return file, nil
}
