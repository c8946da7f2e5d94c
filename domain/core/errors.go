package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrNotFound         = errors.New("resource not found")
	ErrUploadNotFound   = fmt.Errorf("%w: upload", ErrNotFound)
	ErrColumnNotFound   = fmt.Errorf("%w: column", ErrNotFound)
	ErrSheetNotFound    = fmt.Errorf("%w: sheet", ErrNotFound)
	ErrEmptyUpload      = errors.New("uploaded file is empty")
	ErrUnsupportedType  = errors.New("unsupported file type")
	ErrNotIFC           = errors.New("not an IFC file")
	ErrMalformedIFC     = errors.New("malformed IFC file")
	ErrDuplicateEntity  = fmt.Errorf("%w: duplicate entity instance", ErrMalformedIFC)
	ErrUnbalancedParams = fmt.Errorf("%w: unbalanced parentheses", ErrMalformedIFC)
)

// NewNotFoundError builds a not-found error carrying the offending name
func NewNotFoundError(kind error, name string) error {
	return fmt.Errorf("%w %q", kind, name)
}

// IsNotFoundError reports whether err is any not-found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
