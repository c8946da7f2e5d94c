package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	UploadID  ID
	RequestID ID
)

func (id UploadID) String() string  { return ID(id).String() }
func (id RequestID) String() string { return ID(id).String() }

// NewUploadID returns a fresh token for a stored upload
func NewUploadID() UploadID { return UploadID(NewID()) }

// NewRequestID returns a fresh id for tagging one HTTP request
func NewRequestID() RequestID { return RequestID(NewID()) }

// ParseUploadID accepts only canonical UUID strings so tokens cannot carry
// arbitrary text into logs or URLs
func ParseUploadID(s string) (UploadID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("upload ID cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid upload ID %q: %w", s, err)
	}
	return UploadID(parsed.String()), nil
}
