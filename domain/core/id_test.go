package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestIDIsEmpty tests ID emptiness check
func TestIDIsEmpty(t *testing.T) {
	if !ID("").IsEmpty() {
		t.Error("Expected empty ID to be empty")
	}
	if ID("not-empty").IsEmpty() {
		t.Error("Expected non-empty ID to not be empty")
	}
}

// TestParseUploadID tests upload token parsing
func TestParseUploadID(t *testing.T) {
	valid := NewUploadID()

	tests := []struct {
		input    string
		expected UploadID
		hasError bool
	}{
		{valid.String(), valid, false},
		{"  " + valid.String() + " ", valid, false},
		{"", "", true},
		{"   ", "", true},
		{"../etc/passwd", "", true},
	}

	for _, test := range tests {
		result, err := ParseUploadID(test.input)
		if test.hasError {
			if err == nil {
				t.Errorf("Expected error for input %q", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for input %q: %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

// TestHashShort tests fingerprint shortening
func TestHashShort(t *testing.T) {
	h := NewHash([]byte("ISO-10303-21;"))
	if len(h.String()) != 64 {
		t.Fatalf("Expected 64 hex chars, got %d", len(h.String()))
	}
	if h.Short() != h.String()[:12] {
		t.Errorf("Short() = %s, want prefix of %s", h.Short(), h)
	}
	if !h.Equals(NewHash([]byte("ISO-10303-21;"))) {
		t.Error("Expected equal hashes for equal input")
	}
	if Hash("abc").Short() != "abc" {
		t.Error("Short() should keep short hashes intact")
	}
}
