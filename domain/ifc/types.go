package ifc

import (
	"sort"
	"strings"
)

// Scope restricts which entity types take part in a count
type Scope string

const (
	// ScopeAll counts every instance in the DATA section
	ScopeAll Scope = "all"
	// ScopeProducts counts only IfcProduct subtypes (walls, doors, spaces...)
	ScopeProducts Scope = "products"
)

// ParseScope maps a query value to a scope, defaulting to ScopeAll
func ParseScope(s string) Scope {
	if Scope(strings.ToLower(strings.TrimSpace(s))) == ScopeProducts {
		return ScopeProducts
	}
	return ScopeAll
}

// Entity is one instance line of a STEP physical file
type Entity struct {
	ID   int
	Type string // declared type name, upper case as written in the file
	Line int
}

// Header carries the fields of the HEADER section that the UI shows
type Header struct {
	Description string
	FileName    string
	Schemas     []string
}

// Model is a parsed IFC file
type Model struct {
	Header   Header
	Entities []Entity
}

// TypeCount is one row of a sorted count table
type TypeCount struct {
	Type  string
	Count int
}

// ComponentCountTable maps a component type name to its occurrence count.
// Keys only exist for counts above zero.
type ComponentCountTable map[string]int

// Add increments the count for typ
func (t ComponentCountTable) Add(typ string) {
	t[typ]++
}

// Total returns the sum of all counts
func (t ComponentCountTable) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Sorted returns rows ordered by count descending, then type ascending
func (t ComponentCountTable) Sorted() []TypeCount {
	rows := make([]TypeCount, 0, len(t))
	for typ, n := range t {
		rows = append(rows, TypeCount{Type: typ, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Type < rows[j].Type
	})
	return rows
}
