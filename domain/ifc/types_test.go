package ifc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentCountTableSorted(t *testing.T) {
	table := ComponentCountTable{}
	for _, typ := range []string{"IfcWall", "IfcDoor", "IfcWall", "IfcSlab", "IfcDoor", "IfcWall"} {
		table.Add(typ)
	}

	assert.Equal(t, 6, table.Total())
	assert.Equal(t, []TypeCount{
		{Type: "IfcWall", Count: 3},
		{Type: "IfcDoor", Count: 2},
		{Type: "IfcSlab", Count: 1},
	}, table.Sorted())
}

func TestComponentCountTableEmpty(t *testing.T) {
	table := ComponentCountTable{}
	assert.Equal(t, 0, table.Total())
	assert.Empty(t, table.Sorted())
}

func TestParseScope(t *testing.T) {
	assert.Equal(t, ScopeProducts, ParseScope("Products"))
	assert.Equal(t, ScopeAll, ParseScope(""))
	assert.Equal(t, ScopeAll, ParseScope("everything"))
}
