package ifc

import (
	domain "ifcsheet/domain/ifc"
)

// CountComponents groups the model's entities by declared type. Every entity
// in scope is counted exactly once; types that never occur have no key.
func CountComponents(model *domain.Model, scope domain.Scope) domain.ComponentCountTable {
	counts := make(domain.ComponentCountTable)
	for _, entity := range model.Entities {
		if scope == domain.ScopeProducts && !IsProduct(entity.Type) {
			continue
		}
		counts.Add(DisplayName(entity.Type))
	}
	return counts
}
