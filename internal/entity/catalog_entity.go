// FILE: internal/entity/catalog_entity.go
// Domain entities for the product comparison catalog
package entity

// Layout describes how a sheet maps its leading columns to feature labels.
type Layout string

const (
	// LayoutSimple: column 0 holds the feature label, data columns follow.
	LayoutSimple Layout = "simple"
	// LayoutSectioned: column 0 holds the section, column 1 the feature label.
	LayoutSectioned Layout = "sectioned"
)

// LabelColumns returns how many leading columns are reserved for labels.
func (l Layout) LabelColumns() int {
	if l == LayoutSectioned {
		return 2
	}
	return 1
}

// Product is one comparable item built from a single sheet column.
// Products are value objects: rebuilt fresh on every fetch, never mutated.
type Product struct {
	Id       string
	Name     string
	Features map[string]string
}

// FeatureRow is one comparable dimension. Section is optional and only
// meaningful for sectioned layouts.
type FeatureRow struct {
	Section string
	Feature string
}

// Catalog is the transformed view of one sheet: products as columns,
// feature rows in source order (blank-label rows already dropped).
type Catalog struct {
	Layout      Layout
	Products    []Product
	FeatureRows []FeatureRow
}

// Product returns the product with the given id, if present.
func (c *Catalog) Product(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.Id == id {
			return p, true
		}
	}
	return Product{}, false
}

// RawRow is one untransformed sheet row for verbatim rendering, with the
// banner heuristic already applied.
type RawRow struct {
	Cells  []string
	Banner bool
}
