package mapper

import (
	"testing"

	"salesdesk-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridToCatalogSimple(t *testing.T) {
	m := NewCatalogMapper(nil)

	grid := [][]string{
		{"Feature", "P1", "P2"},
		{"Speed", "Fast", "Slow"},
	}

	cat, err := m.GridToCatalog(grid, entity.LayoutSimple)
	require.NoError(t, err)

	require.Len(t, cat.FeatureRows, 1)
	assert.Equal(t, "Speed", cat.FeatureRows[0].Feature)

	require.Len(t, cat.Products, 2)
	assert.Equal(t, "p1", cat.Products[0].Id)
	assert.Equal(t, "P1", cat.Products[0].Name)
	assert.Equal(t, map[string]string{"Speed": "Fast"}, cat.Products[0].Features)
	assert.Equal(t, "p2", cat.Products[1].Id)
	assert.Equal(t, map[string]string{"Speed": "Slow"}, cat.Products[1].Features)
}

func TestGridToCatalogRejectsShortGrid(t *testing.T) {
	m := NewCatalogMapper(nil)

	_, err := m.GridToCatalog(nil, entity.LayoutSimple)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = m.GridToCatalog([][]string{{"Feature", "P1"}}, entity.LayoutSimple)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestGridToCatalogBlankLabelRows(t *testing.T) {
	m := NewCatalogMapper(nil)

	grid := [][]string{
		{"Feature", "P1", "P2"},
		{"Speed", "Fast", "Slow"},
		{"", "", ""},
		{"Weight", "1kg", "2kg"},
	}

	cat, err := m.GridToCatalog(grid, entity.LayoutSimple)
	require.NoError(t, err)

	// The all-blank row vanishes from the label list and contributes no
	// attribute, while later rows stay aligned with their own cells.
	require.Len(t, cat.FeatureRows, 2)
	assert.Equal(t, "Speed", cat.FeatureRows[0].Feature)
	assert.Equal(t, "Weight", cat.FeatureRows[1].Feature)

	for _, p := range cat.Products {
		assert.Len(t, p.Features, 2)
	}
	assert.Equal(t, "1kg", cat.Products[0].Features["Weight"])
	assert.Equal(t, "2kg", cat.Products[1].Features["Weight"])
}

func TestGridToCatalogRaggedRows(t *testing.T) {
	m := NewCatalogMapper(nil)

	grid := [][]string{
		{"Feature", "P1", "P2"},
		{"Speed", "Fast"}, // P2 cell missing
		{"Weight"},        // both cells missing
	}

	cat, err := m.GridToCatalog(grid, entity.LayoutSimple)
	require.NoError(t, err)

	assert.Equal(t, "", cat.Products[1].Features["Speed"])
	assert.Equal(t, "", cat.Products[0].Features["Weight"])
	assert.Equal(t, "", cat.Products[1].Features["Weight"])
}

func TestGridToCatalogFallbackNames(t *testing.T) {
	m := NewCatalogMapper(nil)

	grid := [][]string{
		{"Feature", "", "P2", ""},
		{"Speed", "a", "b", "c"},
	}

	cat, err := m.GridToCatalog(grid, entity.LayoutSimple)
	require.NoError(t, err)

	require.Len(t, cat.Products, 3)
	assert.Equal(t, "Product 1", cat.Products[0].Name)
	assert.Equal(t, "P2", cat.Products[1].Name)
	assert.Equal(t, "Product 3", cat.Products[2].Name)
}

func TestGridToCatalogSectioned(t *testing.T) {
	m := NewCatalogMapper(nil)

	grid := [][]string{
		{"Section", "Feature", "V1", "V2"},
		{"Display", "Size", "12\"", "15\""},
		{"Display", "Touch", "Yes", "No"},
		{"", "Weight", "1kg", "2kg"},
		{"Power", "", "x", "y"}, // blank label: dropped entirely
	}

	cat, err := m.GridToCatalog(grid, entity.LayoutSectioned)
	require.NoError(t, err)

	require.Len(t, cat.FeatureRows, 3)
	assert.Equal(t, entity.FeatureRow{Section: "Display", Feature: "Size"}, cat.FeatureRows[0])
	assert.Equal(t, entity.FeatureRow{Section: "", Feature: "Weight"}, cat.FeatureRows[2])

	require.Len(t, cat.Products, 2)
	assert.Equal(t, "v1", cat.Products[0].Id)
	assert.Equal(t, map[string]string{
		"Size": "12\"", "Touch": "Yes", "Weight": "1kg",
	}, cat.Products[0].Features)
	_, hasBlankLabel := cat.Products[0].Features[""]
	assert.False(t, hasBlankLabel)
}

func TestGridToCatalogSectionedFallbackNames(t *testing.T) {
	m := NewCatalogMapper(nil)

	grid := [][]string{
		{"Section", "Feature", "", "V2"},
		{"S", "F", "a", "b"},
	}

	cat, err := m.GridToCatalog(grid, entity.LayoutSectioned)
	require.NoError(t, err)
	assert.Equal(t, "Product 1", cat.Products[0].Name)
	assert.Equal(t, "V2", cat.Products[1].Name)
}

func TestGridToCatalogIdempotent(t *testing.T) {
	m := NewCatalogMapper(nil)

	grid := [][]string{
		{"Feature", "P1", "P2"},
		{"Speed", "Fast", "Slow"},
		{"Weight", "1kg", "2kg"},
	}

	first, err := m.GridToCatalog(grid, entity.LayoutSimple)
	require.NoError(t, err)
	second, err := m.GridToCatalog(grid, entity.LayoutSimple)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGridToCatalogDuplicateIds(t *testing.T) {
	m := NewCatalogMapper(nil)

	grid := [][]string{
		{"Feature", "Alpha One", "ALPHA   ONE", "alpha one"},
		{"Speed", "a", "b", "c"},
	}

	cat, err := m.GridToCatalog(grid, entity.LayoutSimple)
	require.NoError(t, err)

	// Colliding names keep all three products, disambiguated by suffix.
	require.Len(t, cat.Products, 3)
	assert.Equal(t, "alpha-one", cat.Products[0].Id)
	assert.Equal(t, "alpha-one-2", cat.Products[1].Id)
	assert.Equal(t, "alpha-one-3", cat.Products[2].Id)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"P1", "p1"},
		{"BeneVision CMS", "benevision-cms"},
		{"A   B", "a-b"},
		{"A B", "a-b"},
		{"Tab\tSeparated", "tab-separated"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.name))
		// Pure: same input, same output.
		assert.Equal(t, Slug(tt.name), Slug(tt.name))
	}
}

func TestIsSectionBanner(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{"section only", []string{"M Series", "", ""}, true},
		{"trailing whitespace cells", []string{"N Series", "  ", "\t"}, true},
		{"single cell", []string{"M Series"}, true},
		{"data row", []string{"iPM", "YES", "No"}, false},
		{"blank first cell", []string{"", "YES", ""}, false},
		{"empty row", []string{}, false},
		{"all blank", []string{"", "", ""}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSectionBanner(tt.row))
		})
	}
}

func TestGridToRawRows(t *testing.T) {
	m := NewCatalogMapper(nil)

	rows := m.GridToRawRows([][]string{
		{"Product", "07.43.00", "07.42.00"},
		{"M Series", "", ""},
		{"iPM", "YES", "YES"},
	})

	require.Len(t, rows, 3)
	assert.False(t, rows[0].Banner)
	assert.True(t, rows[1].Banner)
	assert.False(t, rows[2].Banner)
	assert.Equal(t, []string{"iPM", "YES", "YES"}, rows[2].Cells)
}
