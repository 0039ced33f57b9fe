// FILE: internal/mapper/catalog_mapper.go
// Mapper for sheet grid -> catalog transformation
package mapper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"salesdesk-be/internal/entity"
	"salesdesk-be/internal/pkg/logger"
)

// ErrNoData is returned when the fetched range has no header + data rows.
var ErrNoData = errors.New("no data found in sheet")

var whitespaceRun = regexp.MustCompile(`\s+`)

type CatalogMapper struct {
	logger logger.ILogger
}

func NewCatalogMapper(log logger.ILogger) *CatalogMapper {
	return &CatalogMapper{logger: log}
}

// GridToCatalog turns a rectangular grid of cells into products and feature
// rows. Row 0 is the header (product names), the leading label column(s) are
// dictated by the layout. Ragged rows are tolerated: a missing cell reads as
// the empty string.
//
// Attribute maps are zipped by raw row position against the unfiltered label
// cells, so a blank-label row contributes no attribute to any product while
// every other row stays aligned with its own column cell.
func (m *CatalogMapper) GridToCatalog(grid [][]string, layout entity.Layout) (*entity.Catalog, error) {
	if len(grid) < 2 {
		return nil, ErrNoData
	}

	labelCols := layout.LabelColumns()
	header := grid[0]
	dataRows := grid[1:]

	// Label per data row, raw position. Blank labels stay in the slice as ""
	// so the zip below keeps its row indices.
	labels := make([]string, len(dataRows))
	for i, row := range dataRows {
		labels[i] = strings.TrimSpace(cell(row, labelCols-1))
	}

	featureRows := make([]entity.FeatureRow, 0, len(dataRows))
	for i, row := range dataRows {
		if labels[i] == "" {
			continue
		}
		fr := entity.FeatureRow{Feature: labels[i]}
		if layout == entity.LayoutSectioned {
			fr.Section = strings.TrimSpace(cell(row, 0))
		}
		featureRows = append(featureRows, fr)
	}

	// The header row bounds the column count, as in the original sheet layout:
	// a data row longer than the header is cut off at the header width.
	products := make([]entity.Product, 0)
	seen := map[string]int{}
	for col := labelCols; col < len(header); col++ {
		ordinal := col - labelCols + 1
		name := cell(header, col)
		if name == "" {
			name = fmt.Sprintf("Product %d", ordinal)
		}

		features := make(map[string]string, len(featureRows))
		for i := range dataRows {
			if labels[i] == "" {
				continue
			}
			features[labels[i]] = cell(dataRows[i], col)
		}

		id := Slug(name)
		seen[id]++
		if n := seen[id]; n > 1 {
			// Two names normalizing to the same id would otherwise shadow each
			// other in id-keyed consumers. Disambiguate and say so.
			id = fmt.Sprintf("%s-%d", id, n)
			if m.logger != nil {
				m.logger.Warn("CatalogMapper", "Duplicate product id, suffixing", map[string]interface{}{
					"name": name, "id": id,
				})
			}
		}

		products = append(products, entity.Product{
			Id:       id,
			Name:     name,
			Features: features,
		})
	}

	return &entity.Catalog{
		Layout:      layout,
		Products:    products,
		FeatureRows: featureRows,
	}, nil
}

// GridToRawRows wraps the fetched rows verbatim for passthrough rendering,
// flagging section banners.
func (m *CatalogMapper) GridToRawRows(grid [][]string) []entity.RawRow {
	rows := make([]entity.RawRow, 0, len(grid))
	for _, r := range grid {
		rows = append(rows, entity.RawRow{Cells: r, Banner: IsSectionBanner(r)})
	}
	return rows
}

// IsSectionBanner reports whether a raw row is a section banner: a non-blank
// first cell with every remaining cell blank. This is the passthrough-table
// rule only; sectioned catalogs carry sections on the FeatureRow instead.
func IsSectionBanner(row []string) bool {
	if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
		return false
	}
	for _, c := range row[1:] {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Slug derives a product id from its name: lowercase, whitespace runs
// collapsed to a single dash. Pure function of the name.
func Slug(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
