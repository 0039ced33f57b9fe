// FILE: internal/service/catalog_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"salesdesk-be/internal/config"
	"salesdesk-be/internal/constant"
	"salesdesk-be/internal/dto"
	"salesdesk-be/internal/entity"
	"salesdesk-be/internal/mapper"
	"salesdesk-be/internal/pkg/logger"
	"salesdesk-be/internal/repository/contract"
)

// ErrInvalidSheetName guards the tab-name path parameter before it is spliced
// into an A1 range.
var ErrInvalidSheetName = errors.New("invalid sheet name")

var sheetTabName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 _-]*$`)

type ICatalogService interface {
	CompareCatalog(ctx context.Context) (*dto.CatalogResponse, error)
	SheetCatalog(ctx context.Context, tab string) (*dto.CatalogResponse, error)
	RawMatrix(ctx context.Context, tab string) (*dto.RawMatrixResponse, error)
	QuoteText(ctx context.Context, catalog string, selected []string) (*dto.QuoteResponse, error)
}

type catalogService struct {
	sheets  contract.SheetRepository
	catalog *mapper.CatalogMapper
	logger  logger.ILogger
	cfg     config.SheetsConfig
}

func NewCatalogService(
	sheets contract.SheetRepository,
	catalogMapper *mapper.CatalogMapper,
	log logger.ILogger,
	cfg config.SheetsConfig,
) ICatalogService {
	return &catalogService{
		sheets:  sheets,
		catalog: catalogMapper,
		logger:  log,
		cfg:     cfg,
	}
}

// CompareCatalog serves the main comparison matrix: simple layout, feature
// label in column 0.
func (s *catalogService) CompareCatalog(ctx context.Context) (*dto.CatalogResponse, error) {
	cat, err := s.fetchCatalog(ctx, s.cfg.CompareRange, entity.LayoutSimple)
	if err != nil {
		return nil, err
	}
	return toCatalogResponse(cat), nil
}

// SheetCatalog serves any product-line tab in the sectioned layout
// ([section, feature, product...]).
func (s *catalogService) SheetCatalog(ctx context.Context, tab string) (*dto.CatalogResponse, error) {
	rng, err := tabRange(tab)
	if err != nil {
		return nil, err
	}
	cat, err := s.fetchCatalog(ctx, rng, entity.LayoutSectioned)
	if err != nil {
		return nil, err
	}
	return toCatalogResponse(cat), nil
}

// RawMatrix returns a tab verbatim, each row flagged by the banner heuristic.
// Used by the compatibility matrix, which renders the sheet as-is.
func (s *catalogService) RawMatrix(ctx context.Context, tab string) (*dto.RawMatrixResponse, error) {
	rng, err := tabRange(tab)
	if err != nil {
		return nil, err
	}
	grid, err := s.sheets.Values(ctx, rng)
	if err != nil {
		return nil, err
	}
	if len(grid) < 2 {
		return nil, mapper.ErrNoData
	}

	rows := s.catalog.GridToRawRows(grid)
	res := &dto.RawMatrixResponse{Rows: make([]dto.RawRowDTO, 0, len(rows))}
	for _, r := range rows {
		res.Rows = append(res.Rows, dto.RawRowDTO{Cells: r.Cells, Banner: r.Banner})
	}
	return res, nil
}

// QuoteText renders the selected products as tab-separated text ready to be
// pasted into a quote document. Blank cells come out as the placeholder dash.
func (s *catalogService) QuoteText(ctx context.Context, catalog string, selected []string) (*dto.QuoteResponse, error) {
	var (
		cat *entity.Catalog
		err error
	)
	if catalog == constant.CatalogCompare {
		cat, err = s.fetchCatalog(ctx, s.cfg.CompareRange, entity.LayoutSimple)
	} else {
		var rng string
		if rng, err = tabRange(catalog); err == nil {
			cat, err = s.fetchCatalog(ctx, rng, entity.LayoutSectioned)
		}
	}
	if err != nil {
		return nil, err
	}

	return &dto.QuoteResponse{Text: buildQuoteText(cat, selected)}, nil
}

func (s *catalogService) fetchCatalog(ctx context.Context, rng string, layout entity.Layout) (*entity.Catalog, error) {
	grid, err := s.sheets.Values(ctx, rng)
	if err != nil {
		return nil, err
	}
	return s.catalog.GridToCatalog(grid, layout)
}

func tabRange(tab string) (string, error) {
	if !sheetTabName.MatchString(tab) {
		return "", ErrInvalidSheetName
	}
	return fmt.Sprintf("%s!A1:ZZ1000", tab), nil
}

func toCatalogResponse(cat *entity.Catalog) *dto.CatalogResponse {
	res := &dto.CatalogResponse{
		Layout:      string(cat.Layout),
		Products:    make([]dto.ProductDTO, 0, len(cat.Products)),
		FeatureRows: make([]dto.FeatureRowDTO, 0, len(cat.FeatureRows)),
	}
	for _, p := range cat.Products {
		res.Products = append(res.Products, dto.ProductDTO{Id: p.Id, Name: p.Name, Features: p.Features})
	}
	for _, fr := range cat.FeatureRows {
		res.FeatureRows = append(res.FeatureRows, dto.FeatureRowDTO{Section: fr.Section, Feature: fr.Feature})
	}
	return res
}

// buildQuoteText lays the comparison out row-major: one header line of product
// names, then one line per feature row. Selection order is preserved; ids that
// no longer resolve (the sheet changed under the session) are skipped.
func buildQuoteText(cat *entity.Catalog, selected []string) string {
	products := make([]entity.Product, 0, len(selected))
	for _, id := range selected {
		if p, ok := cat.Product(id); ok {
			products = append(products, p)
		}
	}

	sectioned := cat.Layout == entity.LayoutSectioned

	var b strings.Builder
	if sectioned {
		b.WriteString("Section\t")
	}
	b.WriteString("Feature")
	for _, p := range products {
		b.WriteByte('\t')
		b.WriteString(p.Name)
	}
	b.WriteByte('\n')

	for _, fr := range cat.FeatureRows {
		if sectioned {
			b.WriteString(fr.Section)
			b.WriteByte('\t')
		}
		b.WriteString(fr.Feature)
		for _, p := range products {
			b.WriteByte('\t')
			if v := p.Features[fr.Feature]; strings.TrimSpace(v) != "" {
				b.WriteString(v)
			} else {
				b.WriteString(constant.BlankValuePlaceholder)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
