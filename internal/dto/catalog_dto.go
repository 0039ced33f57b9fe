// FILE: internal/dto/catalog_dto.go
package dto

type ProductDTO struct {
	Id       string            `json:"id"`
	Name     string            `json:"name"`
	Features map[string]string `json:"features"`
}

type FeatureRowDTO struct {
	Section string `json:"section,omitempty"`
	Feature string `json:"feature"`
}

type CatalogResponse struct {
	Layout      string          `json:"layout"`
	Products    []ProductDTO    `json:"products"`
	FeatureRows []FeatureRowDTO `json:"feature_rows"`
}

type RawRowDTO struct {
	Cells  []string `json:"cells"`
	Banner bool     `json:"banner"`
}

type RawMatrixResponse struct {
	Rows []RawRowDTO `json:"rows"`
}

// QuoteRequest asks for quote-document text for the session's current
// selection in one catalog ("compare" or a sheet-tab name).
type QuoteRequest struct {
	Catalog string `json:"catalog" validate:"required"`
}

type QuoteResponse struct {
	Text string `json:"text"`
}

type ToggleRequest struct {
	ProductId string `json:"product_id" validate:"required"`
}

// SelectionResponse echoes the session's picks in one catalog. Changed is
// false when a toggle hit a capped catalog's limit and was ignored.
type SelectionResponse struct {
	Catalog  string   `json:"catalog"`
	Selected []string `json:"selected"`
	Changed  bool     `json:"changed,omitempty"`
}

type BattleCardDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type FeatureDescriptionDTO struct {
	Section      string            `json:"section,omitempty"`
	Feature      string            `json:"feature"`
	Descriptions map[string]string `json:"descriptions"`
}

type DescriptionsResponse struct {
	Languages []string                `json:"languages"`
	Items     []FeatureDescriptionDTO `json:"items"`
}

// SpecBuilderGroup is one titled block of checkbox options on the solution
// design form. The content is static; checkbox state lives client-side.
type SpecBuilderGroup struct {
	Title   string   `json:"title"`
	Options []string `json:"options"`
}
