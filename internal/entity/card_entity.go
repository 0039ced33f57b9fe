// FILE: internal/entity/card_entity.go
package entity

// BattleCard is one value-proposition flip card (name on the front,
// description on the back).
type BattleCard struct {
	Name        string
	Description string
}

// FeatureDescription carries the quote-document text for one feature,
// keyed by language tag.
type FeatureDescription struct {
	Section      string
	Feature      string
	Descriptions map[string]string
}
