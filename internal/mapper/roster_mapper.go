// FILE: internal/mapper/roster_mapper.go
// Row mappers for the non-catalog grids: users, battle cards, descriptions.
package mapper

import (
	"regexp"
	"strings"

	"salesdesk-be/internal/entity"
)

var parenTag = regexp.MustCompile(`\(([^)]+)\)`)

type RosterMapper struct{}

func NewRosterMapper() *RosterMapper {
	return &RosterMapper{}
}

// GridToUsers maps credential rows [username, password]. Row 0 is a header and
// ignored. A short or empty grid yields an empty roster rather than an error;
// the login check then simply never matches.
func (m *RosterMapper) GridToUsers(grid [][]string) []entity.User {
	if len(grid) < 2 {
		return []entity.User{}
	}
	users := make([]entity.User, 0, len(grid)-1)
	for _, row := range grid[1:] {
		users = append(users, entity.User{
			Username: cell(row, 0),
			Password: cell(row, 1),
		})
	}
	return users
}

// GridToCards maps battle-card rows [name, description], skipping the header
// and any row missing either cell.
func (m *RosterMapper) GridToCards(grid [][]string) []entity.BattleCard {
	cards := make([]entity.BattleCard, 0)
	for i, row := range grid {
		if i == 0 {
			continue
		}
		name := strings.TrimSpace(cell(row, 0))
		desc := strings.TrimSpace(cell(row, 1))
		if name == "" || desc == "" {
			continue
		}
		cards = append(cards, entity.BattleCard{Name: name, Description: desc})
	}
	return cards
}

// LanguagesFromHeader resolves the language tag of each description column
// (columns 2+). "Description (English)" yields "English"; a header without a
// parenthesized tag is used as-is.
func (m *RosterMapper) LanguagesFromHeader(header []string) []string {
	langs := make([]string, 0)
	for _, h := range header[min(2, len(header)):] {
		langs = append(langs, languageTag(h))
	}
	return langs
}

// GridToDescriptions maps description rows [section, feature, text per
// language...]. Rows without a feature name are dropped.
func (m *RosterMapper) GridToDescriptions(grid [][]string) ([]entity.FeatureDescription, []string) {
	if len(grid) < 2 {
		return []entity.FeatureDescription{}, []string{}
	}
	langs := m.LanguagesFromHeader(grid[0])

	descs := make([]entity.FeatureDescription, 0, len(grid)-1)
	for _, row := range grid[1:] {
		feature := strings.TrimSpace(cell(row, 1))
		if feature == "" {
			continue
		}
		d := entity.FeatureDescription{
			Section:      strings.TrimSpace(cell(row, 0)),
			Feature:      feature,
			Descriptions: make(map[string]string, len(langs)),
		}
		for i, lang := range langs {
			d.Descriptions[lang] = cell(row, i+2)
		}
		descs = append(descs, d)
	}
	return descs, langs
}

func languageTag(header string) string {
	if m := parenTag.FindStringSubmatch(header); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(header)
}
