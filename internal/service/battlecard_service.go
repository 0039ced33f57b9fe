// FILE: internal/service/battlecard_service.go
package service

import (
	"context"

	"salesdesk-be/internal/config"
	"salesdesk-be/internal/dto"
	"salesdesk-be/internal/mapper"
	"salesdesk-be/internal/pkg/logger"
	"salesdesk-be/internal/repository/contract"
)

type IBattleCardService interface {
	Cards(ctx context.Context) ([]dto.BattleCardDTO, error)
	Descriptions(ctx context.Context) (*dto.DescriptionsResponse, error)
}

type battleCardService struct {
	sheets contract.SheetRepository
	roster *mapper.RosterMapper
	logger logger.ILogger
	cfg    config.SheetsConfig
}

func NewBattleCardService(
	sheets contract.SheetRepository,
	rosterMapper *mapper.RosterMapper,
	log logger.ILogger,
	cfg config.SheetsConfig,
) IBattleCardService {
	return &battleCardService{
		sheets: sheets,
		roster: rosterMapper,
		logger: log,
		cfg:    cfg,
	}
}

func (s *battleCardService) Cards(ctx context.Context) ([]dto.BattleCardDTO, error) {
	grid, err := s.sheets.Values(ctx, s.cfg.CardsRange)
	if err != nil {
		return nil, err
	}

	cards := s.roster.GridToCards(grid)
	res := make([]dto.BattleCardDTO, 0, len(cards))
	for _, c := range cards {
		res = append(res, dto.BattleCardDTO{Name: c.Name, Description: c.Description})
	}
	return res, nil
}

// Descriptions returns per-feature marketing copy in every language the sheet
// header declares. Language names come from the parenthesized tag in the
// header cell when present.
func (s *battleCardService) Descriptions(ctx context.Context) (*dto.DescriptionsResponse, error) {
	grid, err := s.sheets.Values(ctx, s.cfg.DescriptionsRange)
	if err != nil {
		return nil, err
	}

	items, languages := s.roster.GridToDescriptions(grid)

	res := &dto.DescriptionsResponse{
		Languages: languages,
		Items:     make([]dto.FeatureDescriptionDTO, 0, len(items)),
	}
	for _, it := range items {
		res.Items = append(res.Items, dto.FeatureDescriptionDTO{
			Section:      it.Section,
			Feature:      it.Feature,
			Descriptions: it.Descriptions,
		})
	}
	return res, nil
}
