// sheetcheck verifies that the configured spreadsheet is reachable and that
// every configured range transforms cleanly. Run it after editing the sheet
// or rotating the API key, before anyone hits the dashboard.
package main

import (
	"context"
	"os"
	"time"

	"salesdesk-be/internal/config"
	"salesdesk-be/internal/entity"
	"salesdesk-be/internal/mapper"
	"salesdesk-be/internal/pkg/logger"
	"salesdesk-be/internal/repository/sheets"

	"github.com/fatih/color"
)

func main() {
	color.Cyan("🔎 Sheet configuration check\n")

	cfg := config.Load()
	if cfg.Sheets.SpreadsheetID == "" || cfg.Sheets.APIKey == "" {
		color.Red("SHEETS_SPREADSHEET_ID and SHEETS_API_KEY must be set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := sheets.NewClient(cfg.Sheets)
	catalogMapper := mapper.NewCatalogMapper(logger.NewNopLogger())
	rosterMapper := mapper.NewRosterMapper()

	failed := false

	color.Yellow("\n1. Comparison range (%s)", cfg.Sheets.CompareRange)
	if grid, err := client.Values(ctx, cfg.Sheets.CompareRange); err != nil {
		color.Red("Fetch failed: %v", err)
		failed = true
	} else if cat, err := catalogMapper.GridToCatalog(grid, entity.LayoutSimple); err != nil {
		color.Red("Transform failed: %v", err)
		failed = true
	} else {
		color.Green("OK: %d products, %d feature rows", len(cat.Products), len(cat.FeatureRows))
	}

	color.Yellow("\n2. Users range (%s)", cfg.Sheets.UsersRange)
	if grid, err := client.Values(ctx, cfg.Sheets.UsersRange); err != nil {
		color.Red("Fetch failed: %v", err)
		failed = true
	} else {
		users := rosterMapper.GridToUsers(grid)
		if len(users) == 0 {
			color.Red("No credential rows found, nobody will be able to log in")
			failed = true
		} else {
			color.Green("OK: %d users", len(users))
		}
	}

	color.Yellow("\n3. Battle cards range (%s)", cfg.Sheets.CardsRange)
	if grid, err := client.Values(ctx, cfg.Sheets.CardsRange); err != nil {
		color.Red("Fetch failed: %v", err)
		failed = true
	} else {
		color.Green("OK: %d cards", len(rosterMapper.GridToCards(grid)))
	}

	color.Yellow("\n4. Descriptions range (%s)", cfg.Sheets.DescriptionsRange)
	if grid, err := client.Values(ctx, cfg.Sheets.DescriptionsRange); err != nil {
		color.Red("Fetch failed: %v", err)
		failed = true
	} else {
		items, langs := rosterMapper.GridToDescriptions(grid)
		color.Green("OK: %d entries in %d languages", len(items), len(langs))
	}

	if failed {
		color.Red("\n❌ Check failed")
		os.Exit(1)
	}
	color.Green("\n✅ All ranges look good")
}
