// FILE: internal/repository/contract/sheet_repository.go
// Repository interface for the spreadsheet values backend
package contract

import "context"

// SheetRepository fetches one rectangular range of cells. The range selects
// the logical dataset (products, users, cards, ...). Implementations must
// honor ctx cancellation so a dropped request doesn't leak a fetch.
type SheetRepository interface {
	Values(ctx context.Context, a1Range string) ([][]string, error)
}
