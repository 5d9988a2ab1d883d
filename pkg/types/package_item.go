package types

import "github.com/shopspring/decimal"

// PackageItem is the snapshot of one selected component persisted inside a
// safari package record. Prices are copied at selection time and never
// re-fetched from the catalog.
type PackageItem struct {
	SelectionID string          `json:"selection_id"`
	CatalogID   string          `json:"catalog_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Nights      *int            `json:"nights,omitempty"`
}

// PackageItems is stored as a jsonb bucket per item type.
type PackageItems []PackageItem
