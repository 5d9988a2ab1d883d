package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savannatrails/safari-backend/internal/pricing"
	"github.com/savannatrails/safari-backend/internal/selection"
	"github.com/savannatrails/safari-backend/pkg/enums"
)

// ItemView is one selected entry as presented to the caller, with its
// live contribution to the subtotal.
type ItemView struct {
	ID           string          `json:"id"`
	CatalogID    uuid.UUID       `json:"catalog_id"`
	Type         enums.ItemType  `json:"type"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Nights       *int            `json:"nights,omitempty"`
	Contribution decimal.Decimal `json:"contribution"`
}

// SummaryDTO is the live view of a builder session: the selection in
// insertion order plus the breakdown recomputed from it.
type SummaryDTO struct {
	SessionID string            `json:"session_id"`
	Items     []ItemView        `json:"items"`
	Breakdown pricing.Breakdown `json:"breakdown"`
}

// SubmitResult reports a successful submission. The full breakdown is
// returned for display even though only subtotal, taxes and total are
// persisted.
type SubmitResult struct {
	PackageID    uuid.UUID         `json:"package_id"`
	Name         string            `json:"name"`
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date"`
	Participants int               `json:"participants"`
	Breakdown    pricing.Breakdown `json:"breakdown"`
}

func buildSummary(sessionID string, items []selection.SelectedItem) *SummaryDTO {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ItemView{
			ID:           item.ID,
			CatalogID:    item.CatalogID,
			Type:         item.Type,
			Name:         item.Name,
			Price:        item.Price,
			Nights:       item.Nights,
			Contribution: pricing.Contribution(item),
		})
	}
	return &SummaryDTO{
		SessionID: sessionID,
		Items:     views,
		Breakdown: pricing.Compute(items),
	}
}

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
