package packages

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savannatrails/safari-backend/pkg/db/models"
	"github.com/savannatrails/safari-backend/pkg/types"
)

// PackageDTO is the read-model for a submitted safari package.
type PackageDTO struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	StartDate    string             `json:"start_date"`
	EndDate      string             `json:"end_date"`
	Participants int                `json:"participants"`
	Lodges       types.PackageItems `json:"lodges"`
	Activities   types.PackageItems `json:"activities"`
	Transport    types.PackageItems `json:"transport"`
	Cultural     types.PackageItems `json:"cultural"`
	Subtotal     decimal.Decimal    `json:"subtotal"`
	Taxes        decimal.Decimal    `json:"taxes"`
	Total        decimal.Decimal    `json:"total"`
	CreatedAt    time.Time          `json:"created_at"`
}

// ListResult carries one page of packages plus the cursor for the next one.
type ListResult struct {
	Packages   []PackageDTO `json:"packages"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

const dateLayout = "2006-01-02"

func toPackageDTO(record *models.SafariPackage) PackageDTO {
	return PackageDTO{
		ID:           record.ID,
		Name:         record.Name,
		StartDate:    record.StartDate.Format(dateLayout),
		EndDate:      record.EndDate.Format(dateLayout),
		Participants: record.Participants,
		Lodges:       emptyIfNil(record.Lodges),
		Activities:   emptyIfNil(record.Activities),
		Transport:    emptyIfNil(record.Transport),
		Cultural:     emptyIfNil(record.Cultural),
		Subtotal:     record.Subtotal,
		Taxes:        record.Taxes,
		Total:        record.Total,
		CreatedAt:    record.CreatedAt,
	}
}

func emptyIfNil(items types.PackageItems) types.PackageItems {
	if items == nil {
		return types.PackageItems{}
	}
	return items
}
