package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savannatrails/safari-backend/pkg/db/models"
	"github.com/savannatrails/safari-backend/pkg/enums"
)

// ItemDTO is the read-model handed to controllers and the package builder.
type ItemDTO struct {
	ID          uuid.UUID        `json:"id"`
	Type        enums.ItemType   `json:"type"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Location    *string          `json:"location,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	PriceBasis  enums.PriceBasis `json:"price_basis"`
	Tags        []string         `json:"tags"`
	ImageURL    *string          `json:"image_url,omitempty"`
}

// ListResult carries one catalog page plus the cursor for the next one.
type ListResult struct {
	Items      []ItemDTO `json:"items"`
	NextCursor string    `json:"next_cursor,omitempty"`
}

func toItemDTO(record *models.CatalogItem) ItemDTO {
	return ItemDTO{
		ID:          record.ID,
		Type:        record.Type,
		Name:        record.Name,
		Description: record.Description,
		Location:    record.Location,
		Price:       record.Price,
		PriceBasis:  record.PriceBasis,
		Tags:        append([]string{}, record.Tags...),
		ImageURL:    record.ImageURL,
	}
}
