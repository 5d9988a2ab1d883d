package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/savannatrails/safari-backend/pkg/enums"
)

// CatalogItem represents one bookable safari component offered to builders.
type CatalogItem struct {
	ID          uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Type        enums.ItemType   `gorm:"column:type;type:item_type;not null"`
	Name        string           `gorm:"column:name;not null"`
	Description *string          `gorm:"column:description"`
	Location    *string          `gorm:"column:location"`
	Price       decimal.Decimal  `gorm:"column:price;type:numeric(12,2);not null"`
	PriceBasis  enums.PriceBasis `gorm:"column:price_basis;type:price_basis;not null"`
	Tags        pq.StringArray   `gorm:"column:tags;type:text[];not null;default:ARRAY[]::text[]"`
	ImageURL    *string          `gorm:"column:image_url"`
	IsActive    bool             `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
