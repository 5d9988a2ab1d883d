package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savannatrails/safari-backend/pkg/types"
)

// SafariPackage is the bookable artifact created when a builder session is
// submitted. Items are stored as jsonb snapshots partitioned by type;
// service charge and discount are recomputable and not persisted.
type SafariPackage struct {
	ID           uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string             `gorm:"column:name;not null"`
	StartDate    time.Time          `gorm:"column:start_date;type:date;not null"`
	EndDate      time.Time          `gorm:"column:end_date;type:date;not null"`
	Participants int                `gorm:"column:participants;not null;default:2"`
	Lodges       types.PackageItems `gorm:"column:lodges;type:jsonb;serializer:json"`
	Activities   types.PackageItems `gorm:"column:activities;type:jsonb;serializer:json"`
	Transport    types.PackageItems `gorm:"column:transport;type:jsonb;serializer:json"`
	Cultural     types.PackageItems `gorm:"column:cultural;type:jsonb;serializer:json"`
	Subtotal     decimal.Decimal    `gorm:"column:subtotal;type:numeric(12,2);not null"`
	Taxes        decimal.Decimal    `gorm:"column:taxes;type:numeric(12,2);not null"`
	Total        decimal.Decimal    `gorm:"column:total;type:numeric(12,2);not null"`
	CreatedBy    *string            `gorm:"column:created_by"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
