package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/savannatrails/safari-backend/pkg/db/models"
	"github.com/savannatrails/safari-backend/pkg/enums"
	"github.com/savannatrails/safari-backend/pkg/pagination"
)

// Repository exposes read operations over the catalog. The catalog is a pure
// data-fetch boundary; nothing here mutates records.
type Repository interface {
	ListByType(ctx context.Context, params listCatalogParams) ([]models.CatalogItem, *pagination.Cursor, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.CatalogItem, error)
}

type listCatalogParams struct {
	Type   enums.ItemType
	Limit  int
	Cursor *pagination.Cursor
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) ListByType(ctx context.Context, params listCatalogParams) ([]models.CatalogItem, *pagination.Cursor, error) {
	limit := pagination.LimitWithBuffer(params.Limit)
	normalized := pagination.NormalizeLimit(params.Limit)
	query := r.db.WithContext(ctx).
		Model(&models.CatalogItem{}).
		Where("type = ? AND is_active = ?", params.Type, true)
	if params.Cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", params.Cursor.CreatedAt, params.Cursor.ID)
	}

	var items []models.CatalogItem
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&items).Error; err != nil {
		return nil, nil, err
	}

	if len(items) > normalized {
		next := items[normalized]
		items = items[:normalized]
		return items, &pagination.Cursor{CreatedAt: next.CreatedAt, ID: next.ID}, nil
	}
	return items, nil, nil
}

func (r *repositoryImpl) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.CatalogItem, error) {
	var item models.CatalogItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}
