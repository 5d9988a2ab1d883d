package packages

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/savannatrails/safari-backend/pkg/db/models"
	"github.com/savannatrails/safari-backend/pkg/pagination"
)

// Repository persists and reads back submitted safari packages.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, pkg *models.SafariPackage) error
	List(ctx context.Context, params listPackagesParams) ([]models.SafariPackage, *pagination.Cursor, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.SafariPackage, error)
}

type listPackagesParams struct {
	Limit  int
	Cursor *pagination.Cursor
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository constructs a package repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Create(ctx context.Context, pkg *models.SafariPackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *repositoryImpl) List(ctx context.Context, params listPackagesParams) ([]models.SafariPackage, *pagination.Cursor, error) {
	limit := pagination.LimitWithBuffer(params.Limit)
	normalized := pagination.NormalizeLimit(params.Limit)
	query := r.db.WithContext(ctx).Model(&models.SafariPackage{})
	if params.Cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", params.Cursor.CreatedAt, params.Cursor.ID)
	}

	var records []models.SafariPackage
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, nil, err
	}

	if len(records) > normalized {
		next := records[normalized]
		records = records[:normalized]
		return records, &pagination.Cursor{CreatedAt: next.CreatedAt, ID: next.ID}, nil
	}
	return records, nil, nil
}

func (r *repositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.SafariPackage, error) {
	var record models.SafariPackage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
