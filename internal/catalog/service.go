package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/savannatrails/safari-backend/pkg/errors"
	"github.com/savannatrails/safari-backend/pkg/enums"
	"github.com/savannatrails/safari-backend/pkg/pagination"
)

// Service is the catalog read API consumed by controllers and the builder.
type Service interface {
	List(ctx context.Context, itemType enums.ItemType, params pagination.Params) (*ListResult, error)
	GetItem(ctx context.Context, id uuid.UUID) (*ItemDTO, error)
}

type serviceImpl struct {
	repo Repository
}

// NewService wires the catalog service with its repository.
func NewService(repo Repository) Service {
	return &serviceImpl{repo: repo}
}

func (s *serviceImpl) List(ctx context.Context, itemType enums.ItemType, params pagination.Params) (*ListResult, error) {
	if !itemType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown catalog item type")
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid pagination cursor")
	}

	records, next, err := s.repo.ListByType(ctx, listCatalogParams{
		Type:   itemType,
		Limit:  params.Limit,
		Cursor: cursor,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeFetch, err, "list catalog items")
	}

	items := make([]ItemDTO, 0, len(records))
	for i := range records {
		items = append(items, toItemDTO(&records[i]))
	}

	result := &ListResult{Items: items}
	if next != nil {
		result.NextCursor = pagination.EncodeCursor(*next)
	}
	return result, nil
}

func (s *serviceImpl) GetItem(ctx context.Context, id uuid.UUID) (*ItemDTO, error) {
	record, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "catalog item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeFetch, err, "fetch catalog item")
	}
	dto := toItemDTO(record)
	return &dto, nil
}
