package packages

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/savannatrails/safari-backend/pkg/errors"
	"github.com/savannatrails/safari-backend/pkg/pagination"
)

// Service is the read API over submitted packages. Creation goes through the
// builder, which owns pricing and validation.
type Service interface {
	List(ctx context.Context, params pagination.Params) (*ListResult, error)
	Get(ctx context.Context, id uuid.UUID) (*PackageDTO, error)
}

type serviceImpl struct {
	repo Repository
}

// NewService wires the packages service with its repository.
func NewService(repo Repository) Service {
	return &serviceImpl{repo: repo}
}

func (s *serviceImpl) List(ctx context.Context, params pagination.Params) (*ListResult, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid pagination cursor")
	}

	records, next, err := s.repo.List(ctx, listPackagesParams{Limit: params.Limit, Cursor: cursor})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeFetch, err, "list safari packages")
	}

	out := make([]PackageDTO, 0, len(records))
	for i := range records {
		out = append(out, toPackageDTO(&records[i]))
	}

	result := &ListResult{Packages: out}
	if next != nil {
		result.NextCursor = pagination.EncodeCursor(*next)
	}
	return result, nil
}

func (s *serviceImpl) Get(ctx context.Context, id uuid.UUID) (*PackageDTO, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "safari package not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeFetch, err, "fetch safari package")
	}
	dto := toPackageDTO(record)
	return &dto, nil
}
