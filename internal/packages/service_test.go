package packages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/savannatrails/safari-backend/pkg/db/models"
	pkgerrors "github.com/savannatrails/safari-backend/pkg/errors"
	paginationpkg "github.com/savannatrails/safari-backend/pkg/pagination"
)

type fakeRepository struct {
	createFn func(ctx context.Context, pkg *models.SafariPackage) error
	listFn   func(ctx context.Context, params listPackagesParams) ([]models.SafariPackage, *paginationpkg.Cursor, error)
	findFn   func(ctx context.Context, id uuid.UUID) (*models.SafariPackage, error)
}

func (f *fakeRepository) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepository) Create(ctx context.Context, pkg *models.SafariPackage) error {
	if f.createFn != nil {
		return f.createFn(ctx, pkg)
	}
	return nil
}

func (f *fakeRepository) List(ctx context.Context, params listPackagesParams) ([]models.SafariPackage, *paginationpkg.Cursor, error) {
	if f.listFn != nil {
		return f.listFn(ctx, params)
	}
	return nil, nil, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.SafariPackage, error) {
	if f.findFn != nil {
		return f.findFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func TestServiceList_encodesCursorAndFormatsDates(t *testing.T) {
	start := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	record := models.SafariPackage{
		ID:           uuid.New(),
		Name:         "Serengeti Honeymoon",
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 7),
		Participants: 2,
		Subtotal:     decimal.RequireFromString("1000.00"),
		Taxes:        decimal.RequireFromString("120.00"),
		Total:        decimal.RequireFromString("1170.00"),
		CreatedAt:    time.Now(),
	}
	next := paginationpkg.Cursor{CreatedAt: time.Now().Add(-time.Hour), ID: uuid.New()}

	repo := &fakeRepository{
		listFn: func(ctx context.Context, params listPackagesParams) ([]models.SafariPackage, *paginationpkg.Cursor, error) {
			return []models.SafariPackage{record}, &next, nil
		},
	}

	svc := NewService(repo)
	result, err := svc.List(context.Background(), paginationpkg.Params{Limit: 1})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(result.Packages) != 1 {
		t.Fatalf("expected 1 package, got %d", len(result.Packages))
	}
	got := result.Packages[0]
	if got.StartDate != "2026-09-08" {
		t.Fatalf("unexpected start date %q", got.StartDate)
	}
	if got.EndDate != "2026-09-15" {
		t.Fatalf("unexpected end date %q", got.EndDate)
	}
	if got.Lodges == nil || got.Cultural == nil {
		t.Fatal("expected empty buckets, not nil")
	}
	if result.NextCursor == "" {
		t.Fatal("expected next cursor to be set")
	}
}

func TestServiceList_wrapsRepoFailure(t *testing.T) {
	repo := &fakeRepository{
		listFn: func(ctx context.Context, params listPackagesParams) ([]models.SafariPackage, *paginationpkg.Cursor, error) {
			return nil, nil, errors.New("connection reset")
		},
	}

	svc := NewService(repo)
	_, err := svc.List(context.Background(), paginationpkg.Params{})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeFetch {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestServiceGet_notFound(t *testing.T) {
	svc := NewService(&fakeRepository{})

	_, err := svc.Get(context.Background(), uuid.New())
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
