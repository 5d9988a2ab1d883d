package builder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/savannatrails/safari-backend/internal/catalog"
	"github.com/savannatrails/safari-backend/internal/pricing"
	"github.com/savannatrails/safari-backend/internal/selection"
	"github.com/savannatrails/safari-backend/pkg/db/models"
	"github.com/savannatrails/safari-backend/pkg/enums"
	pkgerrors "github.com/savannatrails/safari-backend/pkg/errors"
	"github.com/savannatrails/safari-backend/pkg/logger"
	"github.com/savannatrails/safari-backend/pkg/metrics"
	"github.com/savannatrails/safari-backend/pkg/types"
)

const (
	defaultParticipants  = 2
	defaultStartOffset   = 7 * 24 * time.Hour
	defaultEndOffset     = 14 * 24 * time.Hour
	submissionLockTTL    = 30 * time.Second
	submitOperationLabel = "submit"
)

type catalogLoader interface {
	GetItem(ctx context.Context, id uuid.UUID) (*catalog.ItemDTO, error)
}

type packageCreator interface {
	Create(ctx context.Context, pkg *models.SafariPackage) error
}

type submissionLocker interface {
	AcquireSubmissionLock(ctx context.Context, sessionID string, ttl time.Duration) (bool, error)
	ReleaseSubmissionLock(ctx context.Context, sessionID string) error
}

type eventPublisher interface {
	PublishPackageCreated(ctx context.Context, event PackageCreatedEvent) error
}

// ToggleInput identifies the catalog item to select or deselect.
type ToggleInput struct {
	Type      enums.ItemType
	CatalogID uuid.UUID
	Nights    *int
}

// SubmitInput carries optional overrides for the persisted package. Absent
// fields fall back to defaults: start a week out, end two weeks out, two
// participants, a generated name.
type SubmitInput struct {
	Name         *string
	StartDate    *time.Time
	EndDate      *time.Time
	Participants *int
	CreatedBy    *string
}

// Service is the package builder: the toggle contract over the selection
// store, the live breakdown, and the one-shot submission.
type Service interface {
	OpenSession(ctx context.Context) (*SummaryDTO, error)
	CloseSession(ctx context.Context, sessionID string) error
	Summary(ctx context.Context, sessionID string) (*SummaryDTO, error)
	Toggle(ctx context.Context, sessionID string, input ToggleInput) (*SummaryDTO, error)
	UpdateNights(ctx context.Context, sessionID, itemID string, nights int) (*SummaryDTO, error)
	Submit(ctx context.Context, sessionID string, input SubmitInput) (*SubmitResult, error)
}

type service struct {
	sessions  *Registry
	catalog   catalogLoader
	repo      packageCreator
	locker    submissionLocker
	publisher eventPublisher
	metrics   *metrics.BuilderMetrics
	logg      *logger.Logger
	now       func() time.Time
}

// NewService builds the package builder service. The publisher is optional;
// everything else is required.
func NewService(sessions *Registry, catalogSvc catalogLoader, repo packageCreator, locker submissionLocker, publisher eventPublisher, builderMetrics *metrics.BuilderMetrics, logg *logger.Logger) (Service, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session registry required")
	}
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog loader required")
	}
	if repo == nil {
		return nil, fmt.Errorf("package repository required")
	}
	if locker == nil {
		return nil, fmt.Errorf("submission locker required")
	}
	return &service{
		sessions:  sessions,
		catalog:   catalogSvc,
		repo:      repo,
		locker:    locker,
		publisher: publisher,
		metrics:   builderMetrics,
		logg:      logg,
		now:       time.Now,
	}, nil
}

func (s *service) OpenSession(ctx context.Context) (*SummaryDTO, error) {
	session := s.sessions.Open()
	if s.logg != nil {
		s.logg.Info(s.logg.WithSessionID(ctx, session.ID), "builder session opened")
	}
	return buildSummary(session.ID, nil), nil
}

func (s *service) CloseSession(ctx context.Context, sessionID string) error {
	if _, err := s.sessions.Get(sessionID); err != nil {
		return err
	}
	s.sessions.Close(sessionID)
	return nil
}

func (s *service) Summary(ctx context.Context, sessionID string) (*SummaryDTO, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return buildSummary(session.ID, session.Snapshot()), nil
}

// Toggle flips membership for the given catalog item: present entries are
// removed, absent ones are fetched from the catalog and added with a price
// snapshot. Re-invoking on a selected item always deselects it.
func (s *service) Toggle(ctx context.Context, sessionID string, input ToggleInput) (*SummaryDTO, error) {
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown catalog item type")
	}
	if input.CatalogID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog id is required")
	}

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	selectionID := selection.SelectionID(input.Type, input.CatalogID)

	var removed bool
	session.WithSelection(func(store *selection.Store) {
		if store.Contains(selectionID) {
			store.Remove(selectionID)
			removed = true
		}
	})
	if removed {
		return buildSummary(session.ID, session.Snapshot()), nil
	}

	item, err := s.catalog.GetItem(ctx, input.CatalogID)
	if err != nil {
		return nil, err
	}
	if item.Type != input.Type {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog item type does not match requested type")
	}

	entry := selection.SelectedItem{
		ID:        selectionID,
		CatalogID: item.ID,
		Name:      item.Name,
		Price:     item.Price,
		Type:      item.Type,
		Nights:    input.Nights,
	}
	session.WithSelection(func(store *selection.Store) {
		// A concurrent toggle may have added the entry while the catalog
		// fetch was in flight; adding twice would break the one-entry-per-id
		// invariant, so flip to a removal instead.
		if store.Contains(selectionID) {
			store.Remove(selectionID)
			return
		}
		store.Add(entry)
	})
	return buildSummary(session.ID, session.Snapshot()), nil
}

func (s *service) UpdateNights(ctx context.Context, sessionID, itemID string, nights int) (*SummaryDTO, error) {
	if nights < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nights must be at least 1")
	}

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	var found bool
	session.WithSelection(func(store *selection.Store) {
		if !store.Contains(itemID) {
			return
		}
		found = true
		store.Update(itemID, selection.Patch{Nights: &nights})
	})
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item is not part of the selection")
	}
	return buildSummary(session.ID, session.Snapshot()), nil
}

// Submit partitions the current selection, snapshots the breakdown, and
// persists the package. The selection is left intact on failure and on
// success; a Redis lock makes submission single-flight per session.
func (s *service) Submit(ctx context.Context, sessionID string, input SubmitInput) (*SubmitResult, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	items := session.Snapshot()
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no items selected")
	}

	acquired, err := s.locker.AcquireSubmissionLock(ctx, sessionID, submissionLockTTL)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "acquire submission lock")
	}
	if !acquired {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "submission already in progress")
	}
	defer func() {
		if releaseErr := s.locker.ReleaseSubmissionLock(context.WithoutCancel(ctx), sessionID); releaseErr != nil && s.logg != nil {
			s.logg.Error(ctx, "release submission lock", releaseErr)
		}
	}()

	record, err := s.buildRecord(items, input)
	if err != nil {
		return nil, err
	}
	breakdown := pricing.Compute(items)

	started := s.now()
	if err := s.repo.Create(ctx, record); err != nil {
		s.metrics.IncFailure(submitOperationLabel)
		return nil, pkgerrors.Wrap(pkgerrors.CodePersistence, err, "create safari package")
	}
	s.metrics.ObserveDuration(submitOperationLabel, s.now().Sub(started))
	s.metrics.IncSuccess(submitOperationLabel)

	s.notifyCreated(ctx, record, len(items))

	return &SubmitResult{
		PackageID:    record.ID,
		Name:         record.Name,
		StartDate:    formatDate(record.StartDate),
		EndDate:      formatDate(record.EndDate),
		Participants: record.Participants,
		Breakdown:    breakdown,
	}, nil
}

func (s *service) buildRecord(items []selection.SelectedItem, input SubmitInput) (*models.SafariPackage, error) {
	now := s.now().UTC()
	start := now.Add(defaultStartOffset).Truncate(24 * time.Hour)
	if input.StartDate != nil {
		start = input.StartDate.UTC().Truncate(24 * time.Hour)
	}
	end := now.Add(defaultEndOffset).Truncate(24 * time.Hour)
	if input.EndDate != nil {
		end = input.EndDate.UTC().Truncate(24 * time.Hour)
	}
	if !end.After(start) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "end date must be after start date")
	}

	participants := defaultParticipants
	if input.Participants != nil {
		participants = *input.Participants
	}
	if participants < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "participants must be at least 1")
	}

	name := fmt.Sprintf("Safari package %s", formatDate(start))
	if input.Name != nil && *input.Name != "" {
		name = *input.Name
	}

	breakdown := pricing.Compute(items)
	record := &models.SafariPackage{
		ID:           uuid.New(),
		Name:         name,
		StartDate:    start,
		EndDate:      end,
		Participants: participants,
		Lodges:       types.PackageItems{},
		Activities:   types.PackageItems{},
		Transport:    types.PackageItems{},
		Cultural:     types.PackageItems{},
		Subtotal:     breakdown.Subtotal,
		Taxes:        breakdown.Taxes,
		Total:        breakdown.Total,
		CreatedBy:    input.CreatedBy,
	}

	for _, item := range items {
		snapshot := types.PackageItem{
			SelectionID: item.ID,
			CatalogID:   item.CatalogID.String(),
			Name:        item.Name,
			Price:       item.Price,
			Nights:      item.Nights,
		}
		switch item.Type {
		case enums.ItemTypeLodge:
			record.Lodges = append(record.Lodges, snapshot)
		case enums.ItemTypeActivity:
			record.Activities = append(record.Activities, snapshot)
		case enums.ItemTypeTransport:
			record.Transport = append(record.Transport, snapshot)
		case enums.ItemTypeCultural:
			record.Cultural = append(record.Cultural, snapshot)
		}
	}
	return record, nil
}

func (s *service) notifyCreated(ctx context.Context, record *models.SafariPackage, itemCount int) {
	if s.publisher == nil {
		return
	}
	event := PackageCreatedEvent{
		EventID:    uuid.NewString(),
		PackageID:  record.ID,
		Name:       record.Name,
		Total:      record.Total,
		ItemCount:  itemCount,
		OccurredAt: s.now().UTC(),
	}
	// Fire and forget; submission never waits on delivery.
	go func() {
		detached := context.WithoutCancel(ctx)
		if err := s.publisher.PublishPackageCreated(detached, event); err != nil && s.logg != nil {
			s.logg.Error(detached, "publish package created event", err)
		}
	}()
}
