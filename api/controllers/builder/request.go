package builder

import (
	"time"

	"github.com/google/uuid"

	"github.com/savannatrails/safari-backend/api/validators"
	buildersvc "github.com/savannatrails/safari-backend/internal/builder"
	"github.com/savannatrails/safari-backend/pkg/enums"
)

// ToggleRequest selects or deselects one catalog item.
type ToggleRequest struct {
	Type      string    `json:"type" validate:"required"`
	CatalogID uuid.UUID `json:"catalog_id" validate:"required"`
	Nights    *int      `json:"nights,omitempty" validate:"omitempty,min=1"`
}

// UpdateNightsRequest changes the night count on a selected lodge.
type UpdateNightsRequest struct {
	Nights int `json:"nights" validate:"required,min=1"`
}

// SubmitRequest carries optional overrides for the persisted package.
type SubmitRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=200"`
	StartDate    *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Participants *int    `json:"participants,omitempty" validate:"omitempty,min=1"`
	CreatedBy    *string `json:"created_by,omitempty" validate:"omitempty,max=200"`
}

const dateLayout = "2006-01-02"

func toToggleInput(payload ToggleRequest) (buildersvc.ToggleInput, error) {
	itemType, err := enums.ParseItemType(payload.Type)
	if err != nil {
		return buildersvc.ToggleInput{}, err
	}
	return buildersvc.ToggleInput{
		Type:      itemType,
		CatalogID: payload.CatalogID,
		Nights:    payload.Nights,
	}, nil
}

func toSubmitInput(payload SubmitRequest) buildersvc.SubmitInput {
	input := buildersvc.SubmitInput{
		Name:         sanitized(payload.Name, 200),
		Participants: payload.Participants,
		CreatedBy:    sanitized(payload.CreatedBy, 200),
	}
	// Dates already passed the datetime validator.
	if payload.StartDate != nil {
		if parsed, err := time.Parse(dateLayout, *payload.StartDate); err == nil {
			input.StartDate = &parsed
		}
	}
	if payload.EndDate != nil {
		if parsed, err := time.Parse(dateLayout, *payload.EndDate); err == nil {
			input.EndDate = &parsed
		}
	}
	return input
}

func sanitized(value *string, maxLen int) *string {
	if value == nil {
		return nil
	}
	clean := validators.SanitizeString(*value, maxLen)
	if clean == "" {
		return nil
	}
	return &clean
}
