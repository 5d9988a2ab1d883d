package builder

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/savannatrails/safari-backend/api/responses"
	"github.com/savannatrails/safari-backend/api/validators"
	buildersvc "github.com/savannatrails/safari-backend/internal/builder"
	pkgerrors "github.com/savannatrails/safari-backend/pkg/errors"
	"github.com/savannatrails/safari-backend/pkg/logger"
)

// SessionOpen creates a new builder session with an empty selection.
func SessionOpen(svc buildersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "builder service unavailable"))
			return
		}

		summary, err := svc.OpenSession(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, summary)
	}
}

// SessionClose drops the builder session.
func SessionClose(svc buildersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "builder service unavailable"))
			return
		}

		if err := svc.CloseSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "closed"})
	}
}

// SessionSummary serves the current selection and its live breakdown.
func SessionSummary(svc buildersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "builder service unavailable"))
			return
		}

		summary, err := svc.Summary(r.Context(), chi.URLParam(r, "sessionID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// Toggle flips selection membership for a catalog item.
func Toggle(svc buildersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "builder service unavailable"))
			return
		}

		var payload ToggleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := toToggleInput(payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item type"))
			return
		}

		summary, err := svc.Toggle(r.Context(), chi.URLParam(r, "sessionID"), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// UpdateNights patches the night count on a selected item.
func UpdateNights(svc buildersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "builder service unavailable"))
			return
		}

		var payload UpdateNightsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.UpdateNights(r.Context(), chi.URLParam(r, "sessionID"), chi.URLParam(r, "itemID"), payload.Nights)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// Submit persists the configured package.
func Submit(svc buildersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "builder service unavailable"))
			return
		}

		payload := SubmitRequest{}
		if r.ContentLength != 0 {
			if err := validators.DecodeJSONBody(r, &payload); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		result, err := svc.Submit(r.Context(), chi.URLParam(r, "sessionID"), toSubmitInput(payload))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
