package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/savannatrails/safari-backend/api/responses"
	"github.com/savannatrails/safari-backend/api/validators"
	"github.com/savannatrails/safari-backend/internal/packages"
	pkgerrors "github.com/savannatrails/safari-backend/pkg/errors"
	"github.com/savannatrails/safari-backend/pkg/logger"
	"github.com/savannatrails/safari-backend/pkg/pagination"
)

// PackagesList serves one page of submitted safari packages.
func PackagesList(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "packages service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), pagination.Params{
			Limit:  limit,
			Cursor: r.URL.Query().Get("cursor"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// PackageFetch serves a single submitted package by id.
func PackageFetch(svc packages.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "packages service unavailable"))
			return
		}

		packageID, err := uuid.Parse(chi.URLParam(r, "packageID"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid package id"))
			return
		}

		record, err := svc.Get(r.Context(), packageID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, record)
	}
}
