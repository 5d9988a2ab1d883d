package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/savannatrails/safari-backend/api/responses"
	"github.com/savannatrails/safari-backend/api/validators"
	"github.com/savannatrails/safari-backend/internal/catalog"
	"github.com/savannatrails/safari-backend/pkg/enums"
	pkgerrors "github.com/savannatrails/safari-backend/pkg/errors"
	"github.com/savannatrails/safari-backend/pkg/logger"
	"github.com/savannatrails/safari-backend/pkg/pagination"
)

// CatalogList serves one page of catalog items for a single item type.
func CatalogList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		itemType, err := enums.ParseItemType(chi.URLParam(r, "itemType"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item type"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), itemType, pagination.Params{
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
